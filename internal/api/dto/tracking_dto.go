package dto

// RecordTrackingDTO 提交单日打卡
type RecordTrackingDTO struct {
	HabitID int    `json:"habit_id" binding:"required,min=1"`
	Date    string `json:"date" binding:"required"`
	Status  string `json:"status" binding:"required"`
	Note    string `json:"note"`
}
