package dto

// SubscribeDTO 添加/移除打卡习惯
type SubscribeDTO struct {
	HabitID int `json:"habit_id" binding:"required,min=1"`
}
