package dto

// CreateHabitDTO 创建自定义习惯
type CreateHabitDTO struct {
	Title           string `json:"title" binding:"required,max=50"`
	Emoji           string `json:"emoji" binding:"required"`
	Color           string `json:"color" binding:"required"`
	RepeatFrequency string `json:"repeat_frequency" binding:"required"`
}
