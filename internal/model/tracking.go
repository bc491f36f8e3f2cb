package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 打卡状态枚举，前四个用于礼拜类习惯，后两个用于普通习惯
const (
	StatusNotPrayed    = "not_prayed"
	StatusLate         = "late"
	StatusOnTime       = "on_time"
	StatusInJemaah     = "in_jemaah"
	StatusCompleted    = "completed"
	StatusNotCompleted = "not_completed"
)

// DateLayout Tracking.Date 的日历日格式
const DateLayout = "2006-01-02"

// Tracking 单日打卡记录，(user_habit_id, date) 全局唯一
type Tracking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	TrackingID  int                `bson:"tracking_id" json:"tracking_id"`
	UserHabitID int                `bson:"user_habit_id" json:"user_habit_id"`
	Date        string             `bson:"date" json:"date"`
	Status      string             `bson:"status" json:"status"`
	Note        string             `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// TrackingView 打卡记录连同订阅与习惯详情（两级 $lookup 结果）
type TrackingView struct {
	Tracking  `bson:",inline"`
	UserHabit UserHabit `bson:"user_habit" json:"user_habit"`
	Habit     Habit     `bson:"habit" json:"habit"`
}

// IsValidStatus 校验打卡状态枚举
func IsValidStatus(status string) bool {
	switch status {
	case StatusNotPrayed, StatusLate, StatusOnTime, StatusInJemaah,
		StatusCompleted, StatusNotCompleted:
		return true
	}
	return false
}
