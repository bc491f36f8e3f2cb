package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHabit 用户与习惯的订阅关系，(user_id, habit_id) 全局唯一
type UserHabit struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserHabitID int                `bson:"user_habit_id" json:"user_habit_id"`
	UserID      int                `bson:"user_id" json:"user_id"`
	HabitID     int                `bson:"habit_id" json:"habit_id"`
	AddedAt     time.Time          `bson:"added_at" json:"added_at"`
}

// UserHabitWithHabit 订阅关系连同习惯详情（$lookup 结果）
type UserHabitWithHabit struct {
	UserHabit `bson:",inline"`
	Habit     Habit `bson:"habit" json:"habit"`
}
