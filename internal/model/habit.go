package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 习惯类型
const (
	HabitTypeDefault = "default"
	HabitTypePreMade = "pre-made"
	HabitTypeCustom  = "custom"
)

// 重复频率
const (
	RepeatEveryday   = "everyday"
	RepeatEveryweek  = "everyweek"
	RepeatDontRepeat = "dont_repeat"
)

// SeededHabitMaxID 内置目录占用 habit_id 1~15，自定义习惯从 16 起分配
const SeededHabitMaxID = 15

// Habit 习惯目录文档
type Habit struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	HabitID         int                `bson:"habit_id" json:"habit_id"`
	Title           string             `bson:"title" json:"title"`
	Emoji           string             `bson:"emoji" json:"emoji"`
	Color           string             `bson:"color" json:"color"`
	Type            string             `bson:"type" json:"type"`
	Category        string             `bson:"category" json:"category"`
	RepeatFrequency string             `bson:"repeat_frequency" json:"repeat_frequency"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

// IsValidRepeatFrequency 校验重复频率枚举
func IsValidRepeatFrequency(freq string) bool {
	switch freq {
	case RepeatEveryday, RepeatEveryweek, RepeatDontRepeat:
		return true
	}
	return false
}
