package model

// HabitPopularity 按订阅人数统计的热门习惯
type HabitPopularity struct {
	HabitID int    `bson:"habit_id" json:"habit_id"`
	Title   string `bson:"title" json:"title"`
	Emoji   string `bson:"emoji" json:"emoji"`
	Count   int64  `bson:"count" json:"count"`
}

// DailyActivity 单日打卡计数
type DailyActivity struct {
	Date  string `bson:"date" json:"date"`
	Count int64  `bson:"count" json:"count"`
}

// UserHabitCount 单个用户的订阅习惯数量
type UserHabitCount struct {
	UserID int   `bson:"_id" json:"user_id"`
	Count  int64 `bson:"count" json:"count"`
}

// EngagementBucket 用户活跃度分桶
type EngagementBucket struct {
	Level string `json:"level"`
	Users int64  `json:"users"`
}

// StatsSnapshot 管理端统计快照
type StatsSnapshot struct {
	TotalUsers           int64              `json:"totalUsers"`
	NewUsers             int64              `json:"newUsers"`
	ActiveUsers          int64              `json:"activeUsers"`
	TotalTrackingRecords int64              `json:"totalTrackingRecords"`
	MostTrackedHabits    []*HabitPopularity `json:"mostTrackedHabits"`
	DailyActivity        []DailyActivity    `json:"dailyActivity"`
	UserEngagement       []EngagementBucket `json:"userEngagement"`
}
