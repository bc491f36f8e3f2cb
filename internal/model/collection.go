package model

// Mongo 集合名
const (
	CollUsers      = "users"
	CollHabits     = "habits"
	CollUserHabits = "user_habits"
	CollTracking   = "tracking"
	CollCounters   = "counters"
)
