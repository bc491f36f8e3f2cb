package model

// DefaultHabits 首次启动时灌入的内置习惯目录，habit_id 1~15 固定不变。
// 种子写入以 habit_id 为键做 $setOnInsert，重复启动不会产生重复行。
var DefaultHabits = []Habit{
	// 默认礼拜习惯 (1~5)
	{HabitID: 1, Title: "Fajr", Emoji: "🌅", Color: "#FF6B6B", Type: HabitTypeDefault, Category: "Prayers", RepeatFrequency: RepeatEveryday},
	{HabitID: 2, Title: "Dhuhr", Emoji: "☀️", Color: "#4ECDC4", Type: HabitTypeDefault, Category: "Prayers", RepeatFrequency: RepeatEveryday},
	{HabitID: 3, Title: "Asr", Emoji: "🌤️", Color: "#45B7D1", Type: HabitTypeDefault, Category: "Prayers", RepeatFrequency: RepeatEveryday},
	{HabitID: 4, Title: "Maghrib", Emoji: "🌇", Color: "#F7B731", Type: HabitTypeDefault, Category: "Prayers", RepeatFrequency: RepeatEveryday},
	{HabitID: 5, Title: "Isha", Emoji: "🌙", Color: "#5F27CD", Type: HabitTypeDefault, Category: "Prayers", RepeatFrequency: RepeatEveryday},

	// 预置学习类习惯 (6~8)
	{HabitID: 6, Title: "Read Islamic Books", Emoji: "📚", Color: "#00D2D3", Type: HabitTypePreMade, Category: "Learning & Dawah", RepeatFrequency: RepeatEveryday},
	{HabitID: 7, Title: "Listen Quran", Emoji: "📖", Color: "#FF9FF3", Type: HabitTypePreMade, Category: "Learning & Dawah", RepeatFrequency: RepeatEveryday},
	{HabitID: 8, Title: "Listen Lectures", Emoji: "🎧", Color: "#54A0FF", Type: HabitTypePreMade, Category: "Learning & Dawah", RepeatFrequency: RepeatEveryday},

	// 预置礼拜习惯 (9~14)
	{HabitID: 9, Title: "Tarawih", Emoji: "🤲", Color: "#5F27CD", Type: HabitTypePreMade, Category: "Prayers", RepeatFrequency: RepeatEveryday},
	{HabitID: 10, Title: "Sunnah", Emoji: "🕌", Color: "#10AC84", Type: HabitTypePreMade, Category: "Prayers", RepeatFrequency: RepeatEveryday},
	{HabitID: 11, Title: "Witr", Emoji: "🌟", Color: "#F79F1F", Type: HabitTypePreMade, Category: "Prayers", RepeatFrequency: RepeatEveryday},
	{HabitID: 12, Title: "Ishraq", Emoji: "🌄", Color: "#FDA7DF", Type: HabitTypePreMade, Category: "Prayers", RepeatFrequency: RepeatEveryday},
	{HabitID: 13, Title: "Tahajjud", Emoji: "✨", Color: "#9980FA", Type: HabitTypePreMade, Category: "Prayers", RepeatFrequency: RepeatEveryday},
	{HabitID: 14, Title: "Tahiyatul Masjid", Emoji: "🕊️", Color: "#12CBC4", Type: HabitTypePreMade, Category: "Prayers", RepeatFrequency: RepeatEveryday},

	// 预置斋戒习惯 (15)
	{HabitID: 15, Title: "Monday and Thursday Fasting", Emoji: "🌙", Color: "#C44569", Type: HabitTypePreMade, Category: "Fasting", RepeatFrequency: RepeatEveryweek},
}
