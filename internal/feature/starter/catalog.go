package starter

import (
	"time"

	goalentity "youth_balance/internal/feature/goals/domain/entity"
	noteentity "youth_balance/internal/feature/notes/domain/entity"
	taskentity "youth_balance/internal/feature/tasks/domain/entity"
)

// Tasks は新規アカウントに最初から入っているタスクです。
var Tasks = []taskentity.Fields{
	{
		Title:       "Welcome to Youth Balance!",
		Description: "Take a moment to explore your dashboard and customize it to your needs.",
		Priority:    taskentity.PriorityHigh,
		Category:    "general",
	},
	{
		Title:       "Set up your morning routine",
		Description: "Create a morning routine that energizes you for the day ahead.",
		Priority:    taskentity.PriorityMedium,
		Category:    "personal",
	},
	{
		Title:       "Plan your weekly goals",
		Description: "Think about what you want to achieve this week and break it into smaller steps.",
		Priority:    taskentity.PriorityMedium,
		Category:    "personal",
	},
	{
		Title:       "Practice self-care today",
		Description: "Do something kind for yourself - take a bath, read a book, or call a friend.",
		Priority:    taskentity.PriorityLow,
		Category:    "health",
	},
}

// Notes は新規アカウントに最初から入っているノートです。
var Notes = []noteentity.Fields{
	{
		Title: "Daily Affirmations",
		Content: "I am capable of achieving my dreams.\n" +
			"I deserve love and happiness.\n" +
			"I am growing stronger every day.\n" +
			"I trust in my ability to overcome challenges.\n" +
			"I believe in myself and my potential.",
		Category: "inspiration",
		Color:    "#4f46e5",
	},
	{
		Title: "Self-Care Ideas",
		Content: "• Take a relaxing bath with essential oils\n" +
			"• Write in a gratitude journal\n" +
			"• Go for a peaceful walk in nature\n" +
			"• Listen to your favorite music\n" +
			"• Practice deep breathing exercises\n" +
			"• Treat yourself to something special",
		Category: "ideas",
		Color:    "#a8e6cf",
	},
	{
		Title: "Study Tips",
		Content: "• Use the Pomodoro Technique (25 min study, 5 min break)\n" +
			"• Create a dedicated study space\n" +
			"• Break large tasks into smaller ones\n" +
			"• Reward yourself after completing tasks\n" +
			"• Stay hydrated and take regular breaks",
		Category: "general",
		Color:    "#ffd93d",
	},
	{
		Title: "Mood Tracker",
		Content: "Track your daily mood and notice patterns:\n\n" +
			"Today I feel: ___________\n" +
			"What made me happy: ___________\n" +
			"What challenged me: ___________\n" +
			"Tomorrow I want to: ___________",
		Category: "reminders",
		Color:    "#74b9ff",
	},
}

// starterGoal は目標日を登録日からの相対で持つ初期ゴールです。
type starterGoal struct {
	Title       string
	Description string
	Days        int
}

// Goals は新規アカウントに最初から入っているゴールです。
var Goals = []starterGoal{
	{
		Title:       "Develop a consistent self-care routine",
		Description: "Create and maintain daily habits that support physical and mental wellbeing.",
		Days:        30,
	},
	{
		Title:       "Improve time management skills",
		Description: "Learn to prioritize tasks effectively and create a balanced schedule.",
		Days:        60,
	},
	{
		Title:       "Build confidence and self-esteem",
		Description: "Practice positive self-talk and celebrate achievements, big and small.",
		Days:        90,
	},
}

// fields は today から数えた目標日でゴールの項目を返します。
func (g starterGoal) fields(today time.Time) goalentity.Fields {
	target := goalentity.Day(today).AddDate(0, 0, g.Days)
	return goalentity.Fields{Title: g.Title, Description: g.Description, TargetDate: &target}
}
