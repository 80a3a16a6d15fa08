package models

// User is a local account. Passwords are stored as bcrypt hashes; the
// hash never leaves the storage layer.
type User struct {
	ID  int64  `json:"id"`
	UID string `json:"uid"`
}

// Habit is a named recurring task owned by exactly one user. Completion
// is not a property of the habit itself; it is recorded per day in
// HabitEntry rows.
type Habit struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	UserID int64  `json:"user_id"`
}

// HabitStatus pairs a habit with its durable completion state for one
// specific day. Recorded reports whether an entry exists at all for that
// day, so "not yet submitted" and "submitted as not done" stay distinct.
type HabitStatus struct {
	Habit
	Completed bool `json:"completed"`
	Recorded  bool `json:"recorded"`
}

// HabitEntry records whether a habit was completed on a given day.
// Date is always ISO YYYY-MM-DD.
type HabitEntry struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	HabitID   int64  `json:"habit_id"`
	Completed bool   `json:"completed"`
	UserID    int64  `json:"user_id"`
}

// HabitCheck is one habit's checked/unchecked state in a day submission.
type HabitCheck struct {
	HabitID   int64
	Completed bool
}

// EntryRecord is a habit entry joined with its habit's display name,
// the input shape for stats aggregation.
type EntryRecord struct {
	HabitID   int64
	Name      string
	Date      string
	Completed bool
}

// HabitStat is one habit's completion rate over an aggregation window.
type HabitStat struct {
	HabitID int64  `json:"habit_id"`
	Name    string `json:"name"`
	// Rate is a rounded percentage in [0, 100].
	Rate int `json:"completion_rate"`
}
