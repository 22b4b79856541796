package models

// Roles accepted at login.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Session is the single globally-active logged-in identity and role.
type Session struct {
	LoggedIn bool   `json:"loggedIn"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Profile holds optional contact details for a user.
type Profile struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// SubmissionStatus records whether an assignment was handed in and the
// display name of the chosen file. No file content is ever stored.
type SubmissionStatus struct {
	Submitted bool   `json:"submitted"`
	File      string `json:"file"`
}

// SubmissionBook maps "{code}_{id}" keys to submission records for one user.
type SubmissionBook map[string]SubmissionStatus

// Notification is a per-user alert. Message text doubles as the dedup key
// for generated reminders.
type Notification struct {
	Message string `json:"message"`
	Date    string `json:"date"`
	Read    bool   `json:"read"`
}

// Task statuses allowed by UpdateStatus.
const (
	TaskNotStarted  = "Not started"
	TaskStarted     = "Started"
	TaskNeedsReview = "Needs review"
	TaskCompleted   = "Completed"
)

// Task is one onboarding checklist item.
type Task struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// TaskBook groups a user's tasks by category.
type TaskBook map[string][]Task

// Message is one entry in the global chat shared by all users.
type Message struct {
	From    string `json:"from"`
	Time    string `json:"time"`
	Content string `json:"content"`
}
