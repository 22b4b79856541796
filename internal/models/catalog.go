package models

// Schedule pins a course to a weekday and a timetable slot.
type Schedule struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

// Course is a catalog entry students can register for. Codes are unique.
type Course struct {
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	Credits  int      `json:"credits"`
	Schedule Schedule `json:"schedule"`
}

// Notice is a portal-wide announcement. The list is kept newest first and
// entries are addressed by position, not by a stable id.
type Notice struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

// Book is a library catalog entry. Available flips to false while exactly
// one user holds a reservation.
type Book struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Available bool   `json:"available"`
}

// Event is a dated campus activity shown on calendars and in reminders.
type Event struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// Assignment is a course deliverable. IDs are unique within a course.
type Assignment struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Due   string `json:"due"`
}

// AssignmentBook maps course codes to their assignments.
type AssignmentBook map[string][]Assignment
