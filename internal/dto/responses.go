package dto

import "github.com/campusmesh/portal-api/internal/models"

// SessionResponse reports the active session after login.
type SessionResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// TimetableResponse is the fixed 5x5 weekly grid. Cells hold the course
// placed at that day/slot, or nil when the slot is free.
type TimetableResponse struct {
	Slots []string           `json:"slots"`
	Days  []string           `json:"days"`
	Grid  [][]*models.Course `json:"grid"`
}

// CalendarItem is one merged calendar row: a campus event or an assignment
// deadline for a registered course.
type CalendarItem struct {
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// CourseGrade pairs a registered course with its current letter grade.
type CourseGrade struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Grade string `json:"grade"`
}

// AttendanceRow reports derived attendance for one registered course.
type AttendanceRow struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Attended int    `json:"attended"`
	Total    int    `json:"total"`
	Percent  int    `json:"percent"`
}

// AnalyticsResponse summarises a student's attendance and submission
// progress.
type AnalyticsResponse struct {
	Attendance        []AttendanceRow `json:"attendance"`
	TotalAssignments  int             `json:"totalAssignments"`
	Submitted         int             `json:"submitted"`
	CompletionPercent int             `json:"completionPercent"`
	CacheHit          bool            `json:"cacheHit,omitempty"`
}

// AssignmentView joins an assignment with the caller's submission record.
type AssignmentView struct {
	Course    string `json:"course"`
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Due       string `json:"due"`
	Submitted bool   `json:"submitted"`
	FileName  string `json:"fileName,omitempty"`
}

// ReservedBookView lists one reserved book with its catalog details.
type ReservedBookView struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// RosterEntry joins one student with their registered courses.
type RosterEntry struct {
	Username string   `json:"username"`
	Courses  []string `json:"courses"`
}

// AdminSummary reports catalog and registry counts for the admin dashboard.
type AdminSummary struct {
	Courses  int `json:"courses"`
	Notices  int `json:"notices"`
	Students int `json:"students"`
}

// AssistantReply is the assistant's answer to one question.
type AssistantReply struct {
	Answer string `json:"answer"`
}
