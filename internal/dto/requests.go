package dto

// LoginRequest carries the login form values. The password is required but
// never checked against stored credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=student admin"`
}

// CourseCreateRequest carries a new catalog course.
type CourseCreateRequest struct {
	Code    string `json:"code" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Credits int    `json:"credits" validate:"required,gt=0"`
	Day     string `json:"day"`
	Time    string `json:"time"`
}

// NoticeCreateRequest carries a new notice; the posting date is stamped
// server-side.
type NoticeCreateRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// BookCreateRequest carries a new library book.
type BookCreateRequest struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
}

// EventCreateRequest carries a new campus event.
type EventCreateRequest struct {
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// AssignmentCreateRequest carries a new course assignment.
type AssignmentCreateRequest struct {
	Course string `json:"course" validate:"required"`
	Title  string `json:"title" validate:"required"`
	Due    string `json:"due" validate:"required"`
}

// RegisterCoursesRequest replaces the caller's registered-course set.
type RegisterCoursesRequest struct {
	Courses []string `json:"courses" validate:"required,min=1"`
}

// SubmitAssignmentRequest marks one assignment submitted. FileName is a
// display label only.
type SubmitAssignmentRequest struct {
	Course   string `json:"course" validate:"required"`
	ID       int    `json:"id" validate:"required,gt=0"`
	FileName string `json:"fileName"`
}

// ProfileUpdateRequest replaces the caller's contact details.
type ProfileUpdateRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

// TaskStatusUpdateRequest moves one checklist task to a new status.
type TaskStatusUpdateRequest struct {
	Category string `json:"category" validate:"required"`
	ID       int    `json:"id" validate:"required,gt=0"`
	Status   string `json:"status" validate:"required,oneof='Not started' 'Started' 'Needs review' 'Completed'"`
}

// MessageSendRequest appends one chat message.
type MessageSendRequest struct {
	Content string `json:"content" validate:"required"`
}

// AssistantQueryRequest carries one question for the virtual assistant.
type AssistantQueryRequest struct {
	Question string `json:"question" validate:"required"`
}
