package repository

import "fmt"

// Store key families. Names are part of the persisted format and must not
// change without a data migration.
const (
	keyCourseCatalog = "courseCatalog"
	keyNotices       = "notices"
	keyBookCatalog   = "bookCatalog"
	keyAssignments   = "assignments"
	keyEvents        = "events"
	keyMessages      = "messages"
	keyStudents      = "students"

	keySessionLoggedIn = "loggedIn"
	keySessionUsername = "username"
	keySessionRole     = "role"
)

func notificationsKey(username string) string {
	return fmt.Sprintf("notifications_%s", username)
}

func registeredCoursesKey(username string) string {
	return fmt.Sprintf("registeredCourses_%s", username)
}

func submissionsKey(username string) string {
	return fmt.Sprintf("assignments_%s", username)
}

func profileKey(username string) string {
	return fmt.Sprintf("profile_%s", username)
}

func reservedBooksKey(username string) string {
	return fmt.Sprintf("reservedBooks_%s", username)
}

func tasksKey(username string) string {
	return fmt.Sprintf("tasks_%s", username)
}
