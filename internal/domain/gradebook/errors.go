package gradebook

import "errors"

var (
	// ErrDuplicateStudent is returned when adding a name that already exists.
	ErrDuplicateStudent = errors.New("student already exists")
	// ErrStudentNotFound is returned when the named student does not exist.
	ErrStudentNotFound = errors.New("student not found")
	// ErrInvalidScore is returned when a score is not a finite number.
	ErrInvalidScore = errors.New("score is not a valid number")
	// ErrEmptyName is returned when a student name is blank.
	ErrEmptyName = errors.New("student name must not be empty")
	// ErrEmptySubject is returned when a subject name is blank.
	ErrEmptySubject = errors.New("subject name must not be empty")
)
