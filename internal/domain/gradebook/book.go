package gradebook

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Book is the full collection of student records, keyed by student name.
// Names are unique; the zero value is not usable, construct via NewBook.
type Book struct {
	// records maps a student name to that student's record.
	records map[string]*Record
}

// NewBook creates an empty gradebook.
func NewBook() *Book {
	return &Book{
		records: make(map[string]*Record),
	}
}

// Report is the derived view of one student's record.
type Report struct {
	// Name is the student the report describes.
	Name string
	// Subjects is a copy of the student's subject scores.
	Subjects map[string]float64
	// Average is the arithmetic mean of the scores, zero when there are none.
	Average float64
	// Grade is the letter grade derived from the average.
	Grade Grade
}

// AddStudent creates a record with an empty subject map.
// Adding a name that already exists fails with ErrDuplicateStudent.
func (b *Book) AddStudent(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	if _, ok := b.records[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateStudent, name)
	}

	b.records[name] = NewRecord()

	return nil
}

// SetScore inserts or overwrites the subject's score for the named student.
func (b *Book) SetScore(name, subject string, score float64) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return ErrEmptySubject
	}

	if math.IsNaN(score) || math.IsInf(score, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidScore, score)
	}

	record, ok := b.records[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrStudentNotFound, name)
	}

	record.Subjects[subject] = score

	return nil
}

// DeleteStudent removes the named record.
func (b *Book) DeleteStudent(name string) error {
	if _, ok := b.records[name]; !ok {
		return fmt.Errorf("%w: %s", ErrStudentNotFound, name)
	}

	delete(b.records, name)

	return nil
}

// Report returns the derived view for the named student.
func (b *Book) Report(name string) (*Report, error) {
	record, ok := b.records[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStudentNotFound, name)
	}

	return &Report{
		Name:     name,
		Subjects: record.Clone().Subjects,
		Average:  record.Average(),
		Grade:    record.Grade(),
	}, nil
}

// Students returns all student names sorted alphabetically so that
// listings are reproducible regardless of insertion order.
func (b *Book) Students() []string {
	names := make([]string, 0, len(b.records))
	for name := range b.records {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Len returns the number of student records.
func (b *Book) Len() int {
	return len(b.records)
}

// Clone returns a deep copy of the book.
func (b *Book) Clone() *Book {
	cloned := NewBook()
	for name, record := range b.records {
		cloned.records[name] = record.Clone()
	}

	return cloned
}

// Snapshot returns the book as a plain name -> subject -> score mapping,
// the shape persisted to disk.
func (b *Book) Snapshot() map[string]map[string]float64 {
	snapshot := make(map[string]map[string]float64, len(b.records))
	for name, record := range b.records {
		snapshot[name] = record.Clone().Subjects
	}

	return snapshot
}

// FromSnapshot builds a book from a plain name -> subject -> score mapping.
func FromSnapshot(snapshot map[string]map[string]float64) *Book {
	book := NewBook()

	for name, subjects := range snapshot {
		record := NewRecord()
		for subject, score := range subjects {
			record.Subjects[subject] = score
		}

		book.records[name] = record
	}

	return book
}
