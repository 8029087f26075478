package manager

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/oshokin/report-card/internal/domain/gradebook"
	"github.com/oshokin/report-card/internal/logger"
	repo "github.com/oshokin/report-card/internal/repository/gradebook"
)

// Service encapsulates the gradebook business logic and persistence
// orchestration. There is exactly one caller at a time (the console
// command loop), so no locking is involved.
type Service struct {
	// repo handles persistent storage of the gradebook.
	repo repo.Repository
	// book is the current in-memory gradebook.
	book *domain.Book
}

// NewService creates a service backed by the provided repository.
// An existing gradebook is loaded; a missing file starts empty.
func NewService(ctx context.Context, repository repo.Repository) (*Service, error) {
	s := &Service{
		repo: repository,
		book: domain.NewBook(),
	}

	if repository == nil {
		return s, nil
	}

	book, err := repository.Load(ctx)
	switch {
	case err == nil:
		if book != nil {
			s.book = book
		}

		logger.DebugKV(ctx, "Gradebook loaded", "students", s.book.Len())
	case errors.Is(err, repo.ErrNotFound):
		// First run, keep the empty book.
	default:
		return nil, fmt.Errorf("load gradebook: %w", err)
	}

	return s, nil
}

// AddStudent creates an empty record for the name and persists the book.
func (s *Service) AddStudent(ctx context.Context, name string) error {
	if err := s.book.AddStudent(name); err != nil {
		return err
	}

	if err := s.persist(ctx); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Student added", "name", name)

	return nil
}

// SetScore inserts or overwrites one subject score and persists the book.
func (s *Service) SetScore(ctx context.Context, name, subject string, score float64) error {
	if err := s.book.SetScore(name, subject, score); err != nil {
		return err
	}

	if err := s.persist(ctx); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Score recorded", "name", name, "subject", subject, "score", score)

	return nil
}

// DeleteStudent removes the named record and persists the book.
func (s *Service) DeleteStudent(ctx context.Context, name string) error {
	if err := s.book.DeleteStudent(name); err != nil {
		return err
	}

	if err := s.persist(ctx); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Student deleted", "name", name)

	return nil
}

// Report returns the derived report card for the named student.
func (s *Service) Report(_ context.Context, name string) (*domain.Report, error) {
	return s.book.Report(name)
}

// Students returns all student names sorted alphabetically.
func (s *Service) Students(_ context.Context) []string {
	return s.book.Students()
}

// Len returns the number of students currently held in memory.
func (s *Service) Len(_ context.Context) int {
	return s.book.Len()
}

// Save flushes the whole in-memory gradebook to the repository.
func (s *Service) Save(ctx context.Context) error {
	return s.persist(ctx)
}

// Load replaces the in-memory gradebook with the repository contents.
// On any failure, including a malformed file, the prior state is kept.
func (s *Service) Load(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	book, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load gradebook: %w", err)
	}

	if book != nil {
		s.book = book
	}

	logger.InfoKV(ctx, "Gradebook reloaded", "students", s.book.Len())

	return nil
}

// persist writes the whole book through the repository, if one is attached.
func (s *Service) persist(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	if err := s.repo.Save(ctx, s.book); err != nil {
		logger.ErrorKV(ctx, "Failed to persist gradebook", "error", err)

		return fmt.Errorf("persist gradebook: %w", err)
	}

	return nil
}
