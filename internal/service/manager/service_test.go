package manager

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/report-card/internal/domain/gradebook"
	repo "github.com/oshokin/report-card/internal/repository/gradebook"
)

var errTestLoad = errors.New("test load error")

// memoryRepository is a minimal in-memory Repository implementation for tests.
type memoryRepository struct {
	// book is the gradebook to return from Load operations.
	book *domain.Book
	// loadErr is the error to return from Load operations.
	loadErr error
	// saveErr is the error to return from Save operations.
	saveErr error
	// saved stores the last snapshot passed to Save operations.
	saved map[string]map[string]float64
	// saveCount is the number of Save calls observed.
	saveCount int
}

// Load returns the configured book or error.
func (m *memoryRepository) Load(context.Context) (*domain.Book, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}

	return m.book, nil
}

// Save records the snapshot of the book it was given.
func (m *memoryRepository) Save(_ context.Context, book *domain.Book) error {
	if m.saveErr != nil {
		return m.saveErr
	}

	m.saved = book.Snapshot()
	m.saveCount++

	return nil
}

// TestNewService_LoadsBookOrDefaults asserts NewService behavior on existing,
// missing, and unreadable gradebooks.
func TestNewService_LoadsBookOrDefaults(t *testing.T) {
	t.Parallel()

	// Existing gradebook.
	existing := domain.FromSnapshot(map[string]map[string]float64{
		"Alice": {"Math": 92},
	})

	s, err := NewService(context.Background(), &memoryRepository{book: existing})
	require.NoError(t, err)
	require.Equal(t, []string{"Alice"}, s.Students(context.Background()))

	// Not found -> empty book.
	s, err = NewService(context.Background(), &memoryRepository{loadErr: repo.ErrNotFound})
	require.NoError(t, err)
	require.Zero(t, s.Len(context.Background()))

	// Other error.
	s, err = NewService(context.Background(), &memoryRepository{loadErr: errTestLoad})
	require.ErrorIs(t, err, errTestLoad)
	require.Nil(t, s)
}

// TestService_MutationsPersist verifies every mutating operation writes the whole book.
func TestService_MutationsPersist(t *testing.T) {
	t.Parallel()

	mem := new(memoryRepository)
	s, err := NewService(context.Background(), mem)
	require.NoError(t, err)

	require.NoError(t, s.AddStudent(context.Background(), "Alice"))
	require.Equal(t, map[string]map[string]float64{"Alice": {}}, mem.saved)

	require.NoError(t, s.SetScore(context.Background(), "Alice", "Math", 92))
	require.Equal(t, map[string]map[string]float64{"Alice": {"Math": 92}}, mem.saved)

	require.NoError(t, s.DeleteStudent(context.Background(), "Alice"))
	require.Empty(t, mem.saved)
	require.Equal(t, 3, mem.saveCount)
}

// TestService_DomainErrorsPassThrough ensures domain failures surface unwrapped
// and skip persistence.
func TestService_DomainErrorsPassThrough(t *testing.T) {
	t.Parallel()

	mem := new(memoryRepository)
	s, err := NewService(context.Background(), mem)
	require.NoError(t, err)

	require.NoError(t, s.AddStudent(context.Background(), "Alice"))

	err = s.AddStudent(context.Background(), "Alice")
	require.ErrorIs(t, err, domain.ErrDuplicateStudent)

	err = s.SetScore(context.Background(), "Bob", "Math", 70)
	require.ErrorIs(t, err, domain.ErrStudentNotFound)

	err = s.DeleteStudent(context.Background(), "Bob")
	require.ErrorIs(t, err, domain.ErrStudentNotFound)

	// Only the successful add persisted.
	require.Equal(t, 1, mem.saveCount)
}

// TestService_PersistFailureSurfaces checks a failing Save is reported to the caller.
func TestService_PersistFailureSurfaces(t *testing.T) {
	t.Parallel()

	mem := &memoryRepository{saveErr: errTestLoad}
	s, err := NewService(context.Background(), mem)
	require.NoError(t, err)

	err = s.AddStudent(context.Background(), "Alice")
	require.ErrorIs(t, err, errTestLoad)
}

// TestService_LoadReplacesState verifies an explicit Load swaps in the stored book.
func TestService_LoadReplacesState(t *testing.T) {
	t.Parallel()

	mem := new(memoryRepository)
	s, err := NewService(context.Background(), mem)
	require.NoError(t, err)

	require.NoError(t, s.AddStudent(context.Background(), "Alice"))

	mem.book = domain.FromSnapshot(map[string]map[string]float64{
		"Bob": {"Math": 70},
	})

	require.NoError(t, s.Load(context.Background()))
	require.Equal(t, []string{"Bob"}, s.Students(context.Background()))
}

// TestService_LoadFailureKeepsState ensures a failed Load leaves prior state untouched.
func TestService_LoadFailureKeepsState(t *testing.T) {
	t.Parallel()

	mem := new(memoryRepository)
	s, err := NewService(context.Background(), mem)
	require.NoError(t, err)

	require.NoError(t, s.AddStudent(context.Background(), "Alice"))

	mem.loadErr = repo.ErrMalformedFile

	err = s.Load(context.Background())
	require.ErrorIs(t, err, repo.ErrMalformedFile)
	require.Equal(t, []string{"Alice"}, s.Students(context.Background()))
}

// TestService_NilRepository checks the service works purely in memory without a repo.
func TestService_NilRepository(t *testing.T) {
	t.Parallel()

	s, err := NewService(context.Background(), nil)
	require.NoError(t, err)

	require.NoError(t, s.AddStudent(context.Background(), "Alice"))
	require.NoError(t, s.Save(context.Background()))
	require.NoError(t, s.Load(context.Background()))
	require.Equal(t, []string{"Alice"}, s.Students(context.Background()))
}
