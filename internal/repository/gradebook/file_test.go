package gradebook

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/report-card/internal/domain/gradebook"
)

// TestFileRepository_NotFound verifies Load returns ErrNotFound for a missing file.
func TestFileRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "missing.json"))

	book, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, book)
}

// TestFileRepository_SaveLoad_Roundtrip ensures Save followed by Load returns an equal mapping.
func TestFileRepository_SaveLoad_Roundtrip(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "grades.json")
	repo := NewFileRepository(file)

	want := domain.FromSnapshot(map[string]map[string]float64{
		"Alice": {"Math": 92, "Science": 85},
		"Bob":   {"Math": 70},
		"Carol": {},
	})

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, want.Snapshot(), got.Snapshot())

	_, err = os.Stat(file)
	require.NoError(t, err)
}

// TestFileRepository_SaveCreatesParentDirectory checks missing directories are created on Save.
func TestFileRepository_SaveCreatesParentDirectory(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "nested", "data", "grades.json")
	repo := NewFileRepository(file)

	require.NoError(t, repo.Save(context.Background(), domain.NewBook()))

	_, err := os.Stat(file)
	require.NoError(t, err)
}

// TestFileRepository_MalformedFile ensures shape violations fail with ErrMalformedFile.
func TestFileRepository_MalformedFile(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"array":            `[{"id": 1, "name": "Alice"}]`,
		"string score":     `{"Alice": {"Math": "ninety"}}`,
		"non-object value": `{"Alice": 92}`,
		"garbage":          `{not json`,
	}

	for name, contents := range cases {
		file := filepath.Join(t.TempDir(), "grades.json")
		require.NoError(t, os.WriteFile(file, []byte(contents), 0o600))

		book, err := NewFileRepository(file).Load(context.Background())
		require.ErrorIs(t, err, ErrMalformedFile, "case %s", name)
		require.Nil(t, book, "case %s", name)
	}
}

// TestFileRepository_EmptyBook round-trips an empty collection as an empty JSON object.
func TestFileRepository_EmptyBook(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "grades.json")
	repo := NewFileRepository(file)

	require.NoError(t, repo.Save(context.Background(), domain.NewBook()))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Zero(t, got.Len())
}
