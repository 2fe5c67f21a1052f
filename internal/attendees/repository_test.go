package attendees

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleRoster = `Name,Email,Registered_Event,Interests,Attended
Alice,alice@example.com,AI Summit,AI;SaaS,Yes
Bob,bob@example.com,Marketing Week,Marketing,No
`

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "attendees.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewRepositoryParsesRoster(t *testing.T) {
	repo, err := NewRepository(writeRoster(t, sampleRoster))
	require.NoError(t, err)

	list := repo.List()
	require.Len(t, list, 2)
	require.Equal(t, "Alice", list[0].Name)
	require.True(t, list[0].Attended)
	require.False(t, list[1].Attended)

	a, ok := repo.GetByName("Alice")
	require.True(t, ok)
	require.Equal(t, "AI", a.Segment())

	_, ok = repo.GetByName("Nobody")
	require.False(t, ok)
}

func TestNewRepositoryMissingColumn(t *testing.T) {
	_, err := NewRepository(writeRoster(t, "Name,Email\nAlice,a@example.com\n"))
	require.Error(t, err)
}

func TestNewRepositoryMissingFile(t *testing.T) {
	_, err := NewRepository(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
