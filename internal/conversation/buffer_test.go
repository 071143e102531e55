package conversation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendBeyondCapacityEvictsOldestFirst(t *testing.T) {
	m := NewManager(0) // default capacity 20
	for i := 0; i < DefaultCapacity+1; i++ {
		m.AppendUser("s1", fmt.Sprintf("turn %d", i))
	}

	turns := m.Snapshot("s1")
	require.Len(t, turns, DefaultCapacity)
	require.Equal(t, "turn 1", turns[0].Content, "oldest turn should be evicted first")
	require.Equal(t, fmt.Sprintf("turn %d", DefaultCapacity), turns[len(turns)-1].Content)
}

func TestSnapshotIsChronologicalAndDetached(t *testing.T) {
	m := NewManager(5)
	m.AppendUser("s1", "hello")
	m.AppendAssistant("s1", "hi")

	turns := m.Snapshot("s1")
	require.Len(t, turns, 2)
	require.Equal(t, "user", turns[0].Role)
	require.Equal(t, "assistant", turns[1].Role)

	turns[0].Content = "mutated"
	require.Equal(t, "hello", m.Snapshot("s1")[0].Content)
}

func TestResetClearsOnlyThatSession(t *testing.T) {
	m := NewManager(5)
	m.AppendUser("a", "foo")
	m.AppendUser("b", "bar")

	m.Reset("a")
	require.Empty(t, m.Snapshot("a"))
	require.Len(t, m.Snapshot("b"), 1)
}

func TestSessionsDoNotInterleave(t *testing.T) {
	m := NewManager(5)
	m.AppendUser("a", "from a")
	m.AppendUser("b", "from b")

	require.Equal(t, "from a", m.Snapshot("a")[0].Content)
	require.Equal(t, "from b", m.Snapshot("b")[0].Content)
}
