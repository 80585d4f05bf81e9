package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmallari/gofer/internal/orchestrator/models"
)

func TestMemory_AppendAndRead(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()

	err := m.Append(ctx, "s1", []models.Message{
		{Role: models.RoleUser, Content: "hello"},
		{Role: models.RoleAgent, Content: "hi there"},
	})
	require.NoError(t, err)

	msgs, err := m.Read(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, models.RoleUser, msgs[0].Role)
	assert.Equal(t, "hi there", msgs[1].Content)
}

func TestMemory_ReadUnknownSessionIsEmpty(t *testing.T) {
	t.Parallel()

	m := NewMemory()

	msgs, err := m.Read(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestMemory_AppendIsAppendOnly(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Append(ctx, "s1", []models.Message{{Role: models.RoleUser, Content: "first"}}))
	require.NoError(t, m.Append(ctx, "s1", []models.Message{{Role: models.RoleAgent, Content: "second"}}))

	msgs, err := m.Read(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Content)
	assert.Equal(t, "second", msgs[1].Content)
}

func TestMemory_ListSessionsMostRecentFirst(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Append(ctx, "a", []models.Message{{Role: models.RoleUser, Content: "x"}}))
	require.NoError(t, m.Append(ctx, "b", []models.Message{{Role: models.RoleUser, Content: "x"}}))
	require.NoError(t, m.Append(ctx, "a", []models.Message{{Role: models.RoleUser, Content: "y"}}))

	ids, err := m.ListSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestMemory_ListSessionsIsIdempotent(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Append(ctx, "a", []models.Message{{Role: models.RoleUser, Content: "x"}}))
	require.NoError(t, m.Append(ctx, "b", []models.Message{{Role: models.RoleUser, Content: "x"}}))

	first, err := m.ListSessions(ctx)
	require.NoError(t, err)
	second, err := m.ListSessions(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, second, 2)
}

func TestMemory_ReadReturnsCopy(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Append(ctx, "s1", []models.Message{{Role: models.RoleUser, Content: "original"}}))

	msgs, err := m.Read(ctx, "s1")
	require.NoError(t, err)
	msgs[0].Content = "mutated"

	again, err := m.Read(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].Content)
}
