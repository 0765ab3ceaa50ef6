package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outliner/internal/generation"
	"outliner/internal/history"
	"outliner/internal/outline"
)

var _ Store = (*SQLiteStore)(nil)

func testOutline(title string, sections ...string) outline.Outline {
	o := outline.Outline{Title: title, Sections: []outline.Section{}}
	for i, s := range sections {
		o.Sections = append(o.Sections, outline.Section{
			ID:    "section-" + string(rune('0'+i)),
			Level: 1,
			Title: s,
		})
	}
	return o
}

func openStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_CreateAndLoadSession(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	req := generation.Request{Topic: "SEO Basics", OutputType: "outline", Audience: "general", Tone: "friendly"}
	sess := &Session{Request: req, RawContent: "I. Intro", Fallback: false}
	require.NoError(t, store.CreateSession(ctx, sess, history.New(testOutline("SEO Basics", "Intro"))))
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, "SEO Basics", sess.Title)

	got, h, err := store.LoadSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, req, got.Request)
	assert.Equal(t, "I. Intro", got.RawContent)
	assert.Equal(t, 1, got.Entries)
	assert.Equal(t, testOutline("SEO Basics", "Intro"), h.Current())
	assert.False(t, got.CreatedAt.IsZero())
}

func TestSQLiteStore_SaveHistory_SnapshotSync(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	h := history.New(testOutline("A", "one"))
	sess := &Session{ID: "fixed-id"}
	require.NoError(t, store.CreateSession(ctx, sess, h))
	assert.Equal(t, "fixed-id", sess.ID)

	// Three entries, cursor on the last.
	h.Commit(testOutline("B", "one", "two"))
	h.Commit(testOutline("C", "three"))
	require.NoError(t, store.SaveHistory(ctx, sess.ID, h))

	got, loaded, err := store.LoadSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Len())
	assert.Equal(t, 2, loaded.Cursor())
	assert.Equal(t, "C", got.Title)

	// Undo twice then branch: the stored history must shrink to two entries.
	h.Undo()
	h.Undo()
	h.Commit(testOutline("D", "four"))
	require.NoError(t, store.SaveHistory(ctx, sess.ID, h))

	_, loaded, err = store.LoadSession(ctx, sess.ID)
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Len())
	assert.Equal(t, 1, loaded.Cursor())
	assert.Equal(t, "A", loaded.Entries()[0].Title)
	assert.Equal(t, "D", loaded.Current().Title)

	// Reset keeps the entries and persists the cursor only.
	h.ResetToInitial()
	require.NoError(t, store.SaveHistory(ctx, sess.ID, h))
	_, loaded, err = store.LoadSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Len())
	assert.Equal(t, 0, loaded.Cursor())
	assert.True(t, loaded.CanRedo())
}

func TestSQLiteStore_MissingSession(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	_, _, err := store.LoadSession(ctx, "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	err = store.SaveHistory(ctx, "nope", history.New(testOutline("A")))
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSQLiteStore_RejectsInvalidSnapshot(t *testing.T) {
	store := openStore(t)
	bad := outline.Outline{Title: "Bad", Sections: []outline.Section{{ID: "x", Level: 0, Title: "zero"}}}

	err := store.CreateSession(context.Background(), &Session{}, history.New(bad))
	assert.Error(t, err)

	list, err := store.ListSessions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSQLiteStore_ListSessions(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	first := &Session{Request: generation.Request{Topic: "first"}}
	second := &Session{Request: generation.Request{Topic: "second"}, Fallback: true}
	require.NoError(t, store.CreateSession(ctx, first, history.New(testOutline("First", "x"))))
	require.NoError(t, store.CreateSession(ctx, second, history.New(testOutline("Second", "y"))))

	list, err := store.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.True(t, list[0].Fallback)
	assert.Equal(t, "First", list[1].Title)
}
