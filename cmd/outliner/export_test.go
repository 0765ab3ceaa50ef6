package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outliner/internal/editor"
	"outliner/internal/outline"
	"outliner/internal/storage"
)

func TestImportSession_RoundTripsExportedJSON(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewSQLiteStore(filepath.Join(dir, "outliner.db"))
	require.NoError(t, err)
	defer store.Close()

	o := outline.Outline{
		Title: "Saved Outline",
		Sections: []outline.Section{
			{ID: "section-0", Level: 1, Title: "Intro", Brief: "Kept in JSON."},
			{ID: "section-1", Level: 2, Title: "Detail"},
		},
	}
	path := filepath.Join(dir, "saved-outline.json")
	require.NoError(t, outline.SaveFile(path, o))

	ctx := context.Background()
	sess, err := importSession(ctx, store, path)
	require.NoError(t, err)
	assert.Equal(t, "Saved Outline", sess.Title)
	assert.Equal(t, "Saved Outline", sess.Request.Topic)

	loaded, h, err := store.LoadSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, o, h.Current())

	ctrl, err := editor.New(h, loaded.RawContent)
	require.NoError(t, err)
	assert.Equal(t, outline.AnnotatedHeading, ctrl.Format())
}

func TestImportSession_RejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewSQLiteStore(filepath.Join(dir, "outliner.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = importSession(context.Background(), store, filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	sessions, err := store.ListSessions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sessions)
}
