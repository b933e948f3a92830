package service

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/gracechapel/api/internal/db"
	"github.com/gracechapel/api/internal/storage"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// pngBytes carries a real PNG signature so magic-number validation passes.
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), []byte("fake image payload")...)

// mp3Bytes sniffs as audio/mpeg via the ID3 header.
var mp3Bytes = append([]byte("ID3"), bytes.Repeat([]byte{0x01}, 64)...)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)

	// One connection: each in-memory SQLite connection is its own database
	database.SetMaxOpenConns(1)

	err = db.RunMigrations(database.DB, "sqlite")
	require.NoError(t, err)

	t.Cleanup(func() { _ = database.Close() })
	return database
}

func newTestAttachments(t *testing.T) (*AttachmentService, *storage.LocalStorage) {
	t.Helper()

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	return NewAttachmentService(store), store
}

// makeUpload builds an Upload the way a parsed multipart request would.
func makeUpload(t *testing.T, filename string, content []byte) *Upload {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)

	header := form.File["file"][0]
	file, err := header.Open()
	require.NoError(t, err)
	t.Cleanup(func() { _ = file.Close() })

	return &Upload{File: file, Header: header}
}

func sPtr(s string) *string {
	return &s
}

func bPtr(b bool) *bool {
	return &b
}
