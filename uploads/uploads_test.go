package uploads_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ELWAANY111/Verto-Store55/uploads"
)

type fakeFile struct {
	name        string
	contentType string
	size        int
}

// buildFileHeaders assembles real multipart.FileHeader values by encoding
// and re-parsing a multipart form, the same shape echo hands to handlers.
func buildFileHeaders(t *testing.T, files []fakeFile) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename="%s"`, f.name))
		header.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(bytes.Repeat([]byte("x"), f.size))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["images"]
}

func TestStore_SaveAcceptedImages(t *testing.T) {
	store, err := uploads.NewStore(t.TempDir())
	require.NoError(t, err)

	files := buildFileHeaders(t, []fakeFile{
		{name: "front.jpg", contentType: "image/jpeg", size: 128},
		{name: "back.PNG", contentType: "image/png", size: 256},
	})

	paths, err := store.Save(files)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	assert.True(t, strings.HasPrefix(paths[0], "/uploads/"))
	assert.True(t, strings.HasSuffix(paths[0], ".jpg"))
	assert.True(t, strings.HasSuffix(paths[1], ".png"), "extension should be lowercased")

	for _, p := range paths {
		onDisk := filepath.Join(store.Dir(), filepath.Base(p))
		info, err := os.Stat(onDisk)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestStore_RejectsSixthFile(t *testing.T) {
	store, err := uploads.NewStore(t.TempDir())
	require.NoError(t, err)

	var files []fakeFile
	for i := 0; i < 6; i++ {
		files = append(files, fakeFile{name: fmt.Sprintf("img%d.jpg", i), contentType: "image/jpeg", size: 16})
	}

	_, err = store.Save(buildFileHeaders(t, files))
	assert.ErrorIs(t, err, uploads.ErrTooManyFiles)
	assertDirEmpty(t, store.Dir())
}

func TestStore_RejectsOversizedFile(t *testing.T) {
	store, err := uploads.NewStore(t.TempDir())
	require.NoError(t, err)

	files := buildFileHeaders(t, []fakeFile{
		{name: "ok.jpg", contentType: "image/jpeg", size: 16},
		{name: "big.jpg", contentType: "image/jpeg", size: uploads.MaxFileSize + 1},
	})

	_, err = store.Save(files)
	assert.ErrorIs(t, err, uploads.ErrFileTooLarge)
	assertDirEmpty(t, store.Dir())
}

func TestStore_RejectsWrongMIMEType(t *testing.T) {
	store, err := uploads.NewStore(t.TempDir())
	require.NoError(t, err)

	files := buildFileHeaders(t, []fakeFile{
		{name: "notes.pdf", contentType: "application/pdf", size: 16},
	})

	_, err = store.Save(files)
	assert.ErrorIs(t, err, uploads.ErrUnsupportedType)
	assertDirEmpty(t, store.Dir())
}

func TestStore_Remove(t *testing.T) {
	store, err := uploads.NewStore(t.TempDir())
	require.NoError(t, err)

	paths, err := store.Save(buildFileHeaders(t, []fakeFile{
		{name: "a.png", contentType: "image/png", size: 8},
	}))
	require.NoError(t, err)

	require.NoError(t, store.Remove(paths[0]))
	assertDirEmpty(t, store.Dir())

	assert.Error(t, store.Remove(paths[0]), "removing twice should report the missing file")
}

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no files should be left in %s", dir)
}
