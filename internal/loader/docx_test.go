package loader

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDocx(t *testing.T, dir, name, documentXML string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	if documentXML != "" {
		w, err := zw.Create("word/document.xml")
		require.NoError(t, err)
		_, err = w.Write([]byte(documentXML))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

const sampleDocumentXML = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>The service listens on port 8443.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Restart with </w:t></w:r><w:r><w:t>set_mode.</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestDocx(t *testing.T) {
	l := NewDocx()

	t.Run("Should support docx extensions case-insensitively", func(t *testing.T) {
		assert.True(t, l.Supports("Admin Guide.docx"))
		assert.True(t, l.Supports("ADMIN.DOCX"))
		assert.False(t, l.Supports("Admin Guide.pdf"))
	})

	t.Run("Should extract paragraph text as a single page", func(t *testing.T) {
		path := writeDocx(t, t.TempDir(), "Admin Guide.docx", sampleDocumentXML)

		pages, err := l.Load(path)

		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, 1, pages[0].Page)
		assert.Equal(t, "Admin Guide.docx", pages[0].SourceFile)
		assert.Equal(t, "The service listens on port 8443.\nRestart with set_mode.", pages[0].Text)
	})

	t.Run("Should return zero pages for an empty document", func(t *testing.T) {
		empty := `<?xml version="1.0"?><w:document xmlns:w="x"><w:body></w:body></w:document>`
		path := writeDocx(t, t.TempDir(), "Empty.docx", empty)

		pages, err := l.Load(path)

		require.NoError(t, err)
		assert.Empty(t, pages)
	})

	t.Run("Should fail when the document entry is missing", func(t *testing.T) {
		path := writeDocx(t, t.TempDir(), "Broken.docx", "")

		_, err := l.Load(path)

		assert.Error(t, err)
	})

	t.Run("Should fail for files that are not zip containers", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "NotAZip.docx")
		require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))

		_, err := l.Load(path)

		assert.Error(t, err)
	})
}

func TestFor(t *testing.T) {
	t.Run("Should route paths to the first supporting loader", func(t *testing.T) {
		loaders := Default()

		l, ok := For(loaders, "guide.pdf")
		require.True(t, ok)
		assert.IsType(t, &PDF{}, l)

		l, ok = For(loaders, "guide.docx")
		require.True(t, ok)
		assert.IsType(t, &Docx{}, l)

		_, ok = For(loaders, "guide.txt")
		assert.False(t, ok)
	})
}
