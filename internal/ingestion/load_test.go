package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\r\nSKILLS\r\nPython   SQL"), 0644))

	doc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe\nSKILLS\nPython SQL", doc.Text)
	assert.Equal(t, FormatText, doc.Metadata.Format)
	assert.Equal(t, path, doc.Metadata.Source)
	assert.Len(t, doc.Metadata.Hash, 64)
	assert.NotEmpty(t, doc.Metadata.Timestamp)
}

func TestLoad_FileNotFound(t *testing.T) {
	doc, err := Load("/nonexistent/resume.txt")

	require.Error(t, err)
	assert.Nil(t, doc)
	assert.Contains(t, err.Error(), "file not found")
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.odt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	_, err := Load(path)

	var unsupported *UnsupportedFormatError
	assert.ErrorAs(t, err, &unsupported)
}

func TestLoad_DOCX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.docx")
	require.NoError(t, os.WriteFile(path, buildDocx(t), 0644))

	doc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe\nSKILLS\nGo & SQL", doc.Text)
	assert.Equal(t, FormatDOCX, doc.Metadata.Format)
}

func TestLoadBytes(t *testing.T) {
	doc, err := LoadBytes("resume.md", []byte("Jane Doe\n"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", doc.Text)

	_, err = LoadBytes("resume.pdf", []byte("nope"))
	var extraction *ExtractionError
	assert.ErrorAs(t, err, &extraction)
}

func TestMetadata_HashTracksContent(t *testing.T) {
	a := NewMetadata("a.txt", FormatText, "Content 1")
	b := NewMetadata("b.txt", FormatText, "Content 1")
	c := NewMetadata("c.txt", FormatText, "Content 2")

	assert.Equal(t, a.Hash, b.Hash)
	assert.NotEqual(t, a.Hash, c.Hash)
	assert.Equal(t, 9, a.Chars)

	data, err := a.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"format": "text"`)
}
