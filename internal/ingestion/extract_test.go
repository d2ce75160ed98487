package ingestion

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
	`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>` +
	`<w:p><w:r><w:t>SKILLS</w:t></w:r></w:p>` +
	`<w:p><w:r><w:t>Go &amp; SQL</w:t></w:r></w:p>` +
	`</w:body></w:document>`

const testRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

func buildDocx(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range map[string]string{
		"word/document.xml":            testDocumentXML,
		"word/_rels/document.xml.rels": testRelsXML,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDocumentFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"resume.pdf", FormatPDF, false},
		{"Resume.PDF", FormatPDF, false},
		{"resume.docx", FormatDOCX, false},
		{"resume.doc", "", true},
		{"resume.txt", "", true},
		{"resume", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DocumentFormat(tt.name)
			if tt.wantErr {
				var unsupported *UnsupportedFormatError
				require.ErrorAs(t, err, &unsupported)
				assert.Equal(t, tt.name, unsupported.Path)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.rtf")
	require.NoError(t, os.WriteFile(path, []byte("text"), 0644))

	_, err := ExtractText(path)

	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ".rtf", unsupported.Extension)
}

func TestExtractText_MalformedPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a pdf"), 0644))

	text, err := ExtractText(path)

	var extraction *ExtractionError
	require.ErrorAs(t, err, &extraction)
	assert.Equal(t, path, extraction.Path)
	assert.Empty(t, text)
}

func TestExtractText_MissingFile(t *testing.T) {
	_, err := ExtractText(filepath.Join(t.TempDir(), "missing.docx"))

	var extraction *ExtractionError
	require.ErrorAs(t, err, &extraction)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestExtractBytes_MalformedDOCX(t *testing.T) {
	_, err := ExtractBytes("resume.docx", []byte("not a zip archive"))

	var extraction *ExtractionError
	require.ErrorAs(t, err, &extraction)
	assert.Contains(t, extraction.Message, "docx")
}

func TestExtractBytes_DOCX(t *testing.T) {
	text, err := ExtractBytes("resume.docx", buildDocx(t))
	require.NoError(t, err)

	assert.Contains(t, text, "Jane Doe\n")
	assert.Contains(t, text, "SKILLS\n")
	assert.Contains(t, text, "Go & SQL")
}

func TestDocxText(t *testing.T) {
	xml := `<w:p><w:r><w:t>Name</w:t><w:tab/><w:t>Role</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Line one</w:t><w:br/><w:t>Line two</w:t></w:r></w:p>`

	assert.Equal(t, "Name Role\nLine one\nLine two\n", docxText(xml))
}
