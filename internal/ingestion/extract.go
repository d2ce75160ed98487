package ingestion

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/jonathan/resume-advisor/internal/logger"
)

// Format is a supported document format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatText Format = "text"
)

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br[^>]*/>|<w:tab[^>]*/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

// DocumentFormat maps a file name to its document format by extension.
// Only PDF and DOCX are document formats.
func DocumentFormat(name string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	default:
		return "", &UnsupportedFormatError{Path: name, Extension: ext}
	}
}

// ExtractText reads a PDF or DOCX file and returns its plain text.
func ExtractText(path string) (string, error) {
	format, err := DocumentFormat(path)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to read file", Cause: err}
	}
	return extract(path, format, data)
}

// ExtractBytes extracts text from an in-memory upload. The name is only used
// to pick the format.
func ExtractBytes(name string, data []byte) (string, error) {
	format, err := DocumentFormat(name)
	if err != nil {
		return "", err
	}
	return extract(name, format, data)
}

func extract(name string, format Format, data []byte) (string, error) {
	logger.Debug().Str("file", name).Str("format", string(format)).Int("bytes", len(data)).Msg("extracting document text")

	var (
		text string
		err  error
	)
	switch format {
	case FormatPDF:
		text, err = extractPDF(data)
	case FormatDOCX:
		text, err = extractDOCX(data)
	}
	if err != nil {
		logger.Warn().Err(err).Str("file", name).Msg("document extraction failed")
		return "", &ExtractionError{Path: name, Message: fmt.Sprintf("malformed %s document", format), Cause: err}
	}
	return text, nil
}

// extractPDF reads the PDF page by page; the pdf library panics on some
// malformed inputs so panics are converted to errors.
func extractPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer func() { _ = doc.Close() }()

	return docxText(doc.Editable().GetContent()), nil
}

// docxText turns WordprocessingML into plain text with one line per paragraph.
func docxText(content string) string {
	content = docxParagraphEnd.ReplaceAllStringFunc(content, func(tag string) string {
		if strings.HasPrefix(tag, "<w:tab") {
			return " "
		}
		return "\n"
	})
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}
