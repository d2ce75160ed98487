package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Document is cleaned resume text plus its metadata.
type Document struct {
	Text     string
	Metadata *Metadata
}

// Load reads a resume from disk. PDF and DOCX go through ExtractText;
// .txt and .md files are read as plain text.
func Load(path string) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".txt" || ext == ".md" {
		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("file not found: %w", err)
			}
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		return newDocument(path, FormatText, string(content)), nil
	}

	format, err := DocumentFormat(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	raw, err := ExtractText(path)
	if err != nil {
		return nil, err
	}
	return newDocument(path, format, raw), nil
}

// LoadBytes is Load for an upload already held in memory.
func LoadBytes(name string, data []byte) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".txt" || ext == ".md" {
		return newDocument(name, FormatText, string(data)), nil
	}
	format, err := DocumentFormat(name)
	if err != nil {
		return nil, err
	}
	raw, err := ExtractBytes(name, data)
	if err != nil {
		return nil, err
	}
	return newDocument(name, format, raw), nil
}

func newDocument(source string, format Format, raw string) *Document {
	text := CleanText(raw)
	return &Document{Text: text, Metadata: NewMetadata(source, format, text)}
}
