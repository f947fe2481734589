package loader

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"omniassist/internal/domain"
)

// Docx loads DOCX files by reading word/document.xml from the zip container.
// The whole document is produced as a single page record.
type Docx struct{}

func NewDocx() *Docx { return &Docx{} }

func (l *Docx) Supports(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".docx")
}

func (l *Docx) Load(path string) ([]domain.SourcePage, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open docx %s: %w", path, err)
	}
	defer r.Close()

	text, err := extractDocumentText(&r.Reader)
	if err != nil {
		return nil, fmt.Errorf("extract docx %s: %w", path, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	return []domain.SourcePage{{
		Text:       text,
		Page:       1,
		SourceFile: filepath.Base(path),
	}}, nil
}

// documentXML mirrors the paragraph/run/text nesting of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []struct {
			Runs []struct {
				Text []struct {
					Content string `xml:",chardata"`
				} `xml:"t"`
			} `xml:"r"`
		} `xml:"p"`
	} `xml:"body"`
}

func extractDocumentText(r *zip.Reader) (string, error) {
	for _, file := range r.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", err
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		var doc documentXML
		if err := xml.Unmarshal(data, &doc); err != nil {
			return "", err
		}
		var b strings.Builder
		for i, para := range doc.Body.Paragraphs {
			if i > 0 {
				b.WriteString("\n")
			}
			for _, run := range para.Runs {
				for _, t := range run.Text {
					b.WriteString(t.Content)
				}
			}
		}
		return b.String(), nil
	}
	return "", fmt.Errorf("no word/document.xml entry")
}
