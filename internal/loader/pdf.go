package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"omniassist/internal/domain"
)

// PDF loads PDF files page by page.
type PDF struct{}

func NewPDF() *PDF { return &PDF{} }

func (l *PDF) Supports(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}

// Load extracts the plain text of every page. Pages that yield no text are
// skipped; a file whose pages all come back empty produces zero records.
func (l *PDF) Load(path string) ([]domain.SourcePage, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	name := filepath.Base(path)
	var pages []domain.SourcePage
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extract pdf %s page %d: %w", path, i, err)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, domain.SourcePage{
			Text:       text,
			Page:       i,
			SourceFile: name,
		})
	}
	return pages, nil
}
