// Package loader extracts page records from corpus files. Each loader handles
// one file format; files with no matching loader are skipped by the caller.
package loader

import "omniassist/internal/domain"

// Default returns the loaders for the supported corpus formats.
func Default() []domain.Loader {
	return []domain.Loader{NewPDF(), NewDocx()}
}

// For returns the first loader that supports the given path.
func For(loaders []domain.Loader, path string) (domain.Loader, bool) {
	for _, l := range loaders {
		if l.Supports(path) {
			return l, true
		}
	}
	return nil, false
}
