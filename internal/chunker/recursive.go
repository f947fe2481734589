package chunker

import (
	"strings"

	"omniassist/internal/domain"
)

// RecursiveSplitter splits page text into chunks according to a ChunkPolicy.
//
// Separators are tried in policy order: the text is split on the first
// separator, any piece still longer than TargetSize is re-split with the next
// separator, and a piece that survives every separator is hard-cut into
// windows of TargetSize advancing by TargetSize-Overlap. Separator text stays
// attached to the start of the piece that follows it, so every chunk is a
// verbatim run of the source text and overlap between adjacent chunks is a
// literal shared substring.
type RecursiveSplitter struct{}

func NewRecursiveSplitter() *RecursiveSplitter { return &RecursiveSplitter{} }

// piece is one separator-delimited unit. Hard-cut windows are marked atomic:
// they already have window-level overlap and must not be merged further.
type piece struct {
	text   string
	atomic bool
}

// Split returns the chunk texts for one page. The output is deterministic,
// in document order, and contains no empty chunks.
func (s *RecursiveSplitter) Split(text string, policy domain.ChunkPolicy) []string {
	if policy.TargetSize <= 0 {
		policy.TargetSize = 1000
	}
	if policy.Overlap < 0 || policy.Overlap >= policy.TargetSize {
		policy.Overlap = policy.TargetSize / 4
	}
	return merge(split(text, policy.Separators, policy), policy)
}

func split(text string, seps []string, policy domain.ChunkPolicy) []piece {
	if text == "" {
		return nil
	}
	if len(text) <= policy.TargetSize {
		return []piece{{text: text}}
	}
	if len(seps) == 0 {
		var out []piece
		for _, w := range hardCut(text, policy.TargetSize, policy.Overlap) {
			out = append(out, piece{text: w, atomic: true})
		}
		return out
	}
	parts := strings.Split(text, seps[0])
	// Keep the separator attached to the piece it introduced.
	for i := 1; i < len(parts); i++ {
		parts[i] = seps[0] + parts[i]
	}
	var out []piece
	for _, part := range parts {
		if part == "" {
			continue
		}
		if len(part) <= policy.TargetSize {
			out = append(out, piece{text: part})
			continue
		}
		out = append(out, split(part, seps[1:], policy)...)
	}
	return out
}

// merge joins adjacent pieces into chunks of at most TargetSize characters,
// carrying up to Overlap characters of whole trailing pieces into the next
// chunk. Pieces concatenate back to the source text, so the carried tail is a
// shared substring of both chunks. Atomic windows are emitted as-is.
func merge(pieces []piece, policy domain.ChunkPolicy) []string {
	var chunks []string
	var cur []string
	total := 0
	emit := func() {
		if total > 0 {
			chunks = append(chunks, strings.Join(cur, ""))
		}
	}
	carry := func(next int) {
		for total > policy.Overlap || (total > 0 && total+next > policy.TargetSize) {
			total -= len(cur[0])
			cur = cur[1:]
		}
	}
	for _, p := range pieces {
		if p.atomic {
			emit()
			cur, total = nil, 0
			chunks = append(chunks, p.text)
			continue
		}
		if total+len(p.text) > policy.TargetSize {
			emit()
			carry(len(p.text))
		}
		cur = append(cur, p.text)
		total += len(p.text)
	}
	emit()
	return chunks
}

// hardCut emits windows of size characters advancing by size-overlap, so
// adjacent windows share exactly overlap characters.
func hardCut(text string, size, overlap int) []string {
	stride := size - overlap
	if stride <= 0 {
		stride = size
	}
	var out []string
	for start := 0; start < len(text); start += stride {
		end := start + size
		if end > len(text) {
			end = len(text)
		}
		out = append(out, text[start:end])
	}
	return out
}
