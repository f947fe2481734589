package enrich

import (
	"strings"

	"omniassist/internal/domain"
)

// Rule sets an advisory topic on chunks whose text matches its predicate.
type Rule struct {
	Topic string
	Match func(text string) bool
}

// rules are applied in declared order and a later match overwrites an
// earlier one, so a chunk mentioning a port inside a CLI listing ends up
// tagged cli_command. The order is a contract, not an accident.
var rules = []Rule{
	{
		Topic: "networking",
		Match: func(text string) bool {
			return strings.Contains(strings.ToLower(text), "port")
		},
	},
	{
		Topic: "cli_command",
		Match: func(text string) bool {
			return strings.Contains(text, "get_") ||
				strings.Contains(text, "set_") ||
				strings.Contains(text, "add_")
		},
	},
}

// Apply stamps provenance and topic metadata on a chunk. Enrichment is
// advisory only; it never filters or drops chunks.
func Apply(chunk *domain.Chunk, page domain.SourcePage) {
	chunk.Metadata.SourceFile = page.SourceFile
	chunk.Metadata.Page = page.Page
	for _, r := range rules {
		if r.Match(chunk.Text) {
			chunk.Metadata.Topic = r.Topic
		}
	}
}
