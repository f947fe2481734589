package strategy

import (
	"strings"

	"omniassist/internal/domain"
)

// Category names reported in ingestion progress output.
const (
	CategoryCLIReference    = "cli_reference"
	CategoryEventsReference = "events_reference"
	CategorySecurity        = "security_guide"
	CategoryInstall         = "installation_guide"
	CategoryAdmin           = "admin_guide"
	CategoryProductGuide    = "product_guide"
	CategoryDefault         = "default"
)

type rule struct {
	category string
	match    func(name string) bool
	policy   domain.ChunkPolicy
}

// rules is evaluated top to bottom; the first match wins. The order is a
// contract: a filename matching several categories (e.g. an admin security
// guide) always resolves to the earliest rule.
var rules = []rule{
	{
		category: CategoryCLIReference,
		match:    contains("cli reference"),
		policy: domain.ChunkPolicy{
			TargetSize: 600,
			Overlap:    50,
			Separators: []string{"\n\n\n", "\n\n", "\nget_", "\nset_", "\nadd_", "\n"},
		},
	},
	{
		category: CategoryEventsReference,
		match:    contains("events reference"),
		policy: domain.ChunkPolicy{
			TargetSize: 500,
			Overlap:    100,
			Separators: []string{"\n\n\n", "\nTable ", "\n\n", "\n"},
		},
	},
	{
		category: CategorySecurity,
		match:    contains("security"),
		policy: domain.ChunkPolicy{
			TargetSize: 800,
			Overlap:    150,
			Separators: []string{"\n\n\n", "\nTable ", "\n## ", "\n\n"},
		},
	},
	{
		category: CategoryInstall,
		match:    containsAny("install", "deploy"),
		policy: domain.ChunkPolicy{
			TargetSize: 1000,
			Overlap:    200,
			Separators: []string{"\nChapter ", "\n## ", "\nStep ", "\n\n", "\n"},
		},
	},
	{
		category: CategoryAdmin,
		match:    contains("admin"),
		policy: domain.ChunkPolicy{
			TargetSize: 1200,
			Overlap:    200,
			Separators: []string{"\nChapter ", "\n## ", "\nNOTE:", "\n\n"},
		},
	},
	{
		category: CategoryProductGuide,
		match:    contains("product guide"),
		policy: domain.ChunkPolicy{
			TargetSize: 900,
			Overlap:    250,
			Separators: []string{"\n\n\n", "\n## ", "\n\n"},
		},
	},
}

// defaultPolicy applies when no category rule matches the filename.
var defaultPolicy = domain.ChunkPolicy{
	TargetSize: 1000,
	Overlap:    200,
	Separators: []string{"\n\n", "\n", " "},
}

// Select returns the chunking policy for a filename together with the name of
// the category that selected it. Matching is case-insensitive substring
// membership on the bare filename.
func Select(filename string) (string, domain.ChunkPolicy) {
	name := strings.ToLower(filename)
	for _, r := range rules {
		if r.match(name) {
			return r.category, r.policy
		}
	}
	return CategoryDefault, defaultPolicy
}

func contains(sub string) func(string) bool {
	return func(name string) bool { return strings.Contains(name, sub) }
}

func containsAny(subs ...string) func(string) bool {
	return func(name string) bool {
		for _, sub := range subs {
			if strings.Contains(name, sub) {
				return true
			}
		}
		return false
	}
}
