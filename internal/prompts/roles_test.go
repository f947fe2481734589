package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForRole(t *testing.T) {
	t.Run("Should select the support template regardless of case", func(t *testing.T) {
		for _, role := range []string{"support", "Support", "SUPPORT", " support "} {
			assert.Equal(t, Support, ForRole(role), role)
		}
	})

	t.Run("Should fall back to the learner template for anything else", func(t *testing.T) {
		for _, role := range []string{"", "learner", "manager", "unknown"} {
			assert.Equal(t, Learner, ForRole(role), role)
		}
	})
}

func TestTemplate_Fill(t *testing.T) {
	t.Run("Should substitute context and input placeholders", func(t *testing.T) {
		system, user := Support.Fill("chunk one\n\nchunk two", "What port does the service use?")

		assert.Contains(t, system, "chunk one\n\nchunk two")
		assert.NotContains(t, system, "{context}")
		assert.Equal(t, "What port does the service use?", user)
	})

	t.Run("Should keep the prompt intact with empty context", func(t *testing.T) {
		system, _ := Learner.Fill("", "hello")

		assert.Contains(t, system, "Context:")
		assert.NotContains(t, system, "{context}")
	})
}
