package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParsedResume(t *testing.T) {
	parsed := NewParsedResume("raw body")

	assert.Equal(t, "raw body", parsed.RawText)
	assert.True(t, parsed.IsEmpty())

	// List fields marshal as [] rather than null
	data, err := json.Marshal(parsed)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"skills":[]`)
	assert.Contains(t, string(data), `"experience":[]`)
	assert.Contains(t, string(data), `"education":[]`)
	assert.NotContains(t, string(data), "null")
}

func TestContactEmpty(t *testing.T) {
	assert.True(t, Contact{}.Empty())
	assert.False(t, Contact{Email: "a@b.io"}.Empty())
	assert.False(t, Contact{Phone: "555"}.Empty())
	assert.False(t, Contact{LinkedIn: "linkedin.com/in/x"}.Empty())
	assert.False(t, Contact{GitHub: "github.com/x"}.Empty())
}

func TestParsedResumeIsEmpty(t *testing.T) {
	parsed := NewParsedResume("text")
	assert.True(t, parsed.IsEmpty())

	parsed.Skills = append(parsed.Skills, "Go")
	assert.False(t, parsed.IsEmpty())
}

func TestParsedResumeJSONFieldNames(t *testing.T) {
	parsed := NewParsedResume("body")
	parsed.Contact.Email = "a@b.io"

	data, err := json.Marshal(parsed)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	for _, key := range []string{"rawText", "contact", "summary", "skills", "experience", "education", "projects", "achievements"} {
		assert.Contains(t, m, key)
	}
}
