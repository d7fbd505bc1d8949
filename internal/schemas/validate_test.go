package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateExternalScore_Valid(t *testing.T) {
	bodies := []string{
		`{"atsScore": 0}`,
		`{"atsScore": 100}`,
		`{"atsScore": 75, "reasoning": "solid", "strengths": ["a"], "improvements": [], "keywordMatches": ["go"]}`,
		`{"atsScore": 50, "extraField": true}`,
	}

	for _, body := range bodies {
		assert.NoError(t, ValidateExternalScore(body), body)
	}
}

func TestValidateExternalScore_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing atsScore", `{"reasoning": "no score"}`},
		{"above maximum", `{"atsScore": 101}`},
		{"below minimum", `{"atsScore": -1}`},
		{"wrong type", `{"atsScore": "eighty"}`},
		{"strengths not array", `{"atsScore": 50, "strengths": "good"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExternalScore(tt.body)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateExternalScore_Unparseable(t *testing.T) {
	err := ValidateExternalScore("not json")

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestValidationError_MessageListsFields(t *testing.T) {
	err := ValidateExternalScore(`{"atsScore": 200}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "atsScore")
}
