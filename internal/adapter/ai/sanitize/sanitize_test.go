package sanitize

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personapath/api/internal/domain/ai"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain object",
			raw:  `{"a": 1}`,
			want: `{"a": 1}`,
		},
		{
			name: "json fence",
			raw:  "```json\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "bare fence",
			raw:  "```\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "surrounding prose",
			raw:  "Here is the plan you asked for:\n{\"a\": 1}\nLet me know if you need changes.",
			want: `{"a": 1}`,
		},
		{
			name: "prose and fence",
			raw:  "Sure! Here you go:\n```json\n{\"a\": {\"b\": 2}}\n```\nHope this helps.",
			want: `{"a": {"b": 2}}`,
		},
		{
			name: "trailing garbage after balanced object",
			raw:  `{"a": 1}}}`,
			want: `{"a": 1}`,
		},
		{
			name: "braces inside string values",
			raw:  `{"text": "a } tricky { value"}`,
			want: `{"text": "a } tricky { value"}`,
		},
		{
			name: "control characters stripped",
			raw:  "{\"a\": \"x\x01y\"}",
			want: `{"a": "xy"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSON(tt.raw))
		})
	}
}

func TestDecode_FencedProseWrapped(t *testing.T) {
	raw := "Of course! Here is the JSON:\n```json\n{\"name\": \"analytical\", \"confidence\": 0.9}\n```"

	var out struct {
		Name       string  `json:"name"`
		Confidence float64 `json:"confidence"`
	}
	require.NoError(t, Decode(raw, &out))
	assert.Equal(t, "analytical", out.Name)
	assert.InDelta(t, 0.9, out.Confidence, 1e-9)
}

func TestDecode_RepairsTrailingComma(t *testing.T) {
	raw := `{"items": ["a", "b",], "n": 2,}`

	var out struct {
		Items []string `json:"items"`
		N     int      `json:"n"`
	}
	require.NoError(t, Decode(raw, &out))
	assert.Equal(t, []string{"a", "b"}, out.Items)
	assert.Equal(t, 2, out.N)
}

func TestDecode_TruncatedOutput(t *testing.T) {
	// A completion cut off mid-array: the last balanced brace closes the
	// first card, leaving a decodable prefix for repair.
	raw := `{"cards": [{"date": "2024-03-01"}, {"date": "2024-03-`

	var out map[string]any
	err := Decode(raw, &out)
	// Either repair salvages a partial object or we get a typed failure;
	// what must never happen is a silent zero-value success.
	if err != nil {
		assert.ErrorIs(t, err, ai.ErrMalformedResponse)
	} else {
		assert.Contains(t, out, "cards")
	}
}

func TestDecode_NoJSON(t *testing.T) {
	var out map[string]any
	err := Decode("I could not generate a plan for that persona.", &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ai.ErrMalformedResponse))
}
