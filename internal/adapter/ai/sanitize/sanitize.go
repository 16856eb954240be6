// Package sanitize extracts strict JSON from raw model completions. Models
// wrap JSON in markdown fences and prose, emit control characters inside
// string values, and occasionally truncate mid-object; this package peels all
// of that off before decoding.
package sanitize

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/personapath/api/internal/domain/ai"
)

// ExtractJSON returns the JSON object embedded in raw model output. It strips
// markdown code fences and surrounding prose, removes control characters, and
// truncates to the last balanced closing brace when the tail is garbage.
func ExtractJSON(raw string) string {
	s := stripFences(raw)
	s = stripControlChars(s)

	start := strings.IndexByte(s, '{')
	if start < 0 {
		return strings.TrimSpace(s)
	}
	s = s[start:]

	if end := lastBalancedBrace(s); end > 0 {
		s = s[:end+1]
	}
	return strings.TrimSpace(s)
}

// Decode extracts and decodes JSON from raw model output into v. On strict
// decode failure it attempts a jsonrepair pass before giving up with
// ai.ErrMalformedResponse.
func Decode(raw string, v any) error {
	extracted := ExtractJSON(raw)
	if extracted == "" {
		return fmt.Errorf("%w: no JSON object in response", ai.ErrMalformedResponse)
	}

	strictErr := json.Unmarshal([]byte(extracted), v)
	if strictErr == nil {
		return nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(extracted)
	if repairErr != nil {
		return fmt.Errorf("%w: %v (repair failed: %v)", ai.ErrMalformedResponse, strictErr, repairErr)
	}
	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		return fmt.Errorf("%w: %v", ai.ErrMalformedResponse, err)
	}
	return nil
}

// stripFences removes markdown code fences, keeping only the fenced body when
// one exists. Handles both ```json and bare ``` fences.
func stripFences(s string) string {
	if idx := strings.Index(s, "```json"); idx >= 0 {
		s = s[idx+len("```json"):]
	} else if idx := strings.Index(s, "```"); idx >= 0 {
		s = s[idx+len("```"):]
	} else {
		return s
	}
	if end := strings.LastIndex(s, "```"); end >= 0 {
		s = s[:end]
	}
	return s
}

// stripControlChars removes ASCII control characters other than newline and
// tab, which break strict JSON decoding when the model leaks them into
// string values.
func stripControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

// lastBalancedBrace returns the index of the last '}' at which the object
// opened by s[0] is balanced, tracking string literals and escapes. Returns
// -1 if the object never closes.
func lastBalancedBrace(s string) int {
	depth := 0
	inString := false
	escaped := false
	last := -1

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				last = i
			}
		}
	}
	return last
}
