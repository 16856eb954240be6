package roadmap

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	stepPrefix  = regexp.MustCompile(`^\d+\.`)
	controlChar = regexp.MustCompile("[\x00-\x09\x0b\x0c\x0e-\x1f\x7f]")
)

// FormatPractice normalizes a practice description into a numbered list with
// one step per line. The model is instructed to emit "1. ...\n2. ..." but
// sometimes wraps steps mid-line or skips numbering entirely.
func FormatPractice(practice string) string {
	practice = strings.ReplaceAll(practice, "\r\n", "\n")
	practice = strings.ReplaceAll(practice, "\r", "\n")
	practice = controlChar.ReplaceAllString(practice, "")

	var lines []string
	for _, line := range strings.Split(practice, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		return ""
	}

	hasNumbering := false
	for _, line := range lines {
		if stepPrefix.MatchString(line) {
			hasNumbering = true
			break
		}
	}

	var steps []string
	if hasNumbering {
		// Merge continuation lines into their numbered step.
		var current string
		for _, line := range lines {
			if stepPrefix.MatchString(line) {
				if current != "" {
					steps = append(steps, current)
				}
				current = line
			} else if current != "" {
				current += " " + line
			} else {
				current = line
			}
		}
		steps = append(steps, current)
	} else {
		// No numbering anywhere: each line is its own step.
		steps = lines
	}

	// Number any step that lost its prefix.
	counter := 1
	for i, step := range steps {
		if stepPrefix.MatchString(step) {
			counter++
			continue
		}
		steps[i] = fmt.Sprintf("%d. %s", counter, step)
		counter++
	}

	return strings.Join(steps, "\n")
}
