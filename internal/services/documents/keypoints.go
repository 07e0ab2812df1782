package documents

import (
	"strings"
	"unicode"
)

const maxKeyPoints = 20

var bulletPrefixes = []string{"•", "-", "●", "○", "►", "*"}

// ExtractKeyPoints pulls candidate key points out of document text: bullet
// lines and short declarative statements between 5 and 50 words.
func ExtractKeyPoints(text string) []string {
	var keyPoints []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		wordCount := len(strings.Fields(line))
		if wordCount < 5 || wordCount > 50 {
			continue
		}

		if hasBulletPrefix(line) {
			keyPoints = append(keyPoints, line)
		} else if startsUpper(line) && !strings.HasSuffix(line, ":") {
			keyPoints = append(keyPoints, line)
		}

		if len(keyPoints) >= maxKeyPoints {
			break
		}
	}

	return keyPoints
}

func hasBulletPrefix(line string) bool {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func startsUpper(line string) bool {
	for _, r := range line {
		return unicode.IsUpper(r)
	}
	return false
}
