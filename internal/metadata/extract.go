package metadata

import (
	"strings"
	"unicode/utf8"
)

const (
	// DefaultDescription is used when a script's header yields no description.
	DefaultDescription = "No description available"
	// DecodeFailureDescription replaces the description for scripts that are
	// not valid UTF-8.
	DecodeFailureDescription = "Unable to decode file for description"

	defaultOSLabel = "Linux"
)

// osPrefixes mark comment lines as OS declarations rather than descriptions.
// Matched case-insensitively against the comment text.
var osPrefixes = []string{"supports:", "supported os:", "os:", "platform:", "platforms:"}

type scanState int

const (
	stateScanning scanState = iota
	stateDocstring
)

// Extract scans a script's leading lines and returns its description and
// supported OS labels. Blank lines and shebangs are skipped, comment and
// docstring lines are consumed, and the first other line stops the scan. The
// first captured description wins; OS labels accumulate across all consumed
// lines, deduplicated in first-seen order.
func Extract(content []byte) (description string, supportedOS []string) {
	if !utf8.Valid(content) {
		return DecodeFailureDescription, defaultOS()
	}

	var (
		candidates []string
		state      = stateScanning
		delim      string
	)

	for _, raw := range strings.Split(string(content), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#!") {
			continue
		}

		if state == stateDocstring {
			if strings.HasSuffix(line, delim) {
				inner := strings.TrimSpace(strings.TrimSuffix(line, delim))
				if inner != "" && description == "" {
					description = inner
				}
				state = stateScanning
				continue
			}
			if description == "" {
				description = line
			}
			continue
		}

		commentText, isComment := commentBody(line)
		if isComment {
			labels, declared := parseOSDeclaration(commentText)
			if declared {
				candidates = append(candidates, labels...)
			} else if commentText != "" && description == "" {
				description = commentText
			}
			continue
		}

		if strings.HasPrefix(line, `"""`) || strings.HasPrefix(line, "'''") {
			delim = line[:3]
			remainder := strings.TrimSpace(line[3:])
			// A one-line docstring ends the scan.
			if strings.HasSuffix(remainder, delim) && len(remainder) > 3 {
				inner := strings.TrimSpace(strings.TrimSuffix(remainder, delim))
				if inner != "" && description == "" {
					description = inner
				}
				break
			}
			if remainder != "" && description == "" {
				description = remainder
			}
			if strings.Count(line, delim) >= 2 {
				break
			}
			state = stateDocstring
			continue
		}

		break
	}

	if description == "" {
		description = DefaultDescription
	}
	supportedOS = dedupeLabels(candidates)
	if len(supportedOS) == 0 {
		supportedOS = defaultOS()
	}
	return description, supportedOS
}

// commentBody strips the comment marker run and surrounding whitespace,
// reporting whether the line was a comment at all.
func commentBody(line string) (string, bool) {
	switch {
	case strings.HasPrefix(line, "#"):
		return strings.TrimSpace(strings.TrimLeft(line, "#")), true
	case strings.HasPrefix(line, "//"):
		return strings.TrimSpace(strings.TrimLeft(line, "/")), true
	}
	return "", false
}

// parseOSDeclaration matches comment text against the OS declaration
// prefixes. It reports whether the text carried a declaration, even when no
// valid labels followed it; such lines never become descriptions.
func parseOSDeclaration(text string) (labels []string, declared bool) {
	lower := strings.ToLower(text)
	for _, prefix := range osPrefixes {
		if !strings.HasPrefix(lower, prefix) {
			continue
		}
		for _, part := range strings.Split(text[len(prefix):], ",") {
			if normalized := NormalizeOSLabel(part); normalized != "" {
				labels = append(labels, normalized)
			}
		}
		return labels, true
	}
	return nil, false
}

func defaultOS() []string {
	return []string{defaultOSLabel}
}
