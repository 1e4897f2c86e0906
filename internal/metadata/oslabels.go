package metadata

import "strings"

// osAliases maps lowercase spellings to canonical OS labels.
var osAliases = map[string]string{
	"linux":     "Linux",
	"gnu/linux": "Linux",
	"openwrt":   "OpenWrt",
	"open-wrt":  "OpenWrt",
	"lede":      "OpenWrt",
	"mac":       "macOS",
	"macos":     "macOS",
	"osx":       "macOS",
	"darwin":    "macOS",
	"windows":   "Windows",
	"win":       "Windows",
}

// NormalizeOSLabel canonicalizes an operating system label. Known aliases map
// to their canonical spelling, unknown labels pass through trimmed, and
// whitespace-only labels collapse to the empty string.
func NormalizeOSLabel(label string) string {
	cleaned := strings.TrimSpace(label)
	if cleaned == "" {
		return ""
	}
	if canonical, ok := osAliases[strings.ToLower(cleaned)]; ok {
		return canonical
	}
	return cleaned
}

// dedupeLabels removes duplicates while preserving first-seen order.
func dedupeLabels(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	var result []string
	for _, label := range labels {
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		result = append(result, label)
	}
	return result
}
