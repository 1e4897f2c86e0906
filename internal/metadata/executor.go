package metadata

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// executorsByInterpreter maps interpreter name fragments to executor
// commands. Scanned in order, first contained fragment wins: an interpreter
// named pwsh matches the sh fragment before its own entry.
var executorsByInterpreter = []struct {
	fragment string
	command  string
}{
	{"bash", "bash"},
	{"sh", "sh"},
	{"python3", "python3"},
	{"python", "python"},
	{"node", "node"},
	{"ruby", "ruby"},
	{"perl", "perl"},
	{"pwsh", "pwsh"},
	{"powershell", "powershell"},
}

// executorsBySuffix is the fallback for scripts without a usable shebang.
var executorsBySuffix = map[string]string{
	".bash": "bash",
	".sh":   "sh",
	".py":   "python3",
	".rb":   "ruby",
	".js":   "node",
	".ts":   "node",
	".ps1":  "pwsh",
}

// DetectExecutor returns the command used to run a script, derived from its
// shebang line when present and from the file extension otherwise. Scripts
// with neither resolve to "sh".
func DetectExecutor(content []byte, ext string) string {
	if interpreter := shebangInterpreter(content); interpreter != "" {
		for _, entry := range executorsByInterpreter {
			if strings.Contains(interpreter, entry.fragment) {
				return entry.command
			}
		}
	}
	if command, ok := executorsBySuffix[strings.ToLower(ext)]; ok {
		return command
	}
	return "sh"
}

// shebangInterpreter extracts the lowered interpreter token from a script's
// first line. An env shebang defers to its first argument. Returns "" when
// the first line is missing, undecodable, or not a shebang.
func shebangInterpreter(content []byte) string {
	firstLine := content
	if idx := bytes.IndexByte(content, '\n'); idx >= 0 {
		firstLine = content[:idx]
	}
	if !utf8.Valid(firstLine) {
		return ""
	}
	line := strings.TrimSpace(string(firstLine))
	if !strings.HasPrefix(line, "#!") {
		return ""
	}
	parts := strings.Fields(line[2:])
	if len(parts) == 0 {
		return ""
	}
	interpreter := parts[0]
	if strings.HasSuffix(parts[0], "env") && len(parts) > 1 {
		interpreter = parts[1]
	}
	return strings.ToLower(interpreter)
}
