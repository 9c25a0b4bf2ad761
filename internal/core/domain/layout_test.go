package domain_test

import (
	"path/filepath"
	"testing"

	"go.trai.ch/ccflags/internal/core/domain"
)

func TestCompileCommandsPath(t *testing.T) {
	tests := []struct {
		name     string
		dir      string
		expected string
	}{
		{
			name:     "relative folder",
			dir:      "build",
			expected: filepath.Join("build", "compile_commands.json"),
		},
		{
			name:     "absolute folder",
			dir:      "/work/fw/build",
			expected: filepath.Join("/work/fw/build", "compile_commands.json"),
		},
		{
			name:     "empty folder",
			dir:      "",
			expected: "compile_commands.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := domain.CompileCommandsPath(tt.dir); got != tt.expected {
				t.Errorf("CompileCommandsPath(%q) = %v, want %v", tt.dir, got, tt.expected)
			}
		})
	}
}
