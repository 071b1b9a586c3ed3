package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadFileContent(t *testing.T) {
	repoRoot := t.TempDir()
	if err := os.WriteFile(filepath.Join(repoRoot, "main.go"), []byte("package main\n"), 0644); err != nil {
		t.Fatal(err)
	}
	absPath := filepath.Join(t.TempDir(), "other.go")
	if err := os.WriteFile(absPath, []byte("package other\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		filePath string
		repoRoot string
		want     string
		wantErr  bool
	}{
		{
			name:     "リポジトリからの相対パス",
			filePath: "main.go",
			repoRoot: repoRoot,
			want:     "package main\n",
		},
		{
			name:     "絶対パスはそのまま",
			filePath: absPath,
			repoRoot: ".",
			want:     "package other\n",
		},
		{
			name:     "存在しないファイル",
			filePath: "missing.go",
			repoRoot: repoRoot,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFileContent(tt.filePath, tt.repoRoot)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadFileContent() = %q, want %q", got, tt.want)
			}
		})
	}
}
