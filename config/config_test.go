package config

import (
	"io"
	"testing"

	"github.com/sukechannnn/vsplit/split"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		env     map[string]string
		want    AppConfig
		wantErr bool
	}{
		{
			name: "デフォルト",
			want: AppConfig{RepoPath: ".", LogLimit: 200, DefaultTop: 60, MinTop: 20, MaxTop: 80},
		},
		{
			name: "フラグ指定",
			args: []string{"-repo", "/tmp/repo", "-file", "main.go", "-top", "50", "-min", "10", "-max", "90", "-log-limit", "5"},
			want: AppConfig{RepoPath: "/tmp/repo", FilePath: "main.go", LogLimit: 5, DefaultTop: 50, MinTop: 10, MaxTop: 90},
		},
		{
			name: "環境変数",
			env:  map[string]string{"VSPLIT_TOP": "40", "VSPLIT_MIN": "30", "VSPLIT_MAX": "70"},
			want: AppConfig{RepoPath: ".", LogLimit: 200, DefaultTop: 40, MinTop: 30, MaxTop: 70},
		},
		{
			name: "フラグが環境変数より優先",
			args: []string{"-top", "45"},
			env:  map[string]string{"VSPLIT_TOP": "40"},
			want: AppConfig{RepoPath: ".", LogLimit: 200, DefaultTop: 45, MinTop: 20, MaxTop: 80},
		},
		{
			name:    "不正な環境変数",
			env:     map[string]string{"VSPLIT_MIN": "abc"},
			wantErr: true,
		},
		{
			name:    "範囲外",
			args:    []string{"-max", "120"},
			wantErr: true,
		},
		{
			name:    "min が max を超える",
			args:    []string{"-min", "70", "-max", "30"},
			wantErr: true,
		},
		{
			name:    "未知のフラグ",
			args:    []string{"-width", "3"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"VSPLIT_TOP", "VSPLIT_MIN", "VSPLIT_MAX"} {
				t.Setenv(key, tt.env[key])
			}

			got, err := LoadConfig(tt.args, io.Discard)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("LoadConfig() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestSplitOptions(t *testing.T) {
	cfg := AppConfig{DefaultTop: 33, MinTop: 11, MaxTop: 77}
	got := split.NewConfig(cfg.SplitOptions()...)
	want := split.Config{DefaultTop: 33, MinTop: 11, MaxTop: 77, DividerThickness: split.DefaultDividerThickness}
	if got != want {
		t.Errorf("SplitOptions() = %+v, want %+v", got, want)
	}
}
