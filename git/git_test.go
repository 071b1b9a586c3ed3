package git

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func commitFile(t *testing.T, wt *git.Worktree, dir, name, content, message string, when time.Time) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := wt.Add(name); err != nil {
		t.Fatalf("Failed to add %s: %v", name, err)
	}
	_, err := wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{Name: "Test User", Email: "test@example.com", When: when},
	})
	if err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}
}

func newTestRepo(t *testing.T) (string, *git.Worktree) {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatal("Failed to initialize git repo:", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatal(err)
	}
	return dir, wt
}

func TestGetCommitLog(t *testing.T) {
	dir, wt := newTestRepo(t)
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	commitFile(t, wt, dir, "a.txt", "one\n", "first commit", base)
	commitFile(t, wt, dir, "a.txt", "two\n", "second commit\n\nwith body", base.Add(time.Hour))

	t.Run("newest first", func(t *testing.T) {
		entries, err := GetCommitLog(dir, 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
		if entries[0].Message != "second commit" || entries[1].Message != "first commit" {
			t.Errorf("unexpected messages: %q, %q", entries[0].Message, entries[1].Message)
		}
		if entries[0].Author != "Test User" {
			t.Errorf("unexpected author %q", entries[0].Author)
		}
		if len(entries[0].ShortHash()) != 7 {
			t.Errorf("unexpected short hash %q", entries[0].ShortHash())
		}
		if !entries[1].When.Equal(base) {
			t.Errorf("unexpected date %v", entries[1].When)
		}
	})

	t.Run("limit", func(t *testing.T) {
		entries, err := GetCommitLog(dir, 1)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 || entries[0].Message != "second commit" {
			t.Errorf("unexpected entries %+v", entries)
		}
	})
}

func TestGetCommitLog_EmptyRepository(t *testing.T) {
	dir, _ := newTestRepo(t)
	entries, err := GetCommitLog(dir, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestGetCommitLog_NotARepository(t *testing.T) {
	if _, err := GetCommitLog(t.TempDir(), 10); err == nil {
		t.Error("expected error outside a repository")
	}
}

func TestGetChangedFiles(t *testing.T) {
	dir, wt := newTestRepo(t)
	commitFile(t, wt, dir, "b.txt", "b\n", "add b", time.Now())
	commitFile(t, wt, dir, "a.txt", "a\n", "add a", time.Now())

	if err := os.WriteFile(filepath.Join(dir, "b.txt"), []byte("changed\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("changed\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "new.txt"), []byte("new\n"), 0644); err != nil {
		t.Fatal(err)
	}

	modified, untracked, err := GetChangedFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(modified, []string{"a.txt", "b.txt"}) {
		t.Errorf("modified = %v", modified)
	}
	if !reflect.DeepEqual(untracked, []string{"new.txt"}) {
		t.Errorf("untracked = %v", untracked)
	}
}
