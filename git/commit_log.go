package git

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// CommitEntry is a single entry of the commit log.
type CommitEntry struct {
	Hash    string
	Author  string
	Message string // first line only
	When    time.Time
}

// ShortHash returns the abbreviated commit hash.
func (c CommitEntry) ShortHash() string {
	if len(c.Hash) < 7 {
		return c.Hash
	}
	return c.Hash[:7]
}

// GetCommitLog returns up to limit commits reachable from HEAD, newest first.
// A limit <= 0 returns the whole history. A repository without commits yields
// an empty log.
func GetCommitLog(repoPath string, limit int) ([]CommitEntry, error) {
	repo, err := openRepository(repoPath)
	if err != nil {
		return nil, err
	}

	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}
	defer iter.Close()

	var entries []CommitEntry
	err = iter.ForEach(func(c *object.Commit) error {
		if limit > 0 && len(entries) >= limit {
			return storer.ErrStop
		}
		message, _, _ := strings.Cut(strings.TrimSpace(c.Message), "\n")
		entries = append(entries, CommitEntry{
			Hash:    c.Hash.String(),
			Author:  c.Author.Name,
			Message: message,
			When:    c.Author.When,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk log: %w", err)
	}

	return entries, nil
}
