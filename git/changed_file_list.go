package git

import (
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5"
)

func openRepository(repoPath string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository %s: %w", repoPath, err)
	}
	return repo, nil
}

// GetChangedFiles returns the changed (staged or unstaged) and untracked files
// of the working tree, sorted by path.
func GetChangedFiles(repoPath string) ([]string, []string, error) {
	repo, err := openRepository(repoPath)
	if err != nil {
		return nil, nil, err
	}

	// 作業ツリーを取得
	wt, err := repo.Worktree()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get status: %w", err)
	}

	var modifiedFiles []string
	var untrackedFiles []string

	for file, fileStatus := range status {
		switch {
		case fileStatus.Worktree == git.Untracked:
			untrackedFiles = append(untrackedFiles, file)
		case fileStatus.Worktree != git.Unmodified || fileStatus.Staging != git.Unmodified:
			modifiedFiles = append(modifiedFiles, file)
		}
	}

	// map の走査順は不定なのでソートする
	sort.Strings(modifiedFiles)
	sort.Strings(untrackedFiles)

	return modifiedFiles, untrackedFiles, nil
}
