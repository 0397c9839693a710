// Package changes reports the git state of the token source files so a sync
// can show what moved since the last commit.
package changes

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// File states reported for a source file.
const (
	StateUnmodified = "unmodified"
	StateModified   = "modified"
	StateAdded      = "added"
	StateDeleted    = "deleted"
	StateRenamed    = "renamed"
	StateUntracked  = "untracked"
)

// FileStatus is the git state of one source file.
type FileStatus struct {
	Path     string
	RepoPath string
	State    string
}

// Changed reports whether the file differs from HEAD.
func (f FileStatus) Changed() bool {
	return f.State != StateUnmodified
}

// Summary is the git view of a set of source files.
type Summary struct {
	Root   string
	Branch string
	Head   string
	Files  []FileStatus
	// Note explains an empty summary, e.g. outside a repository.
	Note string
}

// Changed returns the files that differ from HEAD.
func (s Summary) Changed() []FileStatus {
	var out []FileStatus
	for _, f := range s.Files {
		if f.Changed() {
			out = append(out, f)
		}
	}
	return out
}

// Summarize opens the repository enclosing the first path and reports the
// state of every path. Outside a repository the summary is empty with a note.
func Summarize(paths []string) (Summary, error) {
	if len(paths) == 0 {
		return Summary{Note: "no source files"}, nil
	}

	start, err := filepath.Abs(filepath.Dir(paths[0]))
	if err != nil {
		return Summary{}, err
	}

	repo, err := git.PlainOpenWithOptions(start, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return Summary{Note: "not a git repository"}, nil
	}
	if err != nil {
		return Summary{}, fmt.Errorf("open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return Summary{}, fmt.Errorf("open worktree: %w", err)
	}
	root := resolve(wt.Filesystem.Root())

	summary := Summary{Root: root}
	head, err := repo.Head()
	switch {
	case err == nil:
		summary.Branch = head.Name().Short()
		summary.Head = head.Hash().String()[:7]
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		summary.Note = "no commits yet"
	default:
		return Summary{}, fmt.Errorf("read HEAD: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return Summary{}, fmt.Errorf("worktree status: %w", err)
	}

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return Summary{}, err
		}
		rel, err := filepath.Rel(root, resolve(abs))
		if err != nil {
			return Summary{}, err
		}
		rel = filepath.ToSlash(rel)

		state := StateUnmodified
		if fs, ok := status[rel]; ok {
			state = stateOf(fs)
		}
		summary.Files = append(summary.Files, FileStatus{Path: p, RepoPath: rel, State: state})
	}
	return summary, nil
}

func stateOf(fs *git.FileStatus) string {
	switch {
	case fs.Worktree == git.Untracked:
		return StateUntracked
	case fs.Staging == git.Added:
		return StateAdded
	case fs.Worktree == git.Deleted || fs.Staging == git.Deleted:
		return StateDeleted
	case fs.Staging == git.Renamed:
		return StateRenamed
	case fs.Worktree == git.Modified || fs.Staging == git.Modified:
		return StateModified
	default:
		return StateUnmodified
	}
}

// resolve follows symlinks so repository-relative paths line up, falling
// back to the cleaned path for files that no longer exist.
func resolve(path string) string {
	if real, err := filepath.EvalSymlinks(path); err == nil {
		return real
	}
	dir, file := filepath.Split(path)
	if real, err := filepath.EvalSymlinks(dir); err == nil {
		return filepath.Join(real, file)
	}
	return filepath.Clean(path)
}
