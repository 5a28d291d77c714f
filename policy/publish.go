package policy

import (
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// PublishOptions control how a rendered policy lands in the policy repo.
type PublishOptions struct {
	// Branch to create for the change; a pull request is opened from it
	// by outer automation.
	Branch string
	// Files are worktree-relative paths to stage.
	Files []string
	// Message is the commit message.
	Message string
	// AuthorName/AuthorEmail identify the committing bot account.
	AuthorName  string
	AuthorEmail string
}

// Publish stages and commits the given files on a fresh branch of the
// repository at dir, returning the commit hash. Pushing and PR creation
// happen outside this process.
func Publish(dir string, opts PublishOptions) (string, error) {
	if opts.Branch == "" {
		return "", fmt.Errorf("publish branch must be set")
	}
	if len(opts.Files) == 0 {
		return "", fmt.Errorf("no files to publish")
	}
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return "", fmt.Errorf("failed to open policy repo %s: %w", dir, err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}
	err = worktree.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(opts.Branch),
		Create: true,
		Keep:   true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create branch %s: %w", opts.Branch, err)
	}
	for _, file := range opts.Files {
		if _, err := worktree.Add(file); err != nil {
			return "", fmt.Errorf("failed to stage %s: %w", file, err)
		}
	}
	message := opts.Message
	if message == "" {
		message = "update image allowlist policy"
	}
	hash, err := worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  opts.AuthorName,
			Email: opts.AuthorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}
	return hash.String(), nil
}
