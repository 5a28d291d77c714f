package policy

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	"github.com/rhels/imagegate/allowlist"
)

func TestBuildAndRender(t *testing.T) {
	list := allowlist.New()
	list.Add("registry.example.com/ns/app:v1")
	list.Add("acme/tool:2.0")

	generatedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	doc := Build("platform-allowlist", list, generatedAt)
	data, err := doc.Render()
	require.NoError(t, err)

	parsed := &Document{}
	require.NoError(t, yaml.Unmarshal(data, parsed))
	assert.Equal(t, APIVersion, parsed.APIVersion)
	assert.Equal(t, Kind, parsed.Kind)
	assert.Equal(t, "platform-allowlist", parsed.Metadata.Name)
	assert.Equal(t, "2024-06-01T12:00:00Z", parsed.Metadata.Annotations["policy.rhels.io/generated-at"])
	assert.Equal(t, "enforce", parsed.Spec.Action)
	// sorted allowlist order is preserved
	assert.Equal(t, []string{"acme/tool:2.0", "registry.example.com/ns/app:v1"}, parsed.Spec.AllowedImages)
}

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("policy repo\n"), 0o644))
	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add("README.md")
	require.NoError(t, err)
	_, err = worktree.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return dir
}

func TestPublish(t *testing.T) {
	dir := initRepo(t)

	list := allowlist.New()
	list.Add("acme/app:v1")
	doc := Build("platform-allowlist", list, time.Now())
	data, err := doc.Render()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, Filename), data, 0o644))

	hash, err := Publish(dir, PublishOptions{
		Branch:      "imagegate/update-allowlist",
		Files:       []string{Filename},
		Message:     "admit acme/app:v1",
		AuthorName:  "imagegate-bot",
		AuthorEmail: "bot@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	repo, err := git.PlainOpen(dir)
	require.NoError(t, err)
	head, err := repo.Head()
	require.NoError(t, err)
	assert.Equal(t, "refs/heads/imagegate/update-allowlist", head.Name().String())
	assert.Equal(t, hash, head.Hash().String())

	commit, err := repo.CommitObject(head.Hash())
	require.NoError(t, err)
	assert.Equal(t, "admit acme/app:v1", commit.Message)
}

func TestPublishValidation(t *testing.T) {
	dir := initRepo(t)
	_, err := Publish(dir, PublishOptions{Files: []string{Filename}})
	require.ErrorContains(t, err, "publish branch must be set")

	_, err = Publish(dir, PublishOptions{Branch: "b"})
	require.ErrorContains(t, err, "no files to publish")

	_, err = Publish(t.TempDir(), PublishOptions{Branch: "b", Files: []string{Filename}})
	require.ErrorContains(t, err, "failed to open policy repo")
}
