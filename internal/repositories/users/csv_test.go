package users

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/spacedata/internal/common"
	"github.com/dmitrijs2005/spacedata/internal/models"
)

func tempStore(t *testing.T) *CSVRepository {
	t.Helper()
	return NewCSVRepository(filepath.Join(t.TempDir(), "regno.csv"))
}

func sampleUser(email string) *models.UserRecord {
	return &models.UserRecord{
		Email:            email,
		HashedPassword:   "$2a$10$abcdefghijklmnopqrstuv",
		SecurityQuestion: "First pet?",
		SecurityAnswer:   "Rex",
	}
}

func TestLoadAll_MissingFile_EmptyDirectoryNonFatal(t *testing.T) {
	repo := tempStore(t)

	dir, err := repo.LoadAll(context.Background())
	require.ErrorIs(t, err, common.ErrStoreUnavailable)
	assert.Empty(t, dir)
}

func TestAppend_CreatesFileWithHeader(t *testing.T) {
	repo := tempStore(t)

	require.NoError(t, repo.Append(context.Background(), sampleUser("a@b.com")))

	data, err := os.ReadFile(repo.path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "email,hashed_password,security_question,security_answer", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "a@b.com,"))
}

func TestAppend_DoesNotRewriteExistingRows(t *testing.T) {
	repo := tempStore(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, sampleUser("first@b.com")))
	require.NoError(t, repo.Append(ctx, sampleUser("second@b.com")))

	dir, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, dir, 2)
	assert.Contains(t, dir, "first@b.com")
	assert.Contains(t, dir, "second@b.com")
}

func TestRoundTrip_PreservesAllFields(t *testing.T) {
	repo := tempStore(t)
	ctx := context.Background()

	u := sampleUser("a@b.com")
	require.NoError(t, repo.Append(ctx, u))

	dir, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Contains(t, dir, "a@b.com")
	assert.Equal(t, u, dir["a@b.com"])
}

func TestRoundTrip_EscapesEmbeddedDelimiters(t *testing.T) {
	repo := tempStore(t)
	ctx := context.Background()

	u := sampleUser("a@b.com")
	u.SecurityQuestion = `Favourite food, with "quotes"?`
	u.SecurityAnswer = "fish, chips\nand peas"
	require.NoError(t, repo.Append(ctx, u))

	dir, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Contains(t, dir, "a@b.com")
	assert.Equal(t, u.SecurityQuestion, dir["a@b.com"].SecurityQuestion)
	assert.Equal(t, u.SecurityAnswer, dir["a@b.com"].SecurityAnswer)
}

func TestWriteAll_RewritesUpdatedRecord(t *testing.T) {
	repo := tempStore(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, sampleUser("a@b.com")))
	require.NoError(t, repo.Append(ctx, sampleUser("c@d.com")))

	dir, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	dir["a@b.com"].HashedPassword = "$2a$10$updatedupdatedupdated"
	require.NoError(t, repo.WriteAll(ctx, dir))

	reloaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, reloaded, 2)
	assert.Equal(t, "$2a$10$updatedupdatedupdated", reloaded["a@b.com"].HashedPassword)
	assert.Equal(t, sampleUser("c@d.com"), reloaded["c@d.com"])
}

func TestWriteAll_LeavesNoTempFilesBehind(t *testing.T) {
	dir := t.TempDir()
	repo := NewCSVRepository(filepath.Join(dir, "regno.csv"))
	ctx := context.Background()

	require.NoError(t, repo.WriteAll(ctx, models.Directory{"a@b.com": sampleUser("a@b.com")}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "regno.csv", entries[0].Name())
}

func TestLoadAll_RejectsForeignHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regno.csv")
	require.NoError(t, os.WriteFile(path, []byte("login,secret\nbob,hunter2\n"), 0o600))

	repo := NewCSVRepository(path)
	_, err := repo.LoadAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing field")
}

func TestLoadAll_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regno.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	repo := NewCSVRepository(path)
	got, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
