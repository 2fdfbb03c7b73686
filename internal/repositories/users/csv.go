package users

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/dmitrijs2005/spacedata/internal/common"
	"github.com/dmitrijs2005/spacedata/internal/filex"
	"github.com/dmitrijs2005/spacedata/internal/models"
)

// Storage format: UTF-8 CSV with a header row, one data row per user.
// encoding/csv applies standard quoting for embedded delimiters and newlines.
var header = []string{"email", "hashed_password", "security_question", "security_answer"}

// CSVRepository is the concrete Repository backed by a single CSV file.
type CSVRepository struct {
	path string
}

// NewCSVRepository constructs a CSVRepository over the given file path.
// The file is not touched until the first operation.
func NewCSVRepository(path string) *CSVRepository {
	return &CSVRepository{path: path}
}

// LoadAll reads all persisted records into a Directory. If the backing file
// does not exist, an empty Directory is returned along with
// common.ErrStoreUnavailable; the process proceeds with zero registered users.
func (r *CSVRepository) LoadAll(ctx context.Context) (models.Directory, error) {
	dir := models.Directory{}

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return dir, common.ErrStoreUnavailable
		}
		return dir, fmt.Errorf("open store: %w", err)
	}
	defer f.Close()

	// csv.Reader locks the field count to the header row, so malformed rows
	// surface as errors instead of silently shifting columns.
	reader := csv.NewReader(f)

	head, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return dir, nil
		}
		return dir, fmt.Errorf("read store header: %w", err)
	}
	idx, err := fieldIndex(head)
	if err != nil {
		return dir, err
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return dir, fmt.Errorf("read store row: %w", err)
		}
		u := &models.UserRecord{
			Email:            row[idx["email"]],
			HashedPassword:   row[idx["hashed_password"]],
			SecurityQuestion: row[idx["security_question"]],
			SecurityAnswer:   row[idx["security_answer"]],
		}
		dir[u.Email] = u
	}

	return dir, nil
}

// fieldIndex maps each required field name to its column position, so rows
// are decoded by header name rather than by fixed order.
func fieldIndex(head []string) (map[string]int, error) {
	idx := make(map[string]int, len(head))
	for i, name := range head {
		idx[name] = i
	}
	for _, name := range header {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("store header missing field %q", name)
		}
	}
	return idx, nil
}

// Append durably adds one record without rewriting existing ones. The row
// (and the header, when the file is new or empty) is encoded first and
// written with a single write on an append-only descriptor, so a failure
// mid-operation cannot truncate previously committed records.
func (r *CSVRepository) Append(ctx context.Context, user *models.UserRecord) error {
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreWriteFailure, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreWriteFailure, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if st.Size() == 0 {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("%w: %v", common.ErrStoreWriteFailure, err)
		}
	}
	if err := w.Write(userRow(user)); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreWriteFailure, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreWriteFailure, err)
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreWriteFailure, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreWriteFailure, err)
	}
	return nil
}

// WriteAll rewrites the whole store from dir. The new content goes to a
// temporary file in the same directory which then replaces the store by
// rename, so readers never observe a half-written file.
func (r *CSVRepository) WriteAll(ctx context.Context, dir models.Directory) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreWriteFailure, err)
	}

	emails := make([]string, 0, len(dir))
	for email := range dir {
		emails = append(emails, email)
	}
	sort.Strings(emails)

	for _, email := range emails {
		if err := w.Write(userRow(dir[email])); err != nil {
			return fmt.Errorf("%w: %v", common.ErrStoreWriteFailure, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreWriteFailure, err)
	}

	if err := filex.WriteFileAtomic(r.path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStoreWriteFailure, err)
	}
	return nil
}

func userRow(u *models.UserRecord) []string {
	return []string{u.Email, u.HashedPassword, u.SecurityQuestion, u.SecurityAnswer}
}
