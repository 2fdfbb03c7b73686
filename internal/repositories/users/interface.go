// Package users persists registered users to durable storage.
package users

import (
	"context"

	"github.com/dmitrijs2005/spacedata/internal/models"
)

// Repository is the durable credential store.
//
// Contract:
//   - LoadAll reads every persisted record. A missing backing file is
//     non-fatal: an empty directory is returned together with
//     common.ErrStoreUnavailable so the caller can log and proceed.
//   - Append durably adds one record without rewriting existing ones and
//     must not corrupt previously committed records on partial failure.
//   - WriteAll rewrites the whole store; used when an existing record's
//     fields change (password reset).
type Repository interface {
	LoadAll(ctx context.Context) (models.Directory, error)
	Append(ctx context.Context, user *models.UserRecord) error
	WriteAll(ctx context.Context, dir models.Directory) error
}
