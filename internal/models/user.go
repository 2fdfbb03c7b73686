// Package models defines the data entities shared between the credential
// store and the authentication service.
package models

// UserRecord is one registered user. Email is the unique key, case-sensitive
// as given. HashedPassword is an opaque string with the salt embedded.
// SecurityAnswer is stored in plaintext and matched exactly; a known weakness
// kept for behavioral parity with the original registration file format.
type UserRecord struct {
	Email            string
	HashedPassword   string
	SecurityQuestion string
	SecurityAnswer   string
}

// Directory is the in-memory mapping of email to UserRecord. It is the
// authoritative session-local cache of credentials; durable storage is the
// cross-process source of truth.
type Directory map[string]*UserRecord

// Clone returns a shallow copy of the record.
func (u *UserRecord) Clone() *UserRecord {
	c := *u
	return &c
}
