// Package cryptox implements password hashing for the authentication service.
package cryptox

import "golang.org/x/crypto/bcrypt"

// Hasher produces and verifies salted one-way password hashes.
//
// Contract:
//   - Hash is randomized: the same plaintext yields a different opaque hash
//     on every call, because a fresh salt is embedded in the output.
//   - Verify recomputes the hash using the embedded salt and compares in
//     constant time.
//
// The opaque hash is an uninterpreted string to every other component.
type Hasher interface {
	Hash(password []byte) (string, error)
	Verify(password []byte, opaqueHash string) bool
}

// BcryptHasher is the concrete Hasher backed by bcrypt, an adaptive
// cost-factor work function. Never swap this for a fast general-purpose hash.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a BcryptHasher with the default cost factor.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password []byte) (string, error) {
	b, err := bcrypt.GenerateFromPassword(password, h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Verify(password []byte, opaqueHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(opaqueHash), password) == nil
}
