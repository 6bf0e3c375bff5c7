package domain

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt cost used for asset passwords
var PasswordHashCost = bcrypt.DefaultCost

// AssetGate is the lock state of a deck or demo.
// Shown controls public visibility independently of Locked.
type AssetGate struct {
	Shown        bool
	Locked       bool
	PasswordHash string
}

// HasPassword reports whether a password has been set
func (g AssetGate) HasPassword() bool {
	return g.PasswordHash != ""
}

// SetPassword stores a hash of plain. An empty password clears the hash and
// unlocks the gate, since a locked gate without a password cannot be opened.
func (g *AssetGate) SetPassword(plain string) error {
	if plain == "" {
		g.PasswordHash = ""
		g.Locked = false
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), PasswordHashCost)
	if err != nil {
		return fmt.Errorf("failed to hash asset password: %w", err)
	}
	g.PasswordHash = string(hash)
	return nil
}

// SetLocked moves the gate to the requested state.
// Locking requires a password to be set.
func (g *AssetGate) SetLocked(locked bool) error {
	if locked && !g.HasPassword() {
		return ErrPasswordRequired
	}
	g.Locked = locked
	return nil
}

// Verify checks a viewer-supplied password. Unlocked gates accept anything.
func (g AssetGate) Verify(plain string) error {
	if !g.Locked {
		return nil
	}
	if !g.HasPassword() {
		// locked without a password can only come from legacy rows
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(g.PasswordHash), []byte(plain))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPassword
		}
		return fmt.Errorf("failed to compare asset password: %w", err)
	}
	return nil
}

// EnsureDistinctStorageRefs fails when a non-empty storage id appears in more than one field
func EnsureDistinctStorageRefs(refs ...string) error {
	seen := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		if ref == "" {
			continue
		}
		if _, ok := seen[ref]; ok {
			return fmt.Errorf("%w: %s", ErrSharedStorageRef, ref)
		}
		seen[ref] = struct{}{}
	}
	return nil
}
