package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"

	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// As an example, the Sha256 function is a HashFunc.
// This lets us talk about hashing functions in a generic way.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. This is useful for hashing
// objects so that they can be easily compared.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hashing of the given Hashable
// as a hex-encoded string. If the Hashable fails to
// update the hashing, an error is returned.
func Sha256(hashable Hashable) (string, error) {
	h := sha256.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	bts := h.Sum(nil)

	return hex.EncodeToString(bts), nil
}

// Xxh3 returns the 64-bit XXH3 hashing of the given Hashable as a
// zero-padded, 16 character hex string. It is much faster than Sha256
// and is meant for in-process cache keys, not for anything adversarial.
func Xxh3(hashable Hashable) (string, error) {
	h := xxh3.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return fmt.Sprintf("%016x", h.Sum64()), nil
}

// HashableString writes a string's bytes to a hash, so that plain strings
// such as property names and directions can feed a HashFunc.
type HashableString string

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))
	if err != nil {
		return err
	}

	return nil
}
