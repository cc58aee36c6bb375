// Package hashing computes content hashes of values, used to fingerprint
// datasets so that logs from different runs over the same data correlate.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"strconv"

	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hash.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the hex-encoded SHA256 hash of the given Hashable.
func Sha256(hashable Hashable) (string, error) {
	h := sha256.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Xxh3 returns the 64-bit XXH3 hash of the given Hashable as 16 hex digits.
// It is much faster than Sha256 and fine for fingerprints, but it is not a
// cryptographic hash.
func Xxh3(hashable Hashable) (string, error) {
	h := xxh3.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

type HashableString string

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))

	return err
}

type HashableBytes []byte

func (b HashableBytes) UpdateHash(h hash.Hash) error {
	_, err := h.Write(b)

	return err
}

// Sequence hashes an ordered list of values. Each value is rendered to a
// string and written with a length prefix, so ["ab", "c"] and ["a", "bc"]
// hash differently.
type Sequence[T any] struct {
	Values []T
	Render func(T) string
}

func (s Sequence[T]) UpdateHash(h hash.Hash) error {
	for _, v := range s.Values {
		str := s.Render(v)

		if _, err := h.Write([]byte(strconv.Itoa(len(str)) + ":")); err != nil {
			return err
		}

		if _, err := h.Write([]byte(str)); err != nil {
			return err
		}
	}

	return nil
}

// Fingerprint hashes values in order using hashFunc.
func Fingerprint[T any](values []T, render func(T) string, hashFunc HashFunc) (string, error) {
	return hashFunc(Sequence[T]{Values: values, Render: render})
}
