package splaycache

import (
	"errors"
	"fmt"
)

// Sentinel errors for the hard ("must find") access paths. Soft paths
// (Get, Obtain, ContainsKey, ...) never return an error — they report
// absence through a boolean, per spec.
var (
	// ErrKeyNotFound is what the *KeyError that a hard lookup (MustGet)
	// panics with unwraps to.
	ErrKeyNotFound = errors.New("splaycache: key not found")

	// ErrValueNotFound is what the *ValueError that a hard reverse lookup
	// (MustKeyForValue) panics with unwraps to.
	ErrValueNotFound = errors.New("splaycache: value not found")
)

// KeyError reports that Key was not present in the map for an operation
// that requires it to be.
type KeyError[K any] struct {
	Key K
}

func (e *KeyError[K]) Error() string {
	return fmt.Sprintf("splaycache: key not found: %v", e.Key)
}

func (e *KeyError[K]) Unwrap() error {
	return ErrKeyNotFound
}

// ValueError reports that Value was not present in the map for a reverse
// lookup that requires it to be.
type ValueError[V any] struct {
	Value V
}

func (e *ValueError[V]) Error() string {
	return fmt.Sprintf("splaycache: value not found: %v", e.Value)
}

func (e *ValueError[V]) Unwrap() error {
	return ErrValueNotFound
}

var (
	_ error = (*KeyError[int])(nil)
	_ error = (*ValueError[int])(nil)
)
