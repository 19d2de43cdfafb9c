// Package kv stores the ledger documents: a flat namespace of keys, each
// holding one JSON document.
//
// Three backends are provided: a directory of files for local use, an
// in-memory map for tests, and Redis to share a ledger between machines.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = errors.New("key not found")

// Store is a key-value store of JSON documents.
type Store interface {
	// Get returns the value of key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put writes all the entries. Backends write them together when they can.
	Put(ctx context.Context, entries map[string][]byte) error
	// Close releases the backend resources.
	Close() error
}
