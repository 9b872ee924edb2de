package storage

import (
	"errors"
	"fmt"
)

// DefaultDir is the root directory for file based storage.
var DefaultDir = "file-storage"

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Key is the storage key of a stored network.
type Key struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Path is the file friendly representation of the key.
func (k Key) Path() string {
	if k.Label == "" {
		return k.ID
	}
	return fmt.Sprintf("%s_%s", k.ID, k.Label)
}

// Persistence stores and loads values under a key.
type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
}

// Shard creates a new storage implementation for the given shard.
type Shard func(shard string) (Persistence, error)
