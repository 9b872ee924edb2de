package storage

import "fmt"

// VoidStorage is a noop storage
type VoidStorage struct {
}

// Store ignores the value.
func (d VoidStorage) Store(k Key, value interface{}) error {
	return nil
}

// Load always fails, as nothing is ever stored.
func (d VoidStorage) Load(k Key, value interface{}) error {
	return fmt.Errorf("not found '%v': %w", k, NotFoundErr)
}

// NewVoidStorage creates a new noop storage
func NewVoidStorage() *VoidStorage {
	return &VoidStorage{}
}
