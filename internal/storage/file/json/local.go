package json

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/drakos74/backprop/internal/storage"
)

// LocalStorage keeps the json representation of every value in memory.
type LocalStorage struct {
	files map[storage.Key][]byte
	mutex *sync.RWMutex
}

// NewLocalStorage creates a new in memory storage.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{
		files: make(map[storage.Key][]byte),
		mutex: new(sync.RWMutex),
	}
}

func (l LocalStorage) Store(k storage.Key, value interface{}) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	bb, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not marshal value: %w", err)
	}

	l.files[k] = bb
	return nil
}

func (l LocalStorage) Load(k storage.Key, value interface{}) error {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	if v, ok := l.files[k]; ok {
		err := json.Unmarshal(v, value)
		if err != nil {
			return fmt.Errorf("could not unmarshal value (%s): %w", err.Error(), storage.CouldNotLoadErr)
		}
		return nil
	}
	return fmt.Errorf("file not found: %+v: %w", k, storage.NotFoundErr)
}

// Keys returns the keys of all stored values.
func (l LocalStorage) Keys() []storage.Key {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	keys := make([]storage.Key, 0, len(l.files))
	for k := range l.files {
		keys = append(keys, k)
	}
	return keys
}
