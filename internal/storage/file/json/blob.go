package json

import (
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/drakos74/backprop/internal/storage"
)

// BlobStorage stores every value as a json file under <path>/<table>/<shard>.
type BlobStorage struct {
	path  string
	table string
	shard string
}

// NewJsonBlob creates a new blob storage.
// table groups values of the same schema, shard is a logical split within it.
func NewJsonBlob(path, table, shard string) *BlobStorage {
	if path == "" {
		path = storage.DefaultDir
	}
	return &BlobStorage{
		path:  path,
		table: table,
		shard: shard,
	}
}

// BlobShard creates blob storages for the given root directory and table.
func BlobShard(path, table string) storage.Shard {
	return func(shard string) (storage.Persistence, error) {
		return NewJsonBlob(path, table, shard), nil
	}
}

// Dir is the directory the values are stored in.
func (s BlobStorage) Dir() string {
	return filepath.Join(s.path, s.table, s.shard)
}

// Store writes the value to a json file named after the key.
func (s BlobStorage) Store(k storage.Key, value interface{}) error {
	err := Save(s.Dir(), k.Path(), value)
	if err == nil {
		log.Debug().
			Str("dir", s.Dir()).
			Str("file", k.Path()).
			Msg("stored json file")
	}
	return err
}

// Load reads the json file named after the key into value.
func (s BlobStorage) Load(k storage.Key, value interface{}) error {
	return Load(s.Dir(), k.Path(), value)
}
