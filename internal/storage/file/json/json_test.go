package json

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drakos74/backprop/internal/storage"
)

type record struct {
	ID      string    `json:"id"`
	Weights []float64 `json:"weights"`
}

func newRecord() record {
	return record{
		ID:      uuid.New().String(),
		Weights: []float64{0.1, -0.2, 0.3},
	}
}

func TestStorage(t *testing.T) {

	type test struct {
		shard func(t *testing.T) storage.Shard
	}

	tests := map[string]test{
		"blob": {
			shard: func(t *testing.T) storage.Shard {
				return BlobShard(t.TempDir(), "network")
			},
		},
		"local": {
			shard: func(t *testing.T) storage.Shard {
				return func(shard string) (storage.Persistence, error) {
					return NewLocalStorage(), nil
				}
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := tt.shard(t)("test")
			require.NoError(t, err)

			r := newRecord()
			k := storage.Key{ID: r.ID, Label: "final"}

			var missing record
			assert.ErrorIs(t, s.Load(k, &missing), storage.NotFoundErr)

			require.NoError(t, s.Store(k, r))

			var loaded record
			require.NoError(t, s.Load(k, &loaded))
			assert.Equal(t, r, loaded)
		})
	}
}

func TestBlobStorage_Files(t *testing.T) {
	dir := t.TempDir()
	s := NewJsonBlob(dir, "network", "shard")

	k := storage.Key{ID: "abc", Label: "final"}
	require.NoError(t, s.Store(k, newRecord()))

	_, err := os.Stat(filepath.Join(dir, "network", "shard", "abc_final.json"))
	assert.NoError(t, err)
}

func TestLoad_Corrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{"), 0644))

	var r record
	err := Load(dir, "bad", &r)
	assert.ErrorIs(t, err, storage.CouldNotLoadErr)
}

func TestSave_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(p, []byte{}, 0644))

	assert.Error(t, Save(p, "x", newRecord()))
}

func TestLocalStorage_Keys(t *testing.T) {
	s := NewLocalStorage()
	require.NoError(t, s.Store(storage.Key{ID: "a"}, 1))
	require.NoError(t, s.Store(storage.Key{ID: "b"}, 2))
	assert.ElementsMatch(t, []storage.Key{{ID: "a"}, {ID: "b"}}, s.Keys())
}
