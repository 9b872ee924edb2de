package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Path is the default configuration directory, relative to the repository root.
const Path = "infra/config"

// LoadFile loads the json config file into v.
func LoadFile(file string, v interface{}) ([]byte, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not load config from %s: %w", file, err)
	}

	if err := json.Unmarshal(b, v); err != nil {
		return nil, fmt.Errorf("could not unmarshal the config from %s: %w", file, err)
	}

	log.Info().Str("file", file).Msg("loaded config")
	return b, nil
}

// Load loads the config for the given key from the given directory.
func Load(dir string, key string, v interface{}) ([]byte, error) {
	return LoadFile(filepath.Join(dir, fmt.Sprintf("%s.json", key)), v)
}

// MustLoad loads the config for the given key from the default directory.
func MustLoad(key string, v interface{}) []byte {
	b, err := Load(Path, key, v)
	if err != nil {
		panic(err.Error())
	}
	return b
}
