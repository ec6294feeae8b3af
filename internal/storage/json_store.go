package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hanbit/shopfront-backend/internal/app/model"
	"github.com/hanbit/shopfront-backend/pkg/logger"
)

// JSONStore persists the store document as one pretty-printed JSON file.
// Every Load reads the file fresh and every Save rewrites it whole; there
// is no in-memory copy shared across calls.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Init creates the data directory and writes an empty store document if
// none exists yet. Called once before the server accepts requests.
func (s *JSONStore) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat store file: %w", err)
	}

	logger.Info("Store file not found, writing initial empty store", map[string]interface{}{
		"path": s.path,
	})
	return s.Save(model.NewStore())
}

// Load reads and decodes the full store document.
func (s *JSONStore) Load() (*model.Store, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var store model.Store
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("decode store file: %w", err)
	}
	if store.Shops == nil {
		store.Shops = map[string]*model.Shop{}
	}
	return &store, nil
}

// Save encodes and rewrites the full store document.
func (s *JSONStore) Save(store *model.Store) error {
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}
