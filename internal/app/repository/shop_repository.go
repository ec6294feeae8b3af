package repository

import (
	"github.com/hanbit/shopfront-backend/internal/app/model"
	"github.com/hanbit/shopfront-backend/internal/storage"
	"github.com/hanbit/shopfront-backend/pkg/logger"
)

// StoreRepository is the load/save contract the service layer depends on.
// The core never assumes a specific persistence mechanism, only that Load
// returns the whole document and Save replaces it.
type StoreRepository interface {
	// Init prepares the backing store and, if it holds no document yet,
	// writes an empty one.
	Init() error
	Load() (*model.Store, error)
	Save(store *model.Store) error
}

type fileStoreRepository struct {
	file *storage.JSONStore
}

// NewFileStoreRepository returns a repository backed by a JSON file at path.
func NewFileStoreRepository(path string) StoreRepository {
	return &fileStoreRepository{file: storage.NewJSONStore(path)}
}

func (r *fileStoreRepository) Init() error {
	return r.file.Init()
}

func (r *fileStoreRepository) Load() (*model.Store, error) {
	store, err := r.file.Load()
	if err != nil {
		logger.Error("Failed to load store document", err)
		return nil, err
	}
	return store, nil
}

func (r *fileStoreRepository) Save(store *model.Store) error {
	if err := r.file.Save(store); err != nil {
		logger.Error("Failed to save store document", err, map[string]interface{}{
			"total_shops": store.Stats.TotalShops,
		})
		return err
	}
	return nil
}
