package model

import "time"

// StoreStats holds the aggregate counters of the store document.
// TotalShops and TotalViews are maintained incrementally on the write
// paths; Reconcile recomputes them from the shops map.
type StoreStats struct {
	TotalShops int       `json:"totalShops"`
	TotalViews int       `json:"totalViews"`
	LastUpdate time.Time `json:"lastUpdate"`
}

// Store is the singleton persisted document holding every shop keyed by slug.
type Store struct {
	Shops map[string]*Shop `json:"shops"`
	Stats StoreStats       `json:"stats"`
}

// NewStore returns an empty store document, written on first startup.
func NewStore() *Store {
	return &Store{
		Shops: map[string]*Shop{},
		Stats: StoreStats{
			TotalShops: 0,
			TotalViews: 0,
			LastUpdate: time.Now().UTC(),
		},
	}
}

// Reconcile recomputes the aggregate counters from the shops map.
// Used for recovery after drift (out-of-band edits, lost updates).
func (s *Store) Reconcile() {
	total := 0
	views := 0
	for _, shop := range s.Shops {
		total++
		views += shop.Stats.Views
	}
	s.Stats.TotalShops = total
	s.Stats.TotalViews = views
	s.Stats.LastUpdate = time.Now().UTC()
}
