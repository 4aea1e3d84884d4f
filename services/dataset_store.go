package services

import (
	"sync"

	"BudgetPilot/models"
	"BudgetPilot/storage"
	"BudgetPilot/utils"
)

// DatasetSource is what the listing services read from.
type DatasetSource interface {
	Attractions() []models.Attraction
	Restaurants() []models.Eatery
	Cafes() []models.Eatery
}

// DatasetPaths holds the ordered candidate file paths of every dataset.
type DatasetPaths struct {
	Attractions []string
	Restaurants []string
	Cafes       []string
}

// StoreOption configures a DatasetStore.
type StoreOption func(*DatasetStore)

// WithEncodings overrides the loader's encoding order.
func WithEncodings(encodings ...storage.Encoding) StoreOption {
	return func(s *DatasetStore) {
		s.encodings = encodings
	}
}

// DatasetStats describes the load outcome of one dataset.
type DatasetStats struct {
	Dataset  Dataset `json:"dataset"`
	Loaded   bool    `json:"loaded"`
	Status   string  `json:"status,omitempty"`
	Path     string  `json:"path,omitempty"`
	Encoding string  `json:"encoding,omitempty"`
	Rows     int     `json:"rows"`
}

// DatasetStore loads each dataset on first use and keeps it for the life of
// the process. Safe for concurrent use; each dataset is loaded exactly once.
type DatasetStore struct {
	paths     DatasetPaths
	encodings []storage.Encoding
	logger    *utils.Logger

	attractionsOnce sync.Once
	restaurantsOnce sync.Once
	cafesOnce       sync.Once

	attractions []models.Attraction
	restaurants []models.Eatery
	cafes       []models.Eatery

	mu    sync.RWMutex
	stats map[Dataset]DatasetStats
}

// NewDatasetStore creates a store that loads lazily from paths.
func NewDatasetStore(paths DatasetPaths, logger *utils.Logger, opts ...StoreOption) *DatasetStore {
	s := &DatasetStore{
		paths:     paths,
		encodings: storage.DefaultEncodings,
		logger:    logger,
		stats:     make(map[Dataset]DatasetStats),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = utils.NewDiscardLogger()
	}
	return s
}

// NewStaticDatasetStore returns an already-populated store that never
// touches the filesystem.
func NewStaticDatasetStore(attractions []models.Attraction, restaurants, cafes []models.Eatery) *DatasetStore {
	s := NewDatasetStore(DatasetPaths{}, nil)
	s.attractionsOnce.Do(func() {
		s.attractions = attractions
		s.record(DatasetStats{Dataset: DatasetAttractions, Loaded: true, Status: "static", Rows: len(attractions)})
	})
	s.restaurantsOnce.Do(func() {
		s.restaurants = restaurants
		s.record(DatasetStats{Dataset: DatasetRestaurants, Loaded: true, Status: "static", Rows: len(restaurants)})
	})
	s.cafesOnce.Do(func() {
		s.cafes = cafes
		s.record(DatasetStats{Dataset: DatasetCafes, Loaded: true, Status: "static", Rows: len(cafes)})
	})
	return s
}

// Attractions returns the normalized attraction rows, loading them first if
// needed. The returned slice must not be modified.
func (s *DatasetStore) Attractions() []models.Attraction {
	s.attractionsOnce.Do(func() {
		res := s.load(DatasetAttractions, s.paths.Attractions, AttractionColumns)
		s.attractions = NormalizeAttractions(res.Table)
		s.finish(DatasetAttractions, res, len(s.attractions))
	})
	return s.attractions
}

// Restaurants returns the normalized restaurant rows.
func (s *DatasetStore) Restaurants() []models.Eatery {
	s.restaurantsOnce.Do(func() {
		res := s.load(DatasetRestaurants, s.paths.Restaurants, RestaurantColumns)
		s.restaurants = NormalizeRestaurants(res.Table)
		s.finish(DatasetRestaurants, res, len(s.restaurants))
	})
	return s.restaurants
}

// Cafes returns the normalized café rows.
func (s *DatasetStore) Cafes() []models.Eatery {
	s.cafesOnce.Do(func() {
		res := s.load(DatasetCafes, s.paths.Cafes, CafeColumns)
		s.cafes = NormalizeCafes(res.Table)
		s.finish(DatasetCafes, res, len(s.cafes))
	})
	return s.cafes
}

// Warm loads every dataset now instead of on the first request.
func (s *DatasetStore) Warm() {
	s.Attractions()
	s.Restaurants()
	s.Cafes()
}

// Stats reports the datasets loaded so far, in a fixed order. It never
// triggers a load.
func (s *DatasetStore) Stats() []DatasetStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]DatasetStats, 0, 3)
	for _, d := range []Dataset{DatasetAttractions, DatasetRestaurants, DatasetCafes} {
		st, ok := s.stats[d]
		if !ok {
			st = DatasetStats{Dataset: d}
		}
		out = append(out, st)
	}
	return out
}

func (s *DatasetStore) load(d Dataset, candidates, columns []string) storage.LoadResult {
	s.logger.Info("[%s] candidates: %v", d, candidates)
	res := storage.LoadDataset(candidates, columns, s.encodings)
	switch res.Status {
	case storage.LoadOK:
		s.logger.Info("[%s] chosen: %s (encoding %s)", d, res.Path, res.Encoding)
	case storage.LoadMissing:
		s.logger.Warn("[%s] chosen: none, serving an empty dataset", d)
	default:
		s.logger.Warn("[%s] chosen: %s but it could not be read: %s", d, res.Path, res.Reason)
	}
	return res
}

func (s *DatasetStore) finish(d Dataset, res storage.LoadResult, rows int) {
	s.logger.Info("[%s] rows: %d", d, rows)
	s.record(DatasetStats{
		Dataset:  d,
		Loaded:   true,
		Status:   res.Status.String(),
		Path:     res.Path,
		Encoding: res.Encoding,
		Rows:     rows,
	})
}

func (s *DatasetStore) record(st DatasetStats) {
	s.mu.Lock()
	s.stats[st.Dataset] = st
	s.mu.Unlock()
}
