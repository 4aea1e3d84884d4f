package database

import (
	"BudgetPilot/config/environment"
	"BudgetPilot/services"
	"BudgetPilot/storage"
	"BudgetPilot/utils"
)

// Dataset file names as published on the open-data portal.
const (
	AttractionFile        = "전국관광지정보표준데이터.csv"
	RestaurantFile        = "식품_일반음식점.csv"
	RestaurantRegionsFile = "식품_일반음식점_여행지역만.csv"
	CafeFile              = "전국카페표준데이터.csv"
)

// Paths builds the candidate path list of every dataset from the configured
// data directories.
func Paths(dataDirs []string) services.DatasetPaths {
	return services.DatasetPaths{
		Attractions: storage.CandidatePaths(dataDirs, AttractionFile),
		Restaurants: storage.CandidatePaths(dataDirs, RestaurantFile, RestaurantRegionsFile),
		Cafes:       storage.CandidatePaths(dataDirs, CafeFile),
	}
}

// InitDatasets creates the process-wide dataset store. Loading happens on
// first use unless preloading is enabled.
func InitDatasets(cfg *environment.Config, logger *utils.Logger) *services.DatasetStore {
	store := services.NewDatasetStore(Paths(cfg.DataDirs), logger)
	if cfg.PreloadDatasets {
		logger.Info("Preloading datasets...")
		store.Warm()
	}
	return store
}
