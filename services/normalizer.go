package services

import (
	"strings"

	"BudgetPilot/models"
	"BudgetPilot/storage"
	"BudgetPilot/utils"
)

// NormalizeAttractions drops rows without a name. Address columns stay
// separate; they are combined at query time.
func NormalizeAttractions(t *storage.Table) []models.Attraction {
	out := make([]models.Attraction, 0, t.Len())
	if t == nil {
		return out
	}
	for _, row := range t.Rows {
		name := strings.TrimSpace(row.Get("관광지명"))
		if name == "" {
			continue
		}
		out = append(out, models.Attraction{
			Index:        row.Index,
			Name:         name,
			RoadAddress:  row.Get("소재지도로명주소"),
			LotAddress:   row.Get("소재지지번주소"),
			Introduction: row.Get("관광지소개"),
			ParkingCount: row.Get("주차가능수"),
		})
	}
	return out
}

// NormalizeRestaurants drops rows without a name and joins road and lot
// addresses into the composite address.
func NormalizeRestaurants(t *storage.Table) []models.Eatery {
	return normalizeEateries(t, func(r storage.Row) string {
		return utils.JoinTrimmed(r.Get("도로명주소"), r.Get("지번주소"))
	}, func(r storage.Row) string {
		return r.Get("업태구분명")
	})
}

// NormalizeCafes drops rows without a name and joins province, district and
// road address into the composite address.
func NormalizeCafes(t *storage.Table) []models.Eatery {
	return normalizeEateries(t, func(r storage.Row) string {
		return utils.JoinTrimmed(r.Get("시도명"), r.Get("시군구명"), r.Get("소재지도로명주소"))
	}, nil)
}

func normalizeEateries(t *storage.Table, address, category func(storage.Row) string) []models.Eatery {
	out := make([]models.Eatery, 0, t.Len())
	if t == nil {
		return out
	}
	for _, row := range t.Rows {
		name := strings.TrimSpace(row.Get("사업장명"))
		if name == "" {
			continue
		}
		e := models.Eatery{
			Index:   row.Index,
			Name:    name,
			Address: address(row),
		}
		if category != nil {
			e.Category = strings.TrimSpace(category(row))
		}
		out = append(out, e)
	}
	return out
}
