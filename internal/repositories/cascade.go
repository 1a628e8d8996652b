package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"wanderdex/internal/models/db_models"
)

// purgePois removes the given POIs and every row that depends on them.
// Children go first so declared foreign keys never dangle.
func purgePois(tx *gorm.DB, poiIDs []uuid.UUID) error {
	if len(poiIDs) == 0 {
		return nil
	}
	dependents := []interface{}{
		&db_models.Favorite{},
		&db_models.Visited{},
		&db_models.PoiTag{},
		&db_models.PoiImage{},
	}
	for _, model := range dependents {
		if err := tx.Where("poi_id IN ?", poiIDs).Delete(model).Error; err != nil {
			return err
		}
	}
	return tx.Where("id IN ?", poiIDs).Delete(&db_models.POI{}).Error
}

// purgeCities removes the given cities and, transitively, their POIs.
func purgeCities(tx *gorm.DB, cityIDs []uuid.UUID) error {
	if len(cityIDs) == 0 {
		return nil
	}
	var poiIDs []uuid.UUID
	if err := tx.Model(&db_models.POI{}).Where("city_id IN ?", cityIDs).Pluck("id", &poiIDs).Error; err != nil {
		return err
	}
	if err := purgePois(tx, poiIDs); err != nil {
		return err
	}
	return tx.Where("id IN ?", cityIDs).Delete(&db_models.City{}).Error
}

// likePattern wraps s for a LOWER(col) LIKE LOWER(?) substring match.
func likePattern(s string) string {
	return "%" + s + "%"
}
