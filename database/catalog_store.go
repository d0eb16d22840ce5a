package database

import (
	"context"
	"errors"

	"github.com/yeremiapane/bill-printing-app/models"
	"github.com/yeremiapane/bill-printing-app/services"
	"gorm.io/gorm"
)

// CatalogStore looks up menu items for pricing.
type CatalogStore struct {
	db *gorm.DB
}

func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

func (s *CatalogStore) FindMenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}
