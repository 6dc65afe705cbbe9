package postgres

import (
	"order-review-svc/internal/models"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

type MenuItemPostgresRepo struct {
	db *gorm.DB
}

func NewMenuItemPostgres(db *gorm.DB) *MenuItemPostgresRepo {
	return &MenuItemPostgresRepo{db: db}
}

func (r *MenuItemPostgresRepo) FindByID(id uint) (models.MenuItem, error) {
	var m models.MenuItem
	if err := r.db.Where("id = ?", id).First(&m).Error; err != nil {
		return models.MenuItem{}, errors.Wrapf(notFound(err), "menu item %d", id)
	}
	return m, nil
}

func (r *MenuItemPostgresRepo) FindAllByRestaurant(restaurantID uint) ([]models.MenuItem, error) {
	out := []models.MenuItem{}
	err := r.db.Where("restaurant_id = ?", restaurantID).
		Order("id").
		Find(&out).Error
	return out, errors.Wrapf(err, "menu of restaurant %d", restaurantID)
}

func (r *MenuItemPostgresRepo) Save(m *models.MenuItem) error {
	return errors.Wrap(r.db.Save(m).Error, "save menu item")
}

// Delete fails with ErrInUse while an order line references the item.
func (r *MenuItemPostgresRepo) Delete(m *models.MenuItem) error {
	return errors.Wrapf(inUse(r.db.Delete(m).Error), "delete menu item %d", m.ID)
}
