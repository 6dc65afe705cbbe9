package cache

import (
	"fmt"

	"order-review-svc/internal/models"
)

type menuItemSource interface {
	FindByID(id uint) (models.MenuItem, error)
	FindAllByRestaurant(restaurantID uint) ([]models.MenuItem, error)
	Save(m *models.MenuItem) error
	Delete(m *models.MenuItem) error
}

// MenuItemCacheRepo caches single items and whole menus. Saving an item
// refreshes the item and drops the cached menu of its restaurant.
type MenuItemCacheRepo struct {
	kv    KV
	inner menuItemSource
}

func NewMenuItemCache(kv KV, inner menuItemSource) *MenuItemCacheRepo {
	return &MenuItemCacheRepo{kv: kv, inner: inner}
}

func menuItemKey(id uint) string { return fmt.Sprintf("menu_item:%d", id) }

func menuKey(restaurantID uint) string { return fmt.Sprintf("menu:%d", restaurantID) }

func (m *MenuItemCacheRepo) FindByID(id uint) (models.MenuItem, error) {
	if v, ok := m.kv.Get(menuItemKey(id)); ok {
		if item, ok := v.(models.MenuItem); ok {
			return item, nil
		}
	}
	item, err := m.inner.FindByID(id)
	if err != nil {
		return models.MenuItem{}, err
	}
	m.kv.Put(menuItemKey(id), item)
	return item, nil
}

func (m *MenuItemCacheRepo) FindAllByRestaurant(restaurantID uint) ([]models.MenuItem, error) {
	if v, ok := m.kv.Get(menuKey(restaurantID)); ok {
		if items, ok := v.([]models.MenuItem); ok {
			return copyMenu(items), nil
		}
	}
	items, err := m.inner.FindAllByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	m.kv.Put(menuKey(restaurantID), copyMenu(items))
	return items, nil
}

func (m *MenuItemCacheRepo) Save(item *models.MenuItem) error {
	if err := m.inner.Save(item); err != nil {
		return err
	}
	m.kv.Put(menuItemKey(item.ID), *item)
	m.kv.Delete(menuKey(item.RestaurantID))
	return nil
}

func (m *MenuItemCacheRepo) Delete(item *models.MenuItem) error {
	if err := m.inner.Delete(item); err != nil {
		return err
	}
	m.kv.Delete(menuItemKey(item.ID))
	m.kv.Delete(menuKey(item.RestaurantID))
	return nil
}

func copyMenu(items []models.MenuItem) []models.MenuItem {
	out := make([]models.MenuItem, len(items))
	copy(out, items)
	return out
}
