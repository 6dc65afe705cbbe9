package repository

import (
	"order-review-svc/internal/repository/cache"
	"order-review-svc/internal/repository/postgres"

	"github.com/jinzhu/gorm"
)

// NewRepository builds the gorm-backed directories. Restaurant and menu item
// lookups are served through kv when it is non-nil.
func NewRepository(db *gorm.DB, kv cache.KV) *Repository {
	r := &Repository{
		Customers:         postgres.NewCustomerPostgres(db),
		Restaurants:       postgres.NewRestaurantPostgres(db),
		MenuItems:         postgres.NewMenuItemPostgres(db),
		Orders:            postgres.NewOrderPostgres(db),
		RestaurantReviews: postgres.NewRestaurantReviewPostgres(db),
		DishReviews:       postgres.NewDishReviewPostgres(db),
	}
	if kv != nil {
		r.Restaurants = cache.NewRestaurantCache(kv, r.Restaurants)
		r.MenuItems = cache.NewMenuItemCache(kv, r.MenuItems)
	}
	return r
}
