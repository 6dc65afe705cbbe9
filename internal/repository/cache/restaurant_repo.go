package cache

import (
	"fmt"

	"order-review-svc/internal/models"
)

type restaurantSource interface {
	FindByID(id uint) (models.Restaurant, error)
	FindByEmail(email string) (models.Restaurant, error)
	FindByCNPJ(cnpj string) (models.Restaurant, error)
	Save(r *models.Restaurant) error
	Delete(r *models.Restaurant) error
}

// RestaurantCacheRepo serves FindByID from kv and falls through to the
// wrapped directory on a miss. Lookups by email and CNPJ are not cached
// because they back registration and login, where staleness matters.
type RestaurantCacheRepo struct {
	kv    KV
	inner restaurantSource
}

func NewRestaurantCache(kv KV, inner restaurantSource) *RestaurantCacheRepo {
	return &RestaurantCacheRepo{kv: kv, inner: inner}
}

func restaurantKey(id uint) string { return fmt.Sprintf("restaurant:%d", id) }

func (r *RestaurantCacheRepo) FindByID(id uint) (models.Restaurant, error) {
	if v, ok := r.kv.Get(restaurantKey(id)); ok {
		if rest, ok := v.(models.Restaurant); ok {
			return rest, nil
		}
		r.kv.Delete(restaurantKey(id))
	}
	rest, err := r.inner.FindByID(id)
	if err != nil {
		return models.Restaurant{}, err
	}
	r.kv.Put(restaurantKey(id), rest)
	return rest, nil
}

func (r *RestaurantCacheRepo) FindByEmail(email string) (models.Restaurant, error) {
	return r.inner.FindByEmail(email)
}

func (r *RestaurantCacheRepo) FindByCNPJ(cnpj string) (models.Restaurant, error) {
	return r.inner.FindByCNPJ(cnpj)
}

func (r *RestaurantCacheRepo) Save(rest *models.Restaurant) error {
	if err := r.inner.Save(rest); err != nil {
		return err
	}
	r.kv.Put(restaurantKey(rest.ID), *rest)
	return nil
}

// Delete also evicts the restaurant's menu and every cached item of it, since
// the database drops them with the restaurant.
func (r *RestaurantCacheRepo) Delete(rest *models.Restaurant) error {
	if err := r.inner.Delete(rest); err != nil {
		return err
	}
	r.kv.Delete(restaurantKey(rest.ID))
	r.kv.Delete(menuKey(rest.ID))
	for k, v := range r.kv.Snapshot() {
		if item, ok := v.(models.MenuItem); ok && item.RestaurantID == rest.ID {
			r.kv.Delete(k)
		}
	}
	return nil
}
