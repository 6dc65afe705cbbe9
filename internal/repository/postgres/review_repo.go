package postgres

import (
	"order-review-svc/internal/models"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

type RestaurantReviewPostgresRepo struct {
	db *gorm.DB
}

func NewRestaurantReviewPostgres(db *gorm.DB) *RestaurantReviewPostgresRepo {
	return &RestaurantReviewPostgresRepo{db: db}
}

func (r *RestaurantReviewPostgresRepo) Save(rev *models.RestaurantReview) error {
	return errors.Wrap(r.db.Create(rev).Error, "create restaurant review")
}

func (r *RestaurantReviewPostgresRepo) FindAllByRestaurant(restaurantID uint) ([]models.RestaurantReview, error) {
	out := []models.RestaurantReview{}
	err := r.db.Where("restaurant_id = ?", restaurantID).
		Order("created_at desc").
		Find(&out).Error
	return out, errors.Wrapf(err, "reviews of restaurant %d", restaurantID)
}

func (r *RestaurantReviewPostgresRepo) FindAll() ([]models.RestaurantReview, error) {
	out := []models.RestaurantReview{}
	err := r.db.Order("created_at desc").Find(&out).Error
	return out, errors.Wrap(err, "all restaurant reviews")
}

type DishReviewPostgresRepo struct {
	db *gorm.DB
}

func NewDishReviewPostgres(db *gorm.DB) *DishReviewPostgresRepo {
	return &DishReviewPostgresRepo{db: db}
}

func (r *DishReviewPostgresRepo) Save(rev *models.DishReview) error {
	return errors.Wrap(r.db.Create(rev).Error, "create dish review")
}

func (r *DishReviewPostgresRepo) FindAllByMenuItem(menuItemID uint) ([]models.DishReview, error) {
	out := []models.DishReview{}
	err := r.db.Where("menu_item_id = ?", menuItemID).
		Order("created_at desc").
		Find(&out).Error
	return out, errors.Wrapf(err, "reviews of menu item %d", menuItemID)
}

func (r *DishReviewPostgresRepo) FindAll() ([]models.DishReview, error) {
	out := []models.DishReview{}
	err := r.db.Order("created_at desc").Find(&out).Error
	return out, errors.Wrap(err, "all dish reviews")
}
