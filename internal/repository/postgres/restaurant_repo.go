package postgres

import (
	"order-review-svc/internal/models"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

type RestaurantPostgresRepo struct {
	db *gorm.DB
}

func NewRestaurantPostgres(db *gorm.DB) *RestaurantPostgresRepo {
	return &RestaurantPostgresRepo{db: db}
}

func (r *RestaurantPostgresRepo) FindByID(id uint) (models.Restaurant, error) {
	return r.findBy("id = ?", id)
}

func (r *RestaurantPostgresRepo) FindByEmail(email string) (models.Restaurant, error) {
	return r.findBy("email = ?", email)
}

func (r *RestaurantPostgresRepo) FindByCNPJ(cnpj string) (models.Restaurant, error) {
	return r.findBy("cnpj = ?", cnpj)
}

func (r *RestaurantPostgresRepo) Save(rest *models.Restaurant) error {
	return errors.Wrap(r.db.Save(rest).Error, "save restaurant")
}

func (r *RestaurantPostgresRepo) Delete(rest *models.Restaurant) error {
	return errors.Wrapf(inUse(r.db.Delete(rest).Error), "delete restaurant %d", rest.ID)
}

func (r *RestaurantPostgresRepo) findBy(cond string, arg interface{}) (models.Restaurant, error) {
	var rest models.Restaurant
	if err := r.db.Where(cond, arg).First(&rest).Error; err != nil {
		return models.Restaurant{}, errors.Wrapf(notFound(err), "restaurant %s %v", cond, arg)
	}
	return rest, nil
}
