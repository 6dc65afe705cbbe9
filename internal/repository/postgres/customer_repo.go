package postgres

import (
	"order-review-svc/internal/models"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

type CustomerPostgresRepo struct {
	db *gorm.DB
}

func NewCustomerPostgres(db *gorm.DB) *CustomerPostgresRepo {
	return &CustomerPostgresRepo{db: db}
}

func (r *CustomerPostgresRepo) FindByID(id uint) (models.Customer, error) {
	return r.findBy("id = ?", id)
}

func (r *CustomerPostgresRepo) FindByEmail(email string) (models.Customer, error) {
	return r.findBy("email = ?", email)
}

func (r *CustomerPostgresRepo) FindByCPF(cpf string) (models.Customer, error) {
	return r.findBy("cpf = ?", cpf)
}

func (r *CustomerPostgresRepo) Save(c *models.Customer) error {
	return errors.Wrap(r.db.Save(c).Error, "save customer")
}

// Delete removes the customer. Orders keep a customer alive; its reviews go
// with it.
func (r *CustomerPostgresRepo) Delete(c *models.Customer) error {
	return errors.Wrapf(inUse(r.db.Delete(c).Error), "delete customer %d", c.ID)
}

func (r *CustomerPostgresRepo) findBy(cond string, arg interface{}) (models.Customer, error) {
	var c models.Customer
	if err := r.db.Where(cond, arg).First(&c).Error; err != nil {
		return models.Customer{}, errors.Wrapf(notFound(err), "customer %s %v", cond, arg)
	}
	return c, nil
}
