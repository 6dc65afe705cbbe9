package repository

import (
	"order-review-svc/internal/models"
	"order-review-svc/internal/repository/postgres"
)

// ErrNotFound is returned by every directory lookup when the record is absent.
var ErrNotFound = postgres.ErrNotFound

// ErrInUse is returned by Delete while other records still reference the row.
var ErrInUse = postgres.ErrInUse

type CustomerDirectory interface {
	FindByID(id uint) (models.Customer, error)
	FindByEmail(email string) (models.Customer, error)
	FindByCPF(cpf string) (models.Customer, error)
	Save(c *models.Customer) error
	Delete(c *models.Customer) error
}

type RestaurantDirectory interface {
	FindByID(id uint) (models.Restaurant, error)
	FindByEmail(email string) (models.Restaurant, error)
	FindByCNPJ(cnpj string) (models.Restaurant, error)
	Save(r *models.Restaurant) error
	Delete(r *models.Restaurant) error
}

type MenuItemDirectory interface {
	FindByID(id uint) (models.MenuItem, error)
	FindAllByRestaurant(restaurantID uint) ([]models.MenuItem, error)
	Save(m *models.MenuItem) error
	Delete(m *models.MenuItem) error
}

// OrderDirectory persists an order together with its lines. FindAllByCustomer
// returns the newest orders first. Every status change saved is recorded and
// returned by StatusHistory, oldest first.
type OrderDirectory interface {
	FindByID(id uint) (models.Order, error)
	FindAllByCustomer(customerID uint) ([]models.Order, error)
	Save(o *models.Order) error
	StatusHistory(orderID uint) ([]models.OrderStatusChange, error)
}

type RestaurantReviewDirectory interface {
	Save(r *models.RestaurantReview) error
	FindAllByRestaurant(restaurantID uint) ([]models.RestaurantReview, error)
	FindAll() ([]models.RestaurantReview, error)
}

type DishReviewDirectory interface {
	Save(r *models.DishReview) error
	FindAllByMenuItem(menuItemID uint) ([]models.DishReview, error)
	FindAll() ([]models.DishReview, error)
}

type Repository struct {
	Customers         CustomerDirectory
	Restaurants       RestaurantDirectory
	MenuItems         MenuItemDirectory
	Orders            OrderDirectory
	RestaurantReviews RestaurantReviewDirectory
	DishReviews       DishReviewDirectory
}
