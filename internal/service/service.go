package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"order-review-svc/internal/auth"
	"order-review-svc/internal/models"
	"order-review-svc/internal/repository"
)

type Orders interface {
	PlaceOrder(callerIdentity string, req PlaceOrderRequest) (models.Order, error)
	UpdateStatus(orderID uint, newStatus models.Status, callerIdentity string) (models.Order, error)
	ListCustomerOrders(callerIdentity string) ([]models.Order, error)
	OrderHistory(orderID uint, callerIdentity string) ([]models.OrderStatusChange, error)

	HandleStatusCommand(ctx context.Context, callerIdentity string, payload []byte) error
}

type Reviews interface {
	SubmitRestaurantReview(restaurantID *uint, customerID uint, score *float64, comment string) (models.RestaurantReview, error)
	ListRestaurantReviews(restaurantID uint) ([]models.RestaurantReview, error)
	ListAllRestaurantReviews() ([]models.RestaurantReview, error)
	FindCustomerIDByEmail(email string) (uint, bool, error)

	SubmitDishReview(dishID uint, customerIdentity string, score *float64, comment string) (models.DishReview, error)
	ListDishReviews(dishID uint) ([]models.DishReview, error)
	ListAllDishReviews() ([]models.DishReview, error)
}

type Accounts interface {
	RegisterCustomer(req RegisterCustomerRequest) (models.Customer, error)
	RegisterRestaurant(req RegisterRestaurantRequest) (models.Restaurant, error)
	AuthenticateCustomer(email, password string) (models.Customer, error)
	AuthenticateRestaurant(email, password string) (models.Restaurant, error)

	GetCustomer(callerIdentity string, id uint) (models.Customer, error)
	UpdateCustomer(callerIdentity string, id uint, req UpdateCustomerRequest) (models.Customer, error)
	DeleteCustomer(callerIdentity string, id uint) error

	GetRestaurant(id uint) (models.Restaurant, error)
	UpdateRestaurant(callerIdentity string, id uint, req UpdateRestaurantRequest) (models.Restaurant, error)
	DeleteRestaurant(callerIdentity string, id uint) error

	AddMenuItem(restaurantIdentity string, req AddMenuItemRequest) (models.MenuItem, error)
	ListMenu(restaurantID uint) ([]models.MenuItem, error)
	GetMenuItem(id uint) (models.MenuItem, error)
	UpdateMenuItem(restaurantIdentity string, id uint, req UpdateMenuItemRequest) (models.MenuItem, error)
	DeleteMenuItem(restaurantIdentity string, id uint) error
}

// UseCases is everything the transports need.
type UseCases interface {
	Orders
	Reviews
	Accounts
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type Service struct {
	customers         repository.CustomerDirectory
	restaurants       repository.RestaurantDirectory
	menuItems         repository.MenuItemDirectory
	orders            repository.OrderDirectory
	restaurantReviews repository.RestaurantReviewDirectory
	dishReviews       repository.DishReviewDirectory

	hasher PasswordHasher
	now    func() time.Time
}

var _ UseCases = (*Service)(nil)

type Option func(*Service)

func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func WithPasswordHasher(h PasswordHasher) Option { return func(s *Service) { s.hasher = h } }

func NewService(repo *repository.Repository, opts ...Option) *Service {
	s := &Service{
		customers:         repo.Customers,
		restaurants:       repo.Restaurants,
		menuItems:         repo.MenuItems,
		orders:            repo.Orders,
		restaurantReviews: repo.RestaurantReviews,
		dishReviews:       repo.DishReviews,
		hasher:            auth.BcryptHasher{},
		now:               time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// absent turns a directory miss into the domain error, keeping the lookup key
// in the message. Any other failure is passed through as is.
func absent(err error, domain *Error, key any) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %v", domain, key)
	}
	return err
}
