package http_test

import (
	"context"
	"errors"
	"sync"

	"order-review-svc/internal/models"
	"order-review-svc/internal/service"
)

var errNotStubbed = errors.New("not implemented")

type svcStub struct {
	placeOrder   func(caller string, req service.PlaceOrderRequest) (models.Order, error)
	updateStatus func(id uint, st models.Status, caller string) (models.Order, error)
	listOrders   func(caller string) ([]models.Order, error)
	orderHistory func(id uint, caller string) ([]models.OrderStatusChange, error)

	submitRestaurantReview func(rid *uint, cid uint, score *float64, comment string) (models.RestaurantReview, error)
	listRestaurantReviews  func(rid uint) ([]models.RestaurantReview, error)
	findCustomerID         func(email string) (uint, bool, error)
	submitDishReview       func(did uint, caller string, score *float64, comment string) (models.DishReview, error)
	listDishReviews        func(did uint) ([]models.DishReview, error)
	allRestaurantReviews   func() ([]models.RestaurantReview, error)
	allDishReviews         func() ([]models.DishReview, error)

	registerCustomer   func(req service.RegisterCustomerRequest) (models.Customer, error)
	registerRestaurant func(req service.RegisterRestaurantRequest) (models.Restaurant, error)
	authCustomer       func(email, pw string) (models.Customer, error)
	authRestaurant     func(email, pw string) (models.Restaurant, error)
	addMenuItem        func(caller string, req service.AddMenuItemRequest) (models.MenuItem, error)
	listMenu           func(rid uint) ([]models.MenuItem, error)

	getCustomer      func(caller string, id uint) (models.Customer, error)
	updateCustomer   func(caller string, id uint, req service.UpdateCustomerRequest) (models.Customer, error)
	deleteCustomer   func(caller string, id uint) error
	getRestaurant    func(id uint) (models.Restaurant, error)
	updateRestaurant func(caller string, id uint, req service.UpdateRestaurantRequest) (models.Restaurant, error)
	deleteRestaurant func(caller string, id uint) error
	getMenuItem      func(id uint) (models.MenuItem, error)
	updateMenuItem   func(caller string, id uint, req service.UpdateMenuItemRequest) (models.MenuItem, error)
	deleteMenuItem   func(caller string, id uint) error
}

var _ service.UseCases = (*svcStub)(nil)

func (s *svcStub) PlaceOrder(caller string, req service.PlaceOrderRequest) (models.Order, error) {
	if s.placeOrder != nil {
		return s.placeOrder(caller, req)
	}
	return models.Order{}, errNotStubbed
}

func (s *svcStub) UpdateStatus(id uint, st models.Status, caller string) (models.Order, error) {
	if s.updateStatus != nil {
		return s.updateStatus(id, st, caller)
	}
	return models.Order{}, errNotStubbed
}

func (s *svcStub) ListCustomerOrders(caller string) ([]models.Order, error) {
	if s.listOrders != nil {
		return s.listOrders(caller)
	}
	return nil, errNotStubbed
}

func (s *svcStub) HandleStatusCommand(context.Context, string, []byte) error { return nil }

func (s *svcStub) SubmitRestaurantReview(rid *uint, cid uint, score *float64, comment string) (models.RestaurantReview, error) {
	if s.submitRestaurantReview != nil {
		return s.submitRestaurantReview(rid, cid, score, comment)
	}
	return models.RestaurantReview{}, errNotStubbed
}

func (s *svcStub) ListRestaurantReviews(rid uint) ([]models.RestaurantReview, error) {
	if s.listRestaurantReviews != nil {
		return s.listRestaurantReviews(rid)
	}
	return nil, errNotStubbed
}

func (s *svcStub) FindCustomerIDByEmail(email string) (uint, bool, error) {
	if s.findCustomerID != nil {
		return s.findCustomerID(email)
	}
	return 0, false, errNotStubbed
}

func (s *svcStub) SubmitDishReview(did uint, caller string, score *float64, comment string) (models.DishReview, error) {
	if s.submitDishReview != nil {
		return s.submitDishReview(did, caller, score, comment)
	}
	return models.DishReview{}, errNotStubbed
}

func (s *svcStub) ListDishReviews(did uint) ([]models.DishReview, error) {
	if s.listDishReviews != nil {
		return s.listDishReviews(did)
	}
	return nil, errNotStubbed
}

func (s *svcStub) RegisterCustomer(req service.RegisterCustomerRequest) (models.Customer, error) {
	if s.registerCustomer != nil {
		return s.registerCustomer(req)
	}
	return models.Customer{}, errNotStubbed
}

func (s *svcStub) RegisterRestaurant(req service.RegisterRestaurantRequest) (models.Restaurant, error) {
	if s.registerRestaurant != nil {
		return s.registerRestaurant(req)
	}
	return models.Restaurant{}, errNotStubbed
}

func (s *svcStub) AuthenticateCustomer(email, pw string) (models.Customer, error) {
	if s.authCustomer != nil {
		return s.authCustomer(email, pw)
	}
	return models.Customer{}, errNotStubbed
}

func (s *svcStub) AuthenticateRestaurant(email, pw string) (models.Restaurant, error) {
	if s.authRestaurant != nil {
		return s.authRestaurant(email, pw)
	}
	return models.Restaurant{}, errNotStubbed
}

func (s *svcStub) AddMenuItem(caller string, req service.AddMenuItemRequest) (models.MenuItem, error) {
	if s.addMenuItem != nil {
		return s.addMenuItem(caller, req)
	}
	return models.MenuItem{}, errNotStubbed
}

func (s *svcStub) ListMenu(rid uint) ([]models.MenuItem, error) {
	if s.listMenu != nil {
		return s.listMenu(rid)
	}
	return nil, errNotStubbed
}

func (s *svcStub) OrderHistory(id uint, caller string) ([]models.OrderStatusChange, error) {
	if s.orderHistory != nil {
		return s.orderHistory(id, caller)
	}
	return nil, errNotStubbed
}

func (s *svcStub) ListAllRestaurantReviews() ([]models.RestaurantReview, error) {
	if s.allRestaurantReviews != nil {
		return s.allRestaurantReviews()
	}
	return nil, errNotStubbed
}

func (s *svcStub) ListAllDishReviews() ([]models.DishReview, error) {
	if s.allDishReviews != nil {
		return s.allDishReviews()
	}
	return nil, errNotStubbed
}

func (s *svcStub) GetCustomer(caller string, id uint) (models.Customer, error) {
	if s.getCustomer != nil {
		return s.getCustomer(caller, id)
	}
	return models.Customer{}, errNotStubbed
}

func (s *svcStub) UpdateCustomer(caller string, id uint, req service.UpdateCustomerRequest) (models.Customer, error) {
	if s.updateCustomer != nil {
		return s.updateCustomer(caller, id, req)
	}
	return models.Customer{}, errNotStubbed
}

func (s *svcStub) DeleteCustomer(caller string, id uint) error {
	if s.deleteCustomer != nil {
		return s.deleteCustomer(caller, id)
	}
	return errNotStubbed
}

func (s *svcStub) GetRestaurant(id uint) (models.Restaurant, error) {
	if s.getRestaurant != nil {
		return s.getRestaurant(id)
	}
	return models.Restaurant{}, errNotStubbed
}

func (s *svcStub) UpdateRestaurant(caller string, id uint, req service.UpdateRestaurantRequest) (models.Restaurant, error) {
	if s.updateRestaurant != nil {
		return s.updateRestaurant(caller, id, req)
	}
	return models.Restaurant{}, errNotStubbed
}

func (s *svcStub) DeleteRestaurant(caller string, id uint) error {
	if s.deleteRestaurant != nil {
		return s.deleteRestaurant(caller, id)
	}
	return errNotStubbed
}

func (s *svcStub) GetMenuItem(id uint) (models.MenuItem, error) {
	if s.getMenuItem != nil {
		return s.getMenuItem(id)
	}
	return models.MenuItem{}, errNotStubbed
}

func (s *svcStub) UpdateMenuItem(caller string, id uint, req service.UpdateMenuItemRequest) (models.MenuItem, error) {
	if s.updateMenuItem != nil {
		return s.updateMenuItem(caller, id, req)
	}
	return models.MenuItem{}, errNotStubbed
}

func (s *svcStub) DeleteMenuItem(caller string, id uint) error {
	if s.deleteMenuItem != nil {
		return s.deleteMenuItem(caller, id)
	}
	return errNotStubbed
}

type emitted struct {
	Type models.EventType
	Key  string
}

type eventsStub struct {
	mu  sync.Mutex
	got []emitted
	err error
}

func (e *eventsStub) Emit(_ context.Context, t models.EventType, key string, _ any) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.got = append(e.got, emitted{Type: t, Key: key})
	return e.err
}
