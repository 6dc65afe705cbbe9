package service_test

import (
	"errors"
	"time"

	"order-review-svc/internal/models"
	"order-review-svc/internal/repository"
	svc "order-review-svc/internal/service"
)

var errBoom = errors.New("connection reset")

type customerStub struct {
	rows      map[uint]models.Customer
	calls     int
	err       error
	deleteErr error
}

func (s *customerStub) FindByID(id uint) (models.Customer, error) {
	s.calls++
	if s.err != nil {
		return models.Customer{}, s.err
	}
	if c, ok := s.rows[id]; ok {
		return c, nil
	}
	return models.Customer{}, repository.ErrNotFound
}

func (s *customerStub) FindByEmail(email string) (models.Customer, error) {
	return s.find(func(c models.Customer) bool { return c.Email == email })
}

func (s *customerStub) FindByCPF(cpf string) (models.Customer, error) {
	return s.find(func(c models.Customer) bool { return c.CPF == cpf })
}

func (s *customerStub) find(match func(models.Customer) bool) (models.Customer, error) {
	s.calls++
	if s.err != nil {
		return models.Customer{}, s.err
	}
	for _, c := range s.rows {
		if match(c) {
			return c, nil
		}
	}
	return models.Customer{}, repository.ErrNotFound
}

func (s *customerStub) Save(c *models.Customer) error {
	if c.ID == 0 {
		c.ID = uint(len(s.rows) + 1)
	}
	s.rows[c.ID] = *c
	return nil
}

func (s *customerStub) Delete(c *models.Customer) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.rows, c.ID)
	return nil
}

type restaurantStub struct {
	rows      map[uint]models.Restaurant
	deleteErr error
}

func (s *restaurantStub) FindByID(id uint) (models.Restaurant, error) {
	if r, ok := s.rows[id]; ok {
		return r, nil
	}
	return models.Restaurant{}, repository.ErrNotFound
}

func (s *restaurantStub) FindByEmail(email string) (models.Restaurant, error) {
	for _, r := range s.rows {
		if r.Email == email {
			return r, nil
		}
	}
	return models.Restaurant{}, repository.ErrNotFound
}

func (s *restaurantStub) FindByCNPJ(cnpj string) (models.Restaurant, error) {
	for _, r := range s.rows {
		if r.CNPJ == cnpj {
			return r, nil
		}
	}
	return models.Restaurant{}, repository.ErrNotFound
}

func (s *restaurantStub) Save(r *models.Restaurant) error {
	if r.ID == 0 {
		r.ID = uint(len(s.rows) + 1)
	}
	s.rows[r.ID] = *r
	return nil
}

func (s *restaurantStub) Delete(r *models.Restaurant) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.rows, r.ID)
	return nil
}

type menuStub struct {
	rows      map[uint]models.MenuItem
	deleteErr error
}

func (s *menuStub) FindByID(id uint) (models.MenuItem, error) {
	if m, ok := s.rows[id]; ok {
		return m, nil
	}
	return models.MenuItem{}, repository.ErrNotFound
}

func (s *menuStub) FindAllByRestaurant(restaurantID uint) ([]models.MenuItem, error) {
	out := []models.MenuItem{}
	for _, m := range s.rows {
		if m.RestaurantID == restaurantID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *menuStub) Save(m *models.MenuItem) error {
	if m.ID == 0 {
		m.ID = uint(len(s.rows) + 100)
	}
	s.rows[m.ID] = *m
	return nil
}

func (s *menuStub) Delete(m *models.MenuItem) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.rows, m.ID)
	return nil
}

type orderStub struct {
	rows    map[uint]models.Order
	saved   []models.Order
	changes []models.OrderStatusChange
	saveErr error
}

func (s *orderStub) FindByID(id uint) (models.Order, error) {
	if o, ok := s.rows[id]; ok {
		return o, nil
	}
	return models.Order{}, repository.ErrNotFound
}

func (s *orderStub) FindAllByCustomer(customerID uint) ([]models.Order, error) {
	out := []models.Order{}
	for _, o := range s.rows {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *orderStub) Save(o *models.Order) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	if o.ID == 0 {
		o.ID = uint(len(s.rows) + 1)
	}
	if prev, ok := s.rows[o.ID]; ok {
		c := models.OrderStatusChange{ID: uint(len(s.changes) + 1), OrderID: o.ID, FromStatus: prev.Status, ToStatus: o.Status}
		if o.Customer != nil {
			c.ChangedBy = o.Customer.Email
		}
		s.changes = append(s.changes, c)
	}
	s.rows[o.ID] = *o
	s.saved = append(s.saved, *o)
	return nil
}

func (s *orderStub) StatusHistory(orderID uint) ([]models.OrderStatusChange, error) {
	out := []models.OrderStatusChange{}
	for _, c := range s.changes {
		if c.OrderID == orderID {
			out = append(out, c)
		}
	}
	return out, nil
}

type restaurantReviewStub struct {
	saved []models.RestaurantReview
}

func (s *restaurantReviewStub) Save(r *models.RestaurantReview) error {
	r.ID = uint(len(s.saved) + 1)
	s.saved = append(s.saved, *r)
	return nil
}

func (s *restaurantReviewStub) FindAllByRestaurant(restaurantID uint) ([]models.RestaurantReview, error) {
	out := []models.RestaurantReview{}
	for _, r := range s.saved {
		if r.RestaurantID == restaurantID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *restaurantReviewStub) FindAll() ([]models.RestaurantReview, error) {
	return append([]models.RestaurantReview{}, s.saved...), nil
}

type dishReviewStub struct {
	saved []models.DishReview
}

func (s *dishReviewStub) Save(r *models.DishReview) error {
	r.ID = uint(len(s.saved) + 1)
	s.saved = append(s.saved, *r)
	return nil
}

func (s *dishReviewStub) FindAllByMenuItem(menuItemID uint) ([]models.DishReview, error) {
	out := []models.DishReview{}
	for _, r := range s.saved {
		if r.MenuItemID == menuItemID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *dishReviewStub) FindAll() ([]models.DishReview, error) {
	return append([]models.DishReview{}, s.saved...), nil
}

// plainHasher keeps tests fast; bcrypt itself is covered in the auth package.
type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "hashed:" + p, nil }

func (plainHasher) Compare(hash, p string) error {
	if hash != "hashed:"+p {
		return errors.New("mismatch")
	}
	return nil
}

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	customers   *customerStub
	restaurants *restaurantStub
	menu        *menuStub
	orders      *orderStub
	restReviews *restaurantReviewStub
	dishReviews *dishReviewStub

	svc *svc.Service
}

// newFixture seeds two restaurants (1 and 20), their items (10 at R1, 11 at
// R20) and two customers.
func newFixture() *fixture {
	f := &fixture{
		customers: &customerStub{rows: map[uint]models.Customer{
			1: {ID: 1, Name: "Ana", Email: "owner@x.com", CPF: "11122233344", PasswordHash: "hashed:secret"},
			2: {ID: 2, Name: "Bia", Email: "other@x.com", CPF: "55566677788"},
		}},
		restaurants: &restaurantStub{rows: map[uint]models.Restaurant{
			1:  {ID: 1, Name: "Cantina", Email: "cantina@x.com", CNPJ: "11222333000181", PasswordHash: "hashed:pw"},
			20: {ID: 20, Name: "Sushi Bar", Email: "sushi@x.com", CNPJ: "99888777000166"},
		}},
		menu: &menuStub{rows: map[uint]models.MenuItem{
			10: {ID: 10, RestaurantID: 1, Name: "Lasagna"},
			11: {ID: 11, RestaurantID: 20, Name: "Temaki"},
		}},
		orders:      &orderStub{rows: map[uint]models.Order{}},
		restReviews: &restaurantReviewStub{},
		dishReviews: &dishReviewStub{},
	}
	f.svc = svc.NewService(&repository.Repository{
		Customers:         f.customers,
		Restaurants:       f.restaurants,
		MenuItems:         f.menu,
		Orders:            f.orders,
		RestaurantReviews: f.restReviews,
		DishReviews:       f.dishReviews,
	}, svc.WithClock(func() time.Time { return fixedNow }), svc.WithPasswordHasher(plainHasher{}))
	return f
}

func ptr[T any](v T) *T { return &v }
