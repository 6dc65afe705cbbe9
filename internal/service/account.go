package service

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"order-review-svc/internal/models"
	"order-review-svc/internal/repository"

	"github.com/shopspring/decimal"
)

type RegisterCustomerRequest struct {
	Name     string
	CPF      string
	Email    string
	Password string
	Phone    string
	Street   string
	Number   string
	District string
	City     string
	State    string
	ZipCode  string
}

type RegisterRestaurantRequest struct {
	Name        string
	CNPJ        string
	Email       string
	Password    string
	Phone       string
	Description string
	City        string
	State       string
}

type AddMenuItemRequest struct {
	Name        string
	Description string
	Price       *decimal.Decimal
}

// Update requests leave a field untouched when it is empty. Documents are
// immutable once registered.
type UpdateCustomerRequest struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Street   string
	Number   string
	District string
	City     string
	State    string
	ZipCode  string
}

type UpdateRestaurantRequest struct {
	Name        string
	Email       string
	Password    string
	Phone       string
	Description string
	City        string
	State       string
}

type UpdateMenuItemRequest struct {
	Name        string
	Description string
	Price       *decimal.Decimal
}

// digitsOnly strips the usual document punctuation and reports whether what
// is left is exactly n digits.
func digitsOnly(doc string, n int) (string, bool) {
	clean := strings.NewReplacer(".", "", "-", "", "/", "", " ", "").Replace(doc)
	if len(clean) != n {
		return "", false
	}
	for _, r := range clean {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return clean, true
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// field is a value bounded by its column width.
type field struct {
	name  string
	value string
	max   int
}

// tooLong reports the first field whose value exceeds its width.
func tooLong(fields ...field) error {
	for _, f := range fields {
		if utf8.RuneCountInString(f.value) > f.max {
			return fmt.Errorf("%w: %s exceeds %d characters", ErrFieldTooLong, f.name, f.max)
		}
	}
	return nil
}

func checkPrice(p decimal.Decimal) error {
	if p.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativePrice, p.String())
	}
	if p.Round(2).GreaterThanOrEqual(models.MaxPrice) {
		return fmt.Errorf("%w: %s", ErrPriceTooHigh, p.String())
	}
	return nil
}

// keep returns next unless it is blank.
func keep(current, next string) string {
	if strings.TrimSpace(next) == "" {
		return current
	}
	return strings.TrimSpace(next)
}

// taken maps a successful lookup to the conflict error and a miss to nil.
func taken(err error, conflict *Error) error {
	if err == nil {
		return conflict
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}

func (s *Service) RegisterCustomer(req RegisterCustomerRequest) (models.Customer, error) {
	email := strings.TrimSpace(req.Email)
	if strings.TrimSpace(req.Name) == "" || req.CPF == "" || email == "" || req.Password == "" {
		return models.Customer{}, ErrMissingFields
	}
	cpf, ok := digitsOnly(req.CPF, 11)
	if !ok {
		return models.Customer{}, ErrInvalidCPF
	}
	if !validEmail(email) {
		return models.Customer{}, ErrInvalidEmail
	}
	if err := tooLong(
		field{"name", strings.TrimSpace(req.Name), models.MaxNameLength},
		field{"email", email, models.MaxEmailLength},
		field{"phone", req.Phone, models.MaxPhoneLength},
		field{"zip_code", req.ZipCode, models.MaxZipCodeLength},
	); err != nil {
		return models.Customer{}, err
	}

	_, err := s.customers.FindByCPF(cpf)
	if err := taken(err, ErrCPFTaken); err != nil {
		return models.Customer{}, err
	}
	_, err = s.customers.FindByEmail(email)
	if err := taken(err, ErrEmailTaken); err != nil {
		return models.Customer{}, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return models.Customer{}, err
	}
	c := models.Customer{
		Name:         strings.TrimSpace(req.Name),
		CPF:          cpf,
		Email:        email,
		PasswordHash: hash,
		Phone:        req.Phone,
		Street:       req.Street,
		Number:       req.Number,
		District:     req.District,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
	}
	if err := s.customers.Save(&c); err != nil {
		return models.Customer{}, err
	}
	return c, nil
}

func (s *Service) RegisterRestaurant(req RegisterRestaurantRequest) (models.Restaurant, error) {
	email := strings.TrimSpace(req.Email)
	if strings.TrimSpace(req.Name) == "" || req.CNPJ == "" || email == "" || req.Password == "" {
		return models.Restaurant{}, ErrMissingFields
	}
	cnpj, ok := digitsOnly(req.CNPJ, 14)
	if !ok {
		return models.Restaurant{}, ErrInvalidCNPJ
	}
	if !validEmail(email) {
		return models.Restaurant{}, ErrInvalidEmail
	}
	if err := tooLong(
		field{"name", strings.TrimSpace(req.Name), models.MaxNameLength},
		field{"email", email, models.MaxEmailLength},
		field{"phone", req.Phone, models.MaxPhoneLength},
	); err != nil {
		return models.Restaurant{}, err
	}

	_, err := s.restaurants.FindByCNPJ(cnpj)
	if err := taken(err, ErrCNPJTaken); err != nil {
		return models.Restaurant{}, err
	}
	_, err = s.restaurants.FindByEmail(email)
	if err := taken(err, ErrEmailTaken); err != nil {
		return models.Restaurant{}, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return models.Restaurant{}, err
	}
	r := models.Restaurant{
		Name:         strings.TrimSpace(req.Name),
		CNPJ:         cnpj,
		Email:        email,
		PasswordHash: hash,
		Phone:        req.Phone,
		Description:  req.Description,
		City:         req.City,
		State:        req.State,
	}
	if err := s.restaurants.Save(&r); err != nil {
		return models.Restaurant{}, err
	}
	return r, nil
}

func (s *Service) AuthenticateCustomer(email, password string) (models.Customer, error) {
	c, err := s.customers.FindByEmail(email)
	if err != nil {
		return models.Customer{}, absent(err, ErrInvalidCredentials, email)
	}
	if s.hasher.Compare(c.PasswordHash, password) != nil {
		return models.Customer{}, ErrInvalidCredentials
	}
	return c, nil
}

func (s *Service) AuthenticateRestaurant(email, password string) (models.Restaurant, error) {
	r, err := s.restaurants.FindByEmail(email)
	if err != nil {
		return models.Restaurant{}, absent(err, ErrInvalidCredentials, email)
	}
	if s.hasher.Compare(r.PasswordHash, password) != nil {
		return models.Restaurant{}, ErrInvalidCredentials
	}
	return r, nil
}

// AddMenuItem attaches a new item to the restaurant the caller signed in as.
func (s *Service) AddMenuItem(restaurantIdentity string, req AddMenuItemRequest) (models.MenuItem, error) {
	if strings.TrimSpace(req.Name) == "" || req.Price == nil {
		return models.MenuItem{}, ErrMissingFields
	}
	if err := checkPrice(*req.Price); err != nil {
		return models.MenuItem{}, err
	}
	if err := tooLong(field{"name", strings.TrimSpace(req.Name), models.MaxNameLength}); err != nil {
		return models.MenuItem{}, err
	}
	restaurant, err := s.restaurants.FindByEmail(restaurantIdentity)
	if err != nil {
		return models.MenuItem{}, absent(err, ErrUnknownRestaurant, restaurantIdentity)
	}

	m := models.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         strings.TrimSpace(req.Name),
		Price:        req.Price.Round(2),
		Description:  req.Description,
	}
	if err := s.menuItems.Save(&m); err != nil {
		return models.MenuItem{}, err
	}
	return m, nil
}

func (s *Service) ListMenu(restaurantID uint) ([]models.MenuItem, error) {
	if _, err := s.restaurants.FindByID(restaurantID); err != nil {
		return nil, absent(err, ErrUnknownRestaurant, restaurantID)
	}
	return s.menuItems.FindAllByRestaurant(restaurantID)
}

// customerFor loads customer id and checks it is the signed in caller.
func (s *Service) customerFor(callerIdentity string, id uint) (models.Customer, error) {
	c, err := s.customers.FindByID(id)
	if err != nil {
		return models.Customer{}, absent(err, ErrUnknownCustomer, id)
	}
	if c.Email != callerIdentity {
		return models.Customer{}, ErrNotAccountOwner
	}
	return c, nil
}

func (s *Service) GetCustomer(callerIdentity string, id uint) (models.Customer, error) {
	return s.customerFor(callerIdentity, id)
}

func (s *Service) UpdateCustomer(callerIdentity string, id uint, req UpdateCustomerRequest) (models.Customer, error) {
	c, err := s.customerFor(callerIdentity, id)
	if err != nil {
		return models.Customer{}, err
	}

	email := keep(c.Email, req.Email)
	if email != c.Email {
		if !validEmail(email) {
			return models.Customer{}, ErrInvalidEmail
		}
		_, err := s.customers.FindByEmail(email)
		if err := taken(err, ErrEmailTaken); err != nil {
			return models.Customer{}, err
		}
	}
	next := c
	next.Name = keep(c.Name, req.Name)
	next.Email = email
	next.Phone = keep(c.Phone, req.Phone)
	next.Street = keep(c.Street, req.Street)
	next.Number = keep(c.Number, req.Number)
	next.District = keep(c.District, req.District)
	next.City = keep(c.City, req.City)
	next.State = keep(c.State, req.State)
	next.ZipCode = keep(c.ZipCode, req.ZipCode)
	if err := tooLong(
		field{"name", next.Name, models.MaxNameLength},
		field{"email", next.Email, models.MaxEmailLength},
		field{"phone", next.Phone, models.MaxPhoneLength},
		field{"zip_code", next.ZipCode, models.MaxZipCodeLength},
	); err != nil {
		return models.Customer{}, err
	}
	if req.Password != "" {
		if next.PasswordHash, err = s.hasher.Hash(req.Password); err != nil {
			return models.Customer{}, err
		}
	}

	if err := s.customers.Save(&next); err != nil {
		return models.Customer{}, err
	}
	return next, nil
}

// DeleteCustomer removes the caller's account. Customers with orders are kept.
func (s *Service) DeleteCustomer(callerIdentity string, id uint) error {
	c, err := s.customerFor(callerIdentity, id)
	if err != nil {
		return err
	}
	if err := s.customers.Delete(&c); err != nil {
		if errors.Is(err, repository.ErrInUse) {
			return fmt.Errorf("%w: customer %d", ErrAccountInUse, id)
		}
		return err
	}
	return nil
}

func (s *Service) GetRestaurant(id uint) (models.Restaurant, error) {
	r, err := s.restaurants.FindByID(id)
	if err != nil {
		return models.Restaurant{}, absent(err, ErrUnknownRestaurant, id)
	}
	return r, nil
}

func (s *Service) restaurantFor(callerIdentity string, id uint) (models.Restaurant, error) {
	r, err := s.GetRestaurant(id)
	if err != nil {
		return models.Restaurant{}, err
	}
	if r.Email != callerIdentity {
		return models.Restaurant{}, ErrNotAccountOwner
	}
	return r, nil
}

func (s *Service) UpdateRestaurant(callerIdentity string, id uint, req UpdateRestaurantRequest) (models.Restaurant, error) {
	r, err := s.restaurantFor(callerIdentity, id)
	if err != nil {
		return models.Restaurant{}, err
	}

	email := keep(r.Email, req.Email)
	if email != r.Email {
		if !validEmail(email) {
			return models.Restaurant{}, ErrInvalidEmail
		}
		_, err := s.restaurants.FindByEmail(email)
		if err := taken(err, ErrEmailTaken); err != nil {
			return models.Restaurant{}, err
		}
	}
	next := r
	next.Name = keep(r.Name, req.Name)
	next.Email = email
	next.Phone = keep(r.Phone, req.Phone)
	next.Description = keep(r.Description, req.Description)
	next.City = keep(r.City, req.City)
	next.State = keep(r.State, req.State)
	if err := tooLong(
		field{"name", next.Name, models.MaxNameLength},
		field{"email", next.Email, models.MaxEmailLength},
		field{"phone", next.Phone, models.MaxPhoneLength},
	); err != nil {
		return models.Restaurant{}, err
	}
	if req.Password != "" {
		if next.PasswordHash, err = s.hasher.Hash(req.Password); err != nil {
			return models.Restaurant{}, err
		}
	}

	if err := s.restaurants.Save(&next); err != nil {
		return models.Restaurant{}, err
	}
	return next, nil
}

// DeleteRestaurant removes the caller's restaurant together with its menu and
// reviews. Restaurants that received orders are kept.
func (s *Service) DeleteRestaurant(callerIdentity string, id uint) error {
	r, err := s.restaurantFor(callerIdentity, id)
	if err != nil {
		return err
	}
	if err := s.restaurants.Delete(&r); err != nil {
		if errors.Is(err, repository.ErrInUse) {
			return fmt.Errorf("%w: restaurant %d", ErrAccountInUse, id)
		}
		return err
	}
	return nil
}

func (s *Service) GetMenuItem(id uint) (models.MenuItem, error) {
	m, err := s.menuItems.FindByID(id)
	if err != nil {
		return models.MenuItem{}, absent(err, ErrUnknownMenuItem, id)
	}
	return m, nil
}

func (s *Service) menuItemFor(restaurantIdentity string, id uint) (models.MenuItem, error) {
	m, err := s.GetMenuItem(id)
	if err != nil {
		return models.MenuItem{}, err
	}
	owner, err := s.restaurants.FindByEmail(restaurantIdentity)
	if err != nil {
		return models.MenuItem{}, absent(err, ErrUnknownRestaurant, restaurantIdentity)
	}
	if owner.ID != m.RestaurantID {
		return models.MenuItem{}, ErrNotMenuItemOwner
	}
	return m, nil
}

func (s *Service) UpdateMenuItem(restaurantIdentity string, id uint, req UpdateMenuItemRequest) (models.MenuItem, error) {
	m, err := s.menuItemFor(restaurantIdentity, id)
	if err != nil {
		return models.MenuItem{}, err
	}
	next := m
	next.Name = keep(m.Name, req.Name)
	next.Description = keep(m.Description, req.Description)
	if err := tooLong(field{"name", next.Name, models.MaxNameLength}); err != nil {
		return models.MenuItem{}, err
	}
	if req.Price != nil {
		if err := checkPrice(*req.Price); err != nil {
			return models.MenuItem{}, err
		}
		next.Price = req.Price.Round(2)
	}
	if err := s.menuItems.Save(&next); err != nil {
		return models.MenuItem{}, err
	}
	return next, nil
}

// DeleteMenuItem refuses items that appear on any order line, since order
// totals are built from them.
func (s *Service) DeleteMenuItem(restaurantIdentity string, id uint) error {
	m, err := s.menuItemFor(restaurantIdentity, id)
	if err != nil {
		return err
	}
	if err := s.menuItems.Delete(&m); err != nil {
		if errors.Is(err, repository.ErrInUse) {
			return fmt.Errorf("%w: menu item %d", ErrMenuItemOrdered, id)
		}
		return err
	}
	return nil
}
