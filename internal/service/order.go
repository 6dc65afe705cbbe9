package service

import (
	"context"
	"encoding/json"
	"fmt"

	"order-review-svc/internal/models"
)

type PlaceOrderRequest struct {
	RestaurantID *uint
	Lines        []LineRequest
	Note         string
}

type LineRequest struct {
	MenuItemID         uint
	Quantity           int
	Note               string
	RemovedIngredients string
	AddedIngredients   string
}

// PlaceOrder checks the request against the directories in a fixed order and
// stops at the first failure. Nothing is written unless every line is valid.
func (s *Service) PlaceOrder(callerIdentity string, req PlaceOrderRequest) (models.Order, error) {
	if req.RestaurantID == nil {
		return models.Order{}, ErrMissingRestaurant
	}
	if len(req.Lines) == 0 {
		return models.Order{}, ErrEmptyOrder
	}

	customer, err := s.customers.FindByEmail(callerIdentity)
	if err != nil {
		return models.Order{}, absent(err, ErrUnknownCustomer, callerIdentity)
	}
	restaurant, err := s.restaurants.FindByID(*req.RestaurantID)
	if err != nil {
		return models.Order{}, absent(err, ErrUnknownRestaurant, *req.RestaurantID)
	}

	lines := make([]models.OrderLine, 0, len(req.Lines))
	for i, l := range req.Lines {
		item, err := s.menuItems.FindByID(l.MenuItemID)
		if err != nil {
			return models.Order{}, absent(err, ErrUnknownMenuItem, l.MenuItemID)
		}
		if item.RestaurantID != restaurant.ID {
			return models.Order{}, fmt.Errorf("%w: item %d, line %d", ErrMenuItemNotInRestaurant, item.ID, i)
		}
		if l.Quantity < 1 || l.Quantity > models.MaxLineQuantity {
			return models.Order{}, fmt.Errorf("%w: line %d", ErrInvalidQuantity, i)
		}
		lines = append(lines, models.OrderLine{
			MenuItemID:         item.ID,
			Quantity:           l.Quantity,
			Note:               l.Note,
			RemovedIngredients: l.RemovedIngredients,
			AddedIngredients:   l.AddedIngredients,
		})
	}

	o := models.Order{
		CustomerID:   customer.ID,
		RestaurantID: restaurant.ID,
		Status:       models.StatusNew,
		Note:         req.Note,
		CreatedAt:    s.now().UTC(),
		Lines:        lines,
	}
	if err := s.orders.Save(&o); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

// UpdateStatus lets the customer who placed the order set any non-blank status.
func (s *Service) UpdateStatus(orderID uint, newStatus models.Status, callerIdentity string) (models.Order, error) {
	if newStatus.IsBlank() {
		return models.Order{}, ErrMissingStatus
	}

	o, err := s.orders.FindByID(orderID)
	if err != nil {
		return models.Order{}, absent(err, ErrUnknownOrder, orderID)
	}
	owner, err := s.ownerOf(o)
	if err != nil {
		return models.Order{}, err
	}
	if owner.Email != callerIdentity {
		return models.Order{}, fmt.Errorf("%w: order %d", ErrNotOrderOwner, orderID)
	}

	o.Customer = &owner
	o.Status = newStatus
	if err := s.orders.Save(&o); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

// ownerOf uses the preloaded customer when the directory provided one.
func (s *Service) ownerOf(o models.Order) (models.Customer, error) {
	if o.Customer != nil {
		return *o.Customer, nil
	}
	c, err := s.customers.FindByID(o.CustomerID)
	if err != nil {
		return models.Customer{}, absent(err, ErrUnknownCustomer, o.CustomerID)
	}
	return c, nil
}

// OrderHistory returns the status changes of an order, oldest first. Only the
// customer who placed it may read them.
func (s *Service) OrderHistory(orderID uint, callerIdentity string) ([]models.OrderStatusChange, error) {
	o, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, absent(err, ErrUnknownOrder, orderID)
	}
	owner, err := s.ownerOf(o)
	if err != nil {
		return nil, err
	}
	if owner.Email != callerIdentity {
		return nil, fmt.Errorf("%w: order %d", ErrNotOrderViewer, orderID)
	}
	return s.orders.StatusHistory(orderID)
}

func (s *Service) ListCustomerOrders(callerIdentity string) ([]models.Order, error) {
	customer, err := s.customers.FindByEmail(callerIdentity)
	if err != nil {
		return nil, absent(err, ErrUnknownCustomer, callerIdentity)
	}
	return s.orders.FindAllByCustomer(customer.ID)
}

// StatusCommand is the message body read from the commands topic. The caller
// is never taken from the body; the transport authenticates it.
type StatusCommand struct {
	OrderID uint          `json:"order_id"`
	Status  models.Status `json:"status"`
}

func (s *Service) HandleStatusCommand(ctx context.Context, callerIdentity string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var cmd StatusCommand
	if err := json.Unmarshal(payload, &cmd); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	_, err := s.UpdateStatus(cmd.OrderID, cmd.Status, callerIdentity)
	return err
}
