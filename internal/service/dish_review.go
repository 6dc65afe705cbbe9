package service

import (
	"fmt"

	"order-review-svc/internal/models"
)

// SubmitDishReview accepts a review only from a customer who has a completed
// order containing the dish.
func (s *Service) SubmitDishReview(dishID uint, customerIdentity string, score *float64, comment string) (models.DishReview, error) {
	if err := checkScore(score, comment); err != nil {
		return models.DishReview{}, err
	}

	dish, err := s.menuItems.FindByID(dishID)
	if err != nil {
		return models.DishReview{}, absent(err, ErrUnknownMenuItem, dishID)
	}
	customer, err := s.customers.FindByEmail(customerIdentity)
	if err != nil {
		return models.DishReview{}, absent(err, ErrUnknownCustomer, customerIdentity)
	}

	ok, err := s.hasCompletedOrderWith(customer.ID, dish.ID)
	if err != nil {
		return models.DishReview{}, err
	}
	if !ok {
		return models.DishReview{}, fmt.Errorf("%w: dish %d", ErrReviewNotEligible, dish.ID)
	}

	r := models.DishReview{
		Score:      *score,
		Comment:    comment,
		MenuItemID: dish.ID,
		CustomerID: customer.ID,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.dishReviews.Save(&r); err != nil {
		return models.DishReview{}, err
	}
	return r, nil
}

func (s *Service) hasCompletedOrderWith(customerID, dishID uint) (bool, error) {
	orders, err := s.orders.FindAllByCustomer(customerID)
	if err != nil {
		return false, err
	}
	for _, o := range orders {
		if o.Status == models.StatusCompleted && o.Contains(dishID) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) ListDishReviews(dishID uint) ([]models.DishReview, error) {
	if _, err := s.menuItems.FindByID(dishID); err != nil {
		return nil, absent(err, ErrUnknownMenuItem, dishID)
	}
	return s.dishReviews.FindAllByMenuItem(dishID)
}

// ListAllDishReviews returns every dish review, newest first.
func (s *Service) ListAllDishReviews() ([]models.DishReview, error) {
	return s.dishReviews.FindAll()
}
