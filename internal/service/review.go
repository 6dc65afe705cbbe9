package service

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"order-review-svc/internal/models"
	"order-review-svc/internal/repository"
)

func checkScore(score *float64, comment string) error {
	if score == nil {
		return ErrMissingScore
	}
	// NaN fails every comparison
	if !(*score >= models.MinScore && *score <= models.MaxScore) {
		return fmt.Errorf("%w: got %v", ErrScoreOutOfRange, *score)
	}
	if utf8.RuneCountInString(comment) > models.MaxCommentLength {
		return ErrCommentTooLong
	}
	return nil
}

// SubmitRestaurantReview validates the score before touching any directory.
func (s *Service) SubmitRestaurantReview(restaurantID *uint, customerID uint, score *float64, comment string) (models.RestaurantReview, error) {
	if err := checkScore(score, comment); err != nil {
		return models.RestaurantReview{}, err
	}
	if restaurantID == nil {
		return models.RestaurantReview{}, ErrMissingRestaurant
	}

	restaurant, err := s.restaurants.FindByID(*restaurantID)
	if err != nil {
		return models.RestaurantReview{}, absent(err, ErrUnknownRestaurant, *restaurantID)
	}
	customer, err := s.customers.FindByID(customerID)
	if err != nil {
		return models.RestaurantReview{}, absent(err, ErrUnknownCustomer, customerID)
	}

	r := models.RestaurantReview{
		Score:        *score,
		Comment:      comment,
		RestaurantID: restaurant.ID,
		CustomerID:   customer.ID,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.restaurantReviews.Save(&r); err != nil {
		return models.RestaurantReview{}, err
	}
	return r, nil
}

func (s *Service) ListRestaurantReviews(restaurantID uint) ([]models.RestaurantReview, error) {
	if _, err := s.restaurants.FindByID(restaurantID); err != nil {
		return nil, absent(err, ErrUnknownRestaurant, restaurantID)
	}
	return s.restaurantReviews.FindAllByRestaurant(restaurantID)
}

// FindCustomerIDByEmail reports false without an error when nobody has the email.
// ListAllRestaurantReviews returns every restaurant review, newest first.
func (s *Service) ListAllRestaurantReviews() ([]models.RestaurantReview, error) {
	return s.restaurantReviews.FindAll()
}

func (s *Service) FindCustomerIDByEmail(email string) (uint, bool, error) {
	c, err := s.customers.FindByEmail(email)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return c.ID, true, nil
}
