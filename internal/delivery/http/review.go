package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"order-review-svc/internal/models"
	"order-review-svc/internal/service"
)

type reviewInput struct {
	Score   *float64 `json:"score"`
	Comment string   `json:"comment"`
}

// SubmitRestaurantReview
// @Summary SubmitRestaurantReview
// @Description Rates a restaurant from 1 to 5
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "restaurant id"
// @Param input body reviewInput true "review"
// @Success 201 {object} models.RestaurantReview
// @Failure 400,401,404 {object} errorResponse
// @Router /api/restaurants/{id}/reviews [post]
func (h *Handler) SubmitRestaurantReview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in reviewInput
	if !bindJSON(c, &in) {
		return
	}

	customerID, found, err := h.svc.FindCustomerIDByEmail(identity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		respondError(c, service.ErrUnknownCustomer)
		return
	}

	review, err := h.svc.SubmitRestaurantReview(&id, customerID, in.Score, in.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	h.emit(c, models.EventRestaurantReviewSubmitted, review.RestaurantID, review)
	c.JSON(http.StatusCreated, review)
}

// ListRestaurantReviews
// @Summary ListRestaurantReviews
// @Description Lists a restaurant's reviews with their average score
// @Tags reviews
// @Produce json
// @Param id path int true "restaurant id"
// @Success 200 {object} listResponse[models.RestaurantReview]
// @Failure 400,404 {object} errorResponse
// @Router /api/restaurants/{id}/reviews [get]
func (h *Handler) ListRestaurantReviews(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	reviews, err := h.svc.ListRestaurantReviews(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse[models.RestaurantReview]{
		Data:    reviews,
		Count:   len(reviews),
		Average: models.AverageScore(reviews),
	})
}

// SubmitDishReview
// @Summary SubmitDishReview
// @Description Rates a dish. Requires a completed order that contains it.
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "menu item id"
// @Param input body reviewInput true "review"
// @Success 201 {object} models.DishReview
// @Failure 400,401,404,422 {object} errorResponse
// @Router /api/dishes/{id}/reviews [post]
func (h *Handler) SubmitDishReview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in reviewInput
	if !bindJSON(c, &in) {
		return
	}

	review, err := h.svc.SubmitDishReview(id, identity(c), in.Score, in.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	h.emit(c, models.EventDishReviewSubmitted, review.MenuItemID, review)
	c.JSON(http.StatusCreated, review)
}

// ListDishReviews
// @Summary ListDishReviews
// @Description Lists a dish's reviews with their average score
// @Tags reviews
// @Produce json
// @Param id path int true "menu item id"
// @Success 200 {object} listResponse[models.DishReview]
// @Failure 400,404 {object} errorResponse
// @Router /api/dishes/{id}/reviews [get]
func (h *Handler) ListDishReviews(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	reviews, err := h.svc.ListDishReviews(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse[models.DishReview]{
		Data:    reviews,
		Count:   len(reviews),
		Average: models.AverageScore(reviews),
	})
}

// ListAllRestaurantReviews
// @Summary ListAllRestaurantReviews
// @Description Lists every restaurant review, newest first
// @Tags reviews
// @Produce json
// @Success 200 {object} listResponse[models.RestaurantReview]
// @Router /api/reviews/restaurants [get]
func (h *Handler) ListAllRestaurantReviews(c *gin.Context) {
	reviews, err := h.svc.ListAllRestaurantReviews()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse[models.RestaurantReview]{
		Data:    reviews,
		Count:   len(reviews),
		Average: models.AverageScore(reviews),
	})
}

// ListAllDishReviews
// @Summary ListAllDishReviews
// @Description Lists every dish review, newest first
// @Tags reviews
// @Produce json
// @Success 200 {object} listResponse[models.DishReview]
// @Router /api/reviews/dishes [get]
func (h *Handler) ListAllDishReviews(c *gin.Context) {
	reviews, err := h.svc.ListAllDishReviews()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse[models.DishReview]{
		Data:    reviews,
		Count:   len(reviews),
		Average: models.AverageScore(reviews),
	})
}
