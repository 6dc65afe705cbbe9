package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"order-review-svc/internal/models"
	"order-review-svc/internal/service"
)

type orderLineInput struct {
	MenuItemID         uint   `json:"menuItemId"`
	Quantity           int    `json:"quantity"`
	Note               string `json:"note"`
	RemovedIngredients string `json:"removedIngredients"`
	AddedIngredients   string `json:"addedIngredients"`
}

type placeOrderInput struct {
	RestaurantID *uint            `json:"restaurantId"`
	Items        []orderLineInput `json:"items"`
	Note         string           `json:"note"`
}

type statusInput struct {
	Status models.Status `json:"status"`
}

// PlaceOrder
// @Summary PlaceOrder
// @Description Places an order for the signed-in customer. Every item must belong to the chosen restaurant.
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body placeOrderInput true "order"
// @Success 201 {object} models.Order
// @Failure 400,401,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders [post]
func (h *Handler) PlaceOrder(c *gin.Context) {
	var in placeOrderInput
	if !bindJSON(c, &in) {
		return
	}

	req := service.PlaceOrderRequest{RestaurantID: in.RestaurantID, Note: in.Note}
	for _, it := range in.Items {
		req.Lines = append(req.Lines, service.LineRequest(it))
	}

	order, err := h.svc.PlaceOrder(identity(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.emit(c, models.EventOrderPlaced, order.ID, order)
	c.JSON(http.StatusCreated, order)
}

// ListOrders
// @Summary ListOrders
// @Description Lists the signed-in customer's orders, newest first
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} listResponse[models.Order]
// @Failure 401,404 {object} errorResponse
// @Router /api/orders [get]
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.svc.ListCustomerOrders(identity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse[models.Order]{Data: orders, Count: len(orders)})
}

// UpdateStatus
// @Summary UpdateStatus
// @Description Sets the status of an order. Only the customer who placed it may do so.
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "order id"
// @Param input body statusInput true "new status"
// @Success 200 {object} models.Order
// @Failure 400,401,403,404 {object} errorResponse
// @Router /api/orders/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in statusInput
	if !bindJSON(c, &in) {
		return
	}

	order, err := h.svc.UpdateStatus(id, in.Status, identity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	h.emit(c, models.EventOrderStatusChanged, order.ID, order)
	c.JSON(http.StatusOK, order)
}

// OrderHistory
// @Summary OrderHistory
// @Description Lists the status changes of an order, oldest first. Only the customer who placed it may see them.
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "order id"
// @Success 200 {object} listResponse[models.OrderStatusChange]
// @Failure 400,401,403,404 {object} errorResponse
// @Router /api/orders/{id}/history [get]
func (h *Handler) OrderHistory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	history, err := h.svc.OrderHistory(id, identity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse[models.OrderStatusChange]{Data: history, Count: len(history)})
}
