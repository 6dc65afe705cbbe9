package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"order-review-svc/internal/auth"
	"order-review-svc/internal/models"
	"order-review-svc/internal/service"
)

type registerCustomerInput struct {
	Name     string `json:"name"`
	CPF      string `json:"cpf"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Street   string `json:"street"`
	Number   string `json:"number"`
	District string `json:"district"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
}

type registerRestaurantInput struct {
	Name        string `json:"name"`
	CNPJ        string `json:"cnpj"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
	City        string `json:"city"`
	State       string `json:"state"`
}

// Blank fields keep their current value.
type updateCustomerInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Street   string `json:"street"`
	Number   string `json:"number"`
	District string `json:"district"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
}

type updateRestaurantInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
	City        string `json:"city"`
	State       string `json:"state"`
}

type loginInput struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
	ID    uint   `json:"id"`
	Name  string `json:"name"`
}

type menuItemInput struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" swaggertype:"number"`
}

// RegisterCustomer
// @Summary RegisterCustomer
// @Description Creates a customer account
// @Tags accounts
// @Accept json
// @Produce json
// @Param input body registerCustomerInput true "customer"
// @Success 201 {object} models.Customer
// @Failure 400,409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/customers [post]
func (h *Handler) RegisterCustomer(c *gin.Context) {
	var in registerCustomerInput
	if !bindJSON(c, &in) {
		return
	}
	cust, err := h.svc.RegisterCustomer(service.RegisterCustomerRequest(in))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cust)
}

// RegisterRestaurant
// @Summary RegisterRestaurant
// @Description Creates a restaurant account
// @Tags accounts
// @Accept json
// @Produce json
// @Param input body registerRestaurantInput true "restaurant"
// @Success 201 {object} models.Restaurant
// @Failure 400,409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/restaurants [post]
func (h *Handler) RegisterRestaurant(c *gin.Context) {
	var in registerRestaurantInput
	if !bindJSON(c, &in) {
		return
	}
	rest, err := h.svc.RegisterRestaurant(service.RegisterRestaurantRequest(in))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rest)
}

// LoginCustomer
// @Summary LoginCustomer
// @Description Exchanges customer credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginInput true "credentials"
// @Success 200 {object} loginResponse
// @Failure 400,403 {object} errorResponse
// @Router /api/auth/customers/login [post]
func (h *Handler) LoginCustomer(c *gin.Context) {
	var in loginInput
	if !bindJSON(c, &in) {
		return
	}
	cust, err := h.svc.AuthenticateCustomer(in.Email, in.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondToken(c, cust.Email, auth.RoleCustomer, cust.ID, cust.Name)
}

// LoginRestaurant
// @Summary LoginRestaurant
// @Description Exchanges restaurant credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginInput true "credentials"
// @Success 200 {object} loginResponse
// @Failure 400,403 {object} errorResponse
// @Router /api/auth/restaurants/login [post]
func (h *Handler) LoginRestaurant(c *gin.Context) {
	var in loginInput
	if !bindJSON(c, &in) {
		return
	}
	rest, err := h.svc.AuthenticateRestaurant(in.Email, in.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondToken(c, rest.Email, auth.RoleRestaurant, rest.ID, rest.Name)
}

func (h *Handler) respondToken(c *gin.Context, email string, role auth.Role, id uint, name string) {
	token, err := h.tokens.Issue(email, role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, loginResponse{Token: token, ID: id, Name: name})
}

// ListMenu
// @Summary ListMenu
// @Description Lists the menu items of a restaurant
// @Tags catalog
// @Produce json
// @Param id path int true "restaurant id"
// @Success 200 {object} listResponse[models.MenuItem]
// @Failure 400,404 {object} errorResponse
// @Router /api/restaurants/{id}/menu [get]
func (h *Handler) ListMenu(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	items, err := h.svc.ListMenu(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse[models.MenuItem]{Data: items, Count: len(items)})
}

// AddMenuItem
// @Summary AddMenuItem
// @Description Adds an item to the signed-in restaurant's menu
// @Tags catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body menuItemInput true "menu item"
// @Success 201 {object} models.MenuItem
// @Failure 400,401,404 {object} errorResponse
// @Router /api/restaurants/menu [post]
func (h *Handler) AddMenuItem(c *gin.Context) {
	var in menuItemInput
	if !bindJSON(c, &in) {
		return
	}
	item, err := h.svc.AddMenuItem(identity(c), service.AddMenuItemRequest{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetCustomer
// @Summary GetCustomer
// @Description Returns the signed-in customer's own account
// @Tags accounts
// @Security BearerAuth
// @Produce json
// @Param id path int true "customer id"
// @Success 200 {object} models.Customer
// @Failure 400,401,403,404 {object} errorResponse
// @Router /api/customers/{id} [get]
func (h *Handler) GetCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	cust, err := h.svc.GetCustomer(identity(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

// UpdateCustomer
// @Summary UpdateCustomer
// @Description Changes the signed-in customer's account. The CPF cannot change.
// @Tags accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "customer id"
// @Param input body updateCustomerInput true "fields to change"
// @Success 200 {object} models.Customer
// @Failure 400,401,403,404,409 {object} errorResponse
// @Router /api/customers/{id} [put]
func (h *Handler) UpdateCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in updateCustomerInput
	if !bindJSON(c, &in) {
		return
	}
	cust, err := h.svc.UpdateCustomer(identity(c), id, service.UpdateCustomerRequest(in))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

// DeleteCustomer
// @Summary DeleteCustomer
// @Description Deletes the signed-in customer's account unless it has orders
// @Tags accounts
// @Security BearerAuth
// @Param id path int true "customer id"
// @Success 204
// @Failure 400,401,403,404,409 {object} errorResponse
// @Router /api/customers/{id} [delete]
func (h *Handler) DeleteCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteCustomer(identity(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetRestaurant
// @Summary GetRestaurant
// @Description Returns a restaurant
// @Tags accounts
// @Produce json
// @Param id path int true "restaurant id"
// @Success 200 {object} models.Restaurant
// @Failure 400,404 {object} errorResponse
// @Router /api/restaurants/{id} [get]
func (h *Handler) GetRestaurant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rest, err := h.svc.GetRestaurant(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rest)
}

// UpdateRestaurant
// @Summary UpdateRestaurant
// @Description Changes the signed-in restaurant's account. The CNPJ cannot change.
// @Tags accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "restaurant id"
// @Param input body updateRestaurantInput true "fields to change"
// @Success 200 {object} models.Restaurant
// @Failure 400,401,403,404,409 {object} errorResponse
// @Router /api/restaurants/{id} [put]
func (h *Handler) UpdateRestaurant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in updateRestaurantInput
	if !bindJSON(c, &in) {
		return
	}
	rest, err := h.svc.UpdateRestaurant(identity(c), id, service.UpdateRestaurantRequest(in))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rest)
}

// DeleteRestaurant
// @Summary DeleteRestaurant
// @Description Deletes the signed-in restaurant with its menu unless it has orders
// @Tags accounts
// @Security BearerAuth
// @Param id path int true "restaurant id"
// @Success 204
// @Failure 400,401,403,404,409 {object} errorResponse
// @Router /api/restaurants/{id} [delete]
func (h *Handler) DeleteRestaurant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteRestaurant(identity(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetMenuItem
// @Summary GetMenuItem
// @Description Returns a menu item
// @Tags catalog
// @Produce json
// @Param id path int true "menu item id"
// @Success 200 {object} models.MenuItem
// @Failure 400,404 {object} errorResponse
// @Router /api/dishes/{id} [get]
func (h *Handler) GetMenuItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.svc.GetMenuItem(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateMenuItem
// @Summary UpdateMenuItem
// @Description Changes an item of the signed-in restaurant's menu
// @Tags catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "menu item id"
// @Param input body menuItemInput true "fields to change"
// @Success 200 {object} models.MenuItem
// @Failure 400,401,403,404 {object} errorResponse
// @Router /api/dishes/{id} [put]
func (h *Handler) UpdateMenuItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in menuItemInput
	if !bindJSON(c, &in) {
		return
	}
	item, err := h.svc.UpdateMenuItem(identity(c), id, service.UpdateMenuItemRequest(in))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem
// @Summary DeleteMenuItem
// @Description Removes an item from the signed-in restaurant's menu. Items that were ordered stay.
// @Tags catalog
// @Security BearerAuth
// @Param id path int true "menu item id"
// @Success 204
// @Failure 400,401,403,404,409 {object} errorResponse
// @Router /api/dishes/{id} [delete]
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteMenuItem(identity(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
