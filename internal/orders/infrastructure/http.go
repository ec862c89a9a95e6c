package infrastructure

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-shop/internal/orders/application"
	"go-shop/internal/orders/domain"
	"go-shop/pkg/errors"
	"go-shop/pkg/middleware"
)

// HTTPHandler handles HTTP requests for orders
type HTTPHandler struct {
	useCase *application.OrderUseCase
}

// NewHTTPHandler creates a new HTTP handler
func NewHTTPHandler(useCase *application.OrderUseCase) *HTTPHandler {
	return &HTTPHandler{useCase: useCase}
}

// RegisterRoutes registers the order routes
func (h *HTTPHandler) RegisterRoutes(r *gin.RouterGroup) {
	orders := r.Group("/orders")
	{
		orders.POST("", h.CreateOrder)
		orders.GET("/:id", h.GetOrder)
		orders.POST("/:id/items", h.AddItem)
		orders.PUT("/:id/items/:productId", h.UpdateItemQuantity)
		orders.DELETE("/:id/items/:productId", h.RemoveItem)
		orders.POST("/:id/place", h.Place)
		orders.POST("/:id/pay", h.Pay)
		orders.POST("/:id/ship", h.Ship)
		orders.POST("/:id/deliver", h.Deliver)
		orders.POST("/:id/cancel", h.Cancel)
	}
	r.GET("/customers/:id/orders", h.ListCustomerOrders)
}

// ItemRequest is a product line in a request body
type ItemRequest struct {
	ProductID   string `json:"product_id" binding:"required"`
	ProductName string `json:"product_name" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,gt=0"`
	UnitPrice   string `json:"unit_price" binding:"required"`
}

// CreateOrderRequest is the request body for creating an order
type CreateOrderRequest struct {
	CustomerID      string        `json:"customer_id" binding:"required"`
	ShippingAddress string        `json:"shipping_address" binding:"required"`
	Currency        string        `json:"currency" binding:"required,len=3"`
	Items           []ItemRequest `json:"items" binding:"omitempty,dive"`
}

// UpdateQuantityRequest is the request body for changing a line quantity
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// MoneyResponse renders an amount at its currency's scale
type MoneyResponse struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// ItemResponse is a product line in a response body
type ItemResponse struct {
	ProductID   string        `json:"product_id"`
	ProductName string        `json:"product_name"`
	Quantity    int           `json:"quantity"`
	UnitPrice   MoneyResponse `json:"unit_price"`
	Subtotal    MoneyResponse `json:"subtotal"`
}

// OrderResponse is the response body for order operations
type OrderResponse struct {
	ID              string         `json:"id"`
	CustomerID      string         `json:"customer_id"`
	Status          string         `json:"status"`
	ShippingAddress string         `json:"shipping_address"`
	OrderDate       string         `json:"order_date"`
	Total           MoneyResponse  `json:"total"`
	Items           []ItemResponse `json:"items"`
}

// CreateOrder handles POST /orders
func (h *HTTPHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidation("invalid request body", err.Error()))
		return
	}

	items := make([]application.ItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = application.ItemInput{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	order, err := h.useCase.CreateOrder(c.Request.Context(), application.CreateOrderInput{
		CustomerID:      req.CustomerID,
		ShippingAddress: req.ShippingAddress,
		Currency:        req.Currency,
		Items:           items,
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.respond(c, http.StatusCreated, order)
}

// GetOrder handles GET /orders/:id
func (h *HTTPHandler) GetOrder(c *gin.Context) {
	order, err := h.useCase.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	h.respond(c, http.StatusOK, order)
}

// AddItem handles POST /orders/:id/items
func (h *HTTPHandler) AddItem(c *gin.Context) {
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidation("invalid request body", err.Error()))
		return
	}

	order, err := h.useCase.AddItem(c.Request.Context(), c.Param("id"), application.ItemInput{
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.respond(c, http.StatusOK, order)
}

// UpdateItemQuantity handles PUT /orders/:id/items/:productId
func (h *HTTPHandler) UpdateItemQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidation("invalid request body", err.Error()))
		return
	}

	order, err := h.useCase.UpdateItemQuantity(c.Request.Context(), c.Param("id"), c.Param("productId"), req.Quantity)
	if err != nil {
		c.Error(err)
		return
	}

	h.respond(c, http.StatusOK, order)
}

// RemoveItem handles DELETE /orders/:id/items/:productId
func (h *HTTPHandler) RemoveItem(c *gin.Context) {
	order, err := h.useCase.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("productId"))
	if err != nil {
		c.Error(err)
		return
	}

	h.respond(c, http.StatusOK, order)
}

// Place handles POST /orders/:id/place
func (h *HTTPHandler) Place(c *gin.Context) {
	h.transition(c, h.useCase.Place)
}

// Pay handles POST /orders/:id/pay
func (h *HTTPHandler) Pay(c *gin.Context) {
	h.transition(c, h.useCase.Pay)
}

// Ship handles POST /orders/:id/ship
func (h *HTTPHandler) Ship(c *gin.Context) {
	h.transition(c, h.useCase.Ship)
}

// Deliver handles POST /orders/:id/deliver
func (h *HTTPHandler) Deliver(c *gin.Context) {
	h.transition(c, h.useCase.Deliver)
}

// Cancel handles POST /orders/:id/cancel
func (h *HTTPHandler) Cancel(c *gin.Context) {
	h.transition(c, h.useCase.Cancel)
}

// ListCustomerOrders handles GET /customers/:id/orders
func (h *HTTPHandler) ListCustomerOrders(c *gin.Context) {
	orders, err := h.useCase.ListCustomerOrders(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	responses := make([]OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = toResponse(order)
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     responses,
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

func (h *HTTPHandler) transition(c *gin.Context, apply func(ctx context.Context, orderID string) (*domain.Order, error)) {
	order, err := apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	h.respond(c, http.StatusOK, order)
}

func (h *HTTPHandler) respond(c *gin.Context, status int, order *domain.Order) {
	c.JSON(status, gin.H{
		"data":     toResponse(order),
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

func toResponse(order *domain.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(order.Items()))
	for _, item := range order.Items() {
		items = append(items, ItemResponse{
			ProductID:   item.ProductID().String(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   toMoneyResponse(item.UnitPrice()),
			Subtotal:    toMoneyResponse(item.Subtotal()),
		})
	}

	return OrderResponse{
		ID:              order.ID().String(),
		CustomerID:      order.CustomerID().String(),
		Status:          string(order.Status()),
		ShippingAddress: order.ShippingAddress(),
		OrderDate:       order.OrderDate().Format("2006-01-02T15:04:05Z07:00"),
		Total:           toMoneyResponse(order.Total()),
		Items:           items,
	}
}

func toMoneyResponse(m domain.Money) MoneyResponse {
	return MoneyResponse{
		Amount:   m.AmountFixed(),
		Currency: m.Currency().String(),
	}
}
