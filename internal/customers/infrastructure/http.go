package infrastructure

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-shop/internal/customers/application"
	"go-shop/internal/customers/domain"
	"go-shop/pkg/errors"
	"go-shop/pkg/middleware"
)

// HTTPHandler handles HTTP requests for customers
type HTTPHandler struct {
	useCase *application.CustomerUseCase
}

// NewHTTPHandler creates a new HTTP handler
func NewHTTPHandler(useCase *application.CustomerUseCase) *HTTPHandler {
	return &HTTPHandler{useCase: useCase}
}

// RegisterRoutes registers the customer routes
func (h *HTTPHandler) RegisterRoutes(r *gin.RouterGroup) {
	customers := r.Group("/customers")
	{
		customers.POST("", h.RegisterCustomer)
		customers.GET("/:id", h.GetCustomer)
	}
}

// RegisterCustomerRequest is the request body for registering a customer
type RegisterCustomerRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Email string `json:"email" binding:"required,email"`
}

// CustomerResponse is the response body for customer operations
type CustomerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// RegisterCustomer handles POST /customers
func (h *HTTPHandler) RegisterCustomer(c *gin.Context) {
	var req RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidation("invalid request body", err.Error()))
		return
	}

	customer, err := h.useCase.RegisterCustomer(c.Request.Context(), application.RegisterCustomerInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":     toResponse(customer),
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

// GetCustomer handles GET /customers/:id
func (h *HTTPHandler) GetCustomer(c *gin.Context) {
	customer, err := h.useCase.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     toResponse(customer),
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

func toResponse(customer *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Email:     customer.Email,
		CreatedAt: customer.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
