package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/hyperlocal-backend/internal/handlers/dto"
	"github.com/rafabene/hyperlocal-backend/internal/handlers/middleware"
	"github.com/rafabene/hyperlocal-backend/internal/services"
)

// CustomerHandler lida com requisições HTTP de clientes
type CustomerHandler struct {
	customerService *services.CustomerService
}

func NewCustomerHandler(customerService *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// CreateCustomer godoc
// @Summary      Cadastra um cliente na franquia do usuário
// @Tags         customer
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateCustomerRequest  true  "Cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /customer [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), middleware.Caller(c), req.ToInput())
	if err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	var query dto.ListCustomersQuery
	if !bindQuery(c, &query) {
		return
	}

	customers, err := h.customerService.ListCustomers(c.Request.Context(), middleware.Caller(c), query.ToFilters())
	if err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponses(customers))
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), middleware.Caller(c), id)
	if err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), middleware.Caller(c), id, req.ToInput())
	if err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), middleware.Caller(c), id); err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
