package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/repositories"
	"github.com/rafabene/hyperlocal-backend/internal/handlers/dto"
	"github.com/rafabene/hyperlocal-backend/internal/handlers/middleware"
	"github.com/rafabene/hyperlocal-backend/internal/services"
)

// SaleHandler lida com requisições HTTP de vendas
type SaleHandler struct {
	saleService *services.SaleService
}

func NewSaleHandler(saleService *services.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// CreateSale godoc
// @Summary      Registra uma venda
// @Description  Todas as referências são validadas antes da gravação; o score da franquia é recalculado.
// @Tags         sale
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateSaleRequest  true  "Venda"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /sale [post]
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var req dto.CreateSaleRequest
	if !bindJSON(c, &req) {
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), middleware.Caller(c), req.ToInput())
	if err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

type saleLister func(ctx context.Context, caller *entities.User, id string, filters repositories.SaleFilters) ([]*entities.Sale, error)

// listBy monta um handler de listagem filtrado por um id de rota
func (h *SaleHandler) listBy(param string, list saleLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, param)
		if !ok {
			return
		}
		var query dto.ListSalesQuery
		if !bindQuery(c, &query) {
			return
		}

		sales, err := list(c.Request.Context(), middleware.Caller(c), id, query.ToFilters())
		if err != nil {
			dto.AbortWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.ToSaleResponses(sales))
	}
}

func (h *SaleHandler) ListSales(c *gin.Context) {
	var query dto.ListSalesQuery
	if !bindQuery(c, &query) {
		return
	}

	sales, err := h.saleService.ListSales(c.Request.Context(), middleware.Caller(c), query.ToFilters())
	if err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponses(sales))
}

func (h *SaleHandler) ListByFranchise() gin.HandlerFunc {
	return h.listBy("franchiseId", h.saleService.ListSalesByFranchise)
}

func (h *SaleHandler) ListByCustomer() gin.HandlerFunc {
	return h.listBy("customerId", h.saleService.ListSalesByCustomer)
}

func (h *SaleHandler) ListByUser() gin.HandlerFunc {
	return h.listBy("userId", h.saleService.ListSalesByUser)
}

func (h *SaleHandler) ListByProduct() gin.HandlerFunc {
	return h.listBy("productId", h.saleService.ListSalesByProduct)
}

func (h *SaleHandler) GetSale(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), middleware.Caller(c), id)
	if err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// UpdateSale altera apenas a descrição
func (h *SaleHandler) UpdateSale(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateSaleRequest
	if !bindJSON(c, &req) {
		return
	}

	sale, err := h.saleService.UpdateSale(c.Request.Context(), middleware.Caller(c), id, req.Description)
	if err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

func (h *SaleHandler) DeleteSale(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), middleware.Caller(c), id); err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
