package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/hyperlocal-backend/internal/handlers/dto"
	"github.com/rafabene/hyperlocal-backend/internal/handlers/middleware"
	"github.com/rafabene/hyperlocal-backend/internal/services"
)

// ProductHandler lida com o catálogo de produtos
type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProduct godoc
// @Summary      Cria um produto
// @Tags         product
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateProductRequest  true  "Produto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /product [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), middleware.Caller(c), req.ToInput())
	if err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	var query dto.ListProductsQuery
	if !bindQuery(c, &query) {
		return
	}

	products, err := h.productService.ListProducts(c.Request.Context(), middleware.Caller(c), query.ToFilters())
	if err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), middleware.Caller(c), id)
	if err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), middleware.Caller(c), id, req.ToInput())
	if err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// UpdateProductPlan troca o plano; valores inválidos listam os planos aceitos
func (h *ProductHandler) UpdateProductPlan(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateProductPlanRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.UpdateProductPlan(c.Request.Context(), middleware.Caller(c), id, req.Plan)
	if err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), middleware.Caller(c), id); err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
