package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/hyperlocal-backend/internal/handlers/dto"
	"github.com/rafabene/hyperlocal-backend/internal/handlers/middleware"
	"github.com/rafabene/hyperlocal-backend/internal/services"
)

// FranchiseHandler lida com requisições HTTP de franquias
type FranchiseHandler struct {
	franchiseService *services.FranchiseService
}

func NewFranchiseHandler(franchiseService *services.FranchiseService) *FranchiseHandler {
	return &FranchiseHandler{franchiseService: franchiseService}
}

// CreateFranchise godoc
// @Summary      Cria uma franquia
// @Tags         franchise
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateFranchiseRequest  true  "Franquia"
// @Success      201   {object}  dto.FranchiseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /franchise [post]
func (h *FranchiseHandler) CreateFranchise(c *gin.Context) {
	var req dto.CreateFranchiseRequest
	if !bindJSON(c, &req) {
		return
	}

	franchise, err := h.franchiseService.CreateFranchise(c.Request.Context(), middleware.Caller(c), req.ToInput())
	if err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFranchiseResponse(franchise))
}

// ListFranchises godoc
// @Summary      Lista franquias visíveis ao usuário
// @Tags         franchise
// @Produce      json
// @Security     BearerAuth
// @Param        minscore  query  int     false  "Score mínimo"
// @Param        maxscore  query  int     false  "Score máximo"
// @Param        search    query  string  false  "Nome, endereço ou CNPJ"
// @Param        deleted   query  string  false  "TRUE lista removidas"
// @Success      200  {array}  dto.FranchiseResponse
// @Router       /franchise [get]
func (h *FranchiseHandler) ListFranchises(c *gin.Context) {
	var query dto.ListFranchisesQuery
	if !bindQuery(c, &query) {
		return
	}

	franchises, err := h.franchiseService.ListFranchises(c.Request.Context(), middleware.Caller(c), query.ToFilters())
	if err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFranchiseResponses(franchises))
}

func (h *FranchiseHandler) GetFranchise(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	franchise, err := h.franchiseService.GetFranchise(c.Request.Context(), middleware.Caller(c), id)
	if err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFranchiseResponse(franchise))
}

func (h *FranchiseHandler) UpdateFranchise(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateFranchiseRequest
	if !bindJSON(c, &req) {
		return
	}

	franchise, err := h.franchiseService.UpdateFranchise(c.Request.Context(), middleware.Caller(c), id, req.ToInput())
	if err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFranchiseResponse(franchise))
}

// SetOwner vincula o franqueado à franquia
func (h *FranchiseHandler) SetOwner(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.SetFranchiseOwnerRequest
	if !bindJSON(c, &req) {
		return
	}

	franchise, err := h.franchiseService.SetOwner(c.Request.Context(), middleware.Caller(c), id, req.UserID)
	if err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFranchiseResponse(franchise))
}

// RecalculateScore godoc
// @Summary      Recalcula o score da franquia
// @Tags         franchise
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID da franquia"
// @Success      200  {object}  dto.FranchiseResponse
// @Router       /franchise/{id}/score [post]
func (h *FranchiseHandler) RecalculateScore(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	franchise, err := h.franchiseService.RecalculateScore(c.Request.Context(), middleware.Caller(c), id)
	if err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFranchiseResponse(franchise))
}

func (h *FranchiseHandler) DeleteFranchise(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.franchiseService.DeleteFranchise(c.Request.Context(), middleware.Caller(c), id); err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
