package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/hyperlocal-backend/internal/domain/entities"
	"github.com/rafabene/hyperlocal-backend/internal/domain/policy"
	"github.com/rafabene/hyperlocal-backend/internal/domain/ports"
	"github.com/rafabene/hyperlocal-backend/internal/handlers/dto"
	"github.com/rafabene/hyperlocal-backend/internal/handlers/middleware"
	"github.com/rafabene/hyperlocal-backend/internal/infrastructure/realtime"
	"github.com/rafabene/hyperlocal-backend/internal/services"
)

// TicketHandler lida com chamados e com o feed em tempo real
type TicketHandler struct {
	ticketService *services.TicketService
	hub           *realtime.Hub
}

func NewTicketHandler(ticketService *services.TicketService, hub *realtime.Hub) *TicketHandler {
	return &TicketHandler{ticketService: ticketService, hub: hub}
}

// CreateTicket godoc
// @Summary      Abre um chamado para a franquia do franqueado
// @Tags         ticket
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateTicketRequest  true  "Chamado"
// @Success      201   {object}  dto.TicketResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /ticket [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req dto.CreateTicketRequest
	if !bindJSON(c, &req) {
		return
	}

	ticket, err := h.ticketService.CreateTicket(c.Request.Context(), middleware.Caller(c), req.Description)
	if err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTicketResponse(ticket))
}

func (h *TicketHandler) ListTickets(c *gin.Context) {
	var query dto.ListTicketsQuery
	if !bindQuery(c, &query) {
		return
	}

	tickets, err := h.ticketService.ListTickets(c.Request.Context(), middleware.Caller(c), query.ToFilters())
	if err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponses(tickets))
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ticket, err := h.ticketService.GetTicket(c.Request.Context(), middleware.Caller(c), id)
	if err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

func (h *TicketHandler) UpdateTicketStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTicketStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	ticket, err := h.ticketService.UpdateTicketStatus(c.Request.Context(), middleware.Caller(c), id, req.TicketStatus())
	if err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.ticketService.DeleteTicket(c.Request.Context(), middleware.Caller(c), id); err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Feed godoc
// @Summary      Stream de eventos de chamados (WebSocket)
// @Tags         ticket
// @Security     BearerAuth
// @Success      101
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /ticket/feed [get]
func (h *TicketHandler) Feed(c *gin.Context) {
	if err := policy.RequireRole(middleware.Caller(c).Role, entities.RoleOperator, entities.RoleManager); err != nil {
		dto.AbortWithError(c, err)
		return
	}

	// Após o upgrade a conexão pertence ao hub; erros de handshake já foram respondidos
	if err := h.hub.Serve(c.Writer, c.Request); err != nil {
		middleware.LoggerFrom(c).Warn("ticket feed upgrade failed", "error", err)
	}
}

// TicketFeedPublisher entrega eventos de ticket aos assinantes do WebSocket
type TicketFeedPublisher struct {
	hub *realtime.Hub
}

func NewTicketFeedPublisher(hub *realtime.Hub) *TicketFeedPublisher {
	return &TicketFeedPublisher{hub: hub}
}

// PublishTicket implementa ports.TicketPublisher
func (p *TicketFeedPublisher) PublishTicket(_ context.Context, event ports.TicketEvent) error {
	payload, err := json.Marshal(dto.ToTicketEventMessage(event))
	if err != nil {
		return err
	}
	p.hub.Broadcast(payload)
	return nil
}
