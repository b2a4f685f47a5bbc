package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/hyperlocal-backend/internal/handlers/dto"
	"github.com/rafabene/hyperlocal-backend/internal/handlers/middleware"
	"github.com/rafabene/hyperlocal-backend/internal/services"
)

// AuthHandler lida com login e com o perfil do usuário autenticado
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignIn godoc
// @Summary      Autentica um usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SignInRequest  true  "Credenciais"
// @Success      200   {object}  dto.SignInResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.authService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		dto.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SignInResponse{AccessToken: token})
}

// Signed godoc
// @Summary      Retorna o usuário autenticado
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /auth/signed [get]
func (h *AuthHandler) Signed(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToUserResponse(middleware.Caller(c)))
}
