package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/bank_ledger_sim/internal/apperrors"
	portssvc "github.com/SscSPs/bank_ledger_sim/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_sim/internal/dto"
	"github.com/SscSPs/bank_ledger_sim/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles client registration and login.
type authHandler struct {
	clientService portssvc.ClientSvcFacade
	tokenService  portssvc.TokenSvcFacade
}

func newAuthHandler(cs portssvc.ClientSvcFacade, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{clientService: cs, tokenService: ts}
}

// registerAuthRoutes sets up the public authentication routes. Login is
// rate limited separately from the API to slow down PIN guessing.
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) error {
	h := newAuthHandler(services.Client, services.Token)

	loginLimiter, err := middleware.NewLimiter("5-M")
	if err != nil {
		return err
	}

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.login)
	}
	return nil
}

// register godoc
// @Summary Register a new client
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Client registration info"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Alias already taken"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err, "Invalid request body")
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), req.Name, req.Alias, req.PIN)
	if err != nil {
		respondError(c, logger, err, "Failed to register client")
		return
	}

	logger.Info("Client registered", slog.String("client_id", client.ClientID))
	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// login godoc
// @Summary Client login
// @Description Authenticates a client by alias and PIN and returns a JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err, "Invalid request body")
		return
	}

	client, err := h.clientService.Authenticate(c.Request.Context(), req.Alias, req.PIN)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid alias or PIN"})
			return
		}
		respondError(c, logger, err, "Failed to authenticate")
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), client)
	if err != nil {
		respondError(c, logger, err, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt, ClientID: client.ClientID})
}
