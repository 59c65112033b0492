package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/hr_records_app/internal/core/ports/services"
	"github.com/SscSPs/hr_records_app/internal/dto"
	"github.com/SscSPs/hr_records_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// authHandler handles registration, login and the current-user lookup.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade, gate portssvc.AccessGateSvc, loginLimiter *limiter.Limiter) {
	h := newAuthHandler(authService)

	loginChain := []gin.HandlerFunc{h.login}
	if loginLimiter != nil {
		loginChain = append([]gin.HandlerFunc{middleware.RateLimit(loginLimiter)}, loginChain...)
	}

	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", loginChain...)
		auth.GET("/me", middleware.AuthMiddleware(gate), h.me)
	}
}

// register godoc
// @Summary Register an account
// @Description Creates an active, unverified account. No token is issued.
// @Tags auth
// @Accept json
// @Produce json
// @Param account body dto.RegisterRequest true "Account details"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if !bindJSON(c, logger, &req, "All fields are required") {
		return
	}

	account, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to register user")
		return
	}

	logger.Info("Account registered", slog.String("account_id", account.AccountID))
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "User registered successfully."})
}

// login godoc
// @Summary User login
// @Description Authenticates an account and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if !bindJSON(c, logger, &req, "Invalid credentials") {
		return
	}

	token, account, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to log in")
		return
	}

	logger.Info("Login successful", slog.String("account_id", account.AccountID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		User:        dto.ToPublicProfile(account),
	})
}

// me godoc
// @Summary Current account
// @Description Returns the account the bearer token was issued for.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.CurrentUserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or missing token"})
		return
	}

	account, err := h.authService.CurrentUser(c.Request.Context(), accountID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to load user")
		return
	}

	c.JSON(http.StatusOK, dto.CurrentUserResponse{User: dto.ToAccountResponse(account)})
}
