package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mathgate/internal/auth"
	"mathgate/internal/domain"
	"mathgate/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth   service.AuthService
	math   service.MathService
	tokens auth.TokenService
}

func NewHandler(authSvc service.AuthService, mathSvc service.MathService, tokens auth.TokenService) *Handler {
	return &Handler{
		auth:   authSvc,
		math:   mathSvc,
		tokens: tokens,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", h.register)
		authGroup.POST("/login", h.login)
		authGroup.POST("/refresh", h.refresh)
		authGroup.GET("/me", h.requireAuth(), h.me)
	}

	mathGroup := router.Group("/math", h.requireAuth())
	{
		mathGroup.POST("/factorial", h.factorial)
		mathGroup.POST("/prime", h.prime)
		mathGroup.POST("/power", h.power)
		mathGroup.POST("/primes-list", h.primesList)
	}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8,max=100"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type userResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Username  string  `json:"username"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at,omitempty"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := h.auth.Register(c.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		h.renderAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pairToResponse(pair))
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.renderAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, pairToResponse(pair))
}

func (h *Handler) refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.renderAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, pairToResponse(pair))
}

func (h *Handler) me(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, userToResponse(user))
}

type factorialRequest struct {
	Number *int `json:"number" binding:"required"`
}

type primeCheckRequest struct {
	Number *int `json:"number" binding:"required"`
}

type powerRequest struct {
	Base     *float64 `json:"base" binding:"required"`
	Exponent *float64 `json:"exponent" binding:"required"`
}

type primesListRequest struct {
	Limit *int `json:"limit" binding:"required"`
}

func (h *Handler) factorial(c *gin.Context) {
	var req factorialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.math.Factorial(*req.Number)
	if err != nil {
		h.renderMathError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"number": *req.Number,
		"result": json.Number(result.String()),
	})
}

func (h *Handler) prime(c *gin.Context) {
	var req primeCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.math.IsPrime(*req.Number)
	if err != nil {
		h.renderMathError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"number":   *req.Number,
		"is_prime": result,
	})
}

func (h *Handler) power(c *gin.Context) {
	var req powerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.math.Power(*req.Base, *req.Exponent)
	if err != nil {
		h.renderMathError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"base":     *req.Base,
		"exponent": *req.Exponent,
		"result":   result,
	})
}

func (h *Handler) primesList(c *gin.Context) {
	var req primesListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	primes, err := h.math.PrimesUpTo(*req.Limit)
	if err != nil {
		h.renderMathError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"limit":  *req.Limit,
		"primes": primes,
		"count":  len(primes),
	})
}

// renderAuthError maps the credential lifecycle error taxonomy to HTTP
// statuses. A missing user on refresh renders as 401 so callers cannot
// probe which subjects exist.
func (h *Handler) renderAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUserAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrUserNotFound):
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInactiveUser):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *Handler) renderMathError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrMathOperation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func pairToResponse(pair auth.TokenPair) tokenResponse {
	return tokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "bearer",
	}
}

func userToResponse(user *domain.User) userResponse {
	resp := userResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Username:  user.Username,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
	if user.UpdatedAt != nil {
		v := user.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &v
	}
	return resp
}
