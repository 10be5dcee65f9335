package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goer/asana-clone/internal/adapter/http/dto"
	"github.com/goer/asana-clone/internal/adapter/http/mapper"
	"github.com/goer/asana-clone/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account and answers with a token so the client can
// start calling the API without a separate login round trip.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	token, user, err := h.authService.Register(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.LoginResponse{
		Token: token,
		User:  mapper.ToUserItem(user),
	})
}

// Login exchanges credentials for a signed bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  mapper.ToUserItem(user),
	})
}

// Me returns the account behind the resolved principal.
func (h *AuthHandler) Me(c *gin.Context) {
	p := middlewarePrincipal(c)

	user, err := h.authService.GetUser(c.Request.Context(), p.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

// GetUser looks up any account by id.
func (h *AuthHandler) GetUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}
