package admin

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tassuhoiva/booking-api/internal/config"
	"github.com/tassuhoiva/booking-api/internal/handler"
	"github.com/tassuhoiva/booking-api/internal/store"
	"github.com/tassuhoiva/booking-api/pkg/auth"
)

type Handler struct {
	cfg    config.AdminConfig
	tokens *auth.TokenService
	store  *store.Store
}

func NewHandler(cfg config.AdminConfig, tokens *auth.TokenService, st *store.Store) *Handler {
	return &Handler{cfg: cfg, tokens: tokens, store: st}
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login exchanges the shared admin password for a bearer token. The gate is
// a single configured secret, not an account system.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.Password)) != 1 {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("invalid password"))
		return
	}

	token, err := h.tokens.Generate()
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to issue token"))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"token": token}))
}

// Stats returns the dashboard counters over the current booking list.
func (h *Handler) Stats(c *gin.Context) {
	if err := h.store.LoadBookings(c.Request.Context()); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"stats": h.store.Stats()}))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, adminAuth gin.HandlerFunc) {
	admin := r.Group("/admin")
	{
		admin.POST("/login", h.Login)
		admin.GET("/stats", adminAuth, h.Stats)
	}
}
