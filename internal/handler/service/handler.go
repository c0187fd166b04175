package service

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tassuhoiva/booking-api/internal/catalog"
	"github.com/tassuhoiva/booking-api/internal/handler"
	"github.com/tassuhoiva/booking-api/internal/model"
	"github.com/tassuhoiva/booking-api/internal/store"
)

type Handler struct {
	store   *store.Store
	catalog *catalog.Service
}

func NewHandler(st *store.Store, catalogSvc *catalog.Service) *Handler {
	return &Handler{store: st, catalog: catalogSvc}
}

// ListServices refreshes and returns the catalog. This never fails: a broken
// remote store degrades to the built-in default catalog.
func (h *Handler) ListServices(c *gin.Context) {
	h.store.LoadServices(c.Request.Context())

	snap := h.store.Snapshot()
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"services": snap.Services}))
}

func (h *Handler) GetService(c *gin.Context) {
	svc, _ := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if svc == nil {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("service not found"))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"service": svc}))
}

// SelectService records the customer's current choice. No validation: the
// booking page is allowed to select any service payload it has.
func (h *Handler) SelectService(c *gin.Context) {
	var svc model.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	h.store.SelectService(svc)
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"selectedService": svc}))
}

func (h *Handler) ClearSelectedService(c *gin.Context) {
	h.store.ClearSelectedService()
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	services := r.Group("/services")
	{
		services.GET("", h.ListServices)
		services.PUT("/selected", h.SelectService)
		services.DELETE("/selected", h.ClearSelectedService)
		services.GET("/:id", h.GetService)
	}
}
