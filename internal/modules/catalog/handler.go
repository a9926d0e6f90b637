package catalog

import (
	"net/http"
	"strconv"

	"quickcourt/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	v1.GET("/venues", h.ListVenues)
	v1.GET("/venues/:id", h.GetVenue)
	v1.GET("/players", h.ListPlayers)
}

func (h *Handler) ListVenues(c *gin.Context) {
	page := h.service.SearchVenues(
		c.Query("search"),
		venueFiltersFromQuery(c.Query),
		c.Query("sort"),
		pageFromQuery(c.Query),
	)
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) GetVenue(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid venue id")
		return
	}

	venue, err := h.service.GetVenue(id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "VENUE_NOT_FOUND", "Venue not found")
		return
	}

	response.Success(c, http.StatusOK, venue)
}

func (h *Handler) ListPlayers(c *gin.Context) {
	page := h.service.SearchPlayers(
		c.Query("search"),
		playerFiltersFromQuery(c.Query),
		pageFromQuery(c.Query),
	)
	response.Success(c, http.StatusOK, page)
}
