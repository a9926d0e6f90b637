package review

import (
	"errors"
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

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/venues/:id/reviews", h.ListVenueReviews)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/venues/:id/reviews", h.CreateReview)
}

func (h *Handler) ListVenueReviews(c *gin.Context) {
	venueID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid venue id")
		return
	}

	reviews, err := h.service.GetVenueReviews(c.Request.Context(), venueID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "REVIEWS_FAILED", "Failed to load reviews")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

func (h *Handler) CreateReview(c *gin.Context) {
	venueID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid venue id")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rv, err := h.service.Add(c.Request.Context(), venueID, c.GetString("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrInvalidReview) {
			response.Error(c, http.StatusBadRequest, "INVALID_REVIEW", "Rating must be 1-5 and comment must not be empty")
			return
		}
		response.Error(c, http.StatusInternalServerError, "REVIEW_FAILED", "Failed to submit review")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": rv})
}
