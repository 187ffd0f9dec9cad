package inquiry

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"gymdesk/internal/logger"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{service: NewService(NewRepository(db))}
}

// Create godoc
// @Summary      Record a walk-in or contact inquiry
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        request  body      CreateInquiryRequest  true  "Inquiry data"
// @Success      201      {object}  Inquiry
// @Failure      400      {object}  api.ErrorResponse
// @Router       /inquiries [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inq, err := h.service.CreateInquiry(c.Request.Context(), req)
	if err != nil {
		logger.Errorf("Failed to create inquiry for gym %d: %v", req.GymID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create inquiry"})
		return
	}

	c.JSON(http.StatusCreated, inq)
}

// ListByGym godoc
// @Summary      List a gym's inquiries
// @Tags         inquiries
// @Produce      json
// @Param        gymID   path      int     true   "Gym ID"
// @Param        status  query     string  false  "Filter by status (NEW, CONTACTED, CLOSED)"
// @Success      200     {array}   Inquiry
// @Router       /gyms/{gymID}/inquiries [get]
func (h *Handler) ListByGym(c *gin.Context) {
	gymID, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gym id"})
		return
	}

	var status *Status
	if raw := c.Query("status"); raw != "" {
		s := Status(raw)
		status = &s
	}

	inquiries, err := h.service.ListInquiries(c.Request.Context(), gymID, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load inquiries"})
		return
	}

	c.JSON(http.StatusOK, inquiries)
}

// Get godoc
// @Summary      Get an inquiry
// @Tags         inquiries
// @Produce      json
// @Param        inquiryID  path      int  true  "Inquiry ID"
// @Success      200        {object}  Inquiry
// @Failure      404        {object}  api.ErrorResponse
// @Router       /inquiries/{inquiryID} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("inquiryID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid inquiry id"})
		return
	}

	inq, err := h.service.GetInquiry(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "inquiry not found"})
		return
	}

	c.JSON(http.StatusOK, inq)
}

// UpdateStatus godoc
// @Summary      Advance an inquiry's status
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        inquiryID  path      int                  true  "Inquiry ID"
// @Param        request    body      UpdateStatusRequest  true  "Target status"
// @Success      200        {object}  Inquiry
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      409        {object}  api.ErrorResponse
// @Router       /inquiries/{inquiryID}/status [put]
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("inquiryID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid inquiry id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inq, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInquiryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "inquiry not found"})
		case errors.Is(err, ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrBadTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update inquiry"})
		}
		return
	}

	c.JSON(http.StatusOK, inq)
}
