package plan

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{service: NewService(NewRepository(db))}
}

// Create godoc
// @Summary      Create subscription plan
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        request  body      CreatePlanRequest  true  "Plan data"
// @Success      201      {object}  Plan
// @Failure      400      {object}  api.ErrorResponse
// @Router       /admin/plans [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.service.CreatePlan(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDuration), errors.Is(err, ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create plan"})
		}
		return
	}

	c.JSON(http.StatusCreated, p)
}

// List godoc
// @Summary      List subscription plans
// @Tags         plans
// @Produce      json
// @Param        include_inactive  query     bool  false  "Include deactivated plans"
// @Success      200               {array}   Plan
// @Router       /plans [get]
func (h *Handler) List(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"

	plans, err := h.service.ListPlans(c.Request.Context(), includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load plans"})
		return
	}

	c.JSON(http.StatusOK, plans)
}

// Get godoc
// @Summary      Get plan by id
// @Tags         plans
// @Produce      json
// @Param        planID  path      int  true  "Plan ID"
// @Success      200     {object}  Plan
// @Failure      404     {object}  api.ErrorResponse
// @Router       /plans/{planID} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("planID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	p, err := h.service.GetPlan(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// Update godoc
// @Summary      Update plan name/description
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        planID   path      int                true  "Plan ID"
// @Param        request  body      UpdatePlanRequest  true  "Plan data"
// @Success      200      {object}  Plan
// @Failure      404      {object}  api.ErrorResponse
// @Router       /admin/plans/{planID} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("planID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.service.UpdatePlan(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update plan"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// Deactivate godoc
// @Summary      Deactivate a plan
// @Tags         plans
// @Produce      json
// @Param        planID  path      int  true  "Plan ID"
// @Success      200     {object}  api.MessageResponse
// @Failure      404     {object}  api.ErrorResponse
// @Router       /admin/plans/{planID} [delete]
func (h *Handler) Deactivate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("planID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	if err := h.service.DeactivatePlan(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to deactivate plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "plan deactivated"})
}
