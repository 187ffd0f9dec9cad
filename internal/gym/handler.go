package gym

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"gymdesk/internal/logger"
	"gymdesk/internal/metrics"
	"gymdesk/internal/plan"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB, expiringSoonDays int) *Handler {
	return &Handler{
		service: NewService(NewRepository(db), plan.NewRepository(db), expiringSoonDays),
	}
}

// Create godoc
// @Summary      Register a gym
// @Tags         gyms
// @Accept       json
// @Produce      json
// @Param        request  body      CreateGymRequest  true  "Gym data"
// @Success      201      {object}  Gym
// @Failure      400      {object}  api.ErrorResponse
// @Router       /admin/gyms [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := h.service.CreateGym(c.Request.Context(), req)
	if err != nil {
		logger.Errorf("Failed to create gym %q: %v", req.Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create gym"})
		return
	}

	c.JSON(http.StatusCreated, g)
}

// List godoc
// @Summary      List gyms with subscription status
// @Description  Every row's status is derived against the same clock
// @Description  snapshot, so a listing never mixes states from different
// @Description  instants.
// @Tags         gyms
// @Produce      json
// @Success      200  {array}  GymWithStatus
// @Router       /gyms [get]
func (h *Handler) List(c *gin.Context) {
	gyms, err := h.service.ListGymsWithStatus(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load gyms"})
		return
	}

	c.JSON(http.StatusOK, gyms)
}

// Get godoc
// @Summary      Get gym with subscription status
// @Tags         gyms
// @Produce      json
// @Param        gymID  path      int  true  "Gym ID"
// @Success      200    {object}  GymWithStatus
// @Failure      404    {object}  api.ErrorResponse
// @Router       /gyms/{gymID} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gym id"})
		return
	}

	g, err := h.service.GetGymStatus(c.Request.Context(), id, time.Now())
	if err != nil {
		if errors.Is(err, ErrGymNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "gym not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load gym"})
		return
	}

	c.JSON(http.StatusOK, g)
}

// Update godoc
// @Summary      Update gym details
// @Tags         gyms
// @Accept       json
// @Produce      json
// @Param        gymID    path      int               true  "Gym ID"
// @Param        request  body      UpdateGymRequest  true  "Gym data"
// @Success      200      {object}  Gym
// @Failure      404      {object}  api.ErrorResponse
// @Router       /admin/gyms/{gymID} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gym id"})
		return
	}

	var req UpdateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := h.service.UpdateGym(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrGymNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "gym not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update gym"})
		return
	}

	c.JSON(http.StatusOK, g)
}

// History godoc
// @Summary      Subscription history of a gym
// @Tags         gyms
// @Produce      json
// @Param        gymID  path      int  true  "Gym ID"
// @Success      200    {array}   SubscriptionPeriod
// @Failure      404    {object}  api.ErrorResponse
// @Router       /gyms/{gymID}/subscriptions [get]
func (h *Handler) History(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gym id"})
		return
	}

	periods, err := h.service.SubscriptionHistory(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrGymNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "gym not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}

	c.JSON(http.StatusOK, periods)
}

// Subscribe godoc
// @Summary      Subscribe or renew a gym's plan
// @Tags         gyms
// @Accept       json
// @Produce      json
// @Param        gymID    path      int               true  "Gym ID"
// @Param        request  body      SubscribeRequest  true  "Plan and optional discount"
// @Success      201      {object}  SubscriptionPeriod
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /gyms/{gymID}/subscribe [post]
func (h *Handler) Subscribe(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gym id"})
		return
	}

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	period, err := h.service.Subscribe(c.Request.Context(), id, req, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, ErrGymNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "gym not found"})
		case errors.Is(err, ErrPlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
		case errors.Is(err, ErrPlanInactive), errors.Is(err, ErrInvalidDiscount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Errorf("Failed to subscribe gym %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create subscription"})
		}
		return
	}

	logger.Infof("Subscription created: gym=%d plan=%d type=%s", id, period.PlanID, period.RenewalType)
	metrics.RecordSubscription(string(period.RenewalType))

	c.JSON(http.StatusCreated, period)
}

// PreviewChange godoc
// @Summary      Preview proration for a plan change
// @Tags         gyms
// @Produce      json
// @Param        gymID   path      int  true  "Gym ID"
// @Param        planID  query     int  true  "Target plan ID"
// @Success      200     {object}  PlanChangePreview
// @Failure      400     {object}  api.ErrorResponse
// @Failure      404     {object}  api.ErrorResponse
// @Router       /gyms/{gymID}/change-plan/preview [get]
func (h *Handler) PreviewChange(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gym id"})
		return
	}

	planID, err := strconv.Atoi(c.Query("planID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "planID query parameter required"})
		return
	}

	preview, err := h.service.PreviewPlanChange(c.Request.Context(), id, planID, time.Now())
	if err != nil {
		h.renderChangeError(c, id, err)
		return
	}

	metrics.RecordPlanChangePreview()
	c.JSON(http.StatusOK, preview)
}

// ChangePlan godoc
// @Summary      Change a gym's plan mid-term
// @Tags         gyms
// @Accept       json
// @Produce      json
// @Param        gymID    path      int                true  "Gym ID"
// @Param        request  body      ChangePlanRequest  true  "Target plan"
// @Success      201      {object}  ChangePlanResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /gyms/{gymID}/change-plan [post]
func (h *Handler) ChangePlan(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gym id"})
		return
	}

	var req ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.ChangePlan(c.Request.Context(), id, req.PlanID, time.Now())
	if err != nil {
		h.renderChangeError(c, id, err)
		return
	}

	logger.Infof("Plan changed: gym=%d plan=%d type=%s", id, resp.Period.PlanID, resp.Period.RenewalType)
	metrics.RecordSubscription(string(resp.Period.RenewalType))

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) renderChangeError(c *gin.Context, gymID int, err error) {
	switch {
	case errors.Is(err, ErrGymNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "gym not found"})
	case errors.Is(err, ErrPlanNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
	case errors.Is(err, ErrPlanInactive), errors.Is(err, ErrNoActivePlan), errors.Is(err, ErrSamePlan):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Errorf("Plan change failed for gym %d: %v", gymID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to change plan"})
	}
}
