package dietplan

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"gymdesk/internal/member"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{service: NewService(NewRepository(db), member.NewRepository(db))}
}

// Create godoc
// @Summary      Assign a diet plan to a member
// @Tags         diet-plans
// @Accept       json
// @Produce      json
// @Param        memberID  path      int                    true  "Member ID"
// @Param        request   body      CreateDietPlanRequest  true  "Diet plan"
// @Success      201       {object}  DietPlan
// @Failure      404       {object}  api.ErrorResponse
// @Router       /members/{memberID}/diet-plans [post]
func (h *Handler) Create(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	var req CreateDietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dp, err := h.service.CreateDietPlan(c.Request.Context(), memberID, req)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create diet plan"})
		return
	}

	c.JSON(http.StatusCreated, dp)
}

// ListByMember godoc
// @Summary      List a member's diet plans
// @Tags         diet-plans
// @Produce      json
// @Param        memberID  path     int  true  "Member ID"
// @Success      200       {array}  DietPlan
// @Router       /members/{memberID}/diet-plans [get]
func (h *Handler) ListByMember(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	plans, err := h.service.ListDietPlans(c.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load diet plans"})
		return
	}

	c.JSON(http.StatusOK, plans)
}

// Update godoc
// @Summary      Update a diet plan
// @Tags         diet-plans
// @Accept       json
// @Produce      json
// @Param        dietPlanID  path      int                    true  "Diet plan ID"
// @Param        request     body      UpdateDietPlanRequest  true  "Diet plan"
// @Success      200         {object}  DietPlan
// @Failure      404         {object}  api.ErrorResponse
// @Router       /diet-plans/{dietPlanID} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("dietPlanID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid diet plan id"})
		return
	}

	var req UpdateDietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dp, err := h.service.UpdateDietPlan(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrDietPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "diet plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update diet plan"})
		return
	}

	c.JSON(http.StatusOK, dp)
}

// Delete godoc
// @Summary      Delete a diet plan
// @Tags         diet-plans
// @Produce      json
// @Param        dietPlanID  path      int  true  "Diet plan ID"
// @Success      200         {object}  api.MessageResponse
// @Failure      404         {object}  api.ErrorResponse
// @Router       /diet-plans/{dietPlanID} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("dietPlanID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid diet plan id"})
		return
	}

	if err := h.service.DeleteDietPlan(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrDietPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "diet plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete diet plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "diet plan deleted"})
}
