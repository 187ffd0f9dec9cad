package member

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
// @Summary      Register a member
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        request  body      CreateMemberRequest  true  "Member data"
// @Success      201      {object}  Member
// @Failure      400      {object}  api.ErrorResponse
// @Router       /members [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.service.CreateMember(c.Request.Context(), req)
	if err != nil {
		logger.Errorf("Failed to create member %q: %v", req.Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create member"})
		return
	}

	c.JSON(http.StatusCreated, m)
}

// ListByGym godoc
// @Summary      List a gym's members with membership status
// @Tags         members
// @Produce      json
// @Param        gymID  path     int  true  "Gym ID"
// @Success      200    {array}  MemberWithStatus
// @Router       /gyms/{gymID}/members [get]
func (h *Handler) ListByGym(c *gin.Context) {
	gymID, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gym id"})
		return
	}

	members, err := h.service.ListMembersWithStatus(c.Request.Context(), gymID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load members"})
		return
	}

	c.JSON(http.StatusOK, members)
}

// Get godoc
// @Summary      Get member with membership status
// @Tags         members
// @Produce      json
// @Param        memberID  path      int  true  "Member ID"
// @Success      200       {object}  MemberWithStatus
// @Failure      404       {object}  api.ErrorResponse
// @Router       /members/{memberID} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	m, err := h.service.GetMemberStatus(c.Request.Context(), id, time.Now())
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load member"})
		return
	}

	c.JSON(http.StatusOK, m)
}

// Update godoc
// @Summary      Update member details
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        memberID  path      int                  true  "Member ID"
// @Param        request   body      UpdateMemberRequest  true  "Member data"
// @Success      200       {object}  Member
// @Failure      404       {object}  api.ErrorResponse
// @Router       /members/{memberID} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.service.UpdateMember(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update member"})
		return
	}

	c.JSON(http.StatusOK, m)
}

// Assign godoc
// @Summary      Assign or renew a membership
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        memberID  path      int                      true  "Member ID"
// @Param        request   body      AssignMembershipRequest  true  "Plan, discount and optional PT fees"
// @Success      201       {object}  Membership
// @Failure      400       {object}  api.ErrorResponse
// @Failure      404       {object}  api.ErrorResponse
// @Router       /members/{memberID}/memberships [post]
func (h *Handler) Assign(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	var req AssignMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	membership, err := h.service.AssignMembership(c.Request.Context(), id, req, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, ErrMemberNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
		case errors.Is(err, ErrPlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
		case errors.Is(err, ErrPlanInactive), errors.Is(err, ErrInvalidDiscount), errors.Is(err, ErrInvalidPTFees):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Errorf("Failed to assign membership to member %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to assign membership"})
		}
		return
	}

	logger.Infof("Membership assigned: member=%d plan=%d type=%s", id, membership.PlanID, membership.RenewalType)
	metrics.RecordSubscription(string(membership.RenewalType))

	c.JSON(http.StatusCreated, membership)
}

// History godoc
// @Summary      Membership history of a member
// @Tags         members
// @Produce      json
// @Param        memberID  path      int  true  "Member ID"
// @Success      200       {array}   Membership
// @Failure      404       {object}  api.ErrorResponse
// @Router       /members/{memberID}/memberships [get]
func (h *Handler) History(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	memberships, err := h.service.MembershipHistory(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load memberships"})
		return
	}

	c.JSON(http.StatusOK, memberships)
}
