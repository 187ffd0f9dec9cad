package payment

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"gymdesk/internal/billing"
	"gymdesk/internal/logger"
	"gymdesk/internal/member"
	"gymdesk/internal/metrics"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{
		service: NewService(NewRepository(db), member.NewRepository(db)),
	}
}

// overpaymentResponse is the 422 body for a rejected payment. Amounts are
// rendered with two decimal places for the console's form error.
type overpaymentResponse struct {
	Error     string `json:"error"`
	Field     string `json:"field"`
	Track     string `json:"track"`
	Attempted string `json:"attempted"`
	Remaining string `json:"remaining"`
}

func renderOverpayment(c *gin.Context, opErr *billing.OverpaymentError) {
	metrics.RecordPaymentRejected(string(opErr.Track))
	c.JSON(http.StatusUnprocessableEntity, overpaymentResponse{
		Error:     opErr.Error(),
		Field:     "amount",
		Track:     string(opErr.Track),
		Attempted: opErr.Attempted.StringFixed(2),
		Remaining: opErr.RemainingBalance.StringFixed(2),
	})
}

// Record godoc
// @Summary      Record a payment for a member
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        memberID  path      int                   true  "Member ID"
// @Param        request   body      RecordPaymentRequest  true  "Track, amount and optional date/note"
// @Success      201       {object}  Record
// @Failure      400       {object}  api.ErrorResponse
// @Failure      404       {object}  api.ErrorResponse
// @Failure      422       {object}  api.FieldErrorResponse
// @Router       /members/{memberID}/payments [post]
func (h *Handler) Record(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.service.RecordPayment(c.Request.Context(), memberID, req, time.Now())
	if err != nil {
		var opErr *billing.OverpaymentError
		switch {
		case errors.As(err, &opErr):
			renderOverpayment(c, opErr)
		case errors.Is(err, ErrMemberNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
		case errors.Is(err, ErrNoMembership), errors.Is(err, ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Errorf("Failed to record payment for member %d: %v", memberID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record payment"})
		}
		return
	}

	logger.Infof("Payment recorded: member=%d track=%s amount=%s", memberID, rec.Track, rec.Amount)
	metrics.RecordPayment(string(rec.Track))

	c.JSON(http.StatusCreated, rec)
}

// Amend godoc
// @Summary      Amend a recorded payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        paymentID  path      int                  true  "Payment ID"
// @Param        request    body      AmendPaymentRequest  true  "Corrected amount and optional date/note"
// @Success      200        {object}  Record
// @Failure      404        {object}  api.ErrorResponse
// @Failure      422        {object}  api.FieldErrorResponse
// @Router       /payments/{paymentID} [put]
func (h *Handler) Amend(c *gin.Context) {
	paymentID, err := strconv.Atoi(c.Param("paymentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment id"})
		return
	}

	var req AmendPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.service.AmendPayment(c.Request.Context(), paymentID, req)
	if err != nil {
		var opErr *billing.OverpaymentError
		switch {
		case errors.As(err, &opErr):
			renderOverpayment(c, opErr)
		case errors.Is(err, ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "payment not found"})
		case errors.Is(err, ErrNoMembership), errors.Is(err, ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Errorf("Failed to amend payment %d: %v", paymentID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to amend payment"})
		}
		return
	}

	c.JSON(http.StatusOK, rec)
}

// List godoc
// @Summary      List a member's payments
// @Tags         payments
// @Produce      json
// @Param        memberID  path     int  true  "Member ID"
// @Success      200       {array}  Record
// @Failure      404       {object}  api.ErrorResponse
// @Router       /members/{memberID}/payments [get]
func (h *Handler) List(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	records, err := h.service.ListPayments(c.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load payments"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetSummary godoc
// @Summary      Fee/payment summary for a member
// @Tags         payments
// @Produce      json
// @Param        memberID  path      int  true  "Member ID"
// @Success      200       {object}  Summary
// @Failure      404       {object}  api.ErrorResponse
// @Router       /members/{memberID}/payments/summary [get]
func (h *Handler) GetSummary(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	summary, err := h.service.MemberSummary(c.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load payment summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
