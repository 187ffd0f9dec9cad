package payment

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gymdesk/internal/billing"
	"gymdesk/internal/member"
)

func paymentRouter(service Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &Handler{service: service}

	router := gin.New()
	router.POST("/members/:memberID/payments", h.Record)
	router.GET("/members/:memberID/payments/summary", h.GetSummary)
	router.PUT("/payments/:paymentID", h.Amend)
	return router
}

func TestHandler_Record_Overpayment422(t *testing.T) {
	mockRepo := new(MockRepository)
	mockMembers := new(MockMemberRepository)
	router := paymentRouter(NewService(mockRepo, mockMembers))

	mockMembers.On("GetByID", mock.Anything, 1).Return(&member.Member{ID: 1}, nil)
	mockMembers.On("LatestMembership", mock.Anything, 1).Return(membershipWithFees(1000, nil), nil)
	mockRepo.On("ListByMember", mock.Anything, 1).Return([]Record{
		{ID: 1, Track: billing.TrackRegular, Amount: decimal.NewFromInt(800)},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/members/1/payments",
		bytes.NewBufferString(`{"track": "REGULAR", "amount": "300"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body overpaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "amount", body.Field)
	assert.Equal(t, "REGULAR", body.Track)
	assert.Equal(t, "300.00", body.Attempted)
	assert.Equal(t, "200.00", body.Remaining)
}

func TestHandler_Record_Created(t *testing.T) {
	mockRepo := new(MockRepository)
	mockMembers := new(MockMemberRepository)
	router := paymentRouter(NewService(mockRepo, mockMembers))

	mockMembers.On("GetByID", mock.Anything, 1).Return(&member.Member{ID: 1}, nil)
	mockMembers.On("LatestMembership", mock.Anything, 1).Return(membershipWithFees(1000, nil), nil)
	mockRepo.On("ListByMember", mock.Anything, 1).Return([]Record{}, nil)
	mockRepo.On("Create", mock.Anything, 1, billing.TrackRegular,
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(500)) }),
		mock.AnythingOfType("time.Time"), "").
		Return(&Record{ID: 1, MemberID: 1, Track: billing.TrackRegular, Amount: decimal.NewFromInt(500), PaidAt: time.Now()}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/members/1/payments",
		bytes.NewBufferString(`{"track": "REGULAR", "amount": "500"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"track":"REGULAR"`)
}

func TestHandler_Amend_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	mockMembers := new(MockMemberRepository)
	router := paymentRouter(NewService(mockRepo, mockMembers))

	mockRepo.On("GetByID", mock.Anything, 99).Return(nil, sql.ErrNoRows)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/payments/99",
		bytes.NewBufferString(`{"amount": "100"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Summary_OK(t *testing.T) {
	mockRepo := new(MockRepository)
	mockMembers := new(MockMemberRepository)
	router := paymentRouter(NewService(mockRepo, mockMembers))

	ptFees := int64(2000)
	mockMembers.On("GetByID", mock.Anything, 1).Return(&member.Member{ID: 1}, nil)
	mockMembers.On("LatestMembership", mock.Anything, 1).Return(membershipWithFees(1000, &ptFees), nil)
	mockRepo.On("ListByMember", mock.Anything, 1).Return([]Record{
		{ID: 1, Track: billing.TrackRegular, Amount: decimal.NewFromInt(400)},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/members/1/payments/summary", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"member_id":1`)
	assert.Contains(t, w.Body.String(), `"PT"`)
}
