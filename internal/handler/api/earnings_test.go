//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"rentledger/internal/handler/api"
	resdto "rentledger/internal/handler/dto/response"
	"rentledger/internal/usecase/queries"
	"rentledger/tests/common/httptest"
	queriesmock "rentledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EarningsHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockEarningsQueries
	handler     *api.EarningsHandler
	userID      uuid.UUID
}

func (s *EarningsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockEarningsQueries(s.mockCtrl)
	s.handler = api.NewEarningsHandler(s.mockQueries)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.GET("/earnings", authMiddleware, s.handler.GetSummary)
	s.router.GET("/earnings/history", authMiddleware, s.handler.GetHistory)
}

func (s *EarningsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEarningsHandlerSuite(t *testing.T) {
	suite.Run(t, new(EarningsHandlerTestSuite))
}

func (s *EarningsHandlerTestSuite) TestGetSummary() {
	url := "/earnings"

	s.Run("success: returns 200 OK with aggregates", func() {
		view := &queries.EarningsSummaryView{
			OwnerID:           s.userID,
			TotalEarnings:     15000,
			CompletedBookings: 4,
			PendingPayout:     5000,
			TotalPayout:       10000,
		}
		s.mockQueries.EXPECT().Summary(gomock.Any(), s.userID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.EarningsSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(15000), response.TotalEarnings)
		s.Equal(int32(4), response.CompletedBookings)
	})

	s.Run("success: fresh host sees zeroed aggregates", func() {
		view := &queries.EarningsSummaryView{OwnerID: s.userID}
		s.mockQueries.EXPECT().Summary(gomock.Any(), s.userID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.EarningsSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Zero(response.TotalEarnings)
		s.Zero(response.CompletedBookings)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().Summary(gomock.Any(), s.userID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *EarningsHandlerTestSuite) TestGetHistory() {
	url := "/earnings/history"

	s.Run("success: returns 200 OK with accrual entries", func() {
		items := []*queries.EarningsHistoryItem{
			{
				BookingID:    uuid.New(),
				Amount:       3000,
				BookingType:  "room",
				ListingTitle: "Sunny Lakeside Room",
				Status:       "completed",
				CompletedAt:  time.Date(2026, 3, 13, 10, 0, 0, 0, time.UTC),
			},
		}
		s.mockQueries.EXPECT().History(gomock.Any(), s.userID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.EarningsHistoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(int64(3000), response[0].Amount)
		s.Equal("completed", response[0].Status)
	})

	s.Run("success: returns 200 OK with empty history", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), s.userID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.EarningsHistoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})
}
