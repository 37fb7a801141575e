package api

import (
	"net/http"

	resdto "rentledger/internal/handler/dto/response"
	"rentledger/internal/handler/middleware"
	"rentledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EarningsHandler struct {
	earningsQueries queries.EarningsQueries
}

func NewEarningsHandler(earningsQueries queries.EarningsQueries) *EarningsHandler {
	return &EarningsHandler{
		earningsQueries: earningsQueries,
	}
}

// @Summary Earnings summary
// @Description Running earnings aggregates of the current user as host
// @Tags earnings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.EarningsSummaryResponse
// @Failure 401 {object} map[string]string
// @Router /earnings [get]
func (h *EarningsHandler) GetSummary(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	summary, err := h.earningsQueries.Summary(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEarningsSummaryView(summary))
}

// @Summary Earnings history
// @Description Per-booking accrual entries of the current user, newest first
// @Tags earnings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.EarningsHistoryResponse
// @Failure 401 {object} map[string]string
// @Router /earnings/history [get]
func (h *EarningsHandler) GetHistory(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	history, err := h.earningsQueries.History(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.EarningsHistoryResponse, len(history))
	for i, item := range history {
		response[i] = resdto.FromEarningsHistoryItem(item)
	}

	c.JSON(http.StatusOK, response)
}
