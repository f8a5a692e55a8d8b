package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Samuel-ncu/goshopsync/internal/application/sales"
	"github.com/Samuel-ncu/goshopsync/pkg/logger"
)

type MockHistory struct {
	mock.Mock
}

func (m *MockHistory) RunRevenues() ([]sales.RunRevenue, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sales.RunRevenue), args.Error(1)
}

func (m *MockHistory) WriteSummary(rows []sales.RunRevenue, total decimal.Decimal) error {
	return m.Called(rows, total).Error(0)
}

func (m *MockHistory) AppendClassTotals(logName string, t sales.ClassTotals) error {
	return m.Called(logName, t).Error(0)
}

func newSalesRouter(history *MockHistory) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSalesHandler(sales.NewService(history, logger.NewNop()))
	r.GET("/api/sales/summary", h.GetSummary)
	return r
}

func TestSalesHandler_GetSummary(t *testing.T) {
	mockHistory := new(MockHistory)
	mockHistory.On("RunRevenues").Return([]sales.RunRevenue{
		{File: "orders_20260801_alice.xlsx", Revenue: decimal.NewFromFloat(15.25)},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/sales/summary", nil)
	newSalesRouter(mockHistory).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_revenue":"15.25"`)
	assert.Contains(t, w.Body.String(), `"file":"orders_20260801_alice.xlsx"`)
}

func TestSalesHandler_GetSummary_HistoryError(t *testing.T) {
	mockHistory := new(MockHistory)
	mockHistory.On("RunRevenues").Return(nil, errors.New("corrupt workbook"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/sales/summary", nil)
	newSalesRouter(mockHistory).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
