package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"moneytrack/config"
	"moneytrack/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func newTestAggregator(db *gorm.DB) *service.Aggregator {
	return service.NewAggregator(db, config.DashboardConfig{RecentLimit: 5, SummaryWindow: 5})
}

func TestDashboardHandler_Get(t *testing.T) {
	db, mock := setupMockDB(t)
	expectCurrentUser(mock)
	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `incomes` WHERE user_id = \\? .* ORDER BY date DESC LIMIT 5").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(incomeColumns).
			AddRow(1, 1, 100.0, "Salary", "Work", now.Add(-2*time.Hour), now, now, nil).
			AddRow(2, 1, 50.0, "Gift", "Family", now.Add(-3*time.Hour), now, now, nil))
	mock.ExpectQuery("SELECT .* FROM `expenses` WHERE user_id = \\? .* ORDER BY date DESC LIMIT 5").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(expenseColumns).
			AddRow(1, 1, 30.0, "Lunch", "Food", now.Add(-time.Hour), now, now, nil))

	router := newTestRouter()
	router.GET("/api/dashboard", NewDashboardHandler(db, newTestAggregator(db)).Get)

	w := doRequest(router, "GET", "/api/dashboard", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var summary service.DashboardSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 150.0, summary.TotalIncome)
	assert.Equal(t, 30.0, summary.TotalExpenses)
	assert.Equal(t, 120.0, summary.CurrentBalance)
	require.Len(t, summary.RecentTransactions, 3)
	assert.Equal(t, "Lunch", summary.RecentTransactions[0].Description)
	assert.Equal(t, -30.0, summary.RecentTransactions[0].Amount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardHandler_Unauthenticated(t *testing.T) {
	db, mock := setupMockDB(t)

	router := ginWithoutIdentity()
	router.GET("/api/dashboard", NewDashboardHandler(db, newTestAggregator(db)).Get)

	w := doRequest(router, "GET", "/api/dashboard", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func expectReportQueries(mock sqlmock.Sqlmock) {
	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `incomes` WHERE .*user_id = \\? AND date >= \\?").
		WithArgs(1, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(incomeColumns).
			AddRow(1, 1, 1000.0, "Salary", "Work", now, now, now, nil).
			AddRow(2, 1, 200.0, "Bonus", "Work", now, now, now, nil))
	mock.ExpectQuery("SELECT .* FROM `expenses` WHERE .*user_id = \\? AND date >= \\?").
		WithArgs(1, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(expenseColumns).
			AddRow(1, 1, 300.0, "Rent", "Housing", now, now, now, nil))
}

func TestReportHandler_Get(t *testing.T) {
	db, mock := setupMockDB(t)
	expectCurrentUser(mock)
	expectReportQueries(mock)

	router := newTestRouter()
	router.GET("/api/reports", NewReportHandler(db, newTestAggregator(db)).Get)

	w := doRequest(router, "GET", "/api/reports?timeFrame=year", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var report service.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, map[string]float64{"Work": 1200}, report.IncomeByCategory)
	assert.Equal(t, map[string]float64{"Housing": 300}, report.ExpensesByCategory)
	require.Len(t, report.MonthlyBalance, 1)
	assert.Equal(t, time.Now().Format("2006-01"), report.MonthlyBalance[0].Month)
	assert.Equal(t, 900.0, report.MonthlyBalance[0].Balance)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReportHandler_InvalidTimeFrame(t *testing.T) {
	db, mock := setupMockDB(t)
	expectCurrentUser(mock)

	router := newTestRouter()
	router.GET("/api/reports", NewReportHandler(db, newTestAggregator(db)).Get)

	w := doRequest(router, "GET", "/api/reports?timeFrame=decade", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "timeFrame", resp.Errors[0].Field)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReportHandler_Export(t *testing.T) {
	db, mock := setupMockDB(t)
	expectCurrentUser(mock)
	expectReportQueries(mock)

	router := newTestRouter()
	router.GET("/api/reports/export", NewReportHandler(db, newTestAggregator(db)).Export)

	w := doRequest(router, "GET", "/api/reports/export?timeFrame=all", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{sheetIncome, sheetExpense, sheetMonthly}, f.GetSheetList())

	v, err := f.GetCellValue(sheetIncome, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Work", v)
	v, err = f.GetCellValue(sheetIncome, "B2")
	require.NoError(t, err)
	assert.Equal(t, "1200", v)
	v, err = f.GetCellValue(sheetExpense, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Category", v)
	v, err = f.GetCellValue(sheetMonthly, "B2")
	require.NoError(t, err)
	assert.Equal(t, "900", v)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRows_SortedByAmount(t *testing.T) {
	rows := categoryRows(map[string]float64{"Food": 50, "Rent": 900, "Fun": 50})
	require.Len(t, rows, 3)
	assert.Equal(t, "Rent", rows[0][0])
	assert.Equal(t, "Food", rows[1][0])
	assert.Equal(t, "Fun", rows[2][0])
	assert.Empty(t, categoryRows(nil))
}
