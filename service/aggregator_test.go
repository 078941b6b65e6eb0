package service

import (
	"testing"
	"time"

	"moneytrack/config"
	"moneytrack/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	incomeColumns  = []string{"id", "user_id", "amount", "description", "source", "date", "created_at", "updated_at", "deleted_at"}
	expenseColumns = []string{"id", "user_id", "amount", "description", "category", "date", "created_at", "updated_at", "deleted_at"}
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestParseTimeFrame(t *testing.T) {
	tf, err := ParseTimeFrame("")
	require.NoError(t, err)
	assert.Equal(t, TimeFrameMonth, tf)

	for _, s := range []string{"month", "year", "all"} {
		tf, err := ParseTimeFrame(s)
		require.NoError(t, err)
		assert.Equal(t, TimeFrame(s), tf)
	}

	_, err = ParseTimeFrame("week")
	assert.Error(t, err)
}

func TestStartDate(t *testing.T) {
	now := time.Date(2026, time.October, 14, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), StartDate(TimeFrameMonth, now))
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), StartDate(TimeFrameYear, now))
	assert.Equal(t, time.Unix(0, 0), StartDate(TimeFrameAll, now))
}

func TestComputeDashboard(t *testing.T) {
	incomes := []models.Income{
		{ID: 1, Amount: 100, Description: "salary", Date: day(2026, 10, 1)},
		{ID: 2, Amount: 50, Description: "gift", Date: day(2026, 10, 3)},
	}
	expenses := []models.Expense{
		{ID: 9, Amount: 30, Description: "lunch", Date: day(2026, 10, 2)},
	}

	s := ComputeDashboard(incomes, expenses, 5)
	assert.Equal(t, 150.0, s.TotalIncome)
	assert.Equal(t, 30.0, s.TotalExpenses)
	assert.Equal(t, 120.0, s.CurrentBalance)

	require.Len(t, s.RecentTransactions, 3)
	assert.Equal(t, uint(2), s.RecentTransactions[0].ID)
	assert.Equal(t, 50.0, s.RecentTransactions[0].Amount)
	assert.Equal(t, uint(9), s.RecentTransactions[1].ID)
	assert.Equal(t, -30.0, s.RecentTransactions[1].Amount)
	assert.Equal(t, models.TransactionTypeExpense, s.RecentTransactions[1].Type)
	assert.Equal(t, uint(1), s.RecentTransactions[2].ID)
}

func TestComputeDashboard_RecentLimit(t *testing.T) {
	var incomes []models.Income
	var expenses []models.Expense
	for i := 1; i <= 5; i++ {
		incomes = append(incomes, models.Income{ID: uint(i), Amount: 10, Date: day(2026, 1, i)})
		expenses = append(expenses, models.Expense{ID: uint(10 + i), Amount: 1, Date: day(2026, 2, i)})
	}

	s := ComputeDashboard(incomes, expenses, 5)
	require.Len(t, s.RecentTransactions, 5)
	// 最近的 5 条全部是二月的支出
	for i, tx := range s.RecentTransactions {
		assert.Equal(t, uint(15-i), tx.ID)
		assert.Less(t, tx.Amount, 0.0)
	}
	assert.Equal(t, 50.0, s.TotalIncome)
	assert.Equal(t, 5.0, s.TotalExpenses)
}

func TestComputeDashboard_Empty(t *testing.T) {
	s := ComputeDashboard(nil, nil, 5)
	assert.Equal(t, 0.0, s.CurrentBalance)
	assert.NotNil(t, s.RecentTransactions)
	assert.Empty(t, s.RecentTransactions)
}

func TestComputeReport(t *testing.T) {
	incomes := []models.Income{
		{Amount: 1000, Source: "salary", Date: day(2026, 9, 30)},
		{Amount: 200, Source: "freelance", Date: day(2026, 10, 2)},
		{Amount: 300, Source: "salary", Date: day(2026, 10, 30)},
	}
	expenses := []models.Expense{
		{Amount: 40, Category: "food", Date: day(2026, 8, 15)},
		{Amount: 60, Category: "food", Date: day(2026, 10, 5)},
		{Amount: 500, Category: "rent", Date: day(2026, 10, 1)},
	}

	r := ComputeReport(incomes, expenses)
	assert.Equal(t, map[string]float64{"salary": 1300, "freelance": 200}, r.IncomeByCategory)
	assert.Equal(t, map[string]float64{"food": 100, "rent": 500}, r.ExpensesByCategory)
	assert.Equal(t, []MonthlyBalance{
		{Month: "2026-08", Balance: -40},
		{Month: "2026-09", Balance: 1000},
		{Month: "2026-10", Balance: -60},
	}, r.MonthlyBalance)
}

func TestComputeReport_YearBoundaryOrdering(t *testing.T) {
	r := ComputeReport([]models.Income{
		{Amount: 1, Source: "a", Date: day(2026, 1, 1)},
		{Amount: 1, Source: "a", Date: day(2025, 12, 31)},
		{Amount: 1, Source: "a", Date: day(2025, 2, 1)},
	}, nil)
	require.Len(t, r.MonthlyBalance, 3)
	assert.Equal(t, "2025-02", r.MonthlyBalance[0].Month)
	assert.Equal(t, "2025-12", r.MonthlyBalance[1].Month)
	assert.Equal(t, "2026-01", r.MonthlyBalance[2].Month)
}

func TestAggregator_Dashboard(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `incomes` WHERE user_id = \\? .* ORDER BY date DESC LIMIT 5").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(incomeColumns).
			AddRow(2, 1, 50, "gift", "family", day(2026, 10, 3), time.Now(), time.Now(), nil).
			AddRow(1, 1, 100, "salary", "job", day(2026, 10, 1), time.Now(), time.Now(), nil))
	mock.ExpectQuery("SELECT .* FROM `expenses` WHERE user_id = \\? .* ORDER BY date DESC LIMIT 5").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(expenseColumns).
			AddRow(9, 1, 30, "lunch", "food", day(2026, 10, 2), time.Now(), time.Now(), nil))

	a := NewAggregator(db, config.DashboardConfig{RecentLimit: 5, SummaryWindow: 5})
	s, err := a.Dashboard(1)
	require.NoError(t, err)
	assert.Equal(t, 150.0, s.TotalIncome)
	assert.Equal(t, 30.0, s.TotalExpenses)
	assert.Equal(t, 120.0, s.CurrentBalance)
	assert.Len(t, s.RecentTransactions, 3)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAggregator_Dashboard_FullHistory(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(sqlmock.NewRows(incomeColumns).
			AddRow(1, 1, 100, "salary", "job", day(2026, 10, 1), time.Now(), time.Now(), nil))
	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows(expenseColumns))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM `incomes`").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(2500))
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM `expenses`").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(700))

	a := NewAggregator(db, config.DashboardConfig{RecentLimit: 5, SummaryWindow: 0})
	s, err := a.Dashboard(1)
	require.NoError(t, err)
	assert.Equal(t, 2500.0, s.TotalIncome)
	assert.Equal(t, 700.0, s.TotalExpenses)
	assert.Equal(t, 1800.0, s.CurrentBalance)
	assert.Len(t, s.RecentTransactions, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAggregator_Report_MonthExcludesEarlierRecords(t *testing.T) {
	db, mock := setupMockDB(t)

	now := time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)
	start := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT .* FROM `incomes` WHERE .*user_id = \\? AND date >= \\?").
		WithArgs(3, start).
		WillReturnRows(sqlmock.NewRows(incomeColumns).
			AddRow(1, 3, 800, "salary", "job", day(2026, 10, 1), time.Now(), time.Now(), nil).
			// 边界之前的记录即使被返回也必须排除
			AddRow(2, 3, 999, "old", "job", day(2026, 9, 30), time.Now(), time.Now(), nil))
	mock.ExpectQuery("SELECT .* FROM `expenses` WHERE .*user_id = \\? AND date >= \\?").
		WithArgs(3, start).
		WillReturnRows(sqlmock.NewRows(expenseColumns).
			AddRow(5, 3, 120, "groceries", "food", day(2026, 10, 10), time.Now(), time.Now(), nil).
			AddRow(6, 3, 77, "old", "misc", day(2026, 9, 2), time.Now(), time.Now(), nil))

	a := NewAggregator(db, config.DashboardConfig{})
	a.now = func() time.Time { return now }

	r, err := a.Report(3, TimeFrameMonth)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"job": 800}, r.IncomeByCategory)
	assert.Equal(t, map[string]float64{"food": 120}, r.ExpensesByCategory)
	assert.Equal(t, []MonthlyBalance{{Month: "2026-10", Balance: 680}}, r.MonthlyBalance)
	require.NoError(t, mock.ExpectationsWereMet())
}
