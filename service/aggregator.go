package service

import (
	"fmt"
	"sort"
	"time"

	"moneytrack/config"
	"moneytrack/models"

	"gorm.io/gorm"
)

// TimeFrame 报表时间范围
type TimeFrame string

const (
	TimeFrameMonth TimeFrame = "month"
	TimeFrameYear  TimeFrame = "year"
	TimeFrameAll   TimeFrame = "all"
)

// ParseTimeFrame 解析时间范围，空值默认为 month
func ParseTimeFrame(s string) (TimeFrame, error) {
	switch TimeFrame(s) {
	case "":
		return TimeFrameMonth, nil
	case TimeFrameMonth, TimeFrameYear, TimeFrameAll:
		return TimeFrame(s), nil
	default:
		return "", fmt.Errorf("invalid timeFrame %q, expected month, year or all", s)
	}
}

// StartDate 时间范围的起始日期：本月 1 日、本年 1 月 1 日或纪元时间
func StartDate(tf TimeFrame, now time.Time) time.Time {
	switch tf {
	case TimeFrameMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case TimeFrameYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Unix(0, 0)
	}
}

// RecentTransaction 首页最近交易，支出金额为负
type RecentTransaction struct {
	ID          uint      `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
}

// DashboardSummary 首页汇总
type DashboardSummary struct {
	TotalIncome        float64             `json:"totalIncome"`
	TotalExpenses      float64             `json:"totalExpenses"`
	CurrentBalance     float64             `json:"currentBalance"`
	RecentTransactions []RecentTransaction `json:"recentTransactions"`
}

// MonthlyBalance 月度结余，Month 格式 YYYY-MM
type MonthlyBalance struct {
	Month   string  `json:"month"`
	Balance float64 `json:"balance"`
}

// Report 收支报表
type Report struct {
	IncomeByCategory   map[string]float64 `json:"incomeByCategory"`
	ExpensesByCategory map[string]float64 `json:"expensesByCategory"`
	MonthlyBalance     []MonthlyBalance   `json:"monthlyBalance"`
}

// ComputeDashboard 合计传入的收入与支出，并合并出按日期倒序的最近 recentLimit 条交易
func ComputeDashboard(incomes []models.Income, expenses []models.Expense, recentLimit int) DashboardSummary {
	summary := DashboardSummary{RecentTransactions: make([]RecentTransaction, 0, len(incomes)+len(expenses))}

	for _, in := range incomes {
		summary.TotalIncome += in.Amount
		summary.RecentTransactions = append(summary.RecentTransactions, RecentTransaction{
			ID:          in.ID,
			Type:        models.TransactionTypeIncome,
			Description: in.Description,
			Amount:      in.Amount,
			Date:        in.Date,
		})
	}
	for _, ex := range expenses {
		summary.TotalExpenses += ex.Amount
		summary.RecentTransactions = append(summary.RecentTransactions, RecentTransaction{
			ID:          ex.ID,
			Type:        models.TransactionTypeExpense,
			Description: ex.Description,
			Amount:      -ex.Amount,
			Date:        ex.Date,
		})
	}
	summary.CurrentBalance = summary.TotalIncome - summary.TotalExpenses

	sort.SliceStable(summary.RecentTransactions, func(i, j int) bool {
		return summary.RecentTransactions[i].Date.After(summary.RecentTransactions[j].Date)
	})
	if recentLimit >= 0 && len(summary.RecentTransactions) > recentLimit {
		summary.RecentTransactions = summary.RecentTransactions[:recentLimit]
	}
	return summary
}

// ComputeReport 按分类汇总收入（以来源为分类）与支出，并计算月度结余（按月份升序）
func ComputeReport(incomes []models.Income, expenses []models.Expense) Report {
	report := Report{
		IncomeByCategory:   make(map[string]float64),
		ExpensesByCategory: make(map[string]float64),
		MonthlyBalance:     make([]MonthlyBalance, 0),
	}

	monthly := make(map[string]float64)
	for _, in := range incomes {
		report.IncomeByCategory[in.Source] += in.Amount
		monthly[monthKey(in.Date)] += in.Amount
	}
	for _, ex := range expenses {
		report.ExpensesByCategory[ex.Category] += ex.Amount
		monthly[monthKey(ex.Date)] -= ex.Amount
	}

	for month, balance := range monthly {
		report.MonthlyBalance = append(report.MonthlyBalance, MonthlyBalance{Month: month, Balance: balance})
	}
	// YYYY-MM 补零格式，字典序即时间序
	sort.Slice(report.MonthlyBalance, func(i, j int) bool {
		return report.MonthlyBalance[i].Month < report.MonthlyBalance[j].Month
	})
	return report
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// Aggregator 从数据库读取当前用户的记录并计算汇总
type Aggregator struct {
	db            *gorm.DB
	recentLimit   int
	summaryWindow int
	now           func() time.Time
}

// NewAggregator 创建汇总服务
func NewAggregator(db *gorm.DB, cfg config.DashboardConfig) *Aggregator {
	recent := cfg.RecentLimit
	if recent <= 0 {
		recent = 5
	}
	window := cfg.SummaryWindow
	if window < 0 {
		window = 5
	}
	return &Aggregator{db: db, recentLimit: recent, summaryWindow: window, now: time.Now}
}

// Dashboard 首页汇总
// summaryWindow > 0 时合计只包含最近 summaryWindow 条收入和支出；为 0 时合计全部历史
func (a *Aggregator) Dashboard(userID uint) (*DashboardSummary, error) {
	limit := a.summaryWindow
	if limit == 0 {
		limit = a.recentLimit
	}

	var incomes []models.Income
	if err := a.db.Where("user_id = ?", userID).Order("date DESC").Limit(limit).Find(&incomes).Error; err != nil {
		return nil, fmt.Errorf("查询收入失败: %w", err)
	}
	var expenses []models.Expense
	if err := a.db.Where("user_id = ?", userID).Order("date DESC").Limit(limit).Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("查询支出失败: %w", err)
	}

	summary := ComputeDashboard(incomes, expenses, a.recentLimit)

	if a.summaryWindow == 0 {
		var totalIncome, totalExpenses float64
		if err := a.db.Model(&models.Income{}).Where("user_id = ?", userID).
			Select("COALESCE(SUM(amount), 0)").Scan(&totalIncome).Error; err != nil {
			return nil, fmt.Errorf("统计收入失败: %w", err)
		}
		if err := a.db.Model(&models.Expense{}).Where("user_id = ?", userID).
			Select("COALESCE(SUM(amount), 0)").Scan(&totalExpenses).Error; err != nil {
			return nil, fmt.Errorf("统计支出失败: %w", err)
		}
		summary.TotalIncome = totalIncome
		summary.TotalExpenses = totalExpenses
		summary.CurrentBalance = totalIncome - totalExpenses
	}

	return &summary, nil
}

// Report 统计 timeFrame 起始日期（含）之后的收入与支出，无结束日期
func (a *Aggregator) Report(userID uint, tf TimeFrame) (*Report, error) {
	start := StartDate(tf, a.now())

	var incomes []models.Income
	if err := a.db.Where("user_id = ? AND date >= ?", userID, start).Find(&incomes).Error; err != nil {
		return nil, fmt.Errorf("查询收入失败: %w", err)
	}
	var expenses []models.Expense
	if err := a.db.Where("user_id = ? AND date >= ?", userID, start).Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("查询支出失败: %w", err)
	}

	// 数据库时区与应用时区不一致时以应用时区为准
	incomes = incomesSince(incomes, start)
	expenses = expensesSince(expenses, start)

	report := ComputeReport(incomes, expenses)
	return &report, nil
}

func incomesSince(list []models.Income, start time.Time) []models.Income {
	out := list[:0]
	for _, in := range list {
		if !in.Date.Before(start) {
			out = append(out, in)
		}
	}
	return out
}

func expensesSince(list []models.Expense, start time.Time) []models.Expense {
	out := list[:0]
	for _, ex := range list {
		if !ex.Date.Before(start) {
			out = append(out, ex)
		}
	}
	return out
}
