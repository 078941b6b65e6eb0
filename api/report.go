package api

import (
	"fmt"
	"sort"
	"time"

	"moneytrack/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ReportHandler 报表处理器
type ReportHandler struct {
	db  *gorm.DB
	agg *service.Aggregator
}

// NewReportHandler 创建报表处理器
func NewReportHandler(db *gorm.DB, agg *service.Aggregator) *ReportHandler {
	return &ReportHandler{db: db, agg: agg}
}

// load 解析 timeFrame 并计算报表
func (h *ReportHandler) load(c *gin.Context) (*service.Report, service.TimeFrame, bool) {
	user, ok := currentUser(c, h.db)
	if !ok {
		return nil, "", false
	}

	tf, err := service.ParseTimeFrame(c.Query("timeFrame"))
	if err != nil {
		ValidationFailed(c, FieldErrors{{Field: "timeFrame", Message: "must be one of: month, year, all"}})
		return nil, "", false
	}

	report, err := h.agg.Report(user.ID, tf)
	if err != nil {
		InternalError(c, "计算报表", err)
		return nil, "", false
	}
	return report, tf, true
}

// Get 分类汇总与月度结余
// @Summary 报表
// @Tags 报表
// @Produce json
// @Security BearerAuth
// @Param timeFrame query string false "month | year | all，默认 month"
// @Success 200 {object} service.Report "报表数据"
// @Failure 400 {object} MessageResponse "timeFrame 不合法"
// @Failure 401 {object} ErrorResponse "未登录"
// @Router /api/reports [get]
func (h *ReportHandler) Get(c *gin.Context) {
	report, _, ok := h.load(c)
	if !ok {
		return
	}
	OK(c, report)
}

// Export 导出报表为 Excel，包含收入分类、支出分类和月度结余三个工作表
// @Summary 导出报表 Excel
// @Tags 报表
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param timeFrame query string false "month | year | all，默认 month"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} MessageResponse "timeFrame 不合法"
// @Failure 401 {object} ErrorResponse "未登录"
// @Router /api/reports/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	report, tf, ok := h.load(c)
	if !ok {
		return
	}

	f, err := buildReportWorkbook(report)
	if err != nil {
		InternalError(c, "生成 Excel", err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("report_%s_%s.xlsx", tf, time.Now().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "写入 Excel", err)
	}
}

// 工作表名称
const (
	sheetIncome  = "Income by category"
	sheetExpense = "Expenses by category"
	sheetMonthly = "Monthly balance"
)

// buildReportWorkbook 将报表写入工作簿
func buildReportWorkbook(report *service.Report) (*excelize.File, error) {
	f := excelize.NewFile()

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	dataStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	writeSheet := func(name string, headers []string, rows [][]interface{}) error {
		for i, header := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			if err := f.SetCellValue(name, cell, header); err != nil {
				return err
			}
		}
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		if err := f.SetCellStyle(name, "A1", last, headerStyle); err != nil {
			return err
		}
		for r, row := range rows {
			for i, v := range row {
				cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
				if err := f.SetCellValue(name, cell, v); err != nil {
					return err
				}
			}
			first, _ := excelize.CoordinatesToCellName(1, r+2)
			end, _ := excelize.CoordinatesToCellName(len(row), r+2)
			if err := f.SetCellStyle(name, first, end, dataStyle); err != nil {
				return err
			}
		}
		return f.SetColWidth(name, "A", "B", 22)
	}

	if err := f.SetSheetName("Sheet1", sheetIncome); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{sheetExpense, sheetMonthly} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}

	sheets := []struct {
		name    string
		headers []string
		rows    [][]interface{}
	}{
		{sheetIncome, []string{"Source", "Amount"}, categoryRows(report.IncomeByCategory)},
		{sheetExpense, []string{"Category", "Amount"}, categoryRows(report.ExpensesByCategory)},
		{sheetMonthly, []string{"Month", "Balance"}, monthlyRows(report.MonthlyBalance)},
	}
	for _, s := range sheets {
		if err := writeSheet(s.name, s.headers, s.rows); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// categoryRows 按金额倒序输出分类合计
func categoryRows(totals map[string]float64) [][]interface{} {
	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if totals[keys[i]] != totals[keys[j]] {
			return totals[keys[i]] > totals[keys[j]]
		}
		return keys[i] < keys[j]
	})
	rows := make([][]interface{}, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []interface{}{k, totals[k]})
	}
	return rows
}

func monthlyRows(list []service.MonthlyBalance) [][]interface{} {
	rows := make([][]interface{}, 0, len(list))
	for _, m := range list {
		rows = append(rows, []interface{}{m.Month, m.Balance})
	}
	return rows
}
