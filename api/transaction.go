package api

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"moneytrack/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TransactionPageSize 交易列表每页条数
const TransactionPageSize = 10

// TransactionHandler 交易处理器
type TransactionHandler struct {
	db *gorm.DB
}

// NewTransactionHandler 创建交易处理器
func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{db: db}
}

// TransactionRequest 创建或修改交易的请求
type TransactionRequest struct {
	Description string  `json:"description" binding:"required" example:"Groceries"`
	Amount      float64 `json:"amount" binding:"required,gt=0" example:"35.2"`
	Type        string  `json:"type" binding:"required,oneof=income expense" example:"expense"`
	Category    string  `json:"category" binding:"required" example:"Food"`
	Date        string  `json:"date" example:"2024-01-15"`
}

// TransactionQuery 交易列表查询参数
type TransactionQuery struct {
	Filter    string `form:"filter" binding:"omitempty,oneof=all income expense"`
	Sort      string `form:"sort" binding:"omitempty,oneof=date amount"`
	Search    string `form:"search"`
	Page      int    `form:"page" binding:"omitempty,min=1,max=100000"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// TransactionPage 交易分页结果
type TransactionPage struct {
	Transactions []models.Transaction `json:"transactions"`
	TotalPages   int                  `json:"totalPages"`
	Total        int64                `json:"total"`
	Page         int                  `json:"page"`
}

// bindTransaction 解析交易请求体并校验日期
func bindTransaction(c *gin.Context) (*TransactionRequest, time.Time, bool) {
	var req TransactionRequest
	errs, ok := bindJSON(c, &req)
	if !ok {
		ValidationFailed(c, errs)
		return nil, time.Time{}, false
	}
	date, errs := requireDate(errs, "date", req.Date)
	if len(errs) > 0 {
		ValidationFailed(c, errs)
		return nil, time.Time{}, false
	}
	return &req, date, true
}

// filteredQuery 按查询参数构造交易查询（不含排序与分页）
func (h *TransactionHandler) filteredQuery(userID uint, q TransactionQuery) (*gorm.DB, FieldErrors) {
	query := h.db.Model(&models.Transaction{}).Where("user_id = ?", userID)

	if models.IsValidTransactionType(q.Filter) {
		query = query.Where("type = ?", q.Filter)
	}

	if search := strings.TrimSpace(q.Search); search != "" {
		pattern := "%" + escapeLikeValue(strings.ToLower(search)) + "%"
		query = query.Where("(LOWER(description) LIKE ? OR LOWER(category) LIKE ?)", pattern, pattern)
	}

	// 起止日期同时提供时才生效
	var errs FieldErrors
	if q.StartDate != "" && q.EndDate != "" {
		start, _, err := parseDate(q.StartDate)
		if err != nil {
			errs = errs.Add("startDate", "must be a valid date")
		}
		end, dateOnly, err := parseDate(q.EndDate)
		if err != nil {
			errs = errs.Add("endDate", "must be a valid date")
		}
		if len(errs) > 0 {
			return nil, errs
		}
		// 只给日期时包含当天
		if dateOnly {
			end = end.Add(24*time.Hour - time.Nanosecond)
		}
		query = query.Where("date >= ? AND date <= ?", start, end)
	}
	return query, nil
}

func orderColumn(sort string) string {
	if sort == "amount" {
		return "amount DESC"
	}
	return "date DESC"
}

// List 交易列表，支持类型过滤、关键字搜索、日期范围、排序和分页
// @Summary 交易列表
// @Tags 交易
// @Produce json
// @Security BearerAuth
// @Param filter query string false "all | income | expense"
// @Param sort query string false "date | amount"
// @Param search query string false "按描述或分类搜索"
// @Param page query int false "页码，从 1 开始，最大 100000"
// @Param startDate query string false "开始日期 (2024-01-01)"
// @Param endDate query string false "结束日期 (2024-01-31)"
// @Success 200 {object} TransactionPage "交易分页"
// @Failure 400 {object} MessageResponse "参数错误"
// @Failure 401 {object} ErrorResponse "未登录"
// @Router /api/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	user, ok := currentUser(c, h.db)
	if !ok {
		return
	}

	var q TransactionQuery
	if errs, _ := bindQuery(c, &q); len(errs) > 0 {
		ValidationFailed(c, errs)
		return
	}
	if q.Page < 1 {
		q.Page = 1
	}

	query, errs := h.filteredQuery(user.ID, q)
	if len(errs) > 0 {
		ValidationFailed(c, errs)
		return
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		InternalError(c, "统计交易", err)
		return
	}

	transactions := []models.Transaction{}
	if err := query.Order(orderColumn(q.Sort)).
		Offset((q.Page - 1) * TransactionPageSize).
		Limit(TransactionPageSize).
		Find(&transactions).Error; err != nil {
		InternalError(c, "查询交易", err)
		return
	}

	OK(c, TransactionPage{
		Transactions: transactions,
		TotalPages:   int((total + TransactionPageSize - 1) / TransactionPageSize),
		Total:        total,
		Page:         q.Page,
	})
}

// Create 创建交易
// @Summary 创建交易
// @Tags 交易
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TransactionRequest true "交易信息"
// @Success 201 {object} models.Transaction "创建成功"
// @Failure 400 {object} MessageResponse "参数错误"
// @Failure 401 {object} ErrorResponse "未登录"
// @Router /api/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	user, ok := currentUser(c, h.db)
	if !ok {
		return
	}

	req, date, ok := bindTransaction(c)
	if !ok {
		return
	}

	tx := models.Transaction{
		UserID:      user.ID,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Date:        date,
	}
	if err := h.db.Create(&tx).Error; err != nil {
		InternalError(c, "创建交易", err)
		return
	}
	Created(c, tx)
}

// findOwned 查询属于当前用户的交易，不存在时返回 404
func (h *TransactionHandler) findOwned(c *gin.Context, userID uint) (*models.Transaction, bool) {
	id, ok := parseIDParam(c)
	if !ok {
		return nil, false
	}

	var tx models.Transaction
	if err := h.db.Where("id = ? AND user_id = ?", id, userID).First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Transaction not found")
		} else {
			InternalError(c, "查询交易", err)
		}
		return nil, false
	}
	return &tx, true
}

// Update 修改交易
// @Summary 修改交易
// @Tags 交易
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "交易 ID"
// @Param request body TransactionRequest true "交易信息"
// @Success 200 {object} models.Transaction "修改成功"
// @Failure 400 {object} MessageResponse "参数错误"
// @Failure 401 {object} ErrorResponse "未登录"
// @Failure 404 {object} ErrorResponse "交易不存在"
// @Router /api/transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	user, ok := currentUser(c, h.db)
	if !ok {
		return
	}

	tx, ok := h.findOwned(c, user.ID)
	if !ok {
		return
	}

	req, date, ok := bindTransaction(c)
	if !ok {
		return
	}

	updates := map[string]interface{}{
		"description": req.Description,
		"amount":      req.Amount,
		"type":        req.Type,
		"category":    req.Category,
		"date":        date,
	}
	if err := h.db.Model(tx).Updates(updates).Error; err != nil {
		InternalError(c, "修改交易", err)
		return
	}

	tx.Description = req.Description
	tx.Amount = req.Amount
	tx.Type = req.Type
	tx.Category = req.Category
	tx.Date = date
	OK(c, tx)
}

// Delete 删除交易
// @Summary 删除交易
// @Tags 交易
// @Produce json
// @Security BearerAuth
// @Param id path int true "交易 ID"
// @Success 200 {object} SuccessResponse "删除成功"
// @Failure 401 {object} ErrorResponse "未登录"
// @Failure 404 {object} ErrorResponse "交易不存在"
// @Router /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c, h.db)
	if !ok {
		return
	}

	tx, ok := h.findOwned(c, user.ID)
	if !ok {
		return
	}

	if err := h.db.Delete(tx).Error; err != nil {
		InternalError(c, "删除交易", err)
		return
	}
	OK(c, SuccessResponse{Success: true})
}

// ExportCSV 按列表相同的过滤条件导出全部交易
// @Summary 导出交易 CSV
// @Tags 交易
// @Produce text/csv
// @Security BearerAuth
// @Param filter query string false "all | income | expense"
// @Param sort query string false "date | amount"
// @Param search query string false "按描述或分类搜索"
// @Param startDate query string false "开始日期"
// @Param endDate query string false "结束日期"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} MessageResponse "参数错误"
// @Failure 401 {object} ErrorResponse "未登录"
// @Router /api/transactions/export [get]
func (h *TransactionHandler) ExportCSV(c *gin.Context) {
	user, ok := currentUser(c, h.db)
	if !ok {
		return
	}

	var q TransactionQuery
	if errs, _ := bindQuery(c, &q); len(errs) > 0 {
		ValidationFailed(c, errs)
		return
	}

	query, errs := h.filteredQuery(user.ID, q)
	if len(errs) > 0 {
		ValidationFailed(c, errs)
		return
	}

	var transactions []models.Transaction
	if err := query.Order(orderColumn(q.Sort)).Find(&transactions).Error; err != nil {
		InternalError(c, "查询交易", err)
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")
	writer := csv.NewWriter(buf)

	if err := writer.Write([]string{"ID", "Date", "Type", "Category", "Description", "Amount"}); err != nil {
		InternalError(c, "写入 CSV 表头", err)
		return
	}
	for _, tx := range transactions {
		record := []string{
			strconv.FormatUint(uint64(tx.ID), 10),
			tx.Date.Format("2006-01-02"),
			tx.Type,
			tx.Category,
			tx.Description,
			strconv.FormatFloat(tx.SignedAmount(), 'f', 2, 64),
		}
		if err := writer.Write(record); err != nil {
			InternalError(c, "写入 CSV 数据", err)
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV", err)
		return
	}

	filename := fmt.Sprintf("transactions_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(200, "text/csv; charset=utf-8", buf.Bytes())
}
