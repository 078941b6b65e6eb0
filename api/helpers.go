package api

import (
	"errors"
	"strconv"
	"strings"

	"moneytrack/middleware"
	"moneytrack/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// currentUser 根据会话中的邮箱加载当前用户
// 未登录返回 401，用户已不存在返回 404
func currentUser(c *gin.Context, db *gorm.DB) (*models.User, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok || identity.Email == "" {
		Unauthorized(c)
		return nil, false
	}

	var user models.User
	if err := db.Where("email = ?", identity.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "User not found")
		} else {
			InternalError(c, "查询当前用户", err)
		}
		return nil, false
	}
	return &user, true
}

// parseIDParam 解析路径中的 id
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		BadRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// escapeLikeValue 转义 LIKE 查询中的通配符 % 和 _，防止用户注入改变匹配语义
func escapeLikeValue(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
