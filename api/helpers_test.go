package api

import (
	"bytes"
	"net/http/httptest"
	"testing"
	"time"

	"moneytrack/middleware"
	"moneytrack/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

var (
	userColumns        = []string{"id", "name", "email", "password", "created_at", "updated_at", "deleted_at"}
	expenseColumns     = []string{"id", "user_id", "amount", "description", "category", "date", "created_at", "updated_at", "deleted_at"}
	incomeColumns      = []string{"id", "user_id", "amount", "description", "source", "date", "created_at", "updated_at", "deleted_at"}
	goalColumns        = []string{"id", "user_id", "name", "category", "target_amount", "current_amount", "deadline", "created_at", "updated_at", "deleted_at"}
	transactionColumns = []string{"id", "user_id", "description", "amount", "type", "category", "date", "created_at", "updated_at", "deleted_at"}
)

var testIdentity = models.Identity{UserID: 1, Email: "alice@example.com", Name: "Alice"}

// withIdentity 模拟已通过会话校验的请求
func withIdentity(id models.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetIdentity(c, id)
		c.Next()
	}
}

// expectCurrentUser 当前用户查询
func expectCurrentUser(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("SELECT .* FROM `users` WHERE email = \\?").
		WithArgs(testIdentity.Email).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(testIdentity.UserID, testIdentity.Name, testIdentity.Email, "hash", time.Now(), time.Now(), nil))
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withIdentity(testIdentity))
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doRequestWithToken(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCurrentUser_Unauthenticated(t *testing.T) {
	db, mock := setupMockDB(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/me", func(c *gin.Context) {
		if _, ok := currentUser(c, db); ok {
			c.String(200, "ok")
		}
	})

	w := doRequest(router, "GET", "/me", "")
	assert.Equal(t, 401, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCurrentUser_UserDeleted(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs(testIdentity.Email).
		WillReturnRows(sqlmock.NewRows(userColumns))

	router := newTestRouter()
	router.GET("/me", func(c *gin.Context) {
		if _, ok := currentUser(c, db); ok {
			c.String(200, "ok")
		}
	})

	w := doRequest(router, "GET", "/me", "")
	assert.Equal(t, 404, w.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEscapeLikeValue(t *testing.T) {
	// % 和 _ 正确转义
	assert.Equal(t, `\%`, escapeLikeValue("%"))
	assert.Equal(t, `\_`, escapeLikeValue("_"))
	assert.Equal(t, `\\`, escapeLikeValue(`\`))

	// 组合转义
	assert.Equal(t, `\%food\%`, escapeLikeValue("%food%"))
	assert.Equal(t, `\\\%\_`, escapeLikeValue(`\%_`))

	// 普通字符串不变
	assert.Equal(t, "", escapeLikeValue(""))
	assert.Equal(t, "rent", escapeLikeValue("rent"))
}
