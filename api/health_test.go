package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func ginWithoutIdentity() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestHealthHandler(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()
	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	h := NewHealthHandler(db, "debug")
	router := ginWithoutIdentity()
	router.GET("/health", h.Live)
	router.GET("/api/health/db", h.Database)
	router.GET("/release/health/db", NewHealthHandler(db, "release").Database)

	w := doRequest(router, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	mock.ExpectPing()
	w = doRequest(router, "GET", "/api/health/db", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","database":"connected"}`, w.Body.String())

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	w = doRequest(router, "GET", "/api/health/db", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"error":"Database unavailable","detail":"connection refused"}`, w.Body.String())

	// release 模式不返回错误详情
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	w = doRequest(router, "GET", "/release/health/db", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"error":"Database unavailable"}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}
