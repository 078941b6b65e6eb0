package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 错误响应：400/401/404/500
type ErrorResponse struct {
	Error string `json:"error" example:"Unauthorized"`
}

// MessageResponse 带消息的响应：成功提示、409 冲突、参数校验失败
type MessageResponse struct {
	Message string      `json:"message"`
	Errors  FieldErrors `json:"errors,omitempty"`
}

// SuccessResponse 删除等操作的成功响应
type SuccessResponse struct {
	Success bool `json:"success"`
}

// OK 200 响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// ValidationFailed 400 参数校验失败，列出所有不合法字段
func ValidationFailed(c *gin.Context, errs FieldErrors) {
	c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid input", Errors: errs})
}

// Unauthorized 401 错误响应
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: message})
}

// Conflict 409 错误响应
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, MessageResponse{Message: message})
}

// InternalError 500 错误响应，错误详情只写日志
func InternalError(c *gin.Context, op string, err error) {
	log.Printf("%s失败: %v", op, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
}
