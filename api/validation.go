package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError 单个字段的校验错误
type FieldError struct {
	Field   string `json:"field" example:"amount"`
	Message string `json:"message" example:"must be greater than 0"`
}

// FieldErrors 校验错误列表，同一字段只保留第一条
type FieldErrors []FieldError

// Add 追加字段错误
func (e FieldErrors) Add(field, message string) FieldErrors {
	for _, fe := range e {
		if fe.Field == field {
			return e
		}
	}
	return append(e, FieldError{Field: field, Message: message})
}

func init() {
	// 校验错误中的字段名使用 json/form 标签
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return f.Name
		})
	}
}

// bindJSON 解析并校验 JSON 请求体
// 请求体无法解析时 ok 为 false，errs 中只有一条 body 错误
func bindJSON(c *gin.Context, req interface{}) (errs FieldErrors, ok bool) {
	return translateBindError(c.ShouldBindJSON(req), "body")
}

// bindQuery 解析并校验查询参数
func bindQuery(c *gin.Context, req interface{}) (errs FieldErrors, ok bool) {
	return translateBindError(c.ShouldBindQuery(req), "query")
}

func translateBindError(err error, source string) (FieldErrors, bool) {
	if err == nil {
		return nil, true
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		var errs FieldErrors
		for _, fe := range ve {
			errs = errs.Add(fe.Field(), fieldMessage(fe))
		}
		return errs, true
	}

	// 字段类型不匹配，例如 amount 传了字符串
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) && te.Field != "" {
		return FieldErrors{{Field: te.Field, Message: "must be a " + te.Type.String()}}, true
	}

	return FieldErrors{{Field: source, Message: "malformed " + source}}, false
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	}
	return "is invalid"
}

// 支持的日期格式
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate 解析日期字符串，dateOnly 表示只包含日期部分
func parseDate(s string) (t time.Time, dateOnly bool, err error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err = time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, layout == "2006-01-02", nil
		}
	}
	return time.Time{}, false, fmt.Errorf("invalid date %q", s)
}

// requireDate 校验必填日期字段，失败时追加字段错误
func requireDate(errs FieldErrors, field, value string) (time.Time, FieldErrors) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, errs.Add(field, "is required")
	}
	t, _, err := parseDate(value)
	if err != nil {
		return time.Time{}, errs.Add(field, "must be a valid date")
	}
	return t, errs
}
