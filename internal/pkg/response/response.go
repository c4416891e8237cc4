package response

import (
	"Plume/internal/api/dto"
	"Plume/internal/service"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = 200
	Created             = 201
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

// Success 成功返回封装
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Code:    Ok,
		Message: "success",
		Data:    data,
	})
}

// CreatedSuccess 创建成功返回封装
func CreatedSuccess(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusCreated, dto.Response{
		Code:    Created,
		Message: "created",
		Data:    data,
	})
}

// Fail 失败返回封装
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, dto.Response{
		Code:    status,
		Message: message,
		Data:    nil,
	})
}

// FailFields 校验失败返回封装，data 为字段到错误信息的映射
func FailFields(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, dto.Response{
		Code:    BadRequest,
		Message: "参数错误",
		Data:    fields,
	})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make(map[string]string, len(ve))
		for _, fe := range ve {
			fields[fe.Field()] = fmt.Sprintf("校验失败，规则 [%s]", fe.Tag())
		}
		FailFields(c, fields)
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, BadRequest, "Json错误")
		return
	}

	status, ok := service.ErrorMap[err]
	if !ok {
		status = InternalServerError
		log.ErrorContext(c.Request.Context(), "Error", "err", err)
	}
	Fail(c, status, err.Error())
}
