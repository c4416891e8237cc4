package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid            = errors.New("参数错误")
	ErrPasswordMismatch        = errors.New("两次输入的密码不一致")
	ErrPasswordTooWeak         = errors.New("密码长度不能少于8位")
	ErrEmailExist              = errors.New("邮箱已注册")
	ErrMissingLoginCredentials = errors.New("缺少登录凭据")
	ErrInvalidCredentials      = errors.New("邮箱或密码错误")
	ErrUserDisabled            = errors.New("用户账号已被禁用")
	ErrTokenInvalid            = errors.New("Token 无效或已过期")
	ErrPermissionDenied        = errors.New("权限不足")
	ErrUserNotFound            = errors.New("用户不存在")
	ErrPostNotFound            = errors.New("帖子不存在")
	ErrCommentNotFound         = errors.New("评论不存在")
	ErrFileNotSupported        = errors.New("不支持的文件类型")
	UnExpectedError            = errors.New("系统异常，请稍后重试")
)

// ErrorMap 服务错误到 HTTP 状态码的映射。
// 鉴权与越权失败统一返回笼统的拒绝信息，不暴露具体校验环节。
var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrPasswordMismatch:        BadRequest,
	ErrPasswordTooWeak:         BadRequest,
	ErrEmailExist:              BadRequest,
	ErrMissingLoginCredentials: BadRequest,
	ErrInvalidCredentials:      Unauthorized,
	ErrUserDisabled:            Unauthorized,
	ErrTokenInvalid:            Unauthorized,
	ErrPermissionDenied:        Forbidden,
	ErrUserNotFound:            NotFound,
	ErrPostNotFound:            NotFound,
	ErrCommentNotFound:         NotFound,
	ErrFileNotSupported:        BadRequest,
	UnExpectedError:            InternalServerError,
}
