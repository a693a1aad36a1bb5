package errors

import (
	"errors"
	"fmt"
)

// AppError 应用业务错误
type AppError struct {
	Code    ErrCode // 业务错误码
	Message string  // 错误消息
	Cause   error   // 底层错误（可为nil）
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持 errors.Is / errors.As 链式判断
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New 创建新的业务错误
func New(code ErrCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf 创建新的业务错误（格式化消息）
func Newf(code ErrCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap 包装底层错误为业务错误
func Wrap(code ErrCode, err error, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf 包装底层错误为业务错误（格式化消息）
func Wrapf(code ErrCode, err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
}

// IsAppError 判断是否为业务错误
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 获取业务错误，如果不是则返回nil
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsCode 判断错误是否携带指定业务错误码
func IsCode(err error, code ErrCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}
