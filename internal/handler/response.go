package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ========== API 响应格式 ==========

// SuccessResponse 成功响应
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse 错误响应
type ErrorResponse struct {
	Code   int      `json:"code"`
	Msg    string   `json:"msg"`
	Errors []string `json:"errors,omitempty"`
}

// Success 成功响应 (200)
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: data})
}

// Created 创建成功响应 (201)
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Data: data})
}

// NoContent 无内容响应 (204)
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Code: 400, Msg: msg})
}

// ValidationFailed 400 校验失败响应，附带全部错误
func ValidationFailed(c *gin.Context, errs []string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Code: 400, Msg: "validation failed", Errors: errs})
}

// Unauthorized 401 错误响应
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{Code: 401, Msg: msg})
}

// Forbidden 403 错误响应
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, ErrorResponse{Code: 403, Msg: msg})
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Code: 404, Msg: msg})
}

// InternalServerError 500 错误响应
func InternalServerError(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Code: 500, Msg: msg})
}

// Error 未分类错误统一按 500 返回，并记录到 gin 上下文供日志中间件输出
func Error(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	InternalServerError(c, err.Error())
}
