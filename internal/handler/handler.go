package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/matsumoto-collab/dandolink-sub002/internal/config"
	"github.com/matsumoto-collab/dandolink-sub002/internal/service"
)

// Handlers ハンドラ集合
type Handlers struct {
	Auth       *AuthHandler
	Project    *ProjectHandler
	Quotation  *QuotationHandler
	Billing    *BillingHandler
	Report     *ReportHandler
	Assignment *AssignmentHandler
	Vehicle    *VehicleHandler
	Settings   *SettingsHandler
	Profit     *ProfitHandler
	Attachment *AttachmentHandler
}

// NewHandlers ハンドラ集合を作成
func NewHandlers(svc *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(svc.Auth, cfg),
		Project:    NewProjectHandler(svc.Project),
		Quotation:  NewQuotationHandler(svc.Quotation),
		Billing:    NewBillingHandler(svc.Billing),
		Report:     NewReportHandler(svc.Report),
		Assignment: NewAssignmentHandler(svc.Assignment),
		Vehicle:    NewVehicleHandler(svc.Vehicle),
		Settings:   NewSettingsHandler(svc.Settings),
		Profit:     NewProfitHandler(svc.Profit),
		Attachment: NewAttachmentHandler(svc.Attachment),
	}
}

// Response 共通レスポンス構造
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功レスポンス
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 作成成功レスポンス
func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error エラーレスポンス。codeの上3桁がHTTPステータスになる
func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest パラメータエラー
func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

// Unauthorized 未認証
func Unauthorized(c *gin.Context, message string) {
	Error(c, 40100, message)
}

// Forbidden 権限なし
func Forbidden(c *gin.Context, message string) {
	Error(c, 40300, message)
}

// NotFound リソースなし
func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

// InternalError サーバエラー
func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// GetUserID コンテキストからユーザーIDを取得
func GetUserID(c *gin.Context) string {
	userID, _ := c.Get("user_id")
	if id, ok := userID.(string); ok {
		return id
	}
	return ""
}
