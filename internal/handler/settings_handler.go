package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/matsumoto-collab/dandolink-sub002/internal/service"
)

// SettingsHandler 単価設定ハンドラ
type SettingsHandler struct {
	svc *service.SettingsService
}

// NewSettingsHandler 単価設定ハンドラを作成
func NewSettingsHandler(svc *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// GetRates GET /settings/rates
func (h *SettingsHandler) GetRates(c *gin.Context) {
	settings, err := h.svc.GetRateSettings(c.Request.Context())
	if err != nil {
		InternalError(c, "単価設定の取得に失敗しました: "+err.Error())
		return
	}
	Success(c, settings)
}

// UpdateRates PUT /settings/rates
func (h *SettingsHandler) UpdateRates(c *gin.Context) {
	var req service.UpdateRateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "リクエストが不正です: "+err.Error())
		return
	}

	settings, err := h.svc.UpdateRateSettings(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		InternalError(c, "単価設定の保存に失敗しました: "+err.Error())
		return
	}
	Success(c, settings)
}
