package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/matsumoto-collab/dandolink-sub002/internal/repository"
	"github.com/matsumoto-collab/dandolink-sub002/internal/service"
)

// QuotationHandler 見積ハンドラ
type QuotationHandler struct {
	svc *service.QuotationService
}

// NewQuotationHandler 見積ハンドラを作成
func NewQuotationHandler(svc *service.QuotationService) *QuotationHandler {
	return &QuotationHandler{svc: svc}
}

// List GET /quotations?project_id=xxx
func (h *QuotationHandler) List(c *gin.Context) {
	quotations, err := h.svc.ListQuotations(c.Request.Context(), c.Query("project_id"))
	if err != nil {
		InternalError(c, "見積一覧の取得に失敗しました: "+err.Error())
		return
	}
	Success(c, gin.H{"items": quotations})
}

// Get GET /quotations/:id
func (h *QuotationHandler) Get(c *gin.Context) {
	quotation, err := h.svc.GetQuotation(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "見積が見つかりません")
			return
		}
		InternalError(c, "見積の取得に失敗しました: "+err.Error())
		return
	}
	Success(c, quotation)
}

// Create POST /quotations
func (h *QuotationHandler) Create(c *gin.Context) {
	var req service.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "リクエストが不正です: "+err.Error())
		return
	}

	quotation, err := h.svc.CreateQuotation(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "案件が見つかりません")
			return
		}
		InternalError(c, "見積の作成に失敗しました: "+err.Error())
		return
	}
	Created(c, quotation)
}

// Update PUT /quotations/:id
func (h *QuotationHandler) Update(c *gin.Context) {
	var req service.UpdateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "リクエストが不正です: "+err.Error())
		return
	}

	quotation, err := h.svc.UpdateQuotation(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "見積が見つかりません")
			return
		}
		InternalError(c, "見積の更新に失敗しました: "+err.Error())
		return
	}
	Success(c, quotation)
}

// Delete DELETE /quotations/:id
func (h *QuotationHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteQuotation(c.Request.Context(), c.Param("id")); err != nil {
		InternalError(c, "見積の削除に失敗しました: "+err.Error())
		return
	}
	Success(c, nil)
}
