package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/matsumoto-collab/dandolink-sub002/internal/repository"
	"github.com/matsumoto-collab/dandolink-sub002/internal/service"
)

// BillingHandler 請求ハンドラ
type BillingHandler struct {
	svc *service.BillingService
}

// NewBillingHandler 請求ハンドラを作成
func NewBillingHandler(svc *service.BillingService) *BillingHandler {
	return &BillingHandler{svc: svc}
}

// List GET /billings?project_id=xxx&status=unpaid
func (h *BillingHandler) List(c *gin.Context) {
	records, err := h.svc.ListBillings(c.Request.Context(), c.Query("project_id"), c.Query("status"))
	if err != nil {
		InternalError(c, "請求一覧の取得に失敗しました: "+err.Error())
		return
	}
	Success(c, gin.H{"items": records})
}

// Get GET /billings/:id
func (h *BillingHandler) Get(c *gin.Context) {
	record, err := h.svc.GetBilling(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "請求が見つかりません")
			return
		}
		InternalError(c, "請求の取得に失敗しました: "+err.Error())
		return
	}
	Success(c, record)
}

// Create POST /billings
func (h *BillingHandler) Create(c *gin.Context) {
	var req service.CreateBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "リクエストが不正です: "+err.Error())
		return
	}

	record, err := h.svc.CreateBilling(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "案件が見つかりません")
			return
		}
		InternalError(c, "請求の作成に失敗しました: "+err.Error())
		return
	}
	Created(c, record)
}

// Update PUT /billings/:id
func (h *BillingHandler) Update(c *gin.Context) {
	var req service.UpdateBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "リクエストが不正です: "+err.Error())
		return
	}

	record, err := h.svc.UpdateBilling(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "請求が見つかりません")
			return
		}
		InternalError(c, "請求の更新に失敗しました: "+err.Error())
		return
	}
	Success(c, record)
}

// MarkPaid PATCH /billings/:id/paid
func (h *BillingHandler) MarkPaid(c *gin.Context) {
	record, err := h.svc.MarkBillingPaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "請求が見つかりません")
			return
		}
		InternalError(c, "入金処理に失敗しました: "+err.Error())
		return
	}
	Success(c, record)
}

// Delete DELETE /billings/:id
func (h *BillingHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteBilling(c.Request.Context(), c.Param("id")); err != nil {
		InternalError(c, "請求の削除に失敗しました: "+err.Error())
		return
	}
	Success(c, nil)
}
