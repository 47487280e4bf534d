package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/matsumoto-collab/dandolink-sub002/internal/repository"
	"github.com/matsumoto-collab/dandolink-sub002/internal/service"
)

// ReportHandler 日報ハンドラ
type ReportHandler struct {
	svc *service.ReportService
}

// NewReportHandler 日報ハンドラを作成
func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// parseDateQuery YYYY-MM-DD形式のクエリをパースする。空ならnil
func parseDateQuery(c *gin.Context, key string) (*time.Time, error) {
	value := c.Query(key)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List GET /reports?from=2025-01-01&to=2025-01-31
func (h *ReportHandler) List(c *gin.Context) {
	from, err := parseDateQuery(c, "from")
	if err != nil {
		BadRequest(c, "fromの日付形式が不正です")
		return
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		BadRequest(c, "toの日付形式が不正です")
		return
	}

	reports, err := h.svc.ListReports(c.Request.Context(), from, to)
	if err != nil {
		InternalError(c, "日報一覧の取得に失敗しました: "+err.Error())
		return
	}
	Success(c, gin.H{"items": reports})
}

// Get GET /reports/:id
func (h *ReportHandler) Get(c *gin.Context) {
	report, err := h.svc.GetReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "日報が見つかりません")
			return
		}
		InternalError(c, "日報の取得に失敗しました: "+err.Error())
		return
	}
	Success(c, report)
}

// Create POST /reports
func (h *ReportHandler) Create(c *gin.Context) {
	var req service.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "リクエストが不正です: "+err.Error())
		return
	}

	report, err := h.svc.CreateReport(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "段取りが見つかりません")
			return
		}
		InternalError(c, "日報の作成に失敗しました: "+err.Error())
		return
	}
	Created(c, report)
}

// Update PUT /reports/:id
func (h *ReportHandler) Update(c *gin.Context) {
	var req service.UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "リクエストが不正です: "+err.Error())
		return
	}

	report, err := h.svc.UpdateReport(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "日報が見つかりません")
			return
		}
		InternalError(c, "日報の更新に失敗しました: "+err.Error())
		return
	}
	Success(c, report)
}

// Delete DELETE /reports/:id
func (h *ReportHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteReport(c.Request.Context(), c.Param("id")); err != nil {
		InternalError(c, "日報の削除に失敗しました: "+err.Error())
		return
	}
	Success(c, nil)
}

// AddWorkRecord POST /reports/:id/work-records
func (h *ReportHandler) AddWorkRecord(c *gin.Context) {
	var input service.WorkRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "リクエストが不正です: "+err.Error())
		return
	}

	record, err := h.svc.AddWorkRecord(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "日報または段取りが見つかりません")
			return
		}
		InternalError(c, "作業記録の追加に失敗しました: "+err.Error())
		return
	}
	Created(c, record)
}

// RemoveWorkRecord DELETE /reports/:id/work-records/:recordId
func (h *ReportHandler) RemoveWorkRecord(c *gin.Context) {
	if err := h.svc.RemoveWorkRecord(c.Request.Context(), c.Param("recordId")); err != nil {
		InternalError(c, "作業記録の削除に失敗しました: "+err.Error())
		return
	}
	Success(c, nil)
}
