package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/matsumoto-collab/dandolink-sub002/internal/repository"
	"github.com/matsumoto-collab/dandolink-sub002/internal/service"
)

// AssignmentHandler 段取りハンドラ
type AssignmentHandler struct {
	svc *service.AssignmentService
}

// NewAssignmentHandler 段取りハンドラを作成
func NewAssignmentHandler(svc *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{svc: svc}
}

// List GET /assignments?project_id=xxx&work_date=2025-01-15
func (h *AssignmentHandler) List(c *gin.Context) {
	var workDate *time.Time
	if value := c.Query("work_date"); value != "" {
		t, err := time.Parse("2006-01-02", value)
		if err != nil {
			BadRequest(c, "work_dateの日付形式が不正です")
			return
		}
		workDate = &t
	}

	assignments, err := h.svc.ListAssignments(c.Request.Context(), c.Query("project_id"), workDate)
	if err != nil {
		InternalError(c, "段取り一覧の取得に失敗しました: "+err.Error())
		return
	}
	Success(c, gin.H{"items": assignments})
}

// Get GET /assignments/:id
func (h *AssignmentHandler) Get(c *gin.Context) {
	assignment, err := h.svc.GetAssignment(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "段取りが見つかりません")
			return
		}
		InternalError(c, "段取りの取得に失敗しました: "+err.Error())
		return
	}
	Success(c, assignment)
}

// Create POST /assignments
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req service.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "リクエストが不正です: "+err.Error())
		return
	}

	assignment, err := h.svc.CreateAssignment(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "案件または車両が見つかりません")
			return
		}
		InternalError(c, "段取りの作成に失敗しました: "+err.Error())
		return
	}
	Created(c, assignment)
}

// Update PUT /assignments/:id
func (h *AssignmentHandler) Update(c *gin.Context) {
	var req service.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "リクエストが不正です: "+err.Error())
		return
	}

	assignment, err := h.svc.UpdateAssignment(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "段取りまたは車両が見つかりません")
			return
		}
		InternalError(c, "段取りの更新に失敗しました: "+err.Error())
		return
	}
	Success(c, assignment)
}

// Delete DELETE /assignments/:id
func (h *AssignmentHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteAssignment(c.Request.Context(), c.Param("id")); err != nil {
		InternalError(c, "段取りの削除に失敗しました: "+err.Error())
		return
	}
	Success(c, nil)
}
