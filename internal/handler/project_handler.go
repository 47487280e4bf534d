package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/matsumoto-collab/dandolink-sub002/internal/repository"
	"github.com/matsumoto-collab/dandolink-sub002/internal/service"
)

// ProjectHandler 案件ハンドラ
type ProjectHandler struct {
	svc *service.ProjectService
}

// NewProjectHandler 案件ハンドラを作成
func NewProjectHandler(svc *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// List GET /projects?status=active&q=keyword
func (h *ProjectHandler) List(c *gin.Context) {
	status := c.DefaultQuery("status", "all")
	keyword := c.Query("q")

	projects, err := h.svc.ListProjects(c.Request.Context(), status, keyword)
	if err != nil {
		InternalError(c, "案件一覧の取得に失敗しました: "+err.Error())
		return
	}
	Success(c, gin.H{"items": projects})
}

// Get GET /projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.svc.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "案件が見つかりません")
			return
		}
		InternalError(c, "案件の取得に失敗しました: "+err.Error())
		return
	}
	Success(c, project)
}

// Create POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "リクエストが不正です: "+err.Error())
		return
	}

	project, err := h.svc.CreateProject(c.Request.Context(), GetUserID(c), &req)
	if err != nil {
		InternalError(c, "案件の作成に失敗しました: "+err.Error())
		return
	}
	Created(c, project)
}

// Update PUT /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	var req service.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "リクエストが不正です: "+err.Error())
		return
	}

	project, err := h.svc.UpdateProject(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "案件が見つかりません")
			return
		}
		InternalError(c, "案件の更新に失敗しました: "+err.Error())
		return
	}
	Success(c, project)
}

// UpdateStatus PATCH /projects/:id/status
func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required,oneof=active completed cancelled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "リクエストが不正です: "+err.Error())
		return
	}

	project, err := h.svc.UpdateProjectStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "案件が見つかりません")
			return
		}
		InternalError(c, "案件状態の更新に失敗しました: "+err.Error())
		return
	}
	Success(c, project)
}

// Delete DELETE /projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		InternalError(c, "案件の削除に失敗しました: "+err.Error())
		return
	}
	Success(c, nil)
}
