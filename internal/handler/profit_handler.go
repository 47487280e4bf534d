package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/matsumoto-collab/dandolink-sub002/internal/repository"
	"github.com/matsumoto-collab/dandolink-sub002/internal/service"
)

// ProfitHandler 採算ダッシュボードハンドラ
type ProfitHandler struct {
	svc *service.ProfitService
}

// NewProfitHandler 採算ハンドラを作成
func NewProfitHandler(svc *service.ProfitService) *ProfitHandler {
	return &ProfitHandler{svc: svc}
}

// GetDashboard GET /profits 全案件の採算一覧とサマリ
func (h *ProfitHandler) GetDashboard(c *gin.Context) {
	status := c.DefaultQuery("status", "all")

	dashboard, err := h.svc.GetProfitDashboard(c.Request.Context(), status)
	if err != nil {
		InternalError(c, "採算の集計に失敗しました: "+err.Error())
		return
	}
	Success(c, dashboard)
}

// GetProjectProfit GET /projects/:id/profit 案件1件の採算
func (h *ProfitHandler) GetProjectProfit(c *gin.Context) {
	id := c.Param("id")

	row, err := h.svc.GetProjectProfit(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "案件が見つかりません")
			return
		}
		InternalError(c, "採算の集計に失敗しました: "+err.Error())
		return
	}
	Success(c, row)
}

// Export GET /profits/export 採算一覧のExcelダウンロード
func (h *ProfitHandler) Export(c *gin.Context) {
	status := c.DefaultQuery("status", "all")

	f, filename, err := h.svc.ExportProfitReport(c.Request.Context(), status)
	if err != nil {
		InternalError(c, "Excel出力に失敗しました: "+err.Error())
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "write excel: "+err.Error())
	}
}
