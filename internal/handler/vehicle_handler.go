package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/matsumoto-collab/dandolink-sub002/internal/repository"
	"github.com/matsumoto-collab/dandolink-sub002/internal/service"
)

// VehicleHandler 車両ハンドラ
type VehicleHandler struct {
	svc *service.VehicleService
}

// NewVehicleHandler 車両ハンドラを作成
func NewVehicleHandler(svc *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{svc: svc}
}

// List GET /vehicles
func (h *VehicleHandler) List(c *gin.Context) {
	vehicles, err := h.svc.ListVehicles(c.Request.Context())
	if err != nil {
		InternalError(c, "車両一覧の取得に失敗しました: "+err.Error())
		return
	}
	Success(c, gin.H{"items": vehicles})
}

// Get GET /vehicles/:id
func (h *VehicleHandler) Get(c *gin.Context) {
	vehicle, err := h.svc.GetVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "車両が見つかりません")
			return
		}
		InternalError(c, "車両の取得に失敗しました: "+err.Error())
		return
	}
	Success(c, vehicle)
}

// Create POST /vehicles
func (h *VehicleHandler) Create(c *gin.Context) {
	var req service.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "リクエストが不正です: "+err.Error())
		return
	}

	vehicle, err := h.svc.CreateVehicle(c.Request.Context(), &req)
	if err != nil {
		InternalError(c, "車両の登録に失敗しました: "+err.Error())
		return
	}
	Created(c, vehicle)
}

// Update PUT /vehicles/:id
func (h *VehicleHandler) Update(c *gin.Context) {
	var req service.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "リクエストが不正です: "+err.Error())
		return
	}

	vehicle, err := h.svc.UpdateVehicle(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "車両が見つかりません")
			return
		}
		InternalError(c, "車両の更新に失敗しました: "+err.Error())
		return
	}
	Success(c, vehicle)
}

// Delete DELETE /vehicles/:id
func (h *VehicleHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteVehicle(c.Request.Context(), c.Param("id")); err != nil {
		InternalError(c, "車両の削除に失敗しました: "+err.Error())
		return
	}
	Success(c, nil)
}
