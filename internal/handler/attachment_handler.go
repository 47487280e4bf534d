package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/matsumoto-collab/dandolink-sub002/internal/repository"
	"github.com/matsumoto-collab/dandolink-sub002/internal/service"
)

// AttachmentHandler 日報添付ファイルハンドラ
type AttachmentHandler struct {
	svc *service.AttachmentService
}

// NewAttachmentHandler 添付ファイルハンドラを作成
func NewAttachmentHandler(svc *service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{svc: svc}
}

// List GET /reports/:id/attachments
func (h *AttachmentHandler) List(c *gin.Context) {
	attachments, err := h.svc.ListAttachments(c.Request.Context(), c.Param("id"))
	if err != nil {
		InternalError(c, "添付一覧の取得に失敗しました: "+err.Error())
		return
	}
	Success(c, gin.H{"items": attachments})
}

// Upload POST /reports/:id/attachments
func (h *AttachmentHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		BadRequest(c, "ファイルをアップロードしてください")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	attachment, err := h.svc.Upload(c.Request.Context(), GetUserID(c), c.Param("id"), header.Filename, contentType, file, header.Size)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "日報が見つかりません")
			return
		}
		InternalError(c, "ファイルのアップロードに失敗しました: "+err.Error())
		return
	}
	Created(c, attachment)
}

// GetURL GET /attachments/:id/url
func (h *AttachmentHandler) GetURL(c *gin.Context) {
	downloadURL, attachment, err := h.svc.PresignedURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "添付ファイルが見つかりません")
			return
		}
		InternalError(c, "ダウンロードURLの発行に失敗しました: "+err.Error())
		return
	}
	Success(c, gin.H{
		"url":       downloadURL,
		"file_name": attachment.FileName,
	})
}

// Download GET /attachments/:id/download
func (h *AttachmentHandler) Download(c *gin.Context) {
	object, attachment, err := h.svc.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "添付ファイルが見つかりません")
			return
		}
		InternalError(c, "ファイルの取得に失敗しました: "+err.Error())
		return
	}
	defer object.Close()

	c.Header("Content-Type", attachment.ContentType)
	c.Header("Content-Disposition", "attachment; filename=\""+attachment.FileName+"\"")

	if _, err := io.Copy(c.Writer, object); err != nil {
		InternalError(c, "write file: "+err.Error())
	}
}
