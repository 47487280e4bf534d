package repository

import (
	"context"
	"errors"

	"github.com/matsumoto-collab/dandolink-sub002/internal/entity"
	"gorm.io/gorm"
)

// AttachmentRepository 添付ファイルリポジトリ
type AttachmentRepository struct {
	db *gorm.DB
}

// NewAttachmentRepository 添付ファイルリポジトリを作成
func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

// ListByReport 日報の添付一覧
func (r *AttachmentRepository) ListByReport(ctx context.Context, reportID string) ([]entity.Attachment, error) {
	var attachments []entity.Attachment
	err := r.db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Order("created_at ASC").
		Find(&attachments).Error
	return attachments, err
}

// FindByID IDで添付を取得
func (r *AttachmentRepository) FindByID(ctx context.Context, id string) (*entity.Attachment, error) {
	var attachment entity.Attachment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&attachment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &attachment, nil
}

// Create 添付を作成
func (r *AttachmentRepository) Create(ctx context.Context, attachment *entity.Attachment) error {
	return r.db.WithContext(ctx).Create(attachment).Error
}
