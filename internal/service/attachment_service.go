package service

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/matsumoto-collab/dandolink-sub002/internal/entity"
	"github.com/matsumoto-collab/dandolink-sub002/internal/repository"
	"github.com/minio/minio-go/v7"
)

// AttachmentService 日報添付ファイルサービス。実体はMinIOに置き、メタデータだけDBに持つ
type AttachmentService struct {
	attachmentRepo *repository.AttachmentRepository
	reportRepo     *repository.ReportRepository
	minioClient    *minio.Client
	bucketName     string
}

// NewAttachmentService 添付ファイルサービスを作成
func NewAttachmentService(
	attachmentRepo *repository.AttachmentRepository,
	reportRepo *repository.ReportRepository,
	minioClient *minio.Client,
	bucketName string,
) *AttachmentService {
	return &AttachmentService{
		attachmentRepo: attachmentRepo,
		reportRepo:     reportRepo,
		minioClient:    minioClient,
		bucketName:     bucketName,
	}
}

// ListAttachments 日報の添付一覧
func (s *AttachmentService) ListAttachments(ctx context.Context, reportID string) ([]entity.Attachment, error) {
	return s.attachmentRepo.ListByReport(ctx, reportID)
}

// Upload 添付ファイルをMinIOにアップロードしメタデータを登録する
func (s *AttachmentService) Upload(ctx context.Context, userID, reportID, fileName, contentType string, reader io.Reader, fileSize int64) (*entity.Attachment, error) {
	if _, err := s.reportRepo.FindByID(ctx, reportID); err != nil {
		return nil, fmt.Errorf("find report: %w", err)
	}

	objectKey := fmt.Sprintf("reports/%s/%s%s", time.Now().Format("2006/01/02"), uuid.New().String()[:8], filepath.Ext(fileName))

	if s.minioClient == nil {
		return nil, fmt.Errorf("storage not configured")
	}
	_, err := s.minioClient.PutObject(ctx, s.bucketName, objectKey, reader, fileSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}

	attachment := &entity.Attachment{
		ID:          uuid.New().String()[:32],
		ReportID:    reportID,
		FileName:    fileName,
		ObjectKey:   objectKey,
		Size:        fileSize,
		ContentType: contentType,
		UploadedBy:  userID,
		CreatedAt:   time.Now(),
	}

	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		return nil, fmt.Errorf("create attachment: %w", err)
	}
	return attachment, nil
}

// PresignedURL 有効期限付きのダウンロードURLを発行する
func (s *AttachmentService) PresignedURL(ctx context.Context, id string) (string, *entity.Attachment, error) {
	attachment, err := s.attachmentRepo.FindByID(ctx, id)
	if err != nil {
		return "", nil, fmt.Errorf("find attachment: %w", err)
	}

	if s.minioClient == nil {
		return "", attachment, fmt.Errorf("storage not configured")
	}

	reqParams := make(url.Values)
	reqParams.Set("response-content-disposition", fmt.Sprintf("attachment; filename=\"%s\"", attachment.FileName))

	u, err := s.minioClient.PresignedGetObject(ctx, s.bucketName, attachment.ObjectKey, 15*time.Minute, reqParams)
	if err != nil {
		return "", nil, fmt.Errorf("presign object: %w", err)
	}
	return u.String(), attachment, nil
}

// Download 添付ファイルの実体を取得する
func (s *AttachmentService) Download(ctx context.Context, id string) (io.ReadCloser, *entity.Attachment, error) {
	attachment, err := s.attachmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("find attachment: %w", err)
	}

	if s.minioClient == nil {
		return nil, attachment, fmt.Errorf("storage not configured")
	}

	object, err := s.minioClient.GetObject(ctx, s.bucketName, attachment.ObjectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, fmt.Errorf("get object: %w", err)
	}

	return object, attachment, nil
}
