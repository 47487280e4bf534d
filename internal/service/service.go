package service

import (
	"github.com/matsumoto-collab/dandolink-sub002/internal/config"
	"github.com/matsumoto-collab/dandolink-sub002/internal/repository"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
)

// Services サービス集合
type Services struct {
	Auth       *AuthService
	Project    *ProjectService
	Quotation  *QuotationService
	Billing    *BillingService
	Report     *ReportService
	Assignment *AssignmentService
	Vehicle    *VehicleService
	Settings   *SettingsService
	Profit     *ProfitService
	Attachment *AttachmentService
}

// NewServices サービス集合を作成
func NewServices(repos *repository.Repositories, rdb *redis.Client, cfg *config.Config) *Services {
	// MinIOクライアントの初期化。未設定なら添付機能はストレージなしで動く
	var minioClient *minio.Client
	if cfg.MinIO.Endpoint != "" {
		var err error
		minioClient, err = minio.New(cfg.MinIO.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
			Secure: cfg.MinIO.UseSSL,
		})
		if err != nil {
			minioClient = nil
		}
	}

	return &Services{
		Auth:       NewAuthService(repos.User, rdb, cfg),
		Project:    NewProjectService(repos.Project),
		Quotation:  NewQuotationService(repos.Quotation, repos.Project),
		Billing:    NewBillingService(repos.Billing, repos.Project),
		Report:     NewReportService(repos.Report, repos.Assignment),
		Assignment: NewAssignmentService(repos.Assignment, repos.Project, repos.Vehicle),
		Vehicle:    NewVehicleService(repos.Vehicle),
		Settings:   NewSettingsService(repos.RateSettings),
		Profit: NewProfitService(
			repos.Project,
			repos.Quotation,
			repos.Billing,
			repos.Report,
			repos.Assignment,
			repos.Vehicle,
			repos.RateSettings,
		),
		Attachment: NewAttachmentService(repos.Attachment, repos.Report, minioClient, cfg.MinIO.Bucket),
	}
}
