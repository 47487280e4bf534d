package repository

import (
	"context"
	"errors"

	"github.com/matsumoto-collab/dandolink-sub002/internal/entity"
	"gorm.io/gorm"
)

// ProjectRepository 案件リポジトリ
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository 案件リポジトリを作成
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// assignmentCountSelect 段取り件数を案件行に同時に載せるためのSELECT句。
// 案件ごとの追加クエリを発行しない
const assignmentCountSelect = "projects.*, (SELECT COUNT(*) FROM assignments WHERE assignments.project_id = projects.id) AS assignment_count"

// ListWithAssignmentCount 状態フィルタ付きで案件一覧を取得する。
// status が "all" または空のときは全件。未知の状態は空集合を返すだけでエラーにしない
func (r *ProjectRepository) ListWithAssignmentCount(ctx context.Context, status string) ([]entity.Project, error) {
	var projects []entity.Project

	query := r.db.WithContext(ctx).
		Model(&entity.Project{}).
		Select(assignmentCountSelect)

	if status != "" && status != entity.ProjectStatusAll {
		query = query.Where("projects.status = ?", status)
	}

	err := query.Order("projects.created_at DESC").Find(&projects).Error
	return projects, err
}

// FindByIDWithAssignmentCount 段取り件数付きで1件取得
func (r *ProjectRepository) FindByIDWithAssignmentCount(ctx context.Context, id string) (*entity.Project, error) {
	var project entity.Project
	err := r.db.WithContext(ctx).
		Model(&entity.Project{}).
		Select(assignmentCountSelect).
		Where("projects.id = ?", id).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

// FindByID IDで案件を取得
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*entity.Project, error) {
	var project entity.Project
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

// Search タイトル・顧客名で検索
func (r *ProjectRepository) Search(ctx context.Context, status, keyword string) ([]entity.Project, error) {
	var projects []entity.Project

	query := r.db.WithContext(ctx).
		Model(&entity.Project{}).
		Select(assignmentCountSelect)

	if status != "" && status != entity.ProjectStatusAll {
		query = query.Where("projects.status = ?", status)
	}
	if keyword != "" {
		query = query.Where("projects.title ILIKE ? OR projects.customer_name ILIKE ?", "%"+keyword+"%", "%"+keyword+"%")
	}

	err := query.Order("projects.created_at DESC").Find(&projects).Error
	return projects, err
}

// Create 案件を作成
func (r *ProjectRepository) Create(ctx context.Context, project *entity.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// Update 案件を更新
func (r *ProjectRepository) Update(ctx context.Context, project *entity.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete 案件を削除
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Project{}).Error
}
