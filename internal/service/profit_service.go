package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/matsumoto-collab/dandolink-sub002/internal/entity"
	"github.com/matsumoto-collab/dandolink-sub002/internal/repository"
	"golang.org/x/sync/errgroup"
)

// 単価設定が未登録の環境で使う業務デフォルト。新規導入直後は設定レコードが
// 存在しないのが正常系なので、エラーにせずこの値で計算する
const (
	DefaultLaborDailyRate      = 15000
	DefaultStandardWorkMinutes = 480
)

// ProfitService 案件別の原価・粗利集計サービス。読み取り専用で何も永続化しない
type ProfitService struct {
	projectRepo    *repository.ProjectRepository
	quotationRepo  *repository.QuotationRepository
	billingRepo    *repository.BillingRepository
	reportRepo     *repository.ReportRepository
	assignmentRepo *repository.AssignmentRepository
	vehicleRepo    *repository.VehicleRepository
	settingsRepo   *repository.RateSettingsRepository
}

// NewProfitService 集計サービスを作成
func NewProfitService(
	projectRepo *repository.ProjectRepository,
	quotationRepo *repository.QuotationRepository,
	billingRepo *repository.BillingRepository,
	reportRepo *repository.ReportRepository,
	assignmentRepo *repository.AssignmentRepository,
	vehicleRepo *repository.VehicleRepository,
	settingsRepo *repository.RateSettingsRepository,
) *ProfitService {
	return &ProfitService{
		projectRepo:    projectRepo,
		quotationRepo:  quotationRepo,
		billingRepo:    billingRepo,
		reportRepo:     reportRepo,
		assignmentRepo: assignmentRepo,
		vehicleRepo:    vehicleRepo,
		settingsRepo:   settingsRepo,
	}
}

// ProfitRow 案件1件分の採算行
type ProfitRow struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	CustomerName      string    `json:"customer_name"`
	Status            string    `json:"status"`
	AssignmentCount   int64     `json:"assignment_count"`
	EstimateAmount    int64     `json:"estimate_amount"`
	Revenue           int64     `json:"revenue"`
	LaborCost         int64     `json:"labor_cost"`
	LoadingCost       int64     `json:"loading_cost"`
	VehicleCost       int64     `json:"vehicle_cost"`
	MaterialCost      int64     `json:"material_cost"`
	SubcontractorCost int64     `json:"subcontractor_cost"`
	OtherExpenses     int64     `json:"other_expenses"`
	TotalCost         int64     `json:"total_cost"`
	GrossProfit       int64     `json:"gross_profit"`
	ProfitMargin      float64   `json:"profit_margin"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ProfitSummary 全案件のサマリ。平均粗利率は各行の粗利率の単純平均であって
// 売上加重ではない（画面仕様どおり）
type ProfitSummary struct {
	TotalProjects       int     `json:"total_projects"`
	TotalRevenue        int64   `json:"total_revenue"`
	TotalCost           int64   `json:"total_cost"`
	TotalGrossProfit    int64   `json:"total_gross_profit"`
	AverageProfitMargin float64 `json:"average_profit_margin"`
}

// ProfitDashboard 採算ダッシュボードのレスポンス
type ProfitDashboard struct {
	Projects []ProfitRow   `json:"projects"`
	Summary  ProfitSummary `json:"summary"`
}

// GetProfitDashboard 状態フィルタ付きで全案件の採算を集計する
func (s *ProfitService) GetProfitDashboard(ctx context.Context, status string) (*ProfitDashboard, error) {
	projects, err := s.projectRepo.ListWithAssignmentCount(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}

	rel, err := s.fetchRelated(ctx, ids)
	if err != nil {
		return nil, err
	}

	rows := buildProfitRows(projects, rel)
	return &ProfitDashboard{
		Projects: rows,
		Summary:  summarizeProfit(rows),
	}, nil
}

// GetProjectProfit 案件1件の採算を集計する。案件が存在しなければ
// repository.ErrNotFound を返す（関連レコードゼロはゼロ行として成立する）
func (s *ProfitService) GetProjectProfit(ctx context.Context, projectID string) (*ProfitRow, error) {
	project, err := s.projectRepo.FindByIDWithAssignmentCount(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}

	rel, err := s.fetchRelated(ctx, []string{project.ID})
	if err != nil {
		return nil, err
	}

	rows := buildProfitRows([]entity.Project{*project}, rel)
	return &rows[0], nil
}

// relatedRecords 集計に必要な関連レコード一式
type relatedRecords struct {
	quotations  []entity.Quotation
	billings    []entity.BillingRecord
	workRecords []entity.WorkRecord
	assignments []entity.Assignment
	settings    *entity.RateSettings
	vehicles    []entity.Vehicle
}

// fetchRelated 6種類の読み取りを並行発行し全件揃うまで待つ。どれか1つでも
// 失敗したら部分結果は返さず失敗させる。ID集合が空でもスコープ外の参照
// データ（単価設定・車両カタログ）は取得する
func (s *ProfitService) fetchRelated(ctx context.Context, projectIDs []string) (*relatedRecords, error) {
	rel := &relatedRecords{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		rel.quotations, err = s.quotationRepo.FindByProjectIDs(gctx, projectIDs)
		return err
	})
	g.Go(func() error {
		var err error
		rel.billings, err = s.billingRepo.FindByProjectIDs(gctx, projectIDs)
		return err
	})
	g.Go(func() error {
		var err error
		rel.workRecords, err = s.reportRepo.FindWorkRecordsByProjectIDs(gctx, projectIDs)
		return err
	})
	g.Go(func() error {
		var err error
		rel.assignments, err = s.assignmentRepo.FindByProjectIDs(gctx, projectIDs)
		return err
	})
	g.Go(func() error {
		var err error
		rel.settings, err = s.settingsRepo.Get(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		rel.vehicles, err = s.vehicleRepo.FindAll(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetch related records: %w", err)
	}
	return rel, nil
}

// resolveMinuteRate 単価設定から1分あたりの労務単価を導出する
func resolveMinuteRate(settings *entity.RateSettings) float64 {
	dailyRate := int64(DefaultLaborDailyRate)
	workMinutes := DefaultStandardWorkMinutes
	if settings != nil {
		dailyRate = settings.LaborDailyRate
		workMinutes = settings.StandardWorkMinutes
	}
	return float64(dailyRate) / float64(workMinutes)
}

// assignmentWorkerCount 人数の決定。member_count指定を最優先、なければ
// 作業員リストの長さ、それも空なら1人とみなす
func assignmentWorkerCount(a *entity.Assignment) int {
	if a == nil {
		return 1
	}
	if a.MemberCount != nil {
		return *a.MemberCount
	}
	if len(a.Workers) > 0 {
		return len(a.Workers)
	}
	return 1
}

// costTotals 案件IDをキーにした金額アキュムレータ群
type costTotals struct {
	estimate map[string]int64
	revenue  map[string]int64
	labor    map[string]int64
	loading  map[string]int64
	vehicle  map[string]int64
}

// roundAmount 計上の都度丸める（四捨五入）。合計は丸め済み金額の和になる
func roundAmount(v float64) int64 {
	return int64(math.Round(v))
}

// accumulateCosts 取得済みコレクションをそれぞれ1回走査して案件別に畳み込む
func accumulateCosts(rel *relatedRecords) *costTotals {
	minuteRate := resolveMinuteRate(rel.settings)

	totals := &costTotals{
		estimate: make(map[string]int64),
		revenue:  make(map[string]int64),
		labor:    make(map[string]int64),
		loading:  make(map[string]int64),
		vehicle:  make(map[string]int64),
	}

	// 見積: 案件未紐付けは集計対象外
	for _, q := range rel.quotations {
		if q.ProjectID == nil {
			continue
		}
		totals.estimate[*q.ProjectID] += q.Total
	}

	for _, b := range rel.billings {
		totals.revenue[b.ProjectID] += b.Total
	}

	for _, w := range rel.workRecords {
		if w.Assignment == nil {
			continue
		}
		projectID := w.Assignment.ProjectID
		workers := assignmentWorkerCount(w.Assignment)

		totals.labor[projectID] += roundAmount(float64(w.WorkMinutes) * float64(workers) * minuteRate)

		// 積込費: 日報の朝夕積込時間の合計×0.5を作業記録ごとに計上する。
		// 同一日報を複数の作業記録が共有していても按分しない（現行の画面仕様。
		// 日報側の比例按分ロジックとは意図的に揃えていない）
		if w.Report != nil {
			loadingMinutes := float64(w.Report.MorningLoadingMinutes + w.Report.EveningLoadingMinutes)
			totals.loading[projectID] += roundAmount(loadingMinutes * 0.5 * float64(workers) * minuteRate)
		}
	}

	// 車両費: カタログにない車両IDは0円扱い
	dailyRates := make(map[string]int64, len(rel.vehicles))
	for _, v := range rel.vehicles {
		dailyRates[v.ID] = v.DailyRate
	}
	for _, a := range rel.assignments {
		var sum int64
		for _, vehicleID := range a.VehicleIDs {
			sum += dailyRates[vehicleID]
		}
		totals.vehicle[a.ProjectID] += sum
	}

	return totals
}

// buildProfitRows 案件ごとの採算行を組み立てる。関連レコードが1件もない
// 案件も原価0で成立する
func buildProfitRows(projects []entity.Project, rel *relatedRecords) []ProfitRow {
	totals := accumulateCosts(rel)

	rows := make([]ProfitRow, 0, len(projects))
	for _, p := range projects {
		laborCost := totals.labor[p.ID]
		loadingCost := totals.loading[p.ID]
		vehicleCost := totals.vehicle[p.ID]
		revenue := totals.revenue[p.ID]

		totalCost := laborCost + loadingCost + vehicleCost +
			p.MaterialCost + p.SubcontractorCost + p.OtherExpenses
		grossProfit := revenue - totalCost

		// 粗利率は%小数1桁。売上0なら原価に関わらず0
		var margin float64
		if revenue > 0 {
			margin = math.Round(float64(grossProfit)/float64(revenue)*1000) / 10
		}

		rows = append(rows, ProfitRow{
			ID:                p.ID,
			Title:             p.Title,
			CustomerName:      p.CustomerName,
			Status:            p.Status,
			AssignmentCount:   p.AssignmentCount,
			EstimateAmount:    totals.estimate[p.ID],
			Revenue:           revenue,
			LaborCost:         laborCost,
			LoadingCost:       loadingCost,
			VehicleCost:       vehicleCost,
			MaterialCost:      p.MaterialCost,
			SubcontractorCost: p.SubcontractorCost,
			OtherExpenses:     p.OtherExpenses,
			TotalCost:         totalCost,
			GrossProfit:       grossProfit,
			ProfitMargin:      margin,
			UpdatedAt:         p.UpdatedAt,
		})
	}
	return rows
}

// summarizeProfit 全行を1つのサマリに畳み込む。0件なら全てゼロ
func summarizeProfit(rows []ProfitRow) ProfitSummary {
	summary := ProfitSummary{TotalProjects: len(rows)}
	if len(rows) == 0 {
		return summary
	}

	var marginSum float64
	for _, row := range rows {
		summary.TotalRevenue += row.Revenue
		summary.TotalCost += row.TotalCost
		summary.TotalGrossProfit += row.GrossProfit
		marginSum += row.ProfitMargin
	}
	summary.AverageProfitMargin = math.Round(marginSum/float64(len(rows))*10) / 10
	return summary
}
