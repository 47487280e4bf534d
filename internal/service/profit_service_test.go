package service

import (
	"testing"
	"time"

	"github.com/matsumoto-collab/dandolink-sub002/internal/entity"
)

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

func TestResolveMinuteRate(t *testing.T) {
	// 未登録時は業務デフォルト 15000円/480分
	if got := resolveMinuteRate(nil); got != 31.25 {
		t.Errorf("default minute rate = %v, want 31.25", got)
	}

	settings := &entity.RateSettings{LaborDailyRate: 20000, StandardWorkMinutes: 500}
	if got := resolveMinuteRate(settings); got != 40.0 {
		t.Errorf("custom minute rate = %v, want 40", got)
	}
}

func TestAssignmentWorkerCount(t *testing.T) {
	cases := []struct {
		name string
		a    *entity.Assignment
		want int
	}{
		{"nil assignment", nil, 1},
		{"member_count優先", &entity.Assignment{MemberCount: intPtr(3), Workers: entity.StringList{"a"}}, 3},
		{"作業員リストの長さ", &entity.Assignment{Workers: entity.StringList{"a", "b"}}, 2},
		{"両方空なら1人", &entity.Assignment{}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := assignmentWorkerCount(tc.a); got != tc.want {
				t.Errorf("workerCount = %d, want %d", got, tc.want)
			}
		})
	}
}

// 標準シナリオ: デフォルト単価で労務費・積込費・車両費まで全部乗る
func TestBuildProfitRowsFullCosting(t *testing.T) {
	project := entity.Project{
		ID:                "p1",
		Title:             "物流倉庫改修",
		Status:            entity.ProjectStatusActive,
		MaterialCost:      100000,
		SubcontractorCost: 50000,
		OtherExpenses:     10000,
	}

	assignment := &entity.Assignment{
		ID:         "a1",
		ProjectID:  "p1",
		Workers:    entity.StringList{"山田", "佐藤"},
		VehicleIDs: entity.StringList{"v1"},
	}
	report := &entity.DailyReport{
		ID:                    "r1",
		MorningLoadingMinutes: 30,
		EveningLoadingMinutes: 30,
	}

	rel := &relatedRecords{
		quotations: []entity.Quotation{
			{ID: "q1", ProjectID: strPtr("p1"), Total: 800000},
		},
		billings: []entity.BillingRecord{
			{ID: "b1", ProjectID: "p1", Total: 500000},
			{ID: "b2", ProjectID: "p1", Total: 300000},
		},
		workRecords: []entity.WorkRecord{
			{ID: "w1", AssignmentID: "a1", WorkMinutes: 480, Report: report, Assignment: assignment},
		},
		assignments: []entity.Assignment{*assignment},
		vehicles: []entity.Vehicle{
			{ID: "v1", Name: "2tダンプ", DailyRate: 10000},
		},
	}

	rows := buildProfitRows([]entity.Project{project}, rel)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}

	row := rows[0]
	if row.EstimateAmount != 800000 {
		t.Errorf("EstimateAmount = %d, want 800000", row.EstimateAmount)
	}
	if row.Revenue != 800000 {
		t.Errorf("Revenue = %d, want 800000", row.Revenue)
	}
	// 480分 × 2人 × 31.25円/分 = 30000
	if row.LaborCost != 30000 {
		t.Errorf("LaborCost = %d, want 30000", row.LaborCost)
	}
	// (30+30)分 × 0.5 × 2人 × 31.25円/分 = 1875
	if row.LoadingCost != 1875 {
		t.Errorf("LoadingCost = %d, want 1875", row.LoadingCost)
	}
	if row.VehicleCost != 10000 {
		t.Errorf("VehicleCost = %d, want 10000", row.VehicleCost)
	}
	if row.TotalCost != 201875 {
		t.Errorf("TotalCost = %d, want 201875", row.TotalCost)
	}
	if row.GrossProfit != 598125 {
		t.Errorf("GrossProfit = %d, want 598125", row.GrossProfit)
	}
	// 598125/800000 = 74.765..% → 小数1桁丸めで74.8
	if row.ProfitMargin != 74.8 {
		t.Errorf("ProfitMargin = %v, want 74.8", row.ProfitMargin)
	}
}

// 同一日報を共有する複数の作業記録: 積込費は按分せず記録ごとに満額計上する
func TestLoadingCostNotProratedAcrossSharedReport(t *testing.T) {
	project := entity.Project{ID: "p1", Status: entity.ProjectStatusActive}
	a1 := &entity.Assignment{ID: "a1", ProjectID: "p1", MemberCount: intPtr(1)}
	a2 := &entity.Assignment{ID: "a2", ProjectID: "p1", MemberCount: intPtr(1)}
	shared := &entity.DailyReport{ID: "r1", MorningLoadingMinutes: 40, EveningLoadingMinutes: 20}

	rel := &relatedRecords{
		workRecords: []entity.WorkRecord{
			{ID: "w1", Report: shared, Assignment: a1},
			{ID: "w2", Report: shared, Assignment: a2},
		},
	}

	rows := buildProfitRows([]entity.Project{project}, rel)
	// 60分 × 0.5 × 1人 × 31.25 = 937.5 → 938、記録2件で倍
	if rows[0].LoadingCost != 1876 {
		t.Errorf("LoadingCost = %d, want 1876", rows[0].LoadingCost)
	}
}

// 日報が紐付かない作業記録は積込費を計上しない
func TestLoadingCostSkippedWithoutReport(t *testing.T) {
	project := entity.Project{ID: "p1", Status: entity.ProjectStatusActive}
	a1 := &entity.Assignment{ID: "a1", ProjectID: "p1", MemberCount: intPtr(2)}

	rel := &relatedRecords{
		workRecords: []entity.WorkRecord{
			{ID: "w1", WorkMinutes: 240, Assignment: a1},
		},
	}

	rows := buildProfitRows([]entity.Project{project}, rel)
	if rows[0].LoadingCost != 0 {
		t.Errorf("LoadingCost = %d, want 0", rows[0].LoadingCost)
	}
	// 240 × 2 × 31.25 = 15000
	if rows[0].LaborCost != 15000 {
		t.Errorf("LaborCost = %d, want 15000", rows[0].LaborCost)
	}
}

// カタログにない車両IDは0円扱いで、エラーにしない
func TestVehicleCostIgnoresUnknownIDs(t *testing.T) {
	project := entity.Project{ID: "p1", Status: entity.ProjectStatusActive}
	rel := &relatedRecords{
		assignments: []entity.Assignment{
			{ID: "a1", ProjectID: "p1", VehicleIDs: entity.StringList{"v1", "ghost"}},
		},
		vehicles: []entity.Vehicle{
			{ID: "v1", DailyRate: 8000},
		},
	}

	rows := buildProfitRows([]entity.Project{project}, rel)
	if rows[0].VehicleCost != 8000 {
		t.Errorf("VehicleCost = %d, want 8000", rows[0].VehicleCost)
	}
}

// 案件未紐付けの見積は集計対象外
func TestUnlinkedQuotationSkipped(t *testing.T) {
	project := entity.Project{ID: "p1", Status: entity.ProjectStatusActive}
	rel := &relatedRecords{
		quotations: []entity.Quotation{
			{ID: "q1", ProjectID: nil, Total: 999999},
			{ID: "q2", ProjectID: strPtr("p1"), Total: 100000},
		},
	}

	rows := buildProfitRows([]entity.Project{project}, rel)
	if rows[0].EstimateAmount != 100000 {
		t.Errorf("EstimateAmount = %d, want 100000", rows[0].EstimateAmount)
	}
}

// 売上0なら原価があっても粗利率は0
func TestZeroRevenueMargin(t *testing.T) {
	project := entity.Project{ID: "p1", Status: entity.ProjectStatusActive, MaterialCost: 50000}
	rows := buildProfitRows([]entity.Project{project}, &relatedRecords{})

	row := rows[0]
	if row.TotalCost != 50000 {
		t.Errorf("TotalCost = %d, want 50000", row.TotalCost)
	}
	if row.GrossProfit != -50000 {
		t.Errorf("GrossProfit = %d, want -50000", row.GrossProfit)
	}
	if row.ProfitMargin != 0 {
		t.Errorf("ProfitMargin = %v, want 0", row.ProfitMargin)
	}
}

// カスタム単価設定が分単価に反映される
func TestCustomRateSettings(t *testing.T) {
	project := entity.Project{ID: "p1", Status: entity.ProjectStatusActive}
	a1 := &entity.Assignment{ID: "a1", ProjectID: "p1", MemberCount: intPtr(1)}

	rel := &relatedRecords{
		workRecords: []entity.WorkRecord{
			{ID: "w1", WorkMinutes: 100, Assignment: a1},
		},
		settings: &entity.RateSettings{LaborDailyRate: 20000, StandardWorkMinutes: 500},
	}

	rows := buildProfitRows([]entity.Project{project}, rel)
	// 100分 × 1人 × 40円/分 = 4000
	if rows[0].LaborCost != 4000 {
		t.Errorf("LaborCost = %d, want 4000", rows[0].LaborCost)
	}
}

// サマリの平均粗利率は売上加重ではなく各行の単純平均
func TestSummaryAverageMarginIsUnweighted(t *testing.T) {
	rows := []ProfitRow{
		{Revenue: 1000000, TotalCost: 252000, GrossProfit: 748000, ProfitMargin: 74.8},
		{Revenue: 10, TotalCost: 10, GrossProfit: 0, ProfitMargin: 0},
	}

	summary := summarizeProfit(rows)
	if summary.TotalProjects != 2 {
		t.Errorf("TotalProjects = %d, want 2", summary.TotalProjects)
	}
	if summary.TotalRevenue != 1000010 {
		t.Errorf("TotalRevenue = %d, want 1000010", summary.TotalRevenue)
	}
	if summary.TotalGrossProfit != 748000 {
		t.Errorf("TotalGrossProfit = %d, want 748000", summary.TotalGrossProfit)
	}
	// (74.8 + 0) / 2 = 37.4
	if summary.AverageProfitMargin != 37.4 {
		t.Errorf("AverageProfitMargin = %v, want 37.4", summary.AverageProfitMargin)
	}
}

func TestSummaryEmptyRows(t *testing.T) {
	summary := summarizeProfit(nil)
	if summary.TotalProjects != 0 || summary.TotalRevenue != 0 ||
		summary.TotalCost != 0 || summary.TotalGrossProfit != 0 ||
		summary.AverageProfitMargin != 0 {
		t.Errorf("empty summary not all zero: %+v", summary)
	}
}

// 関連レコードが1件もない案件も原価0の行として成立する
func TestProjectWithNoRelatedRecords(t *testing.T) {
	now := time.Now()
	project := entity.Project{ID: "p1", Title: "新規案件", Status: entity.ProjectStatusActive, UpdatedAt: now}

	rows := buildProfitRows([]entity.Project{project}, &relatedRecords{})
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	row := rows[0]
	if row.Revenue != 0 || row.TotalCost != 0 || row.GrossProfit != 0 || row.ProfitMargin != 0 {
		t.Errorf("zero project row not zero: %+v", row)
	}
	if !row.UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt not carried over")
	}
}
