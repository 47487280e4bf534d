package handler

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/matsumoto-collab/dandolink-sub002/internal/entity"
	"github.com/matsumoto-collab/dandolink-sub002/internal/repository"
	"github.com/matsumoto-collab/dandolink-sub002/internal/service"
	"github.com/matsumoto-collab/dandolink-sub002/internal/testutil"
	"gorm.io/gorm"
)

func setupProfitTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)
	r := testutil.SetupRouter()

	repos := repository.NewRepositories(db)
	svc := service.NewProfitService(
		repos.Project,
		repos.Quotation,
		repos.Billing,
		repos.Report,
		repos.Assignment,
		repos.Vehicle,
		repos.RateSettings,
	)
	h := NewProfitHandler(svc)

	api := testutil.AuthGroup(r, "/api/v1")
	api.GET("/profits", h.GetDashboard)
	api.GET("/profits/export", h.Export)
	api.GET("/projects/:id/profit", h.GetProjectProfit)

	return &testutil.TestEnv{DB: db, Router: r, T: t}
}

// seedProfitScenario デフォルト単価で全費目が乗る標準データ一式を投入する
func seedProfitScenario(t *testing.T, db *gorm.DB) *entity.Project {
	t.Helper()
	now := time.Now()

	project := &entity.Project{
		ID:                "proj-profit-001",
		Title:             "物流倉庫改修",
		CustomerName:      "松本物産",
		Status:            entity.ProjectStatusActive,
		MaterialCost:      100000,
		SubcontractorCost: 50000,
		OtherExpenses:     10000,
		CreatedBy:         "test-user-001",
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("Failed to seed project: %v", err)
	}

	projectID := project.ID
	quotation := &entity.Quotation{
		ID:        "quot-profit-001",
		ProjectID: &projectID,
		Title:     "物流倉庫改修 見積",
		Total:     800000,
		Status:    entity.QuotationStatusAccepted,
	}
	if err := db.Create(quotation).Error; err != nil {
		t.Fatalf("Failed to seed quotation: %v", err)
	}

	billings := []entity.BillingRecord{
		{ID: "bill-profit-001", ProjectID: projectID, Title: "中間請求", Total: 500000, Status: entity.BillingStatusPaid},
		{ID: "bill-profit-002", ProjectID: projectID, Title: "完了請求", Total: 300000, Status: entity.BillingStatusUnpaid},
	}
	if err := db.Create(&billings).Error; err != nil {
		t.Fatalf("Failed to seed billings: %v", err)
	}

	vehicle := &entity.Vehicle{
		ID:        "veh-profit-001",
		Name:      "2tダンプ",
		DailyRate: 10000,
		Status:    "active",
	}
	if err := db.Create(vehicle).Error; err != nil {
		t.Fatalf("Failed to seed vehicle: %v", err)
	}

	workDate := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)
	assignment := &entity.Assignment{
		ID:         "asgn-profit-001",
		ProjectID:  projectID,
		WorkDate:   &workDate,
		Workers:    entity.StringList{"山田", "佐藤"},
		VehicleIDs: entity.StringList{vehicle.ID},
		CreatedBy:  "test-user-001",
	}
	if err := db.Create(assignment).Error; err != nil {
		t.Fatalf("Failed to seed assignment: %v", err)
	}

	report := &entity.DailyReport{
		ID:                    "rep-profit-001",
		WorkDate:              workDate,
		MorningLoadingMinutes: 30,
		EveningLoadingMinutes: 30,
		CreatedBy:             "test-user-001",
	}
	if err := db.Create(report).Error; err != nil {
		t.Fatalf("Failed to seed report: %v", err)
	}

	record := &entity.WorkRecord{
		ID:           "work-profit-001",
		ReportID:     report.ID,
		AssignmentID: assignment.ID,
		WorkMinutes:  480,
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("Failed to seed work record: %v", err)
	}

	return project
}

func TestGetDashboard(t *testing.T) {
	env := setupProfitTest(t)
	seedProfitScenario(t, env.DB)

	w := testutil.DoRequest(env.Router, "GET", "/api/v1/profits", nil, testutil.DefaultTestToken())
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})

	projects := data["projects"].([]interface{})
	if len(projects) != 1 {
		t.Fatalf("Expected 1 project row, got %d", len(projects))
	}

	row := projects[0].(map[string]interface{})
	if row["estimate_amount"].(float64) != 800000 {
		t.Errorf("estimate_amount = %v, want 800000", row["estimate_amount"])
	}
	if row["revenue"].(float64) != 800000 {
		t.Errorf("revenue = %v, want 800000", row["revenue"])
	}
	if row["labor_cost"].(float64) != 30000 {
		t.Errorf("labor_cost = %v, want 30000", row["labor_cost"])
	}
	if row["loading_cost"].(float64) != 1875 {
		t.Errorf("loading_cost = %v, want 1875", row["loading_cost"])
	}
	if row["vehicle_cost"].(float64) != 10000 {
		t.Errorf("vehicle_cost = %v, want 10000", row["vehicle_cost"])
	}
	if row["total_cost"].(float64) != 201875 {
		t.Errorf("total_cost = %v, want 201875", row["total_cost"])
	}
	if row["gross_profit"].(float64) != 598125 {
		t.Errorf("gross_profit = %v, want 598125", row["gross_profit"])
	}
	if row["profit_margin"].(float64) != 74.8 {
		t.Errorf("profit_margin = %v, want 74.8", row["profit_margin"])
	}
	if row["assignment_count"].(float64) != 1 {
		t.Errorf("assignment_count = %v, want 1", row["assignment_count"])
	}

	summary := data["summary"].(map[string]interface{})
	if summary["total_projects"].(float64) != 1 {
		t.Errorf("total_projects = %v, want 1", summary["total_projects"])
	}
	if summary["total_revenue"].(float64) != 800000 {
		t.Errorf("total_revenue = %v, want 800000", summary["total_revenue"])
	}
	if summary["total_gross_profit"].(float64) != 598125 {
		t.Errorf("total_gross_profit = %v, want 598125", summary["total_gross_profit"])
	}
	if summary["average_profit_margin"].(float64) != 74.8 {
		t.Errorf("average_profit_margin = %v, want 74.8", summary["average_profit_margin"])
	}
}

func TestGetDashboardStatusFilter(t *testing.T) {
	env := setupProfitTest(t)
	seedProfitScenario(t, env.DB)

	// 該当案件なし: サマリは全ゼロ
	w := testutil.DoRequest(env.Router, "GET", "/api/v1/profits?status=completed", nil, testutil.DefaultTestToken())
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})

	projects := data["projects"].([]interface{})
	if len(projects) != 0 {
		t.Errorf("Expected 0 project rows, got %d", len(projects))
	}

	summary := data["summary"].(map[string]interface{})
	if summary["total_projects"].(float64) != 0 {
		t.Errorf("total_projects = %v, want 0", summary["total_projects"])
	}
	if summary["total_revenue"].(float64) != 0 {
		t.Errorf("total_revenue = %v, want 0", summary["total_revenue"])
	}
	if summary["average_profit_margin"].(float64) != 0 {
		t.Errorf("average_profit_margin = %v, want 0", summary["average_profit_margin"])
	}
}

func TestGetProjectProfit(t *testing.T) {
	env := setupProfitTest(t)
	project := seedProfitScenario(t, env.DB)

	w := testutil.DoRequest(env.Router, "GET", "/api/v1/projects/"+project.ID+"/profit", nil, testutil.DefaultTestToken())
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["id"] != project.ID {
		t.Errorf("id = %v, want %s", data["id"], project.ID)
	}
	if data["total_cost"].(float64) != 201875 {
		t.Errorf("total_cost = %v, want 201875", data["total_cost"])
	}
	if data["profit_margin"].(float64) != 74.8 {
		t.Errorf("profit_margin = %v, want 74.8", data["profit_margin"])
	}
}

func TestGetProjectProfitNotFound(t *testing.T) {
	env := setupProfitTest(t)

	w := testutil.DoRequest(env.Router, "GET", "/api/v1/projects/no-such-project/profit", nil, testutil.DefaultTestToken())
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 40400 {
		t.Errorf("code = %v, want 40400", resp["code"])
	}
}

func TestGetDashboardRequiresAuth(t *testing.T) {
	env := setupProfitTest(t)

	w := testutil.DoRequest(env.Router, "GET", "/api/v1/profits", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestExportProfitReport(t *testing.T) {
	env := setupProfitTest(t)
	seedProfitScenario(t, env.DB)

	w := testutil.DoRequest(env.Router, "GET", "/api/v1/profits/export", nil, testutil.DefaultTestToken())
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	contentType := w.Header().Get("Content-Type")
	if contentType != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("Content-Type = %s", contentType)
	}
	disposition := w.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "profit_report_") {
		t.Errorf("Content-Disposition = %s", disposition)
	}
	if w.Body.Len() == 0 {
		t.Error("Expected non-empty excel body")
	}
}
