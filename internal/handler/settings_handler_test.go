package handler

import (
	"net/http"
	"testing"

	"github.com/matsumoto-collab/dandolink-sub002/internal/middleware"
	"github.com/matsumoto-collab/dandolink-sub002/internal/repository"
	"github.com/matsumoto-collab/dandolink-sub002/internal/service"
	"github.com/matsumoto-collab/dandolink-sub002/internal/testutil"
)

func setupSettingsTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)
	r := testutil.SetupRouter()

	repos := repository.NewRepositories(db)
	h := NewSettingsHandler(service.NewSettingsService(repos.RateSettings))

	api := testutil.AuthGroup(r, "/api/v1")
	api.GET("/settings/rates", h.GetRates)
	api.PUT("/settings/rates", middleware.RequireRole("admin"), h.UpdateRates)

	return &testutil.TestEnv{DB: db, Router: r, T: t}
}

// 未登録環境では業務デフォルトの 15000円/480分 が返る
func TestGetRatesDefaults(t *testing.T) {
	env := setupSettingsTest(t)

	w := testutil.DoRequest(env.Router, "GET", "/api/v1/settings/rates", nil, testutil.DefaultTestToken())
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["labor_daily_rate"].(float64) != 15000 {
		t.Errorf("labor_daily_rate = %v, want 15000", data["labor_daily_rate"])
	}
	if data["standard_work_minutes"].(float64) != 480 {
		t.Errorf("standard_work_minutes = %v, want 480", data["standard_work_minutes"])
	}
}

func TestUpdateRates(t *testing.T) {
	env := setupSettingsTest(t)

	body := map[string]interface{}{
		"labor_daily_rate":      20000,
		"standard_work_minutes": 500,
	}
	w := testutil.DoRequest(env.Router, "PUT", "/api/v1/settings/rates", body, testutil.DefaultTestToken())
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// 更新後のGETで反映を確認
	w = testutil.DoRequest(env.Router, "GET", "/api/v1/settings/rates", nil, testutil.DefaultTestToken())
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["labor_daily_rate"].(float64) != 20000 {
		t.Errorf("labor_daily_rate = %v, want 20000", data["labor_daily_rate"])
	}
	if data["standard_work_minutes"].(float64) != 500 {
		t.Errorf("standard_work_minutes = %v, want 500", data["standard_work_minutes"])
	}
	if data["updated_by"] != "test-user-001" {
		t.Errorf("updated_by = %v", data["updated_by"])
	}
}

func TestUpdateRatesRejectsNonAdmin(t *testing.T) {
	env := setupSettingsTest(t)

	token := testutil.GenerateTestToken("test-user-002", "一般メンバー", "member")
	body := map[string]interface{}{
		"labor_daily_rate":      20000,
		"standard_work_minutes": 500,
	}
	w := testutil.DoRequest(env.Router, "PUT", "/api/v1/settings/rates", body, token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("Expected 403, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateRatesValidation(t *testing.T) {
	env := setupSettingsTest(t)

	w := testutil.DoRequest(env.Router, "PUT", "/api/v1/settings/rates", map[string]interface{}{
		"labor_daily_rate":      -100,
		"standard_work_minutes": 480,
	}, testutil.DefaultTestToken())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}
