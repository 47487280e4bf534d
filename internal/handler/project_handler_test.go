package handler

import (
	"net/http"
	"testing"

	"github.com/matsumoto-collab/dandolink-sub002/internal/repository"
	"github.com/matsumoto-collab/dandolink-sub002/internal/service"
	"github.com/matsumoto-collab/dandolink-sub002/internal/testutil"
)

func setupProjectTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)
	r := testutil.SetupRouter()

	repos := repository.NewRepositories(db)
	h := NewProjectHandler(service.NewProjectService(repos.Project))

	api := testutil.AuthGroup(r, "/api/v1")
	api.GET("/projects", h.List)
	api.POST("/projects", h.Create)
	api.GET("/projects/:id", h.Get)
	api.PUT("/projects/:id", h.Update)
	api.PATCH("/projects/:id/status", h.UpdateStatus)
	api.DELETE("/projects/:id", h.Delete)

	return &testutil.TestEnv{DB: db, Router: r, T: t}
}

func TestCreateProject(t *testing.T) {
	env := setupProjectTest(t)

	body := map[string]interface{}{
		"title":              "事務所移転",
		"customer_name":      "高橋建設",
		"material_cost":      30000,
		"subcontractor_cost": 0,
		"other_expenses":     5000,
	}
	w := testutil.DoRequest(env.Router, "POST", "/api/v1/projects", body, testutil.DefaultTestToken())
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["title"] != "事務所移転" {
		t.Errorf("title = %v", data["title"])
	}
	// 状態未指定はactive
	if data["status"] != "active" {
		t.Errorf("status = %v, want active", data["status"])
	}
	if data["created_by"] != "test-user-001" {
		t.Errorf("created_by = %v", data["created_by"])
	}
}

func TestCreateProjectMissingTitle(t *testing.T) {
	env := setupProjectTest(t)

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/projects", map[string]interface{}{
		"customer_name": "高橋建設",
	}, testutil.DefaultTestToken())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestListProjectsStatusFilter(t *testing.T) {
	env := setupProjectTest(t)
	testutil.SeedTestProject(t, env.DB, "proj-list-001", "進行中の案件", "active")
	testutil.SeedTestProject(t, env.DB, "proj-list-002", "完了した案件", "completed")

	w := testutil.DoRequest(env.Router, "GET", "/api/v1/projects?status=active", nil, testutil.DefaultTestToken())
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}
	item := items[0].(map[string]interface{})
	if item["id"] != "proj-list-001" {
		t.Errorf("id = %v, want proj-list-001", item["id"])
	}
}

func TestListProjectsAll(t *testing.T) {
	env := setupProjectTest(t)
	testutil.SeedTestProject(t, env.DB, "proj-all-001", "進行中の案件", "active")
	testutil.SeedTestProject(t, env.DB, "proj-all-002", "完了した案件", "completed")

	w := testutil.DoRequest(env.Router, "GET", "/api/v1/projects", nil, testutil.DefaultTestToken())
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	if len(items) != 2 {
		t.Errorf("Expected 2 items, got %d", len(items))
	}
}

func TestGetProjectNotFound(t *testing.T) {
	env := setupProjectTest(t)

	w := testutil.DoRequest(env.Router, "GET", "/api/v1/projects/no-such-id", nil, testutil.DefaultTestToken())
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateProjectStatus(t *testing.T) {
	env := setupProjectTest(t)
	testutil.SeedTestProject(t, env.DB, "proj-status-001", "状態変更の案件", "active")

	w := testutil.DoRequest(env.Router, "PATCH", "/api/v1/projects/proj-status-001/status", map[string]interface{}{
		"status": "completed",
	}, testutil.DefaultTestToken())
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	data := resp["data"].(map[string]interface{})
	if data["status"] != "completed" {
		t.Errorf("status = %v, want completed", data["status"])
	}
	// 完了時は終了日が自動で入る
	if data["end_date"] == nil {
		t.Error("Expected end_date to be set on completion")
	}
}

func TestUpdateProjectStatusInvalid(t *testing.T) {
	env := setupProjectTest(t)
	testutil.SeedTestProject(t, env.DB, "proj-status-002", "状態変更の案件", "active")

	w := testutil.DoRequest(env.Router, "PATCH", "/api/v1/projects/proj-status-002/status", map[string]interface{}{
		"status": "archived",
	}, testutil.DefaultTestToken())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteProject(t *testing.T) {
	env := setupProjectTest(t)
	testutil.SeedTestProject(t, env.DB, "proj-del-001", "削除する案件", "cancelled")

	w := testutil.DoRequest(env.Router, "DELETE", "/api/v1/projects/proj-del-001", nil, testutil.DefaultTestToken())
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(env.Router, "GET", "/api/v1/projects/proj-del-001", nil, testutil.DefaultTestToken())
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 after delete, got %d: %s", w.Code, w.Body.String())
	}
}
