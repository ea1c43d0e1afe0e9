package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	directoryMem "task-planner/internal/directory/memory"
	"task-planner/internal/middleware"
	"task-planner/internal/model"
	sessionMem "task-planner/internal/timetrack/repository/memory"
	timetrackUC "task-planner/internal/timetrack/usecase"
	"task-planner/pkg/response"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestServer() *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := &mockLogger{}

	users := directoryMem.NewUserDirectory([]directoryMem.UserSeed{
		{User: model.User{ID: "u-alice", FirstName: "Alice"}},
		{User: model.User{ID: "u-bob", FirstName: "Bob"}},
		{User: model.User{ID: "u-carol", FirstName: "Carol"}, Roles: []string{"Manager"}},
	})

	uc := timetrackUC.New(l, sessionMem.New(), users, 0)
	h := New(l, uc)

	r := gin.New()
	mw := middleware.New(l, users, 0)
	RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, userID string, body any) (*httptest.ResponseRecorder, response.Resp) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestTimerEndpoints(t *testing.T) {
	r := newTestServer()

	t.Run("requires auth", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPost, "/api/v1/timer/start", "", gin.H{"task_id": "task-1"})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})

	t.Run("start then stop", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodPost, "/api/v1/timer/start", "u-alice", gin.H{"task_id": "task-1"})
		if w.Code != http.StatusOK {
			t.Fatalf("start status = %d, body = %s", w.Code, w.Body.String())
		}
		data, _ := resp.Data.(map[string]interface{})
		if data["task_id"] != "task-1" || data["user_id"] != "u-alice" {
			t.Errorf("start data = %v", data)
		}
		if data["log_id"] == "" {
			t.Error("start did not return a log id")
		}

		w, resp = doJSON(t, r, http.MethodPost, "/api/v1/timer/stop", "u-alice", gin.H{"task_id": "task-1", "description": "sprint work"})
		if w.Code != http.StatusOK {
			t.Fatalf("stop status = %d, body = %s", w.Code, w.Body.String())
		}
		data, _ = resp.Data.(map[string]interface{})
		if data["end_time"] == nil {
			t.Error("stop did not close the session")
		}
		if data["description"] != "sprint work" {
			t.Errorf("description = %v", data["description"])
		}
	})

	t.Run("stop without active timer", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodPost, "/api/v1/timer/stop", "u-bob", gin.H{"task_id": "task-9"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if resp.Message == "" {
			t.Error("expected an error message")
		}
	})

	t.Run("missing task id", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPost, "/api/v1/timer/start", "u-alice", gin.H{})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("active", func(t *testing.T) {
		if w, _ := doJSON(t, r, http.MethodPost, "/api/v1/timer/start", "u-bob", gin.H{"task_id": "task-2"}); w.Code != http.StatusOK {
			t.Fatalf("start status = %d", w.Code)
		}

		w, resp := doJSON(t, r, http.MethodGet, "/api/v1/timer/active", "u-bob", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		data, _ := resp.Data.(map[string]interface{})
		sessions, _ := data["sessions"].([]interface{})
		if len(sessions) != 1 {
			t.Fatalf("sessions = %v, want one", data["sessions"])
		}
	})
}

func TestTimeLogEndpoints(t *testing.T) {
	r := newTestServer()

	// Record one finished session for alice.
	_, resp := doJSON(t, r, http.MethodPost, "/api/v1/timer/start", "u-alice", gin.H{"task_id": "task-1"})
	_, resp = doJSON(t, r, http.MethodPost, "/api/v1/timer/stop", "u-alice", gin.H{"task_id": "task-1"})
	data, _ := resp.Data.(map[string]interface{})
	logID, _ := data["log_id"].(string)
	if logID == "" {
		t.Fatal("no log id from stop")
	}

	t.Run("list by task", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodGet, "/api/v1/timelogs/task/task-1", "u-alice", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		data, _ := resp.Data.(map[string]interface{})
		sessions, _ := data["sessions"].([]interface{})
		if len(sessions) != 1 {
			t.Fatalf("sessions = %v, want one", data["sessions"])
		}
	})

	t.Run("edit by other user forbidden", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPut, "/api/v1/timelogs/"+logID, "u-bob", gin.H{"description": "mine now"})
		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", w.Code)
		}
	})

	t.Run("edit by manager allowed", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodPut, "/api/v1/timelogs/"+logID, "u-carol", gin.H{"description": "adjusted"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		data, _ := resp.Data.(map[string]interface{})
		if data["description"] != "adjusted" {
			t.Errorf("description = %v", data["description"])
		}
		if data["user_id"] != "u-alice" {
			t.Errorf("owner changed: %v", data["user_id"])
		}
	})

	t.Run("add description inside window", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodPost, "/api/v1/timelogs/"+logID+"/description", "u-alice", gin.H{"description": "worked on importer"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		data, _ := resp.Data.(map[string]interface{})
		if data["description"] != "worked on importer" {
			t.Errorf("description = %v", data["description"])
		}
	})

	t.Run("unknown log", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPut, "/api/v1/timelogs/missing", "u-alice", gin.H{"description": "x"})
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})

	t.Run("report forbidden for plain user", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodGet, "/api/v1/timelogs/report", "u-alice", nil)
		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", w.Code)
		}
	})

	t.Run("report for manager", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodGet, "/api/v1/timelogs/report?from=2024-01-01", "u-carol", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		data, _ := resp.Data.(map[string]interface{})
		if _, ok := data["total_minutes"]; !ok {
			t.Errorf("report data = %v", data)
		}
	})
}
