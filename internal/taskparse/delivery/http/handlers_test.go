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
	taskparseUC "task-planner/internal/taskparse/usecase"
	"task-planner/pkg/datemath"
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

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	l := &mockLogger{}

	users := directoryMem.NewUserDirectory([]directoryMem.UserSeed{
		{User: model.User{ID: "u-alice", FirstName: "Alice", LastName: "Nguyen"}},
		{User: model.User{ID: "u-carol", FirstName: "Carol", LastName: "Le"}, Roles: []string{"Manager"}},
	})
	categories := directoryMem.NewCategoryStore(directoryMem.DefaultCategories())

	resolver, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}

	uc := taskparseUC.New(l, categories, users, resolver, nil, "", "UTC")
	h := New(l, uc)

	r := gin.New()
	mw := middleware.New(l, users, 0)
	RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r
}

func post(t *testing.T, r *gin.Engine, path, userID string, body any) (*httptest.ResponseRecorder, response.Resp) {
	t.Helper()

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatalf("encode body: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestParseEndpoint(t *testing.T) {
	r := newTestServer(t)

	t.Run("requires auth", func(t *testing.T) {
		w, _ := post(t, r, "/api/v1/tasks/parse", "", gin.H{"text": "Buy milk"})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})

	t.Run("extracts a draft", func(t *testing.T) {
		w, resp := post(t, r, "/api/v1/tasks/parse", "u-alice", gin.H{
			"text": "Finish report due tomorrow at 5pm, high priority",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}

		data, _ := resp.Data.(map[string]interface{})
		if data["success"] != true {
			t.Fatalf("success = %v, body = %s", data["success"], w.Body.String())
		}
		draft, _ := data["draft"].(map[string]interface{})
		if draft["title"] != "Finish report" {
			t.Errorf("title = %v", draft["title"])
		}
		if draft["priority_label"] != "High" {
			t.Errorf("priority_label = %v", draft["priority_label"])
		}
		if draft["due_date"] == nil {
			t.Error("due_date missing")
		}
		if draft["assigned_to_user_id"] != "u-alice" {
			t.Errorf("assigned_to_user_id = %v", draft["assigned_to_user_id"])
		}
	})

	t.Run("blank text rejected", func(t *testing.T) {
		w, _ := post(t, r, "/api/v1/tasks/parse", "u-alice", gin.H{"text": "   "})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("missing text rejected", func(t *testing.T) {
		w, _ := post(t, r, "/api/v1/tasks/parse", "u-alice", gin.H{})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}

func TestCreateEndpoint(t *testing.T) {
	r := newTestServer(t)

	// No calendar configured: creation succeeds without a link.
	w, resp := post(t, r, "/api/v1/tasks", "u-alice", gin.H{
		"text": "Prepare the design review for Friday",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	data, _ := resp.Data.(map[string]interface{})
	if data["success"] != true {
		t.Fatalf("success = %v", data["success"])
	}
	if link, ok := data["calendar_link"]; ok && link != "" {
		t.Errorf("calendar_link = %v, want empty", link)
	}
}
