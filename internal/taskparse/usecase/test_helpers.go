package usecase

import (
	"context"
	"errors"

	"task-planner/internal/model"
)

// Mock logger for testing
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

// Mock category store
type mockCategoryStore struct {
	categories []model.Category
	fail       bool
}

func (m *mockCategoryStore) ListCategories(ctx context.Context) ([]model.Category, error) {
	if m.fail {
		return nil, errors.New("category store error")
	}
	return m.categories, nil
}

// Mock user directory
type mockUserDirectory struct {
	users []model.User
	roles map[string][]string
	fail  bool
}

func (m *mockUserDirectory) ListUsers(ctx context.Context) ([]model.User, error) {
	if m.fail {
		return nil, errors.New("directory error")
	}
	return m.users, nil
}

func (m *mockUserDirectory) FindByID(ctx context.Context, id string) (model.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, errors.New("user not found")
}

func (m *mockUserDirectory) Roles(ctx context.Context, userID string) ([]string, error) {
	if m.fail {
		return nil, errors.New("directory error")
	}
	return m.roles[userID], nil
}
