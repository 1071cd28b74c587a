//nolint:testpackage // Это тесты в том же пакете для доступа к приватным компонентам
package tui

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bestblogs/client/internal/session"
	"github.com/bestblogs/client/models"
)

// MockAPIClient — мок API клиента для тестов TUI.
type MockAPIClient struct {
	mock.Mock
}

func (m *MockAPIClient) Login(ctx context.Context, encUsername, encPassword string) (string, error) {
	args := m.Called(ctx, encUsername, encPassword)
	return args.String(0), args.Error(1)
}

func (m *MockAPIClient) GetProfile(ctx context.Context) (*models.ProfileResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	resp, _ := args.Get(0).(*models.ProfileResponse)
	return resp, args.Error(1)
}

func (m *MockAPIClient) UploadProfilePicture(
	ctx context.Context,
	file io.Reader,
	filename, username string,
) (*models.UploadResponse, error) {
	args := m.Called(ctx, file, filename, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	resp, _ := args.Get(0).(*models.UploadResponse)
	return resp, args.Error(1)
}

func (m *MockAPIClient) SetAuthToken(token string) {
	m.Called(token)
}

// newTestStore создает хранилище сессии во временной директории.
func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	store, err := session.Open(filepath.Join(t.TempDir(), "session"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// createTestModel создает модель с моком API клиента и чистым хранилищем сессии.
func createTestModel(t *testing.T) (*model, *MockAPIClient) {
	t.Helper()
	mockClient := new(MockAPIClient)
	m := initModel("http://test.server", false, mockClient, newTestStore(t))
	return &m, mockClient
}

// asModel приводит tea.Model к *model.
func asModel(t *testing.T, m tea.Model) *model {
	t.Helper()
	result, ok := m.(*model)
	require.True(t, ok, "Модель должна быть типа *model")
	return result
}

// strPtr возвращает указатель на строку (для опциональных полей ответа).
func strPtr(s string) *string {
	return &s
}
