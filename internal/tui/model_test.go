//nolint:testpackage // Это тесты в том же пакете для доступа к приватным компонентам
package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestScreenStateString проверяет читаемые имена экранов.
func TestScreenStateString(t *testing.T) {
	assert.Equal(t, "loginScreen", loginScreen.String())
	assert.Equal(t, "homeScreen", homeScreen.String())
	assert.Equal(t, "settingsScreen", settingsScreen.String())
	assert.Equal(t, "unknown", screenState(99).String())
}

// TestPostItem проверяет реализацию list.Item для записи в ленте.
func TestPostItem(t *testing.T) {
	item := postItem{title: "Заголовок", author: "alice"}
	assert.Equal(t, "Заголовок", item.Title())
	assert.Equal(t, "Автор: alice", item.Description())
	assert.Equal(t, "Заголовок", item.FilterValue())
}

// TestInitModel проверяет начальное состояние модели.
func TestInitModel(t *testing.T) {
	m, _ := createTestModel(t)

	assert.Equal(t, loginScreen, m.state)
	assert.True(t, m.loginUsernameInput.Focused(), "Поле имени должно быть в фокусе при старте")
	assert.False(t, m.loginInFlight)
	assert.NotEmpty(t, m.helpTextMap)
}
