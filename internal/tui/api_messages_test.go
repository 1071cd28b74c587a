//nolint:testpackage // Это тесты в том же пакете для доступа к приватным компонентам
package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestblogs/client/internal/api"
	"github.com/bestblogs/client/models"
)

// TestHandleAPIMessages проверяет обработку различных сообщений API.
func TestHandleAPIMessages(t *testing.T) {
	t.Run("УспешныйВход", func(t *testing.T) {
		m, mockClient := createTestModel(t)
		mockClient.On("SetAuthToken", "abc123").Return()

		m.state = loginScreen
		m.loginInFlight = true
		m.loginUsernameInput.SetValue("admin")
		m.loginPasswordInput.SetValue("pass")

		newM, cmd, handled := handleAPIMsg(m, loginSuccessMsg{Token: "abc123"})
		updated := asModel(t, newM)

		require.True(t, handled, "Сообщение должно быть обработано")
		require.NotNil(t, cmd, "Должна быть возвращена команда")
		assert.Equal(t, homeScreen, updated.state, "Должен быть выполнен переход на главный экран")
		assert.False(t, updated.loginInFlight)

		token, ok := updated.session.Token()
		require.True(t, ok)
		assert.Equal(t, "abc123", token, "Токен должен быть сохранен в хранилище сессии")

		assert.Empty(t, updated.loginUsernameInput.Value(), "Поле имени пользователя должно быть очищено")
		assert.Empty(t, updated.loginPasswordInput.Value(), "Поле пароля должно быть очищено")
		mockClient.AssertExpectations(t)
	})

	t.Run("ОшибкаВхода", func(t *testing.T) {
		m, _ := createTestModel(t)
		m.state = loginScreen
		m.loginInFlight = true
		m.loginUsernameInput.SetValue("admin")
		m.loginPasswordInput.SetValue("wrong")

		testErr := api.ErrInvalidCredentials
		newM, cmd, handled := handleAPIMsg(m, LoginError{err: testErr})
		updated := asModel(t, newM)

		require.True(t, handled)
		require.NotNil(t, cmd)
		assert.Equal(t, loginScreen, updated.state, "Должны остаться на экране входа")
		assert.False(t, updated.loginInFlight)
		// Поля очищаются, принуждая к повторному вводу
		assert.Empty(t, updated.loginUsernameInput.Value())
		assert.Empty(t, updated.loginPasswordInput.Value())
		assert.Equal(t, testErr, updated.err)

		_, ok := updated.session.Token()
		assert.False(t, ok, "Токен не должен быть сохранен")
	})

	t.Run("ПрофильПолучен_СлияниеПоПолям", func(t *testing.T) {
		m, _ := createTestModel(t)
		m.state = settingsScreen
		m.profileFetchSeq = 3
		m.profile = models.Profile{Username: "old", ProfilePic: "/img/old.png"}

		// Сервер вернул только имя: изображение остается прежним
		msg := profileFetchedMsg{seq: 3, profile: &models.ProfileResponse{Username: strPtr("alice")}}
		newM, _, handled := handleAPIMsg(m, msg)
		updated := asModel(t, newM)

		require.True(t, handled)
		assert.Equal(t, "alice", updated.profile.Username)
		assert.Equal(t, "/img/old.png", updated.profile.ProfilePic, "Отсутствующее поле не должно затирать локальное")
	})

	t.Run("УстаревшийОтветПрофиляОтбрасывается", func(t *testing.T) {
		m, _ := createTestModel(t)
		m.state = settingsScreen
		m.profileFetchSeq = 5
		m.profile = models.Profile{Username: "current"}

		msg := profileFetchedMsg{seq: 4, profile: &models.ProfileResponse{Username: strPtr("stale")}}
		newM, _, handled := handleAPIMsg(m, msg)
		updated := asModel(t, newM)

		require.True(t, handled)
		assert.Equal(t, "current", updated.profile.Username, "Поздний ответ не должен применяться")
	})

	t.Run("ОтветПрофиляПослеУходаСЭкрана", func(t *testing.T) {
		m, _ := createTestModel(t)
		m.state = homeScreen // Экран настроек уже закрыт
		m.profileFetchSeq = 2
		m.profile = models.Profile{Username: "current"}

		msg := profileFetchedMsg{seq: 2, profile: &models.ProfileResponse{Username: strPtr("stale")}}
		newM, _, handled := handleAPIMsg(m, msg)
		updated := asModel(t, newM)

		require.True(t, handled)
		assert.Equal(t, "current", updated.profile.Username)
	})

	t.Run("МягкаяОшибкаПрофиля", func(t *testing.T) {
		m, _ := createTestModel(t)
		require.NoError(t, m.session.SetToken("abc123"))
		m.state = settingsScreen
		m.profileFetchSeq = 1
		m.profile = models.Profile{Username: "alice", ProfilePic: "/img/alice.png"}

		msg := ProfileFetchError{seq: 1, err: errors.New("ошибка получения профиля: статус 500")}
		newM, _, handled := handleAPIMsg(m, msg)
		updated := asModel(t, newM)

		require.True(t, handled)
		// Гард уже допустил экран: остаемся, показанный профиль не трогаем
		assert.Equal(t, settingsScreen, updated.state)
		assert.Equal(t, "alice", updated.profile.Username)
		_, ok := updated.session.Token()
		assert.True(t, ok, "Сессия не должна очищаться при мягкой ошибке")
	})

	t.Run("ОтказПоТокенуОчищаетСессию", func(t *testing.T) {
		m, mockClient := createTestModel(t)
		mockClient.On("SetAuthToken", "").Return()

		require.NoError(t, m.session.SetToken("expired-token"))
		m.state = settingsScreen
		m.profileFetchSeq = 1

		msg := ProfileFetchError{seq: 1, err: api.ErrAuthorization}
		newM, cmd, handled := handleAPIMsg(m, msg)
		updated := asModel(t, newM)

		require.True(t, handled)
		require.NotNil(t, cmd)
		assert.Equal(t, loginScreen, updated.state, "Отклоненный токен возвращает на экран входа")
		_, ok := updated.session.Token()
		assert.False(t, ok, "Сессия должна быть очищена")
		mockClient.AssertExpectations(t)
	})

	t.Run("УспешнаяЗагрузкаИзображения", func(t *testing.T) {
		m, _ := createTestModel(t)
		m.state = settingsScreen
		m.uploadInFlight = true
		m.profile = models.Profile{Username: "alice", ProfilePic: "/img/old.png"}
		m.picturePathInput.SetValue("/tmp/avatar.png")

		msg := uploadSuccessMsg{resp: &models.UploadResponse{ProfilePic: "/img/alice.png", Message: "ok"}}
		newM, cmd, handled := handleAPIMsg(m, msg)
		updated := asModel(t, newM)

		require.True(t, handled)
		require.NotNil(t, cmd)
		assert.False(t, updated.uploadInFlight)
		// Полная замена ссылки на изображение
		assert.Equal(t, "/img/alice.png", updated.profile.ProfilePic)
		// Сообщение сервера показывается пользователю
		assert.Equal(t, "ok", updated.savingStatus)
		assert.Empty(t, updated.picturePathInput.Value(), "Поле пути должно быть сброшено")
	})

	t.Run("ОшибкаЗагрузкиИзображения", func(t *testing.T) {
		m, _ := createTestModel(t)
		require.NoError(t, m.session.SetToken("abc123"))
		m.state = settingsScreen
		m.uploadInFlight = true
		m.profile = models.Profile{Username: "alice", ProfilePic: "/img/old.png"}
		m.picturePathInput.SetValue("/tmp/huge.png")

		msg := UploadError{err: errors.New("too large")}
		newM, _, handled := handleAPIMsg(m, msg)
		updated := asModel(t, newM)

		require.True(t, handled)
		assert.False(t, updated.uploadInFlight)
		// Текст ошибки сервера показывается дословно
		assert.Contains(t, updated.savingStatus, "too large")
		// Локальная ссылка не изменилась
		assert.Equal(t, "/img/old.png", updated.profile.ProfilePic)
		// Поле пути сбрасывается и при ошибке, чтобы можно было повторить
		assert.Empty(t, updated.picturePathInput.Value())
	})

	t.Run("ОтказПоТокенуПриЗагрузке", func(t *testing.T) {
		m, mockClient := createTestModel(t)
		mockClient.On("SetAuthToken", "").Return()

		require.NoError(t, m.session.SetToken("expired-token"))
		m.state = settingsScreen
		m.uploadInFlight = true

		newM, _, handled := handleAPIMsg(m, UploadError{err: api.ErrAuthorization})
		updated := asModel(t, newM)

		require.True(t, handled)
		assert.Equal(t, loginScreen, updated.state)
		_, ok := updated.session.Token()
		assert.False(t, ok)
		mockClient.AssertExpectations(t)
	})

	t.Run("НеобрабатываемоеСообщение", func(t *testing.T) {
		m, _ := createTestModel(t)

		_, _, handled := handleAPIMsg(m, tea.WindowSizeMsg{Width: 80, Height: 24})
		assert.False(t, handled, "Сообщение не должно быть обработано")
	})
}
