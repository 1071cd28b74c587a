package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bestblogs/client/models"
)

// guardDecision — результат проверки доступа к защищенному экрану.
// Проверка выполняется заново при каждом переходе и не кэшируется.
type guardDecision int

const (
	guardUnchecked  guardDecision = iota // Проверка еще не выполнялась
	guardAdmitted                        // Токен есть, экран можно показывать
	guardRedirected                      // Токена нет, переход на экран входа
)

// isProtected сообщает, требует ли экран наличия сессии.
func isProtected(s screenState) bool {
	return s == homeScreen || s == settingsScreen
}

// evaluateGuard проверяет наличие токена в хранилище сессии.
// Это проверка только присутствия: подлинность и срок жизни токена
// подтверждает сервер при первом реальном запросе (ленивая валидация).
func (m *model) evaluateGuard() guardDecision {
	if _, ok := m.session.Token(); ok {
		return guardAdmitted
	}
	return guardRedirected
}

// navigateTo выполняет переход на экран. Защищенные экраны проходят
// через проверку доступа; при отказе вместо запрошенного экрана
// отрисовывается экран входа, от запрошенного не остается ничего.
func (m *model) navigateTo(target screenState) (tea.Model, tea.Cmd) {
	if isProtected(target) {
		decision := m.evaluateGuard()
		if decision == guardRedirected {
			slog.Info("Доступ к экрану отклонен, переход на вход", "target", target.String())
			return m.showLoginScreen()
		}
	}

	// Уход с экрана настроек: поздние ответы на запрос профиля
	// не должны применяться к уже закрытому экрану
	if m.state == settingsScreen && target != settingsScreen {
		m.profileFetchSeq++
	}

	switch target {
	case homeScreen:
		m.state = homeScreen
		return m, tea.ClearScreen
	case settingsScreen:
		m.state = settingsScreen
		m.settingsFocusedField = settingsFieldPicturePath
		m.picturePathInput.Focus()
		m.usernameEditInput.Blur()
		m.passwordEditInput.Blur()
		m.usernameEditInput.SetValue(m.profile.Username)
		// Запрашиваем профиль при каждом входе на экран
		m.profileFetchSeq++
		return m, tea.Batch(textinput.Blink, tea.ClearScreen, fetchProfileCmd(m.apiClient, m.profileFetchSeq))
	case loginScreen:
		return m.showLoginScreen()
	default:
		return m, nil
	}
}

// showLoginScreen переводит приложение на экран входа.
func (m *model) showLoginScreen() (tea.Model, tea.Cmd) {
	m.state = loginScreen
	m.loginFocusedField = 0
	m.loginUsernameInput.Focus()
	m.loginPasswordInput.Blur()
	return m, tea.Batch(textinput.Blink, tea.ClearScreen)
}

// logout очищает сессию и возвращает на экран входа.
// Токен очищается до перехода: повторный заход на защищенный экран
// (в том числе "назад") снова даст guardRedirected, без показа
// устаревшего защищенного содержимого.
func (m *model) logout() (tea.Model, tea.Cmd) {
	if err := m.session.Clear(); err != nil {
		slog.Warn("Ошибка очистки сессии при выходе", "error", err)
	}
	m.apiClient.SetAuthToken("")
	m.profile = models.Profile{}
	slog.Info("Выход из учетной записи выполнен")
	newM, cmd := m.showLoginScreen()
	updated, statusCmd := newM.(*model).setStatusMessage("Выход выполнен.")
	return updated, tea.Batch(cmd, statusCmd)
}
