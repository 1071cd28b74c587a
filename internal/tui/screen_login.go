package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// updateLoginScreen обрабатывает ввод данных для входа.
func (m *model) updateLoginScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	loginAction := func() (tea.Model, tea.Cmd) {
		// Пока вход выполняется, повторная отправка формы подавляется
		if m.loginInFlight {
			return m, nil
		}
		username := m.loginUsernameInput.Value()
		password := m.loginPasswordInput.Value()
		if username == "" || password == "" {
			return m.setStatusMessage("Введите имя пользователя и пароль.")
		}
		m.loginInFlight = true
		cmd := m.makeLoginCmd(username, password)
		updated, statusCmd := m.setStatusMessage("Выполняется вход...")
		return updated, tea.Batch(cmd, statusCmd)
	}

	return m.handleCredentialsInput(
		msg,
		&m.loginUsernameInput,
		&m.loginPasswordInput,
		&m.loginFocusedField,
		loginAction,
	)
}

// viewLoginScreen отображает экран входа.
func (m *model) viewLoginScreen() string {
	return fmt.Sprintf(
		"Добро пожаловать в BestBlogs.\n\nВход в учетную запись:\n\n%s\n%s\n\n%s",
		m.loginUsernameInput.View(),
		m.loginPasswordInput.View(),
		"(Tab - переключение полей, Enter - войти)",
	)
}
