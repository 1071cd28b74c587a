package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Update обрабатывает входящие сообщения.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	// == Глобальные сообщения (не зависят от экрана) ==
	case tea.WindowSizeMsg:
		h, v := m.docStyle.GetFrameSize()
		listWidth := msg.Width - h
		listHeight := msg.Height - v - helpStatusHeightOffset

		m.postList.SetSize(listWidth, listHeight)
		m.loginUsernameInput.Width = listWidth - passwordInputOffset
		m.loginPasswordInput.Width = listWidth - passwordInputOffset
		m.picturePathInput.Width = listWidth - passwordInputOffset
		m.usernameEditInput.Width = listWidth - passwordInputOffset
		m.passwordEditInput.Width = listWidth - passwordInputOffset
		return m, nil

	case clearStatusMsg:
		m.savingStatus = ""
		return m, nil

	case tea.KeyMsg:
		// Глобальные команды (работают на всех экранах)
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// Если не глобальная команда, передаем дальше в обработчик текущего экрана
	}

	// Результаты асинхронных вызовов API обрабатываются единообразно
	if newModel, cmd, handled := handleAPIMsg(m, msg); handled {
		return newModel, cmd
	}

	// == Обновление в зависимости от состояния ==
	switch m.state {
	case loginScreen:
		return m.updateLoginScreen(msg)
	case homeScreen:
		return m.updateHomeScreen(msg)
	case settingsScreen:
		return m.updateSettingsScreen(msg)
	default:
		slog.Error("Неизвестное состояние экрана", "state", m.state)
		return m, nil
	}
}
