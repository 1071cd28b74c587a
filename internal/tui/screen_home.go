package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// updateHomeScreen обрабатывает сообщения на главном экране с лентой записей.
func (m *model) updateHomeScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// Горячие клавиши работают, только если лента не в режиме фильтрации
		if !m.postList.SettingFilter() {
			switch keyMsg.String() {
			case keySettings:
				return m.navigateTo(settingsScreen)
			case keyLogout:
				return m.logout()
			case keyQuit:
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.postList, cmd = m.postList.Update(msg)
	return m, cmd
}

// viewHomeScreen отображает ленту записей.
func (m *model) viewHomeScreen() string {
	return m.postList.View()
}
