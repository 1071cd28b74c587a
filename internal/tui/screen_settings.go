package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// settingsInputs возвращает поля экрана настроек в порядке обхода фокуса.
func (m *model) settingsInputs() []*textinput.Model {
	return []*textinput.Model{
		&m.picturePathInput,
		&m.usernameEditInput,
		&m.passwordEditInput,
	}
}

// focusSettingsField переводит фокус на поле с указанным индексом.
func (m *model) focusSettingsField(idx int) {
	m.settingsFocusedField = idx
	for i, input := range m.settingsInputs() {
		if i == idx {
			input.Focus()
		} else {
			input.Blur()
		}
	}
}

// updateSettingsScreen обрабатывает сообщения на экране настроек профиля.
func (m *model) updateSettingsScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEsc:
			return m.navigateTo(homeScreen)
		case keyTab:
			m.focusSettingsField((m.settingsFocusedField + 1) % numSettingsFields)
			return m, textinput.Blink
		case keyShiftTab:
			m.focusSettingsField((m.settingsFocusedField + numSettingsFields - 1) % numSettingsFields)
			return m, textinput.Blink
		case keyEnter:
			if m.settingsFocusedField == settingsFieldPicturePath {
				return m.startUpload()
			}
			// Поля имени и пароля отрисовываются, но не привязаны к
			// запросу изменения: задокументированного эндпоинта нет.
			// Enter лишь переводит фокус дальше.
			m.focusSettingsField((m.settingsFocusedField + 1) % numSettingsFields)
			return m, textinput.Blink
		}
	}

	// Обновляем активное поле ввода
	var cmd tea.Cmd
	active := m.settingsInputs()[m.settingsFocusedField]
	*active, cmd = active.Update(msg)
	return m, cmd
}

// startUpload запускает загрузку нового изображения профиля.
func (m *model) startUpload() (tea.Model, tea.Cmd) {
	// Пока загрузка выполняется, повторная отправка подавляется
	if m.uploadInFlight {
		return m, nil
	}
	path := m.picturePathInput.Value()
	if path == "" {
		return m.setStatusMessage("Укажите путь к файлу изображения.")
	}
	m.uploadInFlight = true
	cmd := uploadPictureCmd(m.apiClient, path, m.profile.Username)
	updated, statusCmd := m.setStatusMessage("Загрузка изображения...")
	return updated, tea.Batch(cmd, statusCmd)
}

// viewSettingsScreen отображает экран настроек профиля.
func (m *model) viewSettingsScreen() string {
	picture := m.profile.ProfilePic
	if picture == "" {
		picture = "<не задано>"
	}

	return fmt.Sprintf(
		"Настройки профиля\n\n"+
			"Пользователь: %s\n"+
			"Изображение:  %s\n\n"+
			"Новое изображение (путь к файлу):\n%s\n\n"+
			"Имя пользователя:\n%s\n\n"+
			"Пароль:\n%s\n",
		m.profile.Username,
		picture,
		m.picturePathInput.View(),
		m.usernameEditInput.View(),
		m.passwordEditInput.View(),
	)
}
