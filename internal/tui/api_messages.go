package tui

import (
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bestblogs/client/internal/api"
)

// handleAPIMsg обрабатывает сообщения с результатами вызовов API.
// Возвращает обновленную модель, команду и флаг, было ли сообщение обработано.
//
//nolint:funlen // Линейная диспетчеризация по типам сообщений
func handleAPIMsg(m *model, msg tea.Msg) (tea.Model, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case loginSuccessMsg:
		m.loginInFlight = false
		if err := m.session.SetToken(msg.Token); err != nil {
			// Токен уже в памяти, вход продолжается; пострадает только перезапуск
			slog.Warn("Не удалось сохранить сессию", "error", err)
		}
		m.apiClient.SetAuthToken(msg.Token)
		m.loginUsernameInput.SetValue("")
		m.loginPasswordInput.SetValue("")
		m.err = nil
		slog.Info("Вход выполнен, переход на главный экран")
		newM, navCmd := m.navigateTo(homeScreen)
		updated, statusCmd := newM.(*model).setStatusMessage("Вход выполнен.")
		return updated, tea.Batch(navCmd, statusCmd), true

	case LoginError:
		m.loginInFlight = false
		m.err = msg.err
		// Поля очищаются, пользователь вводит данные заново
		m.loginUsernameInput.SetValue("")
		m.loginPasswordInput.SetValue("")
		m.loginFocusedField = 0
		m.loginUsernameInput.Focus()
		m.loginPasswordInput.Blur()
		slog.Warn("Ошибка входа", "error", msg.err)
		updated, statusCmd := m.setStatusMessage("Ошибка входа: " + msg.err.Error())
		return updated, statusCmd, true

	case profileFetchedMsg:
		if msg.seq != m.profileFetchSeq || m.state != settingsScreen {
			// Поздний ответ после ухода с экрана или более нового запроса
			slog.Debug("Устаревший ответ профиля отброшен", "seq", msg.seq, "current", m.profileFetchSeq)
			return m, nil, true
		}
		// Слияние по полям: отсутствующие поля не трогают локальные значения
		m.profile.Merge(msg.profile)
		m.usernameEditInput.SetValue(m.profile.Username)
		slog.Debug("Профиль обновлен", "username", m.profile.Username)
		return m, nil, true

	case ProfileFetchError:
		if msg.seq != m.profileFetchSeq || m.state != settingsScreen {
			return m, nil, true
		}
		if errors.Is(msg.err, api.ErrAuthorization) {
			return sessionRejected(m)
		}
		// Мягкая ошибка: гард уже допустил экран, показанный профиль не трогаем
		slog.Warn("Не удалось получить профиль", "error", msg.err)
		return m, nil, true

	case uploadSuccessMsg:
		m.uploadInFlight = false
		// Полная замена ссылки, не слияние
		m.profile.ProfilePic = msg.resp.ProfilePic
		m.picturePathInput.SetValue("")
		slog.Info("Изображение профиля обновлено", "profile_pic", msg.resp.ProfilePic)
		updated, statusCmd := m.setStatusMessage(msg.resp.Message)
		return updated, statusCmd, true

	case UploadError:
		m.uploadInFlight = false
		// Поле пути сбрасывается в обоих исходах, чтобы тот же файл
		// можно было выбрать и отправить повторно
		m.picturePathInput.SetValue("")
		if errors.Is(msg.err, api.ErrAuthorization) {
			return sessionRejected(m)
		}
		slog.Warn("Ошибка загрузки изображения", "error", msg.err)
		updated, statusCmd := m.setStatusMessage("Ошибка загрузки: " + msg.err.Error())
		return updated, statusCmd, true

	default:
		return m, nil, false
	}
}

// sessionRejected обрабатывает отказ сервера по токену: сессия
// очищается и клиент возвращается в неаутентифицированное состояние.
// Дешевая проверка присутствия в гарде сходится с авторитетным
// ответом сервера именно здесь.
func sessionRejected(m *model) (tea.Model, tea.Cmd, bool) {
	slog.Warn("Сервер отклонил токен, сессия очищена")
	if err := m.session.Clear(); err != nil {
		slog.Warn("Ошибка очистки сессии", "error", err)
	}
	m.apiClient.SetAuthToken("")
	newM, navCmd := m.showLoginScreen()
	updated, statusCmd := newM.(*model).setStatusMessage("Сессия истекла, войдите снова.")
	return updated, tea.Batch(navCmd, statusCmd), true
}
