package tui

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bestblogs/client/internal/api"
	"github.com/bestblogs/client/internal/session"
)

const (
	statusMessageTimeout     = 2 * time.Second // Время отображения статусных сообщений
	helpStatusHeightOffset   = 2               // Высота строки помощи и статуса
	docStyleMarginVertical   = 1
	docStyleMarginHorizontal = 2
)

// Init - команда, выполняемая при запуске приложения.
func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

// setStatusMessage устанавливает статусное сообщение и запускает таймер для его очистки.
func (m *model) setStatusMessage(status string) (*model, tea.Cmd) {
	m.savingStatus = status
	return m, clearStatusCmd(statusMessageTimeout)
}

// getMainContentView возвращает основное содержимое для текущего состояния.
func (m *model) getMainContentView() string {
	switch m.state {
	case loginScreen:
		return m.viewLoginScreen()
	case homeScreen:
		return m.viewHomeScreen()
	case settingsScreen:
		return m.viewSettingsScreen()
	default:
		return "Неизвестное состояние!"
	}
}

// getDebugInfoString генерирует строку с отладочной информацией.
func (m *model) getDebugInfoString() string {
	var debugInfo strings.Builder
	debugInfo.WriteString(fmt.Sprintf(" [State: %s]\n", m.state.String()))
	debugInfo.WriteString(fmt.Sprintf(" [URL: %s]\n", m.serverURL))
	token, _ := m.session.Token()
	debugInfo.WriteString(fmt.Sprintf(" [Token: %s]\n", token))
	debugInfo.WriteString(fmt.Sprintf(" [Profile: %s / %s]\n", m.profile.Username, m.profile.ProfilePic))
	debugInfo.WriteString(fmt.Sprintf(" [FetchSeq: %d]\n", m.profileFetchSeq))
	return debugInfo.String()
}

// View отрисовывает пользовательский интерфейс.
func (m *model) View() string {
	mainContent := m.getMainContentView()
	help, ok := m.helpTextMap[m.state]
	if !ok {
		help = "Unknown state"
	}

	// --- Формируем подвал (статус + отладка) --- //
	var footer strings.Builder
	if m.savingStatus != "" {
		footer.WriteString("\n")
		footer.WriteString(m.savingStatus)
	}
	if m.debugMode {
		footer.WriteString("\n\n---\nОтладка:\n")
		footer.WriteString(m.getDebugInfoString())
	}

	styledContent := m.docStyle.Render(mainContent)
	return fmt.Sprintf("%s\n%s%s", styledContent, help, footer.String())
}

// Start запускает TUI приложение.
func Start(serverURL, sessionPath string, debugMode bool) {
	apiClient := api.NewHTTPClient(serverURL)
	slog.Info("API клиент инициализирован", "baseURL", serverURL)

	// Хранилище сессии: загружается при старте процесса, поэтому
	// перезапуск клиента сохраняет состояние входа
	store, err := session.Open(sessionPath)
	if err != nil {
		slog.Error("Не удалось открыть хранилище сессии", "path", sessionPath, "error", err)
		fmt.Fprintf(os.Stderr, "Ошибка открытия файла сессии %s: %v\n", sessionPath, err)
		os.Exit(1)
	}
	defer func() {
		if errClose := store.Close(); errClose != nil {
			slog.Error("Ошибка при снятии блокировки файла сессии", "error", errClose)
		}
	}()

	m := initModel(serverURL, debugMode, apiClient, store)

	// Сохраненная сессия переводит сразу на главный экран,
	// как перезагрузка страницы при действующем входе
	if token, ok := store.Token(); ok {
		apiClient.SetAuthToken(token)
		m.state = homeScreen
		slog.Info("Действующая сессия найдена, вход не требуется")
	}

	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, errRun := p.Run(); errRun != nil {
		slog.Error("Ошибка при запуске TUI", "error", errRun)
		os.Exit(1)
	}
}
