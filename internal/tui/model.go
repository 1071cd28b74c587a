package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/bestblogs/client/internal/api"
	"github.com/bestblogs/client/internal/session"
	"github.com/bestblogs/client/models"
)

// Состояния (экраны) приложения.
type screenState int

const (
	loginScreen    screenState = iota // Экран входа
	homeScreen                        // Главный экран с лентой записей (защищен)
	settingsScreen                    // Экран настроек профиля (защищен)
)

// String возвращает читаемое имя экрана для логов и отладки.
func (s screenState) String() string {
	switch s {
	case loginScreen:
		return "loginScreen"
	case homeScreen:
		return "homeScreen"
	case settingsScreen:
		return "settingsScreen"
	default:
		return "unknown"
	}
}

// Константы для TUI.
const (
	keyEnter    = "enter" // Клавиша Enter
	keyQuit     = "q"     // Клавиша выхода
	keyEsc      = "esc"   // Клавиша Escape
	keySettings = "s"     // Переход к настройкам профиля
	keyLogout   = "l"     // Выход из учетной записи
	keyTab      = "tab"
	keyShiftTab = "shift+tab"

	passwordInputOffset = 4 // Отступ для полей ввода
)

// Индексы полей на экране настроек.
const (
	settingsFieldPicturePath = iota // Путь к новому изображению профиля
	settingsFieldUsername           // Поле имени (отрисовывается, но не отправляется)
	settingsFieldPassword           // Поле пароля (отрисовывается, но не отправляется)
	numSettingsFields
)

// postItem представляет запись блога в ленте на главном экране.
// Реализует интерфейс list.Item.
type postItem struct {
	title  string
	author string
}

func (i postItem) Title() string       { return i.title }
func (i postItem) Description() string { return "Автор: " + i.author }
func (i postItem) FilterValue() string { return i.title }

// model представляет состояние TUI приложения.
type model struct {
	state     screenState
	debugMode bool
	serverURL string

	apiClient api.Client     // Клиент для взаимодействия с API
	session   *session.Store // Хранилище токена сессии

	profile         models.Profile // Локальная копия профиля (кэш, владелец — сервер)
	profileFetchSeq int            // Номер текущего запроса профиля, для отбрасывания поздних ответов
	loginInFlight   bool           // Вход уже выполняется, повторная отправка подавляется
	uploadInFlight  bool           // Загрузка изображения уже выполняется

	loginUsernameInput textinput.Model // Поле имени пользователя на экране входа
	loginPasswordInput textinput.Model // Поле пароля на экране входа
	loginFocusedField  int             // Индекс активного поля на экране входа

	picturePathInput     textinput.Model // Поле пути к новому изображению профиля
	usernameEditInput    textinput.Model // Поле имени в настройках (не отправляется)
	passwordEditInput    textinput.Model // Поле пароля в настройках (не отправляется)
	settingsFocusedField int             // Индекс активного поля на экране настроек

	postList list.Model // Лента записей на главном экране

	savingStatus string // Статусное сообщение (отображается внизу)
	err          error  // Последняя ошибка для отображения

	helpTextMap map[screenState]string // Строки помощи по экранам
	docStyle    lipgloss.Style         // Общий стиль для обрамления View
}

// Сообщение для очистки статуса.
type clearStatusMsg struct{}
