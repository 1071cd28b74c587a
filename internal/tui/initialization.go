package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/bestblogs/client/internal/api"
	"github.com/bestblogs/client/internal/session"
)

// Константы, используемые при инициализации.
const (
	initPasswordCharLimit = 156
	initPathCharLimit     = 4096
	initUserCharLimit     = 128
	initUserWidth         = 30
	initPathWidth         = 50
)

// initLoginInputs инициализирует поля для экрана входа.
func initLoginInputs() (textinput.Model, textinput.Model) {
	userInput := textinput.New()
	userInput.Placeholder = "Имя пользователя"
	userInput.CharLimit = initUserCharLimit
	userInput.Width = initUserWidth
	userInput.Focus()

	passInput := textinput.New()
	passInput.Placeholder = "Пароль"
	passInput.CharLimit = initPasswordCharLimit
	passInput.Width = initUserWidth
	passInput.EchoMode = textinput.EchoPassword
	return userInput, passInput
}

// initPicturePathInput инициализирует поле ввода пути к изображению профиля.
func initPicturePathInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "/path/to/avatar.png"
	ti.CharLimit = initPathCharLimit
	ti.Width = initPathWidth
	return ti
}

// initProfileEditInputs инициализирует поля имени и пароля на экране настроек.
func initProfileEditInputs() (textinput.Model, textinput.Model) {
	userInput := textinput.New()
	userInput.Placeholder = "Имя пользователя"
	userInput.CharLimit = initUserCharLimit
	userInput.Width = initUserWidth

	passInput := textinput.New()
	passInput.Placeholder = "Новый пароль"
	passInput.CharLimit = initPasswordCharLimit
	passInput.Width = initUserWidth
	passInput.EchoMode = textinput.EchoPassword
	return userInput, passInput
}

// initPostList инициализирует компонент списка для ленты записей.
// Содержимое ленты статическое: отображение записей — чистая
// презентация вокруг основного контракта клиента.
func initPostList() list.Model {
	items := []list.Item{
		postItem{title: "Как я перестал бояться и полюбил дедлайны", author: "alice"},
		postItem{title: "Десять способов сварить кофе в терминале", author: "bob"},
		postItem{title: "Заметки о минимализме в блогах", author: "alice"},
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Лента BestBlogs"
	l.SetShowHelp(false) // Мы переопределяем справку
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = list.DefaultStyles().Title.Bold(true)
	return l
}

// initHelpTextMap задает строки помощи для каждого экрана.
func initHelpTextMap() map[screenState]string {
	return map[screenState]string{
		loginScreen:    "enter: войти • tab: переключение полей • ctrl+c: выход",
		homeScreen:     "s: настройки профиля • l: выйти из учетной записи • q: выход",
		settingsScreen: "enter: загрузить изображение • tab: переключение полей • esc: назад",
	}
}

// initDocStyle инициализирует основной стиль документа.
func initDocStyle() lipgloss.Style {
	return lipgloss.NewStyle().Margin(docStyleMarginVertical, docStyleMarginHorizontal)
}

// initModel создает начальное состояние модели.
func initModel(serverURL string, debugMode bool, apiClient api.Client, store *session.Store) model {
	loginUserInput, loginPassInput := initLoginInputs()
	picturePathInput := initPicturePathInput()
	usernameEditInput, passwordEditInput := initProfileEditInputs()

	return model{
		state:              loginScreen,
		debugMode:          debugMode,
		serverURL:          serverURL,
		apiClient:          apiClient,
		session:            store,
		loginUsernameInput: loginUserInput,
		loginPasswordInput: loginPassInput,
		picturePathInput:   picturePathInput,
		usernameEditInput:  usernameEditInput,
		passwordEditInput:  passwordEditInput,
		postList:           initPostList(),
		helpTextMap:        initHelpTextMap(),
		docStyle:           initDocStyle(),
	}
}
