package tui

import (
	"context"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bestblogs/client/internal/api"
	"github.com/bestblogs/client/internal/creds"
	"github.com/bestblogs/client/models"
)

// clearStatusCmd возвращает команду, которая отправит clearStatusMsg через delay.
func clearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// --- Сообщения и команды для входа --- //

type loginSuccessMsg struct {
	Token string
}

type LoginError struct {
	err error
}

func (e LoginError) Error() string {
	return e.err.Error()
}

// makeLoginCmd выполняет вход через API.
// Учетные данные кодируются здесь и в открытом виде дальше формы не уходят.
func (m *model) makeLoginCmd(username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		token, err := m.apiClient.Login(ctx, creds.Encode(username), creds.Encode(password))
		if err != nil {
			// Возвращаем исходную ошибку API клиента без добавления контекста
			return LoginError{err: err}
		}
		return loginSuccessMsg{Token: token}
	}
}

// --- Сообщения и команды для профиля --- //

// profileFetchedMsg содержит профиль, полученный с сервера.
// seq сверяется с текущим номером запроса модели: ответ, пришедший
// после ухода с экрана настроек или после более нового запроса,
// отбрасывается.
type profileFetchedMsg struct {
	seq     int
	profile *models.ProfileResponse
}

type ProfileFetchError struct {
	seq int
	err error
}

func (e ProfileFetchError) Error() string {
	return e.err.Error()
}

// fetchProfileCmd запрашивает профиль пользователя с сервера.
func fetchProfileCmd(client api.Client, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		profile, err := client.GetProfile(ctx)
		if err != nil {
			return ProfileFetchError{seq: seq, err: err}
		}
		return profileFetchedMsg{seq: seq, profile: profile}
	}
}

// --- Сообщения и команды для загрузки изображения --- //

type uploadSuccessMsg struct {
	resp *models.UploadResponse
}

type UploadError struct {
	err error
}

func (e UploadError) Error() string {
	return e.err.Error()
}

// uploadPictureCmd читает файл изображения и загружает его на сервер.
// Одна попытка на нажатие: без повторов и возобновления.
func uploadPictureCmd(client api.Client, path, username string) tea.Cmd {
	return func() tea.Msg {
		file, err := os.Open(path)
		if err != nil {
			return UploadError{err: err}
		}
		defer file.Close()

		ctx := context.Background()
		resp, err := client.UploadProfilePicture(ctx, file, filepath.Base(path), username)
		if err != nil {
			return UploadError{err: err}
		}
		return uploadSuccessMsg{resp: resp}
	}
}
