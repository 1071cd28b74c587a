package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/bestblogs/client/models"
)

// ErrAuthorization сигнализирует об отказе сервера по токену (401)
// на аутентифицированном запросе.
var ErrAuthorization = errors.New("ошибка авторизации")

// ErrInvalidCredentials сигнализирует об отклоненном входе.
// Сервер (и клиент) намеренно не различают "неверное имя" и "неверный
// пароль", чтобы не раскрывать существование учетной записи.
var ErrInvalidCredentials = errors.New("неверное имя пользователя или пароль")

// ErrServerUnavailable сигнализирует о сетевой ошибке или некорректном
// ответе сервера (ответ не получен либо не разобран).
var ErrServerUnavailable = errors.New("сервер недоступен")

// ErrUploadFailed — общая ошибка загрузки изображения, когда сервер
// не прислал собственного сообщения об ошибке.
var ErrUploadFailed = errors.New("не удалось загрузить изображение")

// Client определяет интерфейс для взаимодействия с API сервера BestBlogs.
type Client interface {
	// Login аутентифицирует пользователя и возвращает токен сессии.
	// Учетные данные передаются уже закодированными (см. пакет creds).
	Login(ctx context.Context, encUsername, encPassword string) (string, error)
	// GetProfile получает профиль текущего пользователя.
	GetProfile(ctx context.Context) (*models.ProfileResponse, error)
	// UploadProfilePicture загружает новое изображение профиля.
	UploadProfilePicture(ctx context.Context, file io.Reader, filename, username string) (*models.UploadResponse, error)
	// SetAuthToken устанавливает токен для аутентифицированных запросов.
	SetAuthToken(token string)
}

// httpClient реализует интерфейс Client для взаимодействия с сервером по HTTP.
type httpClient struct {
	baseURL    string       // Базовый URL сервера, например "http://localhost:5000"
	httpClient *http.Client // HTTP клиент для выполнения запросов
	authToken  string       // Токен сессии для аутентифицированных запросов
}

// NewHTTPClient создает новый экземпляр API клиента.
func NewHTTPClient(baseURL string) Client {
	return &httpClient{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// Login отправляет запрос на вход и возвращает полученный токен.
// Сохранение токена (в хранилище сессии и в клиенте через SetAuthToken) —
// забота вызывающей стороны: сам Login свободен от побочных эффектов,
// поэтому перекрывающиеся вызовы безопасны.
func (c *httpClient) Login(ctx context.Context, encUsername, encPassword string) (string, error) {
	loginURL, err := url.JoinPath(c.baseURL, "/auth/login")
	if err != nil {
		return "", fmt.Errorf("ошибка формирования URL для входа: %w", err)
	}

	requestBody := models.LoginRequest{
		Username: encUsername,
		Password: encPassword,
	}
	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("ошибка кодирования данных для входа: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, loginURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("ошибка создания запроса на вход: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ошибка выполнения запроса на вход: %w: %w", ErrServerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("%w: статус %d", ErrServerUnavailable, resp.StatusCode)
	}

	var loginResponse models.LoginResponse
	if err = json.NewDecoder(resp.Body).Decode(&loginResponse); err != nil {
		return "", fmt.Errorf("ошибка декодирования ответа на вход: %w: %w", ErrServerUnavailable, err)
	}

	if loginResponse.Token == "" {
		return "", fmt.Errorf("%w: сервер вернул пустой токен", ErrServerUnavailable)
	}

	return loginResponse.Token, nil
}

// helper function to add auth header.
func (c *httpClient) setAuthHeader(req *http.Request) error {
	if c.authToken == "" {
		return errors.New("токен аутентификации отсутствует")
	}
	req.Header.Set("Authorization", "Bearer "+c.authToken)
	return nil
}

// GetProfile получает профиль пользователя с сервера.
// Сервер может вернуть не все поля: отсутствующие остаются nil,
// решение о слиянии с локальной копией принимает вызывающий.
func (c *httpClient) GetProfile(ctx context.Context) (*models.ProfileResponse, error) {
	profileURL, err := url.JoinPath(c.baseURL, "/api/profile")
	if err != nil {
		return nil, fmt.Errorf("ошибка формирования URL для профиля: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, profileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса на получение профиля: %w", err)
	}
	if err = c.setAuthHeader(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса на получение профиля: %w: %w", ErrServerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, ErrAuthorization
		}
		return nil, fmt.Errorf("ошибка получения профиля: статус %d", resp.StatusCode)
	}

	var profile models.ProfileResponse
	if err = json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("ошибка декодирования профиля: %w", err)
	}

	return &profile, nil
}

// UploadProfilePicture отправляет изображение профиля как multipart-форму
// с полями profile_pic (файл) и username. Одна попытка на действие
// пользователя: без повторов, докачки и чанков.
func (c *httpClient) UploadProfilePicture(
	ctx context.Context,
	file io.Reader,
	filename, username string,
) (*models.UploadResponse, error) {
	uploadURL, err := url.JoinPath(c.baseURL, "/api/upload")
	if err != nil {
		return nil, fmt.Errorf("ошибка формирования URL для загрузки: %w", err)
	}

	// Собираем multipart тело в буфер: изображения профиля небольшие,
	// стримить через pipe нет смысла
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("profile_pic", filename)
	if err != nil {
		return nil, fmt.Errorf("ошибка формирования multipart формы: %w", err)
	}
	if _, err = io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("ошибка чтения файла изображения: %w", err)
	}
	if err = writer.WriteField("username", username); err != nil {
		return nil, fmt.Errorf("ошибка записи поля username: %w", err)
	}
	if err = writer.Close(); err != nil {
		return nil, fmt.Errorf("ошибка завершения multipart формы: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, body)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса на загрузку: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err = c.setAuthHeader(req); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса на загрузку: %w: %w", ErrServerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrAuthorization
	}

	// Тело разбираем и при ошибочном статусе: сервер кладет туда
	// сообщение, которое нужно показать пользователю дословно
	var uploadResponse models.UploadResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&uploadResponse)

	if resp.StatusCode != http.StatusOK {
		if decodeErr == nil && uploadResponse.Error != "" {
			return nil, errors.New(uploadResponse.Error)
		}
		return nil, fmt.Errorf("%w: статус %d", ErrUploadFailed, resp.StatusCode)
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("ошибка декодирования ответа на загрузку: %w", decodeErr)
	}
	if uploadResponse.Error != "" {
		return nil, errors.New(uploadResponse.Error)
	}
	if uploadResponse.ProfilePic == "" {
		return nil, fmt.Errorf("%w: сервер не вернул ссылку на изображение", ErrUploadFailed)
	}

	return &uploadResponse, nil
}

// SetAuthToken устанавливает токен аутентификации для клиента.
func (c *httpClient) SetAuthToken(token string) {
	c.authToken = token
}
