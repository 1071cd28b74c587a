package models

// LoginRequest представляет тело запроса на вход.
// Значения полей уже закодированы (base64), см. пакет creds.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse представляет тело ответа при успешном входе.
type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// ProfileResponse представляет тело ответа GET /api/profile.
// Поля опциональны: сервер может вернуть только часть профиля.
// Указатели позволяют отличить "поле отсутствует" от пустой строки,
// чтобы слияние с локальной копией профиля было явной веткой.
type ProfileResponse struct {
	Username   *string `json:"username"`
	ProfilePic *string `json:"profile_pic"`
}

// Profile — локальная (кэшированная) копия профиля пользователя.
type Profile struct {
	Username   string
	ProfilePic string
}

// Merge обновляет профиль полями из ответа сервера.
// Отсутствующие в ответе поля оставляют текущие значения без изменений.
func (p *Profile) Merge(resp *ProfileResponse) {
	if resp == nil {
		return
	}
	if resp.Username != nil {
		p.Username = *resp.Username
	}
	if resp.ProfilePic != nil {
		p.ProfilePic = *resp.ProfilePic
	}
}

// UploadResponse представляет тело ответа POST /api/upload.
// Успешный ответ содержит новую ссылку на изображение и сообщение,
// неуспешный — текст ошибки в поле Error.
type UploadResponse struct {
	ProfilePic string `json:"profile_pic"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}
