// Package creds кодирует учетные данные перед отправкой на сервер.
//
// Кодирование обратимо и не является криптографической защитой:
// оно лишь скрывает открытый текст от случайного просмотра в логах
// и трафике. Сервер ожидает именно такой формат полей.
package creds

import "encoding/base64"

// Encode кодирует строку для передачи в JSON-поле запроса.
// Чистая функция: пустые и "уже закодированные" строки обрабатываются одинаково.
func Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Decode выполняет обратное преобразование.
func Decode(s string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
