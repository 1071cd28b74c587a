// Package session хранит текущий токен сессии между запусками клиента.
//
// Токен персистится в одном файле (аналог одной записи key-value в
// хранилище браузера) и загружается при старте процесса, поэтому
// перезапуск клиента сохраняет состояние входа. Время жизни токена
// не отслеживается: протухший токен обнаруживается только по отказу
// сервера (401) при очередном аутентифицированном запросе.
package session

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gofrs/flock"
)

const sessionFilePerm = 0600

// Store — единственный общий для всех экранов изменяемый ресурс.
// В один момент времени хранится не более одного токена; очищенный
// токен восстановить нельзя.
type Store struct {
	path         string
	fileLock     *flock.Flock
	lockAcquired bool
	token        string
}

// Open создает хранилище сессии и загружает сохраненный токен, если он есть.
// Файл сессии блокируется через flock; если блокировку держит другой
// экземпляр клиента, хранилище работает только в памяти (без персистенции).
func Open(path string) (*Store, error) {
	s := &Store{
		path:     path,
		fileLock: flock.New(path + ".lock"),
	}

	var err error
	s.lockAcquired, err = s.fileLock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("ошибка блокировки файла сессии: %w", err)
	}
	if !s.lockAcquired {
		slog.Warn("Файл сессии занят другим экземпляром, работаем без сохранения", "path", path)
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		s.token = strings.TrimSpace(string(data))
		if s.token != "" {
			slog.Info("Сохраненная сессия загружена", "path", path)
		}
	case os.IsNotExist(err):
		// Первого входа еще не было
	default:
		// Нечитаемый файл сессии не фатален: считаем, что токена нет
		slog.Warn("Не удалось прочитать файл сессии", "path", path, "error", err)
	}

	return s, nil
}

// Token возвращает текущий токен и признак его наличия.
// Не блокируется и не возвращает ошибок.
func (s *Store) Token() (string, bool) {
	return s.token, s.token != ""
}

// SetToken сохраняет новый токен, перезаписывая существующий.
// Последующие чтения видят новое значение сразу, независимо от
// результата записи на диск.
func (s *Store) SetToken(token string) error {
	s.token = token
	if !s.lockAcquired {
		return nil
	}
	if err := os.WriteFile(s.path, []byte(token), sessionFilePerm); err != nil {
		return fmt.Errorf("ошибка сохранения файла сессии: %w", err)
	}
	return nil
}

// Clear удаляет токен. Идемпотентна: очистка при отсутствии токена — no-op.
func (s *Store) Clear() error {
	s.token = ""
	if !s.lockAcquired {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("ошибка удаления файла сессии: %w", err)
	}
	return nil
}

// Close снимает блокировку файла сессии.
func (s *Store) Close() error {
	if !s.lockAcquired {
		return nil
	}
	return s.fileLock.Unlock()
}
