package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bestblogs/client/internal/tui"
)

const (
	logDir             = "logs"
	logFileName        = "client.log"
	logFilePermissions = 0666
	// Имя переменной окружения для пути к файлу сессии.
	sessionPathEnvVar = "BESTBLOGS_SESSION_PATH"
	// Путь к файлу сессии по умолчанию.
	defaultSessionPath = "bestblogs_session"
	// URL сервера по умолчанию — адрес бэкенда при локальной разработке.
	defaultServerURL = "http://localhost:5000"
)

// Переменные для версии и даты сборки, устанавливаются через ldflags.
var (
	version = "dev" // Значение по умолчанию, если не установлено при сборке
	//nolint:gochecknoglobals // Устанавливается через ldflags при сборке
	buildDate = "unknown" // Значение по умолчанию
	//nolint:gochecknoglobals // Устанавливается через ldflags при сборке
	commitHash = "N/A" // Значение по умолчанию
)

// setupLogging настраивает логирование в файл logs/client.log.
// TUI занимает stdout, поэтому логи идут в файл.
func setupLogging() {
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		// Используем panic, так как без логов продолжать нет смысла
		panic("Не удалось создать директорию для логов: " + err.Error())
	}
	logPath := filepath.Join(logDir, logFileName)
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermissions)
	if err != nil {
		panic("Не удалось открыть лог-файл: " + err.Error())
	}
	// Файл остается открытым на время работы приложения,
	// его закроет ОС при завершении процесса.

	logHandler := slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(logHandler))
	slog.Info("Логгер инициализирован", "path", logPath)
}

func main() {
	versionFlag := flag.Bool("version", false, "Показать версию и дату сборки")

	setupLogging()

	sessionPathFlag := flag.String("session", defaultSessionPath,
		"Путь к файлу сессии (переопределяет "+sessionPathEnvVar+")")
	debugModeFlag := flag.Bool("debug", false, "Включить режим отладки TUI")
	serverURLFlag := flag.String("server-url", defaultServerURL, "URL сервера BestBlogs")

	flag.Parse()

	if *versionFlag {
		// Используем стандартный log для вывода в консоль, так как slog настроен на файл
		log.SetOutput(os.Stdout)
		log.SetFlags(0)
		log.Println("BestBlogs Client")
		log.Printf("Version: %s", version)
		log.Printf("Build Date: %s", buildDate)
		log.Printf("Commit Hash: %s", commitHash)
		os.Exit(0)
	}

	// Определение финального пути к файлу сессии
	finalPath := defaultSessionPath
	source := "по умолчанию"

	// 1. Проверяем переменную окружения
	if envPath := os.Getenv(sessionPathEnvVar); envPath != "" {
		finalPath = envPath
		source = "переменная окружения (" + sessionPathEnvVar + ")"
	}

	// 2. Явно установленный флаг имеет приоритет
	sessionFlagPresent := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "session" {
			sessionFlagPresent = true
		}
	})
	if sessionFlagPresent {
		finalPath = *sessionPathFlag
		source = "флаг -session"
	}

	if finalPath == "" {
		slog.Error(
			"Путь к файлу сессии не может быть пустым",
			"проверьте", "флаг -session и переменную окружения "+sessionPathEnvVar,
		)
		os.Exit(1)
	}

	slog.Info("Запуск BestBlogs",
		"session_path", finalPath,
		"source", source,
		"debug_mode", *debugModeFlag,
		"server_url", *serverURLFlag,
	)

	tui.Start(*serverURLFlag, finalPath, *debugModeFlag)
}
