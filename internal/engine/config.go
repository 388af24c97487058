package engine

import (
	"os"
	"time"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно генераторов (предметы, враги, арена).
	Seed int64

	// Port - адрес HTTP/WebSocket сервера.
	Port string

	// SavePath - путь к файлу сохранения.
	SavePath string

	// Интервалы тиков симуляции.
	IdleTick      time.Duration
	CombatTick    time.Duration
	AutoSkillTick time.Duration

	// AutosaveInterval - период фонового сохранения.
	AutosaveInterval time.Duration
}

// NewConfig создает конфиг по умолчанию (случайный сид).
func NewConfig() Config {
	port := os.Getenv("LOM_PORT")
	if port == "" {
		port = "8080"
	}

	savePath := os.Getenv("LOM_SAVE_PATH")
	if savePath == "" {
		savePath = "lom.save"
	}

	return Config{
		Seed:             time.Now().UnixNano(),
		Port:             port,
		SavePath:         savePath,
		IdleTick:         time.Second,
		CombatTick:       time.Second,
		AutoSkillTick:    400 * time.Millisecond,
		AutosaveInterval: time.Minute,
	}
}
