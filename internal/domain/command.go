package domain

import "encoding/json"

// InternalCommand - оптимизированная команда для движка.
// Использует ActionType вместо string.
type InternalCommand struct {
	Action  ActionType      // Число! Быстро и безопасно.
	Payload json.RawMessage // Сырые данные (парсятся хендлером)

	// Reply, если не nil, получает результат выполнения.
	// Используется транспортом для ответов на запросы-команды.
	Reply chan<- CommandResult
}

// CommandResult - итог выполнения команды для вызывающего.
type CommandResult struct {
	OK    bool            `json:"ok"`
	Msg   string          `json:"msg,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

// Event - событие симуляции для слоя представления.
// Леджер и подсистемы возвращают события как часть результата мутации;
// доставка не влияет на корректность самой мутации.
type Event struct {
	Kind    EventKind `json:"kind"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
}

// EventKind - тип события.
type EventKind string

const (
	EventLevelUp      EventKind = "LEVEL_UP"
	EventLampLevelUp  EventKind = "LAMP_LEVEL_UP"
	EventClassLevelUp EventKind = "CLASS_LEVEL_UP"
	EventEvolved      EventKind = "EVOLVED"
	EventLoot         EventKind = "LOOT"
	EventDungeon      EventKind = "DUNGEON"
	EventAFK          EventKind = "AFK"
	EventAreaUnlocked EventKind = "AREA_UNLOCKED"
)
