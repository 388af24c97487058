package api

import (
	"encoding/json"
)

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand - корневой объект всех сообщений от клиента.
type ClientCommand struct {
	// Action - название действия (RUB_LAMP, ATTACK, CLAIM_AFK и т.д.).
	Action string `json:"action"`

	// Payload - JSON-объект с данными действия. Структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse - корневой объект, который сервер отправляет клиенту.
// Полный снимок состояния партии плюс события, накопленные с прошлой
// рассылки.
type ServerResponse struct {
	// Type тип сообщения: "INIT" при первом ответе, дальше "UPDATE".
	Type string `json:"type"`

	// State - полный снимок партии.
	State *StateView `json:"state,omitempty"`

	// Events - события симуляции с прошлой рассылки (левел-апы, лут).
	Events []EventView `json:"events,omitempty"`

	// Msg - текст отказа для команды, которую не удалось выполнить.
	Msg string `json:"msg,omitempty"`

	// Timestamp - серверное время рассылки, Unix milliseconds.
	Timestamp int64 `json:"timestamp"`
}

// EventView - событие симуляции для клиента.
type EventView struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// StateView - снимок всего видимого клиенту состояния партии.
// Большие числа сериализуются строками: JSON number теряет точность
// задолго до величин поздней игры.
type StateView struct {
	Resources ResourcesView       `json:"resources"`
	Lamp      LampView            `json:"lamp"`
	Player    PlayerView          `json:"player"`
	Combat    CombatView          `json:"combat"`
	Loot      LootView            `json:"loot"`
	Equipment map[string]ItemView `json:"equipment"`
	Skills    []SkillView         `json:"skills"`
	Class     ClassView           `json:"class"`
	Pets      []PetView           `json:"pets"`
	Evolution EvolutionView       `json:"evolution"`
	Dungeons  []DungeonView       `json:"dungeons"`
	Arena     ArenaView           `json:"arena"`
	Quests    []QuestView         `json:"quests"`
	Mail      []MailView          `json:"mail"`
	AFK       AFKView             `json:"afk"`
	WorldMap  WorldMapView        `json:"worldMap"`
}

// ResourcesView - балансы валют.
type ResourcesView struct {
	Lamps    string `json:"lamps"`
	Gold     string `json:"gold"`
	Diamonds string `json:"diamonds"`
}

// LampView - состояние лампы.
type LampView struct {
	Level     int    `json:"level"`
	Progress  string `json:"progress"`
	ToNext    string `json:"toNext"`
	AutoMode  bool   `json:"autoMode"`
	AutoBatch int    `json:"autoBatch"`
}

// PlayerView - уровень героя и итоговые характеристики.
type PlayerView struct {
	Level     int               `json:"level"`
	Exp       string            `json:"exp"`
	ExpToNext string            `json:"expToNext"`
	Stats     map[string]string `json:"stats"`
	CurrentHP string            `json:"currentHp"`
}

// CombatView - текущая стадия и противник.
type CombatView struct {
	Stage     int        `json:"stage"`
	AutoFight bool       `json:"autoFight"`
	Enemy     *EnemyView `json:"enemy,omitempty"`
}

// EnemyView - противник на стадии.
type EnemyView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Level  int    `json:"level"`
	HP     string `json:"hp"`
	MaxHP  string `json:"maxHp"`
	Attack string `json:"attack"`
	Gold   string `json:"gold"`
}

// ItemView - предмет экипировки.
type ItemView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slot      string `json:"slot"`
	Rarity    string `json:"rarity"`
	StatType  string `json:"statType"`
	StatValue string `json:"statValue"`
	SellPrice string `json:"sellPrice"`
}

// LootView - нераспределенный лут: предмет на решении и очередь за ним.
type LootView struct {
	Pending *ItemView  `json:"pending,omitempty"`
	Queue   []ItemView `json:"queue,omitempty"`
}

// SkillView - навык с остатком кулдауна.
type SkillView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Unlocked    bool   `json:"unlocked"`
	Ready       bool   `json:"ready"`
	CooldownMs  int64  `json:"cooldownMs"`
	RemainingMs int64  `json:"remainingMs"`
	BuffActive  bool   `json:"buffActive"`
}

// ClassView - выбранный класс и его прогресс.
type ClassView struct {
	SelectedID   string `json:"selectedId,omitempty"`
	Name         string `json:"name,omitempty"`
	Level        int    `json:"level"`
	Exp          string `json:"exp"`
	ExpToNext    string `json:"expToNext"`
	SpecialReady bool   `json:"specialReady"`
}

// PetView - питомец.
type PetView struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Unlocked   bool    `json:"unlocked"`
	Level      int     `json:"level"`
	BonusType  string  `json:"bonusType"`
	BonusValue float64 `json:"bonusValue"`
	UnlockCost string  `json:"unlockCost"`
}

// EvolutionView - текущая стадия эволюции.
type EvolutionView struct {
	StageID   string   `json:"stageId"`
	StageName string   `json:"stageName"`
	IsMax     bool     `json:"isMax"`
	NextID    string   `json:"nextId,omitempty"`
	CanEvolve bool     `json:"canEvolve"`
	History   []string `json:"history"`
}

// DungeonView - подземелье с кулдауном и текущим заходом.
type DungeonView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Waves          int    `json:"waves"`
	CooldownMs     int64  `json:"cooldownMs"`
	RemainingMs    int64  `json:"remainingMs"`
	Active         bool   `json:"active"`
	CurrentWave    int    `json:"currentWave"`
	MaxWaveReached int    `json:"maxWaveReached"`
	Claimable      bool   `json:"claimable"`
}

// ArenaView - арена.
type ArenaView struct {
	Rank         int                 `json:"rank"`
	Points       int                 `json:"points"`
	DailyClaimed bool                `json:"dailyClaimed"`
	Opponents    []ArenaOpponentView `json:"opponents"`
}

// ArenaOpponentView - противник арены.
type ArenaOpponentView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Power    int    `json:"power"`
	Rank     int    `json:"rank"`
	Gold     string `json:"gold"`
	Diamonds string `json:"diamonds"`
}

// QuestView - задание.
type QuestView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
	Goal        int    `json:"goal"`
	Claimed     bool   `json:"claimed"`
	Claimable   bool   `json:"claimable"`
}

// MailView - письмо.
type MailView struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	Claimed bool   `json:"claimed"`
}

// AFKView - офлайн-накопление.
type AFKView struct {
	PendingMinutes int    `json:"pendingMinutes"`
	PendingGold    string `json:"pendingGold"`
	PendingLamps   string `json:"pendingLamps"`
	MaxMinutes     int    `json:"maxMinutes"`
}

// WorldMapView - карта мира.
type WorldMapView struct {
	ActiveID string     `json:"activeId"`
	Areas    []AreaView `json:"areas"`
}

// AreaView - зона карты.
type AreaView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	StartStage int    `json:"startStage"`
	EndStage   int    `json:"endStage"`
	Unlocked   bool   `json:"unlocked"`
}

// --- Payloads ---

// BatchPayload - пакетный призыв (RUB_LAMP_BATCH).
type BatchPayload struct {
	Count int `json:"count"`
}

// ItemPayload - действия над предметом (SELL_ITEM, EQUIP_ITEM).
type ItemPayload struct {
	ItemID string `json:"itemId"`
}

// LampAutoPayload - настройка авто-режима лампы (SET_LAMP_AUTO).
type LampAutoPayload struct {
	Mode  string `json:"mode"`
	Batch int    `json:"batch,omitempty"`
}

// ResourcePayload - админские правки баланса (ADD_RESOURCE, SPEND_RESOURCE).
type ResourcePayload struct {
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
}

// SkillPayload - каст навыка (CAST_SKILL).
type SkillPayload struct {
	SkillID string `json:"skillId"`
}

// StagePayload - прямой выбор стадии (SET_STAGE).
type StagePayload struct {
	Stage int `json:"stage"`
}

// AreaPayload - выбор зоны карты (SET_AREA).
type AreaPayload struct {
	AreaID string `json:"areaId"`
}

// DungeonPayload - действия над подземельем (ENTER_DUNGEON, FAIL_DUNGEON,
// CLAIM_DUNGEON, SKIP_COOLDOWN).
type DungeonPayload struct {
	DungeonID string `json:"dungeonId"`
}

// WavePayload - отметка пройденной волны (COMPLETE_WAVE).
type WavePayload struct {
	DungeonID string `json:"dungeonId"`
	Wave      int    `json:"wave"`
}

// ClassPayload - выбор класса (SELECT_CLASS).
type ClassPayload struct {
	ClassID string `json:"classId"`
}

// PetPayload - действия над питомцем (UNLOCK_PET, LEVEL_UP_PET).
type PetPayload struct {
	PetID string `json:"petId"`
}

// OpponentPayload - бой на арене (FIGHT_ARENA).
type OpponentPayload struct {
	OpponentID string `json:"opponentId"`
}

// QuestPayload - получение награды задания (CLAIM_QUEST).
type QuestPayload struct {
	QuestID string `json:"questId"`
}

// MailPayload - получение награды письма (CLAIM_MAIL).
type MailPayload struct {
	MailID string `json:"mailId"`
}

// ExtendPayload - расширение офлайн-потолка (EXTEND_AFK).
type ExtendPayload struct {
	Minutes int `json:"minutes"`
}
