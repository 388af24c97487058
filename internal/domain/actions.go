package domain

import "strings"

// ActionType - внутренний числовой идентификатор команды игрока.
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit

	// Лампа и предметы
	ActionRubLamp
	ActionRubLampBatch
	ActionSellItem
	ActionEquipItem
	ActionSetLampAuto
	ActionToggleLampAuto

	// Экономика
	ActionAddResource
	ActionSpendResource

	// Бой
	ActionAttack
	ActionCastSkill
	ActionCastClassSkill
	ActionToggleAutoFight
	ActionSetStage
	ActionSetArea

	// Подземелья
	ActionEnterDungeon
	ActionCompleteWave
	ActionFailDungeon
	ActionClaimDungeon
	ActionSkipCooldown

	// Прогрессия
	ActionSelectClass
	ActionEvolve
	ActionUnlockPet
	ActionLevelUpPet

	// Арена
	ActionFightArena
	ActionRefreshArena
	ActionClaimArenaDaily

	// Награды
	ActionClaimQuest
	ActionClaimQuestsAll
	ActionClaimMail
	ActionClaimMailAll
	ActionClaimAFK
	ActionExtendAFK
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":              ActionInit,
	"RUB_LAMP":          ActionRubLamp,
	"RUB_LAMP_BATCH":    ActionRubLampBatch,
	"SELL_ITEM":         ActionSellItem,
	"EQUIP_ITEM":        ActionEquipItem,
	"SET_LAMP_AUTO":     ActionSetLampAuto,
	"TOGGLE_LAMP_AUTO":  ActionToggleLampAuto,
	"ADD_RESOURCE":      ActionAddResource,
	"SPEND_RESOURCE":    ActionSpendResource,
	"ATTACK":            ActionAttack,
	"CAST_SKILL":        ActionCastSkill,
	"CAST_CLASS_SKILL":  ActionCastClassSkill,
	"TOGGLE_AUTO_FIGHT": ActionToggleAutoFight,
	"SET_STAGE":         ActionSetStage,
	"SET_AREA":          ActionSetArea,
	"ENTER_DUNGEON":     ActionEnterDungeon,
	"COMPLETE_WAVE":     ActionCompleteWave,
	"FAIL_DUNGEON":      ActionFailDungeon,
	"CLAIM_DUNGEON":     ActionClaimDungeon,
	"SKIP_COOLDOWN":     ActionSkipCooldown,
	"SELECT_CLASS":      ActionSelectClass,
	"EVOLVE":            ActionEvolve,
	"UNLOCK_PET":        ActionUnlockPet,
	"LEVEL_UP_PET":      ActionLevelUpPet,
	"FIGHT_ARENA":       ActionFightArena,
	"REFRESH_ARENA":     ActionRefreshArena,
	"CLAIM_ARENA_DAILY": ActionClaimArenaDaily,
	"CLAIM_QUEST":       ActionClaimQuest,
	"CLAIM_QUESTS_ALL":  ActionClaimQuestsAll,
	"CLAIM_MAIL":        ActionClaimMail,
	"CLAIM_MAIL_ALL":    ActionClaimMailAll,
	"CLAIM_AFK":         ActionClaimAFK,
	"EXTEND_AFK":        ActionExtendAFK,
}

// Маппинг для логов Domain -> String
var actionCmdToString = func() map[ActionType]string {
	m := make(map[ActionType]string, len(actionStringToCmd))
	for s, a := range actionStringToCmd {
		m[a] = s
	}
	return m
}()

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Нечувствительность к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf и логов)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
