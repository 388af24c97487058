package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p BatchPayload) Validate() error {
	if p.Count != 1 && p.Count != 10 {
		return errors.New("batch count must be 1 or 10")
	}
	return nil
}

func (p ItemPayload) Validate() error {
	if p.ItemID == "" {
		return errors.New("itemId is required")
	}
	return nil
}

func (p LampAutoPayload) Validate() error {
	if p.Mode != "manual" && p.Mode != "auto" {
		return errors.New("mode must be manual or auto")
	}
	if p.Batch != 0 && p.Batch != 1 && p.Batch != 10 {
		return errors.New("batch must be 1 or 10")
	}
	return nil
}

func (p ResourcePayload) Validate() error {
	if p.Currency == "" {
		return errors.New("currency is required")
	}
	if p.Amount == "" {
		return errors.New("amount is required")
	}
	return nil
}

func (p SkillPayload) Validate() error {
	if p.SkillID == "" {
		return errors.New("skillId is required")
	}
	return nil
}

func (p StagePayload) Validate() error {
	if p.Stage < 1 {
		return errors.New("stage must be positive")
	}
	return nil
}

func (p AreaPayload) Validate() error {
	if p.AreaID == "" {
		return errors.New("areaId is required")
	}
	return nil
}

func (p DungeonPayload) Validate() error {
	if p.DungeonID == "" {
		return errors.New("dungeonId is required")
	}
	return nil
}

func (p WavePayload) Validate() error {
	if p.DungeonID == "" {
		return errors.New("dungeonId is required")
	}
	if p.Wave < 1 {
		return errors.New("wave must be positive")
	}
	return nil
}

func (p ClassPayload) Validate() error {
	if p.ClassID == "" {
		return errors.New("classId is required")
	}
	return nil
}

func (p PetPayload) Validate() error {
	if p.PetID == "" {
		return errors.New("petId is required")
	}
	return nil
}

func (p OpponentPayload) Validate() error {
	if p.OpponentID == "" {
		return errors.New("opponentId is required")
	}
	return nil
}

func (p QuestPayload) Validate() error {
	if p.QuestID == "" {
		return errors.New("questId is required")
	}
	return nil
}

func (p MailPayload) Validate() error {
	if p.MailID == "" {
		return errors.New("mailId is required")
	}
	return nil
}

func (p ExtendPayload) Validate() error {
	if p.Minutes <= 0 {
		return errors.New("minutes must be positive")
	}
	return nil
}
