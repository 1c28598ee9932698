package gormdb

import "time"

// CharacterModel é o model GORM para personagens.
// name não tem índice único; a unicidade é verificada no service.
type CharacterModel struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	Name            string    `gorm:"type:text;not null;index"`
	Description     *string   `gorm:"type:text"`
	AvatarURL       *string   `gorm:"column:avatar_url;type:text"`
	SystemPrompt    string    `gorm:"type:text;not null"`
	GreetingMessage *string   `gorm:"type:text"`
	Temperature     float64   `gorm:"not null;default:0.7"`
	CreatedAt       time.Time `gorm:"autoCreateTime;index"`
}

func (CharacterModel) TableName() string {
	return "characters"
}

// MessageModel existe apenas para que o schema inclua a tabela messages
type MessageModel struct {
	ID          int64          `gorm:"primaryKey;autoIncrement"`
	CharacterID int64          `gorm:"not null;index"`
	Character   CharacterModel `gorm:"foreignKey:CharacterID;references:ID"`
	Role        string         `gorm:"type:text;not null"`
	Content     string         `gorm:"type:text;not null"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
}

func (MessageModel) TableName() string {
	return "messages"
}
