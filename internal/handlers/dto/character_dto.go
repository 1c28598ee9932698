package dto

import (
	"strings"
	"time"

	"github.com/rafabene/character-api/internal/domain/entities"
)

// CreateCharacterRequest representa a requisição para criar um personagem
type CreateCharacterRequest struct {
	Name            string   `json:"name" binding:"required,notblank"`
	Description     *string  `json:"description"`
	AvatarURL       *string  `json:"avatar_url"`
	SystemPrompt    string   `json:"system_prompt" binding:"required,notblank"`
	GreetingMessage *string  `json:"greeting_message"`
	Temperature     *float64 `json:"temperature" binding:"omitempty,gte=0.1,lte=1"`
}

// UpdateCharacterRequest representa a requisição de atualização parcial.
// Campos ausentes no JSON permanecem nil e não são alterados.
type UpdateCharacterRequest struct {
	Name            *string  `json:"name" binding:"omitempty,notblank"`
	Description     *string  `json:"description"`
	AvatarURL       *string  `json:"avatar_url"`
	SystemPrompt    *string  `json:"system_prompt" binding:"omitempty,notblank"`
	GreetingMessage *string  `json:"greeting_message"`
	Temperature     *float64 `json:"temperature" binding:"omitempty,gte=0.1,lte=1"`
}

// CharacterResponse representa a resposta de um personagem
type CharacterResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description"`
	AvatarURL       *string   `json:"avatar_url"`
	SystemPrompt    string    `json:"system_prompt"`
	GreetingMessage *string   `json:"greeting_message"`
	Temperature     float64   `json:"temperature"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToEntity converte a requisição removendo espaços extras dos textos
func (r CreateCharacterRequest) ToEntity() entities.NewCharacter {
	return entities.NewCharacter{
		Name:            strings.TrimSpace(r.Name),
		Description:     trimmed(r.Description),
		AvatarURL:       r.AvatarURL,
		SystemPrompt:    strings.TrimSpace(r.SystemPrompt),
		GreetingMessage: trimmed(r.GreetingMessage),
		Temperature:     r.Temperature,
	}
}

// ToPatch converte a requisição preservando a distinção ausente/vazio
func (r UpdateCharacterRequest) ToPatch() entities.CharacterPatch {
	return entities.CharacterPatch{
		Name:            trimmed(r.Name),
		Description:     trimmed(r.Description),
		AvatarURL:       r.AvatarURL,
		SystemPrompt:    trimmed(r.SystemPrompt),
		GreetingMessage: trimmed(r.GreetingMessage),
		Temperature:     r.Temperature,
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// ToCharacterResponse converte uma entidade Character para CharacterResponse
func ToCharacterResponse(character *entities.Character) CharacterResponse {
	return CharacterResponse{
		ID:              character.ID,
		Name:            character.Name,
		Description:     character.Description,
		AvatarURL:       character.AvatarURL,
		SystemPrompt:    character.SystemPrompt,
		GreetingMessage: character.GreetingMessage,
		Temperature:     character.Temperature,
		CreatedAt:       character.CreatedAt,
	}
}

// ToCharacterResponses converte uma lista de entidades Character para CharacterResponse
func ToCharacterResponses(characters []*entities.Character) []CharacterResponse {
	responses := make([]CharacterResponse, len(characters))
	for i, character := range characters {
		responses[i] = ToCharacterResponse(character)
	}
	return responses
}
