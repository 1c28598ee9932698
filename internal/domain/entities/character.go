package entities

import (
	"errors"
	"strings"
	"time"
)

// Limites de temperatura aceitos para um personagem
const (
	DefaultTemperature = 0.7
	MinTemperature     = 0.1
	MaxTemperature     = 1.0
)

var (
	ErrNameRequired         = errors.New("name is required and must be a non-empty string")
	ErrSystemPromptRequired = errors.New("system_prompt is required and must be a non-empty string")
	ErrTemperatureRange     = errors.New("temperature must be between 0.1 and 1.0")
	ErrEmptyPatch           = errors.New("at least one field must be provided")
)

// Character representa um personagem persistido
// ID e CreatedAt são sempre atribuídos pelo banco
type Character struct {
	ID              int64
	Name            string
	Description     *string
	AvatarURL       *string
	SystemPrompt    string
	GreetingMessage *string
	Temperature     float64
	CreatedAt       time.Time
}

// NewCharacter contém os campos aceitos na criação de um personagem
type NewCharacter struct {
	Name            string
	Description     *string
	AvatarURL       *string
	SystemPrompt    string
	GreetingMessage *string
	Temperature     *float64 // nil usa DefaultTemperature
}

// Validate valida regras de negócio da criação
func (n NewCharacter) Validate() error {
	if strings.TrimSpace(n.Name) == "" {
		return ErrNameRequired
	}

	if strings.TrimSpace(n.SystemPrompt) == "" {
		return ErrSystemPromptRequired
	}

	if n.Temperature != nil && !ValidTemperature(*n.Temperature) {
		return ErrTemperatureRange
	}

	return nil
}

// TemperatureOrDefault retorna a temperatura informada ou o valor padrão
func (n NewCharacter) TemperatureOrDefault() float64 {
	if n.Temperature == nil {
		return DefaultTemperature
	}
	return *n.Temperature
}

// CharacterPatch representa uma atualização parcial.
// Ponteiro nil significa campo ausente; ponteiro para "" é um valor válido.
type CharacterPatch struct {
	Name            *string
	Description     *string
	AvatarURL       *string
	SystemPrompt    *string
	GreetingMessage *string
	Temperature     *float64
}

// IsEmpty verifica se nenhum campo foi informado
func (p CharacterPatch) IsEmpty() bool {
	return p.Name == nil &&
		p.Description == nil &&
		p.AvatarURL == nil &&
		p.SystemPrompt == nil &&
		p.GreetingMessage == nil &&
		p.Temperature == nil
}

// Validate valida os campos presentes no patch
func (p CharacterPatch) Validate() error {
	if p.IsEmpty() {
		return ErrEmptyPatch
	}

	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return ErrNameRequired
	}

	if p.SystemPrompt != nil && strings.TrimSpace(*p.SystemPrompt) == "" {
		return ErrSystemPromptRequired
	}

	if p.Temperature != nil && !ValidTemperature(*p.Temperature) {
		return ErrTemperatureRange
	}

	return nil
}

// Renames verifica se o patch troca o nome atual do personagem
func (p CharacterPatch) Renames(current *Character) bool {
	return p.Name != nil && *p.Name != current.Name
}

// ValidTemperature verifica se t está em [MinTemperature, MaxTemperature]
func ValidTemperature(t float64) bool {
	return t >= MinTemperature && t <= MaxTemperature
}
