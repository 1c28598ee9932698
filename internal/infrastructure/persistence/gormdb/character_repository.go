package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/character-api/internal/domain/entities"
	"github.com/rafabene/character-api/internal/domain/repositories"
)

// CharacterRepository implementa repositories.CharacterRepository
type CharacterRepository struct {
	db *gorm.DB
}

// NewCharacterRepository cria um novo CharacterRepository
func NewCharacterRepository(db *gorm.DB) repositories.CharacterRepository {
	return &CharacterRepository{db: db}
}

func (r *CharacterRepository) Create(ctx context.Context, input entities.NewCharacter) (*entities.Character, error) {
	model := &CharacterModel{
		Name:            input.Name,
		Description:     input.Description,
		AvatarURL:       input.AvatarURL,
		SystemPrompt:    input.SystemPrompt,
		GreetingMessage: input.GreetingMessage,
		Temperature:     input.TemperatureOrDefault(),
	}

	db := dbFrom(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return nil, err
	}

	// Reler para devolver a representação canônica do banco
	return r.FindByID(ctx, model.ID)
}

func (r *CharacterRepository) FindByID(ctx context.Context, id int64) (*entities.Character, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *CharacterRepository) FindByName(ctx context.Context, name string) (*entities.Character, error) {
	return r.first(ctx, "name = ?", name)
}

func (r *CharacterRepository) FindAll(ctx context.Context) ([]*entities.Character, error) {
	var models []*CharacterModel

	db := dbFrom(ctx, r.db)
	if err := db.Order("created_at DESC").Order("id DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	return toEntities(models), nil
}

// Update altera apenas as colunas presentes no patch. Os valores vão
// sempre como parâmetros; o chamador garante que o patch não é vazio.
func (r *CharacterRepository) Update(ctx context.Context, id int64, patch entities.CharacterPatch) (*entities.Character, error) {
	db := dbFrom(ctx, r.db)
	err := db.Model(&CharacterModel{}).
		Where("id = ?", id).
		Updates(Assignments(patch)).
		Error
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

func (r *CharacterRepository) Delete(ctx context.Context, id int64) (bool, error) {
	db := dbFrom(ctx, r.db)
	result := db.Where("id = ?", id).Delete(&CharacterModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// first busca o primeiro registro por id; nenhum resultado retorna (nil, nil)
func (r *CharacterRepository) first(ctx context.Context, query string, arg any) (*entities.Character, error) {
	var model CharacterModel

	db := dbFrom(ctx, r.db)
	if err := db.Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toEntity(&model), nil
}

// Assignments monta os pares coluna/valor do UPDATE.
// Presença decide a inclusão: um ponteiro para "" entra, nil não.
func Assignments(patch entities.CharacterPatch) map[string]any {
	set := make(map[string]any, 6)

	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.AvatarURL != nil {
		set["avatar_url"] = *patch.AvatarURL
	}
	if patch.SystemPrompt != nil {
		set["system_prompt"] = *patch.SystemPrompt
	}
	if patch.GreetingMessage != nil {
		set["greeting_message"] = *patch.GreetingMessage
	}
	if patch.Temperature != nil {
		set["temperature"] = *patch.Temperature
	}

	return set
}

// Conversores
func toEntity(model *CharacterModel) *entities.Character {
	return &entities.Character{
		ID:              model.ID,
		Name:            model.Name,
		Description:     model.Description,
		AvatarURL:       model.AvatarURL,
		SystemPrompt:    model.SystemPrompt,
		GreetingMessage: model.GreetingMessage,
		Temperature:     model.Temperature,
		CreatedAt:       model.CreatedAt.UTC(),
	}
}

func toEntities(models []*CharacterModel) []*entities.Character {
	characters := make([]*entities.Character, 0, len(models))
	for _, model := range models {
		characters = append(characters, toEntity(model))
	}
	return characters
}
