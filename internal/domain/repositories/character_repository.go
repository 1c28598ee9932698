package repositories

import (
	"context"

	"github.com/rafabene/character-api/internal/domain/entities"
)

// CharacterRepository define a interface para persistência de personagens.
// Buscas sem resultado retornam (nil, nil); ausência nunca é erro.
type CharacterRepository interface {
	Create(ctx context.Context, input entities.NewCharacter) (*entities.Character, error)
	FindByID(ctx context.Context, id int64) (*entities.Character, error)
	FindByName(ctx context.Context, name string) (*entities.Character, error)
	FindAll(ctx context.Context) ([]*entities.Character, error)
	Update(ctx context.Context, id int64, patch entities.CharacterPatch) (*entities.Character, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
