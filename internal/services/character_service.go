package services

import (
	"context"
	errs "errors"

	"github.com/rafabene/character-api/internal/domain/entities"
	"github.com/rafabene/character-api/internal/domain/errors"
	"github.com/rafabene/character-api/internal/domain/ports"
	"github.com/rafabene/character-api/internal/domain/repositories"
)

// CharacterService contém a lógica de negócio para personagens.
// Garante unicidade de nome e existência antes de mutações; é o único
// chamador do repositório.
type CharacterService struct {
	characterRepo repositories.CharacterRepository
	uow           ports.UnitOfWork
	logger        ports.Logger
}

// NewCharacterService cria um novo CharacterService
func NewCharacterService(
	characterRepo repositories.CharacterRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *CharacterService {
	return &CharacterService{
		characterRepo: characterRepo,
		uow:           uow,
		logger:        logger.With("component", "character_service"),
	}
}

// CreateCharacter cria um novo personagem se o nome estiver livre
func (s *CharacterService) CreateCharacter(ctx context.Context, input entities.NewCharacter) (*entities.Character, error) {
	if err := input.Validate(); err != nil {
		return nil, s.reject(errors.Validation(err))
	}

	var created *entities.Character
	// Verificação e escrita compartilham a transação, mas sem índice único
	// duas criações concorrentes ainda podem passar pela verificação.
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.characterRepo.FindByName(ctx, input.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.DuplicateName(input.Name)
		}

		created, err = s.characterRepo.Create(ctx, input)
		return err
	})
	if err != nil {
		return nil, s.classify("create character", err)
	}

	s.logger.Info("character created", "id", created.ID, "name", created.Name)
	return created, nil
}

// GetCharacterByID busca um personagem por ID
func (s *CharacterService) GetCharacterByID(ctx context.Context, id int64) (*entities.Character, error) {
	character, err := s.characterRepo.FindByID(ctx, id)
	if err != nil {
		return nil, s.classify("get character", err)
	}
	if character == nil {
		return nil, s.reject(notFound(id))
	}
	return character, nil
}

// GetAllCharacters lista todos os personagens, mais recentes primeiro
func (s *CharacterService) GetAllCharacters(ctx context.Context) ([]*entities.Character, error) {
	characters, err := s.characterRepo.FindAll(ctx)
	if err != nil {
		return nil, s.classify("list characters", err)
	}
	return characters, nil
}

// UpdateCharacter aplica uma atualização parcial.
// A existência é verificada antes da unicidade do nome.
func (s *CharacterService) UpdateCharacter(ctx context.Context, id int64, patch entities.CharacterPatch) (*entities.Character, error) {
	if err := patch.Validate(); err != nil {
		return nil, s.reject(errors.Validation(err))
	}

	var updated *entities.Character
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		current, err := s.characterRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return notFound(id)
		}

		if patch.Renames(current) {
			holder, err := s.characterRepo.FindByName(ctx, *patch.Name)
			if err != nil {
				return err
			}
			if holder != nil && holder.ID != id {
				return errors.DuplicateName(*patch.Name)
			}
		}

		updated, err = s.characterRepo.Update(ctx, id, patch)
		if err != nil {
			return err
		}
		if updated == nil {
			return notFound(id)
		}
		return nil
	})
	if err != nil {
		return nil, s.classify("update character", err)
	}

	s.logger.Info("character updated", "id", updated.ID, "name", updated.Name)
	return updated, nil
}

// DeleteCharacter remove um personagem existente
func (s *CharacterService) DeleteCharacter(ctx context.Context, id int64) error {
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		current, err := s.characterRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return notFound(id)
		}

		removed, err := s.characterRepo.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !removed {
			return notFound(id)
		}
		return nil
	})
	if err != nil {
		return s.classify("delete character", err)
	}

	s.logger.Info("character deleted", "id", id)
	return nil
}

func notFound(id int64) *errors.DomainError {
	return errors.NotFound("Character with ID %d not found", id)
}

// classify mantém erros de negócio e embrulha o resto como falha de storage
func (s *CharacterService) classify(op string, err error) error {
	var de *errors.DomainError
	if errs.As(err, &de) {
		return s.reject(de)
	}

	s.logger.Error("storage failure", "op", op, "error", err)
	return errors.Storage("failed to "+op, err)
}

func (s *CharacterService) reject(err *errors.DomainError) error {
	s.logger.Warn("request rejected", "kind", err.Kind.String(), "reason", err.Message)
	return err
}
