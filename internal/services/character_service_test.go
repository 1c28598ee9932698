package services_test

import (
	"context"
	errs "errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/rafabene/character-api/internal/domain/entities"
	"github.com/rafabene/character-api/internal/domain/errors"
	"github.com/rafabene/character-api/internal/domain/repositories"
	"github.com/rafabene/character-api/internal/infrastructure/logging"
	"github.com/rafabene/character-api/internal/infrastructure/persistence/gormdb"
	"github.com/rafabene/character-api/internal/infrastructure/persistence/gormdb/gormdbtest"
	"github.com/rafabene/character-api/internal/services"
)

func ptr[T any](v T) *T {
	return &v
}

var _ = Describe("CharacterService", func() {
	var (
		ctx     context.Context
		db      *gorm.DB
		service *services.CharacterService
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = gormdbtest.Open(GinkgoT())
		service = services.NewCharacterService(
			gormdb.NewCharacterRepository(db),
			gormdb.NewUnitOfWork(db),
			logging.NewDiscardLogger(),
		)
	})

	create := func(name string) *entities.Character {
		c, err := service.CreateCharacter(ctx, entities.NewCharacter{Name: name, SystemPrompt: "Be helpful"})
		Expect(err).ToNot(HaveOccurred())
		return c
	}

	It("percorre o ciclo de vida completo", func() {
		ava, err := service.CreateCharacter(ctx, entities.NewCharacter{Name: "Ava", SystemPrompt: "Be helpful"})
		Expect(err).ToNot(HaveOccurred())
		Expect(ava.ID).To(BeNumerically(">", 0))
		Expect(ava.Temperature).To(BeNumerically("~", 0.7, 1e-9))
		Expect(ava.CreatedAt.IsZero()).To(BeFalse())

		_, err = service.CreateCharacter(ctx, entities.NewCharacter{Name: "Ava", SystemPrompt: "Other"})
		Expect(errors.KindOf(err)).To(Equal(errors.KindDuplicateName))
		Expect(gormdbtest.Count(GinkgoT(), db)).To(Equal(int64(1)))

		updated, err := service.UpdateCharacter(ctx, ava.ID, entities.CharacterPatch{
			Description: ptr("A friendly assistant"),
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(updated.Name).To(Equal("Ava"))
		Expect(updated.SystemPrompt).To(Equal("Be helpful"))
		Expect(*updated.Description).To(Equal("A friendly assistant"))

		Expect(service.DeleteCharacter(ctx, ava.ID)).To(Succeed())

		_, err = service.GetCharacterByID(ctx, ava.ID)
		Expect(errs.Is(err, errors.ErrCharacterNotFound)).To(BeTrue())
	})

	Describe("CreateCharacter", func() {
		It("devolve os campos informados", func() {
			c, err := service.CreateCharacter(ctx, entities.NewCharacter{
				Name:            "Bob",
				Description:     ptr("d"),
				AvatarURL:       ptr("a"),
				SystemPrompt:    "s",
				GreetingMessage: ptr("g"),
				Temperature:     ptr(0.2),
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(c.Name).To(Equal("Bob"))
			Expect(*c.Description).To(Equal("d"))
			Expect(*c.AvatarURL).To(Equal("a"))
			Expect(*c.GreetingMessage).To(Equal("g"))
			Expect(c.Temperature).To(BeNumerically("~", 0.2, 1e-9))
		})

		It("rejeita nome duplicado com mensagem contendo o nome", func() {
			create("Ava")

			_, err := service.CreateCharacter(ctx, entities.NewCharacter{Name: "Ava", SystemPrompt: "x"})
			Expect(errs.Is(err, errors.ErrCharacterNameTaken)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("'Ava'"))
			Expect(err.Error()).To(ContainSubstring("already exists"))
		})

		It("rejeita temperatura fora do intervalo sem gravar", func() {
			_, err := service.CreateCharacter(ctx, entities.NewCharacter{
				Name: "Hot", SystemPrompt: "x", Temperature: ptr(1.5),
			})
			Expect(errors.KindOf(err)).To(Equal(errors.KindValidation))
			Expect(gormdbtest.Count(GinkgoT(), db)).To(BeZero())
		})

		It("rejeita nome em branco", func() {
			_, err := service.CreateCharacter(ctx, entities.NewCharacter{Name: "  ", SystemPrompt: "x"})
			Expect(errors.KindOf(err)).To(Equal(errors.KindValidation))
		})
	})

	Describe("GetCharacterByID", func() {
		It("retorna NotFound para id nunca criado", func() {
			_, err := service.GetCharacterByID(ctx, 42)
			Expect(errors.KindOf(err)).To(Equal(errors.KindNotFound))
			Expect(err.Error()).To(Equal("Character with ID 42 not found"))
		})

		It("retorna o registro existente", func() {
			ava := create("Ava")

			found, err := service.GetCharacterByID(ctx, ava.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(found).To(Equal(ava))
		})
	})

	Describe("GetAllCharacters", func() {
		It("lista todos os personagens", func() {
			create("Ava")
			create("Bob")

			all, err := service.GetAllCharacters(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(all).To(HaveLen(2))
			Expect(all[0].Name).To(Equal("Bob"))
		})
	})

	Describe("UpdateCharacter", func() {
		It("permite renomear para o próprio nome", func() {
			ava := create("Ava")

			updated, err := service.UpdateCharacter(ctx, ava.ID, entities.CharacterPatch{Name: ptr("Ava")})
			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Name).To(Equal("Ava"))
		})

		It("rejeita renomear para o nome de outro personagem", func() {
			create("Ava")
			bob := create("Bob")

			_, err := service.UpdateCharacter(ctx, bob.ID, entities.CharacterPatch{Name: ptr("Ava")})
			Expect(errors.KindOf(err)).To(Equal(errors.KindDuplicateName))

			unchanged, err := service.GetCharacterByID(ctx, bob.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(unchanged.Name).To(Equal("Bob"))
		})

		It("verifica existência antes da unicidade", func() {
			create("Ava")

			_, err := service.UpdateCharacter(ctx, 999, entities.CharacterPatch{Name: ptr("Ava")})
			Expect(errors.KindOf(err)).To(Equal(errors.KindNotFound))
		})

		It("rejeita temperatura 1.5 sem gravar", func() {
			ava := create("Ava")

			_, err := service.UpdateCharacter(ctx, ava.ID, entities.CharacterPatch{Temperature: ptr(1.5)})
			Expect(errors.KindOf(err)).To(Equal(errors.KindValidation))

			found, err := service.GetCharacterByID(ctx, ava.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(found.Temperature).To(BeNumerically("~", 0.7, 1e-9))
		})
	})

	Describe("DeleteCharacter", func() {
		It("segunda remoção retorna NotFound", func() {
			ava := create("Ava")

			Expect(service.DeleteCharacter(ctx, ava.ID)).To(Succeed())

			err := service.DeleteCharacter(ctx, ava.ID)
			Expect(errors.KindOf(err)).To(Equal(errors.KindNotFound))
		})
	})
})

// fakeRepository conta chamadas e pode falhar em todas as operações
type fakeRepository struct {
	calls int
	err   error
}

func (f *fakeRepository) Create(context.Context, entities.NewCharacter) (*entities.Character, error) {
	f.calls++
	return nil, f.err
}

func (f *fakeRepository) FindByID(context.Context, int64) (*entities.Character, error) {
	f.calls++
	return nil, f.err
}

func (f *fakeRepository) FindByName(context.Context, string) (*entities.Character, error) {
	f.calls++
	return nil, f.err
}

func (f *fakeRepository) FindAll(context.Context) ([]*entities.Character, error) {
	f.calls++
	return nil, f.err
}

func (f *fakeRepository) Update(context.Context, int64, entities.CharacterPatch) (*entities.Character, error) {
	f.calls++
	return nil, f.err
}

func (f *fakeRepository) Delete(context.Context, int64) (bool, error) {
	f.calls++
	return false, f.err
}

var _ repositories.CharacterRepository = (*fakeRepository)(nil)

// passthroughUoW executa fn sem transação
type passthroughUoW struct{}

func (passthroughUoW) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

var _ = Describe("CharacterService com repositório falso", func() {
	var (
		repo    *fakeRepository
		service *services.CharacterService
	)

	BeforeEach(func() {
		repo = &fakeRepository{}
		service = services.NewCharacterService(repo, passthroughUoW{}, logging.NewDiscardLogger())
	})

	It("não chama o repositório para patch vazio", func() {
		_, err := service.UpdateCharacter(context.Background(), 1, entities.CharacterPatch{})
		Expect(errors.KindOf(err)).To(Equal(errors.KindValidation))
		Expect(repo.calls).To(BeZero())
	})

	It("não chama o repositório para temperatura inválida", func() {
		_, err := service.UpdateCharacter(context.Background(), 1, entities.CharacterPatch{Temperature: ptr(0.05)})
		Expect(errors.KindOf(err)).To(Equal(errors.KindValidation))
		Expect(repo.calls).To(BeZero())
	})

	It("embrulha falhas do banco como Storage preservando a causa", func() {
		cause := errs.New("disk I/O error")
		repo.err = cause

		_, err := service.GetAllCharacters(context.Background())
		Expect(errors.KindOf(err)).To(Equal(errors.KindStorage))
		Expect(errs.Is(err, cause)).To(BeTrue())
		Expect(errs.Is(err, errors.ErrStorage)).To(BeTrue())

		_, err = service.CreateCharacter(context.Background(), entities.NewCharacter{Name: "Ava", SystemPrompt: "x"})
		Expect(errors.KindOf(err)).To(Equal(errors.KindStorage))
		Expect(errs.Is(err, cause)).To(BeTrue())
	})
})
