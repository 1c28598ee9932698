package gormdb_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/rafabene/character-api/internal/domain/entities"
	"github.com/rafabene/character-api/internal/domain/repositories"
	"github.com/rafabene/character-api/internal/infrastructure/persistence/gormdb"
	"github.com/rafabene/character-api/internal/infrastructure/persistence/gormdb/gormdbtest"
)

func ptr[T any](v T) *T {
	return &v
}

var _ = Describe("CharacterRepository", func() {
	var (
		ctx  context.Context
		db   *gorm.DB
		repo repositories.CharacterRepository
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = gormdbtest.Open(GinkgoT())
		repo = gormdb.NewCharacterRepository(db)
	})

	Describe("Create", func() {
		It("usa temperatura padrão e deixa opcionais nulos", func() {
			created, err := repo.Create(ctx, entities.NewCharacter{
				Name:         "Ava",
				SystemPrompt: "Be helpful",
			})
			Expect(err).ToNot(HaveOccurred())

			Expect(created.ID).To(BeNumerically(">", 0))
			Expect(created.Name).To(Equal("Ava"))
			Expect(created.SystemPrompt).To(Equal("Be helpful"))
			Expect(created.Temperature).To(BeNumerically("~", 0.7, 1e-9))
			Expect(created.Description).To(BeNil())
			Expect(created.AvatarURL).To(BeNil())
			Expect(created.GreetingMessage).To(BeNil())
			Expect(created.CreatedAt.IsZero()).To(BeFalse())
		})

		It("persiste campos opcionais informados", func() {
			created, err := repo.Create(ctx, entities.NewCharacter{
				Name:            "Bob",
				Description:     ptr("A pirate"),
				AvatarURL:       ptr("not-a-url"),
				SystemPrompt:    "Talk like a pirate",
				GreetingMessage: ptr("Ahoy"),
				Temperature:     ptr(0.3),
			})
			Expect(err).ToNot(HaveOccurred())

			Expect(*created.Description).To(Equal("A pirate"))
			Expect(*created.AvatarURL).To(Equal("not-a-url"))
			Expect(*created.GreetingMessage).To(Equal("Ahoy"))
			Expect(created.Temperature).To(BeNumerically("~", 0.3, 1e-9))
		})

		It("FindByID logo após Create devolve o mesmo registro", func() {
			created, err := repo.Create(ctx, entities.NewCharacter{Name: "Ava", SystemPrompt: "Be helpful"})
			Expect(err).ToNot(HaveOccurred())

			found, err := repo.FindByID(ctx, created.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(found).To(Equal(created))
		})
	})

	Describe("buscas sem resultado", func() {
		It("FindByID retorna nil sem erro", func() {
			found, err := repo.FindByID(ctx, 999)
			Expect(err).ToNot(HaveOccurred())
			Expect(found).To(BeNil())
		})

		It("FindByName retorna nil sem erro", func() {
			found, err := repo.FindByName(ctx, "ghost")
			Expect(err).ToNot(HaveOccurred())
			Expect(found).To(BeNil())
		})
	})

	Describe("FindByName", func() {
		It("encontra por nome exato", func() {
			created, err := repo.Create(ctx, entities.NewCharacter{Name: "Ava", SystemPrompt: "p"})
			Expect(err).ToNot(HaveOccurred())

			found, err := repo.FindByName(ctx, "Ava")
			Expect(err).ToNot(HaveOccurred())
			Expect(found.ID).To(Equal(created.ID))
		})
	})

	Describe("FindAll", func() {
		It("retorna lista vazia, não nil, quando não há registros", func() {
			all, err := repo.FindAll(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(all).ToNot(BeNil())
			Expect(all).To(BeEmpty())
		})

		It("ordena do mais recente para o mais antigo", func() {
			for _, name := range []string{"first", "second", "third"} {
				_, err := repo.Create(ctx, entities.NewCharacter{Name: name, SystemPrompt: "p"})
				Expect(err).ToNot(HaveOccurred())
			}

			all, err := repo.FindAll(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(all).To(HaveLen(3))
			Expect(all[0].Name).To(Equal("third"))
			Expect(all[1].Name).To(Equal("second"))
			Expect(all[2].Name).To(Equal("first"))
		})
	})

	Describe("Update", func() {
		var original *entities.Character

		BeforeEach(func() {
			var err error
			original, err = repo.Create(ctx, entities.NewCharacter{
				Name:         "Ava",
				Description:  ptr("Old description"),
				SystemPrompt: "Be helpful",
				Temperature:  ptr(0.5),
			})
			Expect(err).ToNot(HaveOccurred())
		})

		It("altera somente os campos presentes", func() {
			updated, err := repo.Update(ctx, original.ID, entities.CharacterPatch{
				Description: ptr("A friendly assistant"),
			})
			Expect(err).ToNot(HaveOccurred())

			Expect(*updated.Description).To(Equal("A friendly assistant"))
			Expect(updated.Name).To(Equal(original.Name))
			Expect(updated.SystemPrompt).To(Equal(original.SystemPrompt))
			Expect(updated.Temperature).To(Equal(original.Temperature))
			Expect(updated.CreatedAt).To(Equal(original.CreatedAt))
		})

		It("aceita string vazia explícita como valor", func() {
			updated, err := repo.Update(ctx, original.ID, entities.CharacterPatch{
				Description: ptr(""),
			})
			Expect(err).ToNot(HaveOccurred())

			Expect(updated.Description).ToNot(BeNil())
			Expect(*updated.Description).To(BeEmpty())
		})

		It("atualiza vários campos de uma vez", func() {
			updated, err := repo.Update(ctx, original.ID, entities.CharacterPatch{
				Name:            ptr("Ava 2"),
				GreetingMessage: ptr("Hi!"),
				Temperature:     ptr(1.0),
			})
			Expect(err).ToNot(HaveOccurred())

			Expect(updated.Name).To(Equal("Ava 2"))
			Expect(*updated.GreetingMessage).To(Equal("Hi!"))
			Expect(updated.Temperature).To(BeNumerically("~", 1.0, 1e-9))
			Expect(*updated.Description).To(Equal("Old description"))
		})

		It("retorna nil quando o registro não existe", func() {
			updated, err := repo.Update(ctx, 999, entities.CharacterPatch{Name: ptr("x")})
			Expect(err).ToNot(HaveOccurred())
			Expect(updated).To(BeNil())
		})
	})

	Describe("Delete", func() {
		It("retorna true quando remove e false na segunda vez", func() {
			created, err := repo.Create(ctx, entities.NewCharacter{Name: "Ava", SystemPrompt: "p"})
			Expect(err).ToNot(HaveOccurred())

			removed, err := repo.Delete(ctx, created.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(removed).To(BeTrue())

			removed, err = repo.Delete(ctx, created.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(removed).To(BeFalse())

			Expect(gormdbtest.Count(GinkgoT(), db)).To(BeZero())
		})
	})

	Describe("UnitOfWork", func() {
		It("desfaz as escritas quando fn retorna erro", func() {
			uow := gormdb.NewUnitOfWork(db)

			err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
				_, err := repo.Create(txCtx, entities.NewCharacter{Name: "Ava", SystemPrompt: "p"})
				Expect(err).ToNot(HaveOccurred())
				return context.Canceled
			})
			Expect(err).To(MatchError(context.Canceled))

			Expect(gormdbtest.Count(GinkgoT(), db)).To(BeZero())
		})

		It("confirma as escritas quando fn termina sem erro", func() {
			uow := gormdb.NewUnitOfWork(db)

			err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
				_, err := repo.Create(txCtx, entities.NewCharacter{Name: "Ava", SystemPrompt: "p"})
				return err
			})
			Expect(err).ToNot(HaveOccurred())

			Expect(gormdbtest.Count(GinkgoT(), db)).To(Equal(int64(1)))
		})
	})
})
