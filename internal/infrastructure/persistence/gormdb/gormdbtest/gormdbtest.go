// Package gormdbtest abre bancos SQLite em memória para testes.
package gormdbtest

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/character-api/internal/infrastructure/config"
	"github.com/rafabene/character-api/internal/infrastructure/logging"
	"github.com/rafabene/character-api/internal/infrastructure/persistence/gormdb"
)

// TB é o subconjunto de testing.TB (e de GinkgoT()) usado aqui
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
	Cleanup(func())
}

// Open cria um banco isolado com o schema aplicado, fechado no Cleanup
func Open(t TB) *gorm.DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}

	db, err := gormdb.NewDatabaseConnection(cfg, logging.NewDiscardLogger(), "error")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gormdb.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = gormdb.Close(db)
	})

	return db
}

// Count retorna o número de linhas em characters
func Count(t TB, db *gorm.DB) int64 {
	t.Helper()

	var n int64
	if err := db.Table("characters").Count(&n).Error; err != nil {
		t.Fatalf("failed to count characters: %v", err)
	}
	return n
}
