package gormdb

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rafabene/character-api/internal/domain/ports"
	"github.com/rafabene/character-api/internal/infrastructure/config"
)

// NewDatabaseConnection abre o handle único usado por todos os repositórios
func NewDatabaseConnection(cfg *config.DatabaseConfig, log ports.Logger, logLevel string) (*gorm.DB, error) {
	dialector, err := newDialector(cfg)
	if err != nil {
		return nil, err
	}

	// GORM config
	gormConfig := &gorm.Config{
		Logger: NewGormLogger(log, logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		PrepareStmt: false,
	}

	// Conectar
	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Configurar connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.Driver == config.DriverSQLite {
		// SQLite: uma única conexão serializa as escritas
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxConns)
		sqlDB.SetMaxIdleConns(cfg.MinConns)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxIdleTime) * time.Second)
	}

	// Ping para verificar conexão
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connected successfully",
		"driver", cfg.Driver,
		"host", cfg.Host,
		"database", databaseName(cfg),
	)

	return db, nil
}

func newDialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		if err := ensureDir(cfg.Path); err != nil {
			return nil, err
		}
		return sqlite.Open(withParam(cfg.Path, "_foreign_keys=on")), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func withParam(dsn, param string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&" + param
	}
	return dsn + "?" + param
}

// ensureDir cria o diretório do arquivo sqlite se ainda não existir
func ensureDir(path string) error {
	if strings.HasPrefix(path, "file:") {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create database directory %s: %w", dir, err)
	}
	return nil
}

func databaseName(cfg *config.DatabaseConfig) string {
	if cfg.Driver == config.DriverSQLite {
		return cfg.Path
	}
	return cfg.DBName
}

// AutoMigrate cria as tabelas characters e messages se não existirem
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&CharacterModel{}, &MessageModel{}); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close fecha o handle do banco
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// gormWriter redireciona o logger do GORM para ports.Logger
type gormWriter struct {
	log ports.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.Debug(fmt.Sprintf(format, args...))
}

// NewGormLogger cria um logger do GORM; SQL só aparece em nível debug
func NewGormLogger(log ports.Logger, level string) logger.Interface {
	logLevel := logger.Warn
	switch level {
	case "debug":
		logLevel = logger.Info
	case "error":
		logLevel = logger.Error
	}

	return logger.New(gormWriter{log: log.With("component", "gorm")}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logLevel,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
