package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/geodykes/geodykes-backend/internal/pkg/logger"
	"github.com/geodykes/geodykes-backend/internal/platform/envutil"
)

// SqliteService backs development runs that should not need a postgres
// instance. The default DSN keeps everything in process memory.
type SqliteService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSqliteService(logg *logger.Logger) (*SqliteService, error) {
	dsn := envutil.String("SQLITE_DSN", "file::memory:?cache=shared")

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	logg.Info("Sqlite opened", "dsn", dsn)
	return &SqliteService{db: gdb, log: logg}, nil
}

func (s *SqliteService) DB() *gorm.DB { return s.db }

func (s *SqliteService) AutoMigrateAll() error {
	return AutoMigrateAll(s.db)
}
