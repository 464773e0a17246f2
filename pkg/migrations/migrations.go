package migrations

import (
	"fmt"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type zapGooseLogger struct {
	log *zap.SugaredLogger
}

func (l *zapGooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Fatalf(format, v...)
}

func (l *zapGooseLogger) Printf(format string, v ...interface{}) {
	l.log.Infof(format, v...)
}

// MigrateStore runs the goose migrations from the given folder against
// the gorm-managed database connection.
func MigrateStore(db *gorm.DB, migrationFolder string) error {
	goose.SetLogger(&zapGooseLogger{log: zap.S().Named("migrations")})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get db connection: %w", err)
	}

	if err := goose.Up(sqlDB, migrationFolder); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
