package postgres

import (
	"embed"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// ErrNotFound replaces gorm.ErrRecordNotFound at the package boundary.
var ErrNotFound = errors.New("record not found")

// ErrInUse is returned by deletes that a foreign key still points at.
var ErrInUse = errors.New("record is referenced")

const fkViolation = "23503"

// Open connects with a URL or key=value DSN, see configs.Config.PgDSN.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	if err := db.DB().Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}
	return db, nil
}

// Migrate applies the embedded goose migrations.
func Migrate(db *gorm.DB) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "goose dialect")
	}
	if err := goose.Up(db.DB(), "migrations"); err != nil {
		return errors.Wrap(err, "goose up")
	}
	return nil
}

func notFound(err error) error {
	if gorm.IsRecordNotFoundError(err) {
		return ErrNotFound
	}
	return err
}

func inUse(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == fkViolation {
		return ErrInUse
	}
	return err
}
