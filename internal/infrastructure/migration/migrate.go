package migration

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	// Blank imports register the PostgreSQL driver and the file source for
	// the migration engine.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"talkerbase/internal/config"
)

// Migrator narrows migrate.Migrate to what Up needs, so tests stay off the
// filesystem and the database.
type Migrator interface {
	Up() error
	Close() (error, error)
}

// Engine builds a Migrator from a source and a database URL.
type Engine func(sourceURL, databaseURL string) (Migrator, error)

type Migration struct {
	cfg    *config.Config
	engine Engine
}

func New(cfg *config.Config, engine Engine) *Migration {
	return &Migration{
		cfg:    cfg,
		engine: engine,
	}
}

// DefaultEngine is the real implementation.
func DefaultEngine(sourceURL, databaseURL string) (Migrator, error) {
	return migrate.New(sourceURL, databaseURL)
}

// Up runs all pending migrations. The return is named so the deferred Close
// can fold its errors into whatever Up is about to return.
func (mg *Migration) Up() (err error) {
	m, engineErr := mg.engine("file://"+mg.cfg.Store.Migrations, mg.cfg.Store.DatabaseURI)
	if engineErr != nil {
		return engineErr
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration source error: %v", err, serr)
			} else {
				err = serr
			}
		}
		if dberr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration database error: %v", err, dberr)
			} else {
				err = dberr
			}
		}
	}()
	if upErr := m.Up(); upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("%w; migration up error", upErr)
	}
	return nil
}
