// Package dsn provides Data Source Name and gorm dialector construction for
// the supported database engines.
package dsn

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/marogo-civils/marogo-web/internal/config"
)

// ErrUnknownEngine is returned for an engine name without a dialector.
var ErrUnknownEngine = errors.New("unknown database engine")

// Create builds the Data Source Name from the configuration.
func Create(dbCfg *config.Config) string {
	switch dbCfg.DB.GormEngine {
	case config.EngineSQLite:
		return dbCfg.DB.Path
	case config.EnginePostgres:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s %s",
			dbCfg.DB.Host,
			dbCfg.DB.Port,
			dbCfg.DB.User,
			dbCfg.DB.Password,
			dbCfg.DB.Name,
			dbCfg.DB.Extras,
		)
	default: // mysql
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			dbCfg.DB.User,
			dbCfg.DB.Password,
			dbCfg.DB.Host,
			dbCfg.DB.Port,
			dbCfg.DB.Name,
			dbCfg.DB.Extras,
		)
	}
}

// Dialector returns the gorm dialector for the configured engine.
func Dialector(dbCfg *config.Config) (gorm.Dialector, error) {
	switch dbCfg.DB.GormEngine {
	case config.EngineSQLite:
		return sqlite.Open(Create(dbCfg)), nil
	case config.EngineMySQL:
		return mysql.Open(Create(dbCfg)), nil
	case config.EnginePostgres:
		return postgres.Open(Create(dbCfg)), nil
	default:
		return nil, errors.Wrap(ErrUnknownEngine, dbCfg.DB.GormEngine)
	}
}
