package database

import "errors"

var (
	ErrParseConfig       = errors.New("database: failed to parse configuration")
	ErrOpenConnection    = errors.New("database: failed to open connection")
	ErrHealthcheckFailed = errors.New("database: healthcheck failed")
	ErrBeginTx           = errors.New("database: failed to begin transaction")
	ErrCommitTx          = errors.New("database: failed to commit transaction")
	ErrSetDialect        = errors.New("database: failed to set migration dialect")
	ErrApplyMigrations   = errors.New("database: failed to apply migrations")
	ErrEmptyStorage      = errors.New("database: empty storage, nothing to persist")
)
