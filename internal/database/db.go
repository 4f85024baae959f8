package database

import (
	"fleetadmin/internal/config"
	"fleetadmin/internal/logger"
	"fleetadmin/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewConnection opens the connection pool and migrates the tax settings schema.
func NewConnection(cfg *config.Configuration, log *logger.Logger) (*gorm.DB, error) {
	// TranslateError surfaces unique violations as gorm.ErrDuplicatedKey.
	gormCfg := &gorm.Config{TranslateError: true}
	if cfg.Server.Mode == "release" {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
	}

	db, err := gorm.Open(postgres.Open(cfg.Postgres.GetDSN()), gormCfg)
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&model.TaxRule{},
		&model.Charge{},
		&model.ChargeTaxLine{},
		&model.AuditLog{},
	)
	if err != nil {
		log.Warnw("failed to auto-migrate models", "error", err)
	}

	return db, nil
}
