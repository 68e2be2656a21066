// Package db opens the relational database used by the storefront.
package db

import (
	"fmt"
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "shirtshop_backend/internal/feature/auth/domain/entity"
	catalogentity "shirtshop_backend/internal/feature/catalog/domain/entity"
	"shirtshop_backend/internal/platform/config"
)

// OpenDB connects to the configured database, retrying for up to a minute
// so the server survives a database that is still starting up.
func OpenDB(cfg config.DBConfig) *gorm.DB {
	dialector := newDialector(cfg)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(
			&authentity.User{},
			&catalogentity.Product{},
			&catalogentity.Size{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

// newDialector builds the gorm dialector for the configured driver.
func newDialector(cfg config.DBConfig) gorm.Dialector {
	switch cfg.Driver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
		return gpostgres.Open(dsn)
	default:
		var dsn string
		if cfg.Instance != "" {
			dsn = fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
				cfg.User, cfg.Password, cfg.Instance, cfg.Name)
		} else {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
				cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
		}
		return gmysql.Open(dsn)
	}
}
