/*
 *     Copyright 2024 The Medalcast Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"fmt"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
	"moul.io/zapgorm2"

	"github.com/medalcast/medalcast/forecaster/config"
	logger "github.com/medalcast/medalcast/internal/mclog"
)

type Database struct {
	DB *gorm.DB
}

func New(cfg *config.Config) (*Database, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Database.Type {
	case config.DatabaseTypeMysql:
		db, err = newMysql(cfg)
	case config.DatabaseTypePostgres:
		db, err = newPostgres(cfg)
	default:
		return nil, fmt.Errorf("invalid database type %s", cfg.Database.Type)
	}
	if err != nil {
		return nil, err
	}

	return &Database{DB: db}, nil
}

// open connects with the dialector and runs migration when enabled.
func open(dialector gorm.Dialector, verbose, migrating bool) (*gorm.DB, error) {
	// Initialize gorm logger.
	logLevel := gormlogger.Info
	if !verbose {
		logLevel = gormlogger.Warn
	}
	gormLogger := zapgorm2.New(logger.GormLogger).LogMode(logLevel)

	db, err := gorm.Open(dialector, &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormLogger,
	})
	if err != nil {
		return nil, err
	}

	// Run migration.
	if migrating {
		if err := migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Host{},
		&Medal{},
		&Athlete{},
		&Result{},
	)
}
