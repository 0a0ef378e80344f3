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

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/medalcast/medalcast/forecaster/config"
)

func newPostgres(cfg *config.Config) (*gorm.DB, error) {
	postgresCfg := &cfg.Database.Postgres
	return open(postgres.New(postgres.Config{
		DSN:                  formatPostgresDSN(postgresCfg),
		PreferSimpleProtocol: postgresCfg.PreferSimpleProtocol,
	}), cfg.Verbose, postgresCfg.Migrate)
}

func formatPostgresDSN(cfg *config.PostgresConfig) string {
	return fmt.Sprintf("host=%v user=%v password=%v dbname=%v port=%v sslmode=%v TimeZone=%v",
		cfg.Host,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		cfg.Port,
		cfg.SSLMode,
		cfg.Timezone,
	)
}
