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

package config

import (
	"time"

	"github.com/medalcast/medalcast/forecaster/training/models"
)

const (
	// DataSourceCSV reads history from csv files.
	DataSourceCSV = "csv"

	// DataSourceDatabase reads history from the relational store.
	DataSourceDatabase = "database"

	// DatabaseTypeMysql is mysql type of database.
	DatabaseTypeMysql = "mysql"

	// DatabaseTypePostgres is postgres type of database.
	DatabaseTypePostgres = "postgres"
)

const (
	// DefaultServerPort is default port for server.
	DefaultServerPort = 5000

	// DefaultShutdownTimeout is default timeout of graceful shutdown.
	DefaultShutdownTimeout = 10 * time.Second
)

const (
	// DefaultLogRotateMaxSize is the default maximum size in megabytes of log files before rotation.
	DefaultLogRotateMaxSize = 1024

	// DefaultLogRotateMaxAge is the default number of days to retain old log files.
	DefaultLogRotateMaxAge = 7

	// DefaultLogRotateMaxBackups is the default number of old log files to keep.
	DefaultLogRotateMaxBackups = 20
)

const (
	// DefaultHistoryFile is default file of per country aggregates.
	DefaultHistoryFile = "country_history.csv"

	// DefaultGamesFile is default file of per games medal totals.
	DefaultGamesFile = "game_totals.csv"
)

const (
	// DefaultDBName is default name of database.
	DefaultDBName = "olympics"

	// DefaultMysqlPort is default port of mysql.
	DefaultMysqlPort = 3306

	// DefaultPostgresPort is default port of postgres.
	DefaultPostgresPort = 5432

	// DefaultPostgresSSLMode is default ssl mode of postgres.
	DefaultPostgresSSLMode = "disable"

	// DefaultPostgresTimezone is default timezone of postgres.
	DefaultPostgresTimezone = "UTC"
)

const (
	// DefaultTestPercent is default fraction of held-out rows.
	DefaultTestPercent = 0.2

	// DefaultSeed is default seed of split and randomized models.
	DefaultSeed = 42

	// DefaultMinTotalMedals is default minimum total medals of a training row.
	DefaultMinTotalMedals = 10

	// DefaultRecentYear is default first year of recent medals.
	DefaultRecentYear = 2012

	// DefaultRecentWindow is default number of games covered by recent medals.
	DefaultRecentWindow = 3
)

const (
	// DefaultTopLimit is default size of the generated predictions list.
	DefaultTopLimit = 25

	// DefaultMaxLimit is default cap of top queries.
	DefaultMaxLimit = 100

	// DefaultConfidenceOlympics is default participation above which confidence is high.
	DefaultConfidenceOlympics = 15

	// DefaultPredictionDataSource is default provenance tag of predictions.
	DefaultPredictionDataSource = "olympic_history"
)

const (
	// DefaultGCInterval is default interval of gc runs.
	DefaultGCInterval = 30 * time.Minute

	// DefaultGCTimeout is default timeout of a gc run.
	DefaultGCTimeout = time.Minute

	// DefaultGCTempFileTTL is default age of removable unfinished artifact writes.
	DefaultGCTempFileTTL = time.Hour
)

const (
	// DefaultMetricsAddr is default address for metrics server.
	DefaultMetricsAddr = ":8000"
)

// DefaultCandidates is the production model set: a linear model and a
// random forest of 200 trees with depth 15.
func DefaultCandidates() []CandidateConfig {
	return []CandidateConfig{
		{
			Name: models.TypeLinearRegression,
			Type: models.TypeLinearRegression,
		},
		{
			Name:            models.TypeRandomForest,
			Type:            models.TypeRandomForest,
			Trees:           200,
			MaxDepth:        15,
			MinSamplesSplit: 5,
			MinSamplesLeaf:  2,
		},
	}
}

// DefaultSimpleCandidates are the models of the single target mode,
// trees grow without depth limit.
func DefaultSimpleCandidates() []CandidateConfig {
	return []CandidateConfig{
		{
			Name: models.TypeLinearRegression,
			Type: models.TypeLinearRegression,
		},
		{
			Name:            models.TypeDecisionTree,
			Type:            models.TypeDecisionTree,
			MinSamplesSplit: 2,
			MinSamplesLeaf:  1,
		},
		{
			Name:            models.TypeRandomForest,
			Type:            models.TypeRandomForest,
			Trees:           100,
			MinSamplesSplit: 2,
			MinSamplesLeaf:  1,
		},
	}
}
