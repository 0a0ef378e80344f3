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
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/medalcast/medalcast/forecaster/training/models"
)

type Config struct {
	// Base options.
	Options `yaml:",inline" mapstructure:",squash"`

	// Server configuration.
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Data source configuration.
	Data DataConfig `yaml:"data" mapstructure:"data"`

	// Database configuration.
	Database DatabaseConfig `yaml:"database" mapstructure:"database"`

	// Training configuration.
	Training TrainingConfig `yaml:"training" mapstructure:"training"`

	// Prediction configuration.
	Prediction PredictionConfig `yaml:"prediction" mapstructure:"prediction"`

	// Metrics configuration.
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`

	// GC configuration.
	GC GCConfig `yaml:"gc" mapstructure:"gc"`
}

type Options struct {
	// Console shows log on console.
	Console bool `yaml:"console" mapstructure:"console"`

	// Verbose enables debug level logging.
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`

	// PProfPort is the port of pprof and statsview in verbose mode, a free one is picked when 0.
	PProfPort int `yaml:"pprof-port" mapstructure:"pprof-port"`
}

type ServerConfig struct {
	// ListenIP is listen ip, like: 0.0.0.0, 192.168.0.1.
	ListenIP net.IP `yaml:"listenIP" mapstructure:"listenIP"`

	// Server port.
	Port int `yaml:"port" mapstructure:"port"`

	// Server work home directory.
	WorkHome string `yaml:"workHome" mapstructure:"workHome"`

	// Server log directory.
	LogDir string `yaml:"logDir" mapstructure:"logDir"`

	// Maximum size in megabytes of log files before rotation (default: 1024)
	LogMaxSize int `yaml:"logMaxSize" mapstructure:"logMaxSize"`

	// Maximum number of days to retain old log files (default: 7)
	LogMaxAge int `yaml:"logMaxAge" mapstructure:"logMaxAge"`

	// Maximum number of old log files to keep (default: 20)
	LogMaxBackups int `yaml:"logMaxBackups" mapstructure:"logMaxBackups"`

	// Directory of history data files.
	DataDir string `yaml:"dataDir" mapstructure:"dataDir"`

	// Directory of trained model artifacts, metrics reports and predictions.
	ModelDir string `yaml:"modelDir" mapstructure:"modelDir"`

	// ShutdownTimeout is the timeout of graceful shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" mapstructure:"shutdownTimeout"`
}

type DataConfig struct {
	// Source is the history data source, csv or database.
	Source string `yaml:"source" mapstructure:"source"`

	// HistoryFile is the csv file of per country aggregates,
	// a relative path is resolved against the data directory.
	HistoryFile string `yaml:"historyFile" mapstructure:"historyFile"`

	// GamesFile is the csv file of per country, per games medal totals.
	GamesFile string `yaml:"gamesFile" mapstructure:"gamesFile"`
}

type DatabaseConfig struct {
	// Database type, mysql or postgres.
	Type string `yaml:"type" mapstructure:"type"`

	// Mysql configuration.
	Mysql MysqlConfig `yaml:"mysql" mapstructure:"mysql"`

	// Postgres configuration.
	Postgres PostgresConfig `yaml:"postgres" mapstructure:"postgres"`
}

type MysqlConfig struct {
	// Server username.
	User string `yaml:"user" mapstructure:"user"`

	// Server password.
	Password string `yaml:"password" mapstructure:"password"`

	// Server host.
	Host string `yaml:"host" mapstructure:"host"`

	// Server port.
	Port int `yaml:"port" mapstructure:"port"`

	// Server DB name.
	DBName string `yaml:"dbname" mapstructure:"dbname"`

	// Enable migration.
	Migrate bool `yaml:"migrate" mapstructure:"migrate"`
}

type PostgresConfig struct {
	// Server username.
	User string `yaml:"user" mapstructure:"user"`

	// Server password.
	Password string `yaml:"password" mapstructure:"password"`

	// Server host.
	Host string `yaml:"host" mapstructure:"host"`

	// Server port.
	Port int `yaml:"port" mapstructure:"port"`

	// Server DB name.
	DBName string `yaml:"dbname" mapstructure:"dbname"`

	// SSL mode.
	SSLMode string `yaml:"sslMode" mapstructure:"sslMode"`

	// Disable prepared statement.
	PreferSimpleProtocol bool `yaml:"preferSimpleProtocol" mapstructure:"preferSimpleProtocol"`

	// Timezone.
	Timezone string `yaml:"timezone" mapstructure:"timezone"`

	// Enable migration.
	Migrate bool `yaml:"migrate" mapstructure:"migrate"`
}

type TrainingConfig struct {
	// TestPercent is the fraction of rows held out for scoring.
	TestPercent float64 `yaml:"testPercent" mapstructure:"testPercent"`

	// Seed drives the split and every randomized model.
	Seed int64 `yaml:"seed" mapstructure:"seed"`

	// MinTotalMedals is the minimum total medals of a country used for training.
	MinTotalMedals int `yaml:"minTotalMedals" mapstructure:"minTotalMedals"`

	// RecentYear is the first year counted toward recent medals.
	RecentYear int `yaml:"recentYear" mapstructure:"recentYear"`

	// RecentWindow is the number of games covered by recent medals.
	RecentWindow int `yaml:"recentWindow" mapstructure:"recentWindow"`

	// Candidates are the models fitted by full training, in selection order.
	Candidates []CandidateConfig `yaml:"candidates" mapstructure:"candidates"`

	// Simple is the configuration of the single target training mode.
	Simple SimpleTrainingConfig `yaml:"simple" mapstructure:"simple"`
}

type CandidateConfig struct {
	// Name is the artifact and report key of the model.
	Name string `yaml:"name" mapstructure:"name"`

	// Type is the model family.
	Type string `yaml:"type" mapstructure:"type"`

	// Trees is the bagging count of a random forest.
	Trees int `yaml:"trees" mapstructure:"trees"`

	// MaxDepth of trees, zero means unlimited.
	MaxDepth int `yaml:"maxDepth" mapstructure:"maxDepth"`

	// MinSamplesSplit is the minimum rows to split a node.
	MinSamplesSplit int `yaml:"minSamplesSplit" mapstructure:"minSamplesSplit"`

	// MinSamplesLeaf is the minimum rows of a leaf.
	MinSamplesLeaf int `yaml:"minSamplesLeaf" mapstructure:"minSamplesLeaf"`
}

type SimpleTrainingConfig struct {
	// Country restricts training rows to one country, empty uses all.
	Country string `yaml:"country" mapstructure:"country"`

	// Candidates are the models competing for the best model.
	Candidates []CandidateConfig `yaml:"candidates" mapstructure:"candidates"`
}

type PredictionConfig struct {
	// TopLimit is the size of the generated predictions list.
	TopLimit int `yaml:"topLimit" mapstructure:"topLimit"`

	// MaxLimit caps the limit accepted by top queries.
	MaxLimit int `yaml:"maxLimit" mapstructure:"maxLimit"`

	// ConfidenceOlympics is the participation above which confidence is high.
	ConfidenceOlympics int `yaml:"confidenceOlympics" mapstructure:"confidenceOlympics"`

	// DataSource is the provenance tag attached to predictions.
	DataSource string `yaml:"dataSource" mapstructure:"dataSource"`
}

type GCConfig struct {
	// Interval is the interval of gc runs.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Timeout is the timeout of a gc run.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// TempFileTTL is the age after which unfinished artifact writes are removed.
	TempFileTTL time.Duration `yaml:"tempFileTTL" mapstructure:"tempFileTTL"`
}

type MetricsConfig struct {
	// Enable metrics service.
	Enable bool `yaml:"enable" mapstructure:"enable"`

	// Metrics service address.
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// New default configuration.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            DefaultServerPort,
			LogMaxSize:      DefaultLogRotateMaxSize,
			LogMaxAge:       DefaultLogRotateMaxAge,
			LogMaxBackups:   DefaultLogRotateMaxBackups,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Data: DataConfig{
			Source:      DataSourceCSV,
			HistoryFile: DefaultHistoryFile,
			GamesFile:   DefaultGamesFile,
		},
		Database: DatabaseConfig{
			Type: DatabaseTypeMysql,
			Mysql: MysqlConfig{
				Port:    DefaultMysqlPort,
				DBName:  DefaultDBName,
				Migrate: true,
			},
			Postgres: PostgresConfig{
				Port:     DefaultPostgresPort,
				DBName:   DefaultDBName,
				SSLMode:  DefaultPostgresSSLMode,
				Timezone: DefaultPostgresTimezone,
				Migrate:  true,
			},
		},
		Training: TrainingConfig{
			TestPercent:    DefaultTestPercent,
			Seed:           DefaultSeed,
			MinTotalMedals: DefaultMinTotalMedals,
			RecentYear:     DefaultRecentYear,
			RecentWindow:   DefaultRecentWindow,
			Candidates:     DefaultCandidates(),
			Simple: SimpleTrainingConfig{
				Candidates: DefaultSimpleCandidates(),
			},
		},
		Prediction: PredictionConfig{
			TopLimit:           DefaultTopLimit,
			MaxLimit:           DefaultMaxLimit,
			ConfidenceOlympics: DefaultConfidenceOlympics,
			DataSource:         DefaultPredictionDataSource,
		},
		Metrics: MetricsConfig{
			Enable: false,
			Addr:   DefaultMetricsAddr,
		},
		GC: GCConfig{
			Interval:    DefaultGCInterval,
			Timeout:     DefaultGCTimeout,
			TempFileTTL: DefaultGCTempFileTTL,
		},
	}
}

// Validate config parameters.
func (cfg *Config) Validate() error {
	if cfg.Server.ListenIP == nil {
		return errors.New("server requires parameter listenIP")
	}

	if cfg.Server.Port <= 0 {
		return errors.New("server requires parameter port")
	}

	switch cfg.Data.Source {
	case DataSourceCSV:
		if cfg.Data.HistoryFile == "" {
			return errors.New("data requires parameter historyFile")
		}
	case DataSourceDatabase:
		if err := cfg.Database.validate(); err != nil {
			return err
		}
	default:
		return errors.New("data requires parameter source")
	}

	if cfg.Training.TestPercent <= 0 || cfg.Training.TestPercent >= 1 {
		return errors.New("training requires parameter testPercent")
	}

	if cfg.Training.MinTotalMedals <= 0 {
		return errors.New("training requires parameter minTotalMedals")
	}

	if cfg.Training.RecentWindow <= 0 {
		return errors.New("training requires parameter recentWindow")
	}

	if cfg.Training.RecentYear <= 0 {
		return errors.New("training requires parameter recentYear")
	}

	if err := validateCandidates("training", cfg.Training.Candidates); err != nil {
		return err
	}

	if err := validateCandidates("simple", cfg.Training.Simple.Candidates); err != nil {
		return err
	}

	if cfg.Prediction.TopLimit <= 0 {
		return errors.New("prediction requires parameter topLimit")
	}

	if cfg.Prediction.MaxLimit < cfg.Prediction.TopLimit {
		return errors.New("prediction requires parameter maxLimit")
	}

	if cfg.GC.Interval <= 0 {
		return errors.New("gc requires parameter interval")
	}

	if cfg.GC.Timeout <= 0 || cfg.GC.Timeout >= cfg.GC.Interval {
		return errors.New("gc requires parameter timeout")
	}

	if cfg.GC.TempFileTTL <= 0 {
		return errors.New("gc requires parameter tempFileTTL")
	}

	if cfg.Metrics.Enable {
		if cfg.Metrics.Addr == "" {
			return errors.New("metrics requires parameter addr")
		}
	}

	return nil
}

func (cfg *DatabaseConfig) validate() error {
	switch cfg.Type {
	case DatabaseTypeMysql:
		if cfg.Mysql.User == "" {
			return errors.New("mysql requires parameter user")
		}

		if cfg.Mysql.Host == "" {
			return errors.New("mysql requires parameter host")
		}

		if cfg.Mysql.Port <= 0 {
			return errors.New("mysql requires parameter port")
		}

		if cfg.Mysql.DBName == "" {
			return errors.New("mysql requires parameter dbname")
		}
	case DatabaseTypePostgres:
		if cfg.Postgres.User == "" {
			return errors.New("postgres requires parameter user")
		}

		if cfg.Postgres.Host == "" {
			return errors.New("postgres requires parameter host")
		}

		if cfg.Postgres.Port <= 0 {
			return errors.New("postgres requires parameter port")
		}

		if cfg.Postgres.DBName == "" {
			return errors.New("postgres requires parameter dbname")
		}
	default:
		return errors.New("database requires parameter type")
	}

	return nil
}

func validateCandidates(section string, candidates []CandidateConfig) error {
	if len(candidates) == 0 {
		return fmt.Errorf("%s requires parameter candidates", section)
	}

	names := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if c.Name == "" {
			return fmt.Errorf("%s candidate requires parameter name", section)
		}

		if _, ok := names[c.Name]; ok {
			return fmt.Errorf("%s candidate %s is duplicated", section, c.Name)
		}
		names[c.Name] = struct{}{}

		switch c.Type {
		case models.TypeLinearRegression:
		case models.TypeDecisionTree, models.TypeRandomForest:
			if c.Type == models.TypeRandomForest && c.Trees <= 0 {
				return fmt.Errorf("%s candidate %s requires parameter trees", section, c.Name)
			}

			if c.MaxDepth < 0 {
				return fmt.Errorf("%s candidate %s requires parameter maxDepth", section, c.Name)
			}

			if c.MinSamplesSplit < 2 {
				return fmt.Errorf("%s candidate %s requires parameter minSamplesSplit", section, c.Name)
			}

			if c.MinSamplesLeaf < 1 {
				return fmt.Errorf("%s candidate %s requires parameter minSamplesLeaf", section, c.Name)
			}
		default:
			return fmt.Errorf("%s candidate %s requires parameter type", section, c.Name)
		}
	}

	return nil
}

func (cfg *Config) Convert() error {
	if cfg.Server.ListenIP == nil {
		cfg.Server.ListenIP = net.IPv4zero
	}

	return nil
}
