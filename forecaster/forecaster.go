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

package forecaster

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/medalcast/medalcast/forecaster/config"
	"github.com/medalcast/medalcast/forecaster/database"
	"github.com/medalcast/medalcast/forecaster/history"
	"github.com/medalcast/medalcast/forecaster/metrics"
	"github.com/medalcast/medalcast/forecaster/router"
	"github.com/medalcast/medalcast/forecaster/service"
	"github.com/medalcast/medalcast/forecaster/storage"
	"github.com/medalcast/medalcast/forecaster/training"
	logger "github.com/medalcast/medalcast/internal/mclog"
	"github.com/medalcast/medalcast/pkg/gc"
	"github.com/medalcast/medalcast/pkg/mcpath"
)

const (
	// storageGCName is the gc task name of unfinished artifact writes.
	storageGCName = "storage"
)

// Server is the forecaster server.
type Server struct {
	// Server configuration.
	config *config.Config

	// Forecaster service.
	service service.Service

	// Database of the database source.
	database *database.Database

	// GC server.
	gc gc.GC

	// REST server.
	restServer *http.Server

	// Metrics server.
	metricsServer *http.Server
}

// New creates a new forecaster server, loading or training models before it returns.
func New(ctx context.Context, cfg *config.Config, d mcpath.Mcpath) (*Server, error) {
	s := &Server{config: cfg}

	c, err := newComponents(cfg, d)
	if err != nil {
		return nil, err
	}
	svc := c.service
	s.service = svc
	s.database = c.database

	s.gc, err = gc.New(gc.WithInterval(cfg.GC.Interval), gc.WithTimeout(cfg.GC.Timeout))
	if err != nil {
		return nil, err
	}
	s.gc.Add(storageGCName, c.storage)

	if err := svc.Start(ctx); err != nil {
		return nil, err
	}

	r, err := router.Init(cfg, svc)
	if err != nil {
		return nil, err
	}

	s.restServer = &http.Server{
		Addr:    net.JoinHostPort(cfg.Server.ListenIP.String(), strconv.Itoa(cfg.Server.Port)),
		Handler: r,
	}

	if cfg.Metrics.Enable {
		s.metricsServer = metrics.New(&cfg.Metrics)
	}

	return s, nil
}

// NewService assembles the forecaster service of the configured data source without starting it.
func NewService(cfg *config.Config, d mcpath.Mcpath) (service.Service, error) {
	c, err := newComponents(cfg, d)
	if err != nil {
		return nil, err
	}

	return c.service, nil
}

type components struct {
	service  service.Service
	storage  storage.Storage
	database *database.Database
}

func newComponents(cfg *config.Config, d mcpath.Mcpath) (*components, error) {
	var (
		source  history.Source
		db      *database.Database
		options []service.Option
		err     error
	)
	switch cfg.Data.Source {
	case config.DataSourceCSV:
		source, err = history.NewCSVSource(resolve(d.DataDir(), cfg.Data.HistoryFile), resolve(d.DataDir(), cfg.Data.GamesFile))
		if err != nil {
			return nil, err
		}
	case config.DataSourceDatabase:
		db, err = database.New(cfg)
		if err != nil {
			return nil, err
		}

		source = database.NewSource(db.DB, cfg.Training.RecentYear)
		options = append(options, service.WithStats(database.NewStats(db.DB)))
	default:
		return nil, fmt.Errorf("invalid data source %s", cfg.Data.Source)
	}

	logger.Infof("history source is %s, model directory is %s", cfg.Data.Source, d.ModelDir())
	s := storage.New(d.ModelDir(), storage.WithTempFileTTL(cfg.GC.TempFileTTL))
	return &components{
		service:  service.New(cfg, source, training.New(&cfg.Training), s, options...),
		storage:  s,
		database: db,
	}, nil
}

// resolve joins relative file names with dir.
func resolve(dir, name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(dir, name)
}

// Serve starts the gc, metrics and rest servers, it blocks until the rest server stops.
func (s *Server) Serve() error {
	s.gc.Serve()
	logger.Info("started gc server")

	if s.metricsServer != nil {
		go func() {
			logger.Infof("started metrics server at %s", s.metricsServer.Addr)
			if err := s.metricsServer.ListenAndServe(); err != nil {
				if err == http.ErrServerClosed {
					return
				}
				logger.Fatalf("metrics server closed unexpect: %s", err.Error())
			}
		}()
	}

	logger.Infof("started rest server at %s", s.restServer.Addr)
	if err := s.restServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Errorf("rest server closed unexpect: %s", err.Error())
		return err
	}

	return nil
}

// Stop shuts down the servers and closes the database.
func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	s.gc.Stop()
	logger.Info("gc closed")

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(ctx); err != nil {
			logger.Errorf("metrics server failed to stop: %s", err.Error())
		}
		logger.Info("metrics server closed under request")
	}

	if err := s.restServer.Shutdown(ctx); err != nil {
		logger.Errorf("rest server failed to stop: %s", err.Error())
	}
	logger.Info("rest server closed under request")

	if s.database != nil {
		if sqlDB, err := s.database.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Errorf("database failed to close: %s", err.Error())
			}
		}
	}
}
