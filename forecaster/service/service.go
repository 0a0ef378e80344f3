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

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/looplab/fsm"
	"go.uber.org/atomic"

	"github.com/medalcast/medalcast/forecaster/config"
	"github.com/medalcast/medalcast/forecaster/database"
	"github.com/medalcast/medalcast/forecaster/history"
	"github.com/medalcast/medalcast/forecaster/metrics"
	"github.com/medalcast/medalcast/forecaster/predictor"
	"github.com/medalcast/medalcast/forecaster/storage"
	"github.com/medalcast/medalcast/forecaster/training"
	logger "github.com/medalcast/medalcast/internal/mclog"
	"github.com/medalcast/medalcast/version"
)

//go:generate mockgen -destination mocks/service_mock.go -source service.go -package mocks

var (
	// ErrNotTrained is returned when the requested model set is not loaded.
	ErrNotTrained = errors.New("model not trained")

	// ErrStatsUnavailable is returned when aggregate queries have no database.
	ErrStatsUnavailable = errors.New("stats require the database source")
)

// Health is the status of the service.
type Health struct {
	Status        string     `json:"status"`
	State         string     `json:"state"`
	ModelsLoaded  bool       `json:"models_loaded"`
	SimpleLoaded  bool       `json:"simple_model_loaded"`
	Training      bool       `json:"training"`
	LastTrainedAt *time.Time `json:"last_trained_at,omitempty"`
	Version       string     `json:"version"`
}

// ModelsInfo describes the loaded models.
type ModelsInfo struct {
	Report           *training.Report         `json:"report,omitempty"`
	SimpleReport     *training.Report         `json:"simple_report,omitempty"`
	Candidates       []config.CandidateConfig `json:"candidates"`
	SimpleCandidates []config.CandidateConfig `json:"simple_candidates"`
	Features         []string                 `json:"features"`
	Targets          []string                 `json:"targets"`
	TargetDefinition string                   `json:"target_definition"`
}

// Service is the interface of the forecaster service.
type Service interface {
	// Start loads persisted artifacts, or trains and saves a model set when they are missing.
	Start(context.Context) error

	// State returns the startup state.
	State() string

	// Health returns the status of the service.
	Health() Health

	// PredictCountry returns the prediction of a country.
	PredictCountry(context.Context, string) (*predictor.PredictionRecord, error)

	// Top returns predictions of the countries with most historical medals.
	Top(context.Context, int) ([]predictor.PredictionRecord, error)

	// Paris2024 returns the generated predictions list.
	Paris2024(context.Context) ([]predictor.PredictionRecord, error)

	// PredictTotal returns the total medals prediction of a games.
	PredictTotal(context.Context, int, string) (*predictor.TotalPrediction, error)

	// ModelsInfo returns reports and configuration of the models.
	ModelsInfo(context.Context) (*ModelsInfo, error)

	// Retrain trains, saves and swaps in a new full model set.
	Retrain(context.Context) (*training.Report, error)

	// RetrainSimple trains, saves and swaps in a new simple model set.
	RetrainSimple(context.Context, string) (*training.Report, error)

	// Overview returns counts of the medals corpus.
	Overview(context.Context) (*database.Overview, error)

	// TopCountries returns the countries with the most medals.
	TopCountries(context.Context, int) ([]database.CountryMedals, error)

	// MedalsByYear returns medals per games year.
	MedalsByYear(context.Context, string) ([]database.YearMedals, error)

	// Hosts returns every games.
	Hosts(context.Context) ([]database.Host, error)

	// CountryMedals returns the medal count of one country.
	CountryMedals(context.Context, string) (*database.CountryMedals, error)

	// TopSports returns the disciplines with the most medals.
	TopSports(context.Context, int, string) ([]database.SportMedals, error)

	// Athletes returns the athletes with the most medals matching the filter.
	Athletes(context.Context, database.AthleteFilter) ([]database.AthleteMedals, error)

	// TopAthletes returns the athletes with the most medals.
	TopAthletes(context.Context, int) ([]database.AthleteMedals, error)

	// AthletesBySport returns the top athletes of each discipline.
	AthletesBySport(context.Context, int) (map[string][]database.SportAthlete, error)

	// Legends returns the athletes with many gold medals.
	Legends(context.Context, int, int) ([]database.AthleteMedals, error)

	// AthleteStats returns totals and leaders of the athletes.
	AthleteStats(context.Context) (*database.AthleteStats, error)
}

// loaded is a model set with its report.
type loaded struct {
	set    *training.ModelSet
	report *training.Report
}

type service struct {
	config    *config.Config
	source    history.Source
	training  training.Training
	storage   storage.Storage
	predictor predictor.Predictor
	stats     database.Stats

	fsm *fsm.FSM

	// mu serializes retraining.
	mu *sync.Mutex

	// rw guards swapping of loaded models.
	rw     *sync.RWMutex
	full   *loaded
	simple *loaded

	isTraining    *atomic.Bool
	lastTrainedAt *atomic.Time
}

// Option is a functional option for service.
type Option func(s *service)

// WithStats set the aggregate queries of the database source.
func WithStats(stats database.Stats) Option {
	return func(s *service) {
		s.stats = stats
	}
}

// New returns a new Service instance.
func New(cfg *config.Config, source history.Source, t training.Training, storage storage.Storage, options ...Option) Service {
	s := &service{
		config:   cfg,
		source:   source,
		training: t,
		storage:  storage,
		predictor: predictor.New(predictor.Config{
			RecentWindow:       cfg.Training.RecentWindow,
			ConfidenceOlympics: cfg.Prediction.ConfidenceOlympics,
			DataSource:         cfg.Prediction.DataSource,
		}, source),
		mu:            &sync.Mutex{},
		rw:            &sync.RWMutex{},
		isTraining:    atomic.NewBool(false),
		lastTrainedAt: atomic.NewTime(time.Time{}),
	}

	s.fsm = fsm.NewFSM(
		StateUninitialized,
		fsm.Events{
			{Name: EventLoad, Src: []string{StateUninitialized}, Dst: StateLoaded},
			{Name: EventTrain, Src: []string{StateUninitialized}, Dst: StateTrained},
			{Name: EventSave, Src: []string{StateTrained}, Dst: StateSaved},
			{Name: EventServe, Src: []string{StateSaved}, Dst: StateLoaded},
			{Name: EventFail, Src: []string{StateUninitialized, StateTrained, StateSaved}, Dst: StateFailed},
		},
		fsm.Callbacks{
			"enter_state": func(ctx context.Context, e *fsm.Event) {
				logger.Infof("forecaster state is %s", e.Dst)
			},
		},
	)

	for _, opt := range options {
		opt(s)
	}

	return s
}

// Start loads persisted artifacts, or trains and saves a model set when they are missing.
func (s *service) Start(ctx context.Context) error {
	full, err := s.load(training.ModeFull)
	if err == nil {
		s.swap(training.ModeFull, full)
		s.loadSimple()
		return s.fsm.Event(ctx, EventLoad)
	}

	if !errors.Is(err, storage.ErrArtifactMissing) {
		return s.fail(ctx, fmt.Errorf("load artifacts: %w", err))
	}

	logger.Warnf("artifacts missing, train a new model set: %s", err.Error())
	s.mu.Lock()
	defer s.mu.Unlock()

	set, report, err := s.train(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.fsm.Event(ctx, EventTrain); err != nil {
		return err
	}

	if err := s.save(ctx, set, report); err != nil {
		return s.fail(ctx, err)
	}

	if err := s.fsm.Event(ctx, EventSave); err != nil {
		return err
	}

	s.loadSimple()
	return s.fsm.Event(ctx, EventServe)
}

func (s *service) fail(ctx context.Context, err error) error {
	if ferr := s.fsm.Event(ctx, EventFail); ferr != nil {
		logger.Errorf("fail event: %s", ferr.Error())
	}

	return err
}

// loadSimple loads the optional simple model set.
func (s *service) loadSimple() {
	simple, err := s.load(training.ModeSimple)
	if err != nil {
		logger.Infof("simple model set not loaded: %s", err.Error())
		return
	}

	s.swap(training.ModeSimple, simple)
}

func (s *service) load(mode string) (*loaded, error) {
	set, err := s.storage.LoadModelSet(mode)
	if err != nil {
		return nil, err
	}

	report, err := s.storage.LoadReport(mode)
	if err != nil {
		if !errors.Is(err, storage.ErrArtifactMissing) {
			return nil, err
		}

		logger.Warnf("%s metrics report missing", mode)
	}

	return &loaded{set: set, report: report}, nil
}

func (s *service) swap(mode string, m *loaded) {
	s.rw.Lock()
	defer s.rw.Unlock()

	if mode == training.ModeSimple {
		s.simple = m
		return
	}

	s.full = m
	if m.set != nil && m.set.TrainedAt.After(s.lastTrainedAt.Load()) {
		s.lastTrainedAt.Store(m.set.TrainedAt)
	}
}

func (s *service) current(mode string) *loaded {
	s.rw.RLock()
	defer s.rw.RUnlock()

	if mode == training.ModeSimple {
		return s.simple
	}

	return s.full
}

// train fits a full model set, the caller holds mu.
func (s *service) train(ctx context.Context) (*training.ModelSet, *training.Report, error) {
	s.isTraining.Store(true)
	defer s.isTraining.Store(false)

	metrics.TrainStartedCount.WithLabelValues(training.ModeFull).Inc()
	histories, err := s.source.Histories(ctx)
	if err != nil {
		metrics.TrainFailureCount.WithLabelValues(training.ModeFull).Inc()
		return nil, nil, err
	}

	set, report, err := s.training.Train(ctx, histories)
	if err != nil {
		metrics.TrainFailureCount.WithLabelValues(training.ModeFull).Inc()
		return nil, nil, err
	}

	observe(report)
	return set, report, nil
}

// save persists the model set, its report and regenerated predictions,
// then swaps the set in.
func (s *service) save(ctx context.Context, set *training.ModelSet, report *training.Report) error {
	if err := s.storage.SaveModelSet(set); err != nil {
		return err
	}

	if err := s.storage.SaveReport(report); err != nil {
		return err
	}

	records, err := s.predictor.Top(ctx, set, s.config.Prediction.TopLimit)
	if err != nil {
		return err
	}

	if err := s.storage.SavePredictions(records); err != nil {
		return err
	}

	s.swap(training.ModeFull, &loaded{set: set, report: report})
	return nil
}

func observe(report *training.Report) {
	metrics.ExcludedRowsCount.WithLabelValues(report.Mode).Add(float64(report.ExcludedRows))
	for name, m := range report.Models {
		metrics.ModelR2Gauge.WithLabelValues(report.Mode, name).Set(m.R2)
	}
}

// State returns the startup state.
func (s *service) State() string {
	return s.fsm.Current()
}

// Health returns the status of the service.
func (s *service) Health() Health {
	full, simple := s.current(training.ModeFull), s.current(training.ModeSimple)
	h := Health{
		Status:       HealthStatusDegraded,
		State:        s.fsm.Current(),
		ModelsLoaded: full != nil,
		SimpleLoaded: simple != nil,
		Training:     s.isTraining.Load(),
		Version:      version.GitVersion,
	}

	if h.ModelsLoaded {
		h.Status = HealthStatusHealthy
	}

	if t := s.lastTrainedAt.Load(); !t.IsZero() {
		h.LastTrainedAt = &t
	}

	return h
}

// PredictCountry returns the prediction of a country.
func (s *service) PredictCountry(ctx context.Context, key string) (*predictor.PredictionRecord, error) {
	full := s.current(training.ModeFull)
	if full == nil {
		return nil, ErrNotTrained
	}

	record, err := s.predictor.Predict(ctx, full.set, key)
	if err != nil {
		if errors.Is(err, predictor.ErrCountryNotFound) {
			metrics.PredictionNotFoundCount.Inc()
		}

		return nil, err
	}

	metrics.PredictionCount.WithLabelValues("country").Inc()
	return record, nil
}

// Top serves the generated predictions when they cover the limit, it
// computes predictions otherwise.
func (s *service) Top(ctx context.Context, limit int) ([]predictor.PredictionRecord, error) {
	full := s.current(training.ModeFull)
	if full == nil {
		return nil, ErrNotTrained
	}

	metrics.PredictionCount.WithLabelValues("top").Inc()
	if limit <= s.config.Prediction.TopLimit {
		records, err := s.storage.LoadPredictions()
		if err == nil {
			if len(records) > limit {
				records = records[:limit]
			}

			return records, nil
		}

		if !errors.Is(err, storage.ErrArtifactMissing) {
			logger.Warnf("load predictions failed: %s", err.Error())
		}
	}

	return s.predictor.Top(ctx, full.set, limit)
}

// Paris2024 returns the generated predictions list.
func (s *service) Paris2024(ctx context.Context) ([]predictor.PredictionRecord, error) {
	return s.Top(ctx, s.config.Prediction.TopLimit)
}

// PredictTotal returns the total medals prediction of a games.
func (s *service) PredictTotal(ctx context.Context, year int, season string) (*predictor.TotalPrediction, error) {
	simple := s.current(training.ModeSimple)
	if simple == nil {
		return nil, ErrNotTrained
	}

	metrics.PredictionCount.WithLabelValues("total").Inc()
	return predictor.PredictTotal(simple.set, year, season)
}

// ModelsInfo returns reports and configuration of the models.
func (s *service) ModelsInfo(ctx context.Context) (*ModelsInfo, error) {
	full := s.current(training.ModeFull)
	if full == nil {
		return nil, ErrNotTrained
	}

	info := &ModelsInfo{
		Report:           full.report,
		Candidates:       s.config.Training.Candidates,
		SimpleCandidates: s.config.Training.Simple.Candidates,
		Features:         full.set.FeatureNames,
		Targets:          full.set.TargetNames,
		TargetDefinition: training.TargetDefinition,
	}

	if simple := s.current(training.ModeSimple); simple != nil {
		info.SimpleReport = simple.report
	}

	return info, nil
}

// Retrain trains, saves and swaps in a new full model set. In flight
// predictions keep the set they started with.
func (s *service) Retrain(ctx context.Context) (*training.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, report, err := s.train(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.save(ctx, set, report); err != nil {
		return nil, err
	}

	return report, nil
}

// RetrainSimple trains, saves and swaps in a new simple model set, an empty
// country uses the configured one.
func (s *service) RetrainSimple(ctx context.Context, country string) (*training.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isTraining.Store(true)
	defer s.isTraining.Store(false)

	if country == "" {
		country = s.config.Training.Simple.Country
	}

	metrics.TrainStartedCount.WithLabelValues(training.ModeSimple).Inc()
	totals, err := s.source.GameTotals(ctx)
	if err != nil {
		metrics.TrainFailureCount.WithLabelValues(training.ModeSimple).Inc()
		return nil, err
	}

	set, report, err := s.training.TrainSimple(ctx, totals, country)
	if err != nil {
		metrics.TrainFailureCount.WithLabelValues(training.ModeSimple).Inc()
		return nil, err
	}
	observe(report)

	if err := s.storage.SaveModelSet(set); err != nil {
		return nil, err
	}

	if err := s.storage.SaveReport(report); err != nil {
		return nil, err
	}

	s.swap(training.ModeSimple, &loaded{set: set, report: report})
	return report, nil
}

// Overview returns counts of the medals corpus.
func (s *service) Overview(ctx context.Context) (*database.Overview, error) {
	if s.stats == nil {
		return nil, ErrStatsUnavailable
	}

	return s.stats.Overview(ctx)
}

// TopCountries returns the countries with the most medals.
func (s *service) TopCountries(ctx context.Context, limit int) ([]database.CountryMedals, error) {
	if s.stats == nil {
		return nil, ErrStatsUnavailable
	}

	return s.stats.TopCountries(ctx, limit)
}

// MedalsByYear returns medals per games year.
func (s *service) MedalsByYear(ctx context.Context, countryCode string) ([]database.YearMedals, error) {
	if s.stats == nil {
		return nil, ErrStatsUnavailable
	}

	return s.stats.MedalsByYear(ctx, countryCode)
}

// Hosts returns every games.
func (s *service) Hosts(ctx context.Context) ([]database.Host, error) {
	if s.stats == nil {
		return nil, ErrStatsUnavailable
	}

	return s.stats.Hosts(ctx)
}

// CountryMedals returns the medal count of one country.
func (s *service) CountryMedals(ctx context.Context, countryCode string) (*database.CountryMedals, error) {
	if s.stats == nil {
		return nil, ErrStatsUnavailable
	}

	return s.stats.CountryMedals(ctx, countryCode)
}

// TopSports returns the disciplines with the most medals.
func (s *service) TopSports(ctx context.Context, limit int, countryCode string) ([]database.SportMedals, error) {
	if s.stats == nil {
		return nil, ErrStatsUnavailable
	}

	return s.stats.TopSports(ctx, limit, countryCode)
}

// Athletes returns the athletes with the most medals matching the filter.
func (s *service) Athletes(ctx context.Context, filter database.AthleteFilter) ([]database.AthleteMedals, error) {
	if s.stats == nil {
		return nil, ErrStatsUnavailable
	}

	return s.stats.Athletes(ctx, filter)
}

// TopAthletes returns the athletes with the most medals.
func (s *service) TopAthletes(ctx context.Context, limit int) ([]database.AthleteMedals, error) {
	if s.stats == nil {
		return nil, ErrStatsUnavailable
	}

	return s.stats.TopAthletes(ctx, limit)
}

// AthletesBySport returns the top athletes of each discipline.
func (s *service) AthletesBySport(ctx context.Context, limit int) (map[string][]database.SportAthlete, error) {
	if s.stats == nil {
		return nil, ErrStatsUnavailable
	}

	return s.stats.AthletesBySport(ctx, limit)
}

// Legends returns the athletes with at least minGold gold medals.
func (s *service) Legends(ctx context.Context, minGold, limit int) ([]database.AthleteMedals, error) {
	if s.stats == nil {
		return nil, ErrStatsUnavailable
	}

	return s.stats.Legends(ctx, minGold, limit)
}

// AthleteStats returns totals and leaders of the athletes.
func (s *service) AthleteStats(ctx context.Context) (*database.AthleteStats, error) {
	if s.stats == nil {
		return nil, ErrStatsUnavailable
	}

	return s.stats.AthleteStats(ctx)
}
