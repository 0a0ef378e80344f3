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
	"reflect"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medalcast/medalcast/forecaster/config"
	"github.com/medalcast/medalcast/forecaster/database"
	databasemocks "github.com/medalcast/medalcast/forecaster/database/mocks"
	"github.com/medalcast/medalcast/forecaster/history"
	historymocks "github.com/medalcast/medalcast/forecaster/history/mocks"
	"github.com/medalcast/medalcast/forecaster/predictor"
	"github.com/medalcast/medalcast/forecaster/storage"
	storagemocks "github.com/medalcast/medalcast/forecaster/storage/mocks"
	"github.com/medalcast/medalcast/forecaster/training"
	trainingmocks "github.com/medalcast/medalcast/forecaster/training/mocks"
	"github.com/medalcast/medalcast/forecaster/training/models"
)

func mockConfig() *config.Config {
	cfg := config.New()
	cfg.Training.Candidates = []config.CandidateConfig{
		{Name: "linear_regression", Type: models.TypeLinearRegression},
		{Name: "random_forest", Type: models.TypeRandomForest, Trees: 10, MaxDepth: 15, MinSamplesSplit: 5, MinSamplesLeaf: 2},
	}

	return cfg
}

func mockCSVSource(t *testing.T) history.Source {
	source, err := history.NewCSVSource("../history/testdata/country_history.csv", "../history/testdata/game_totals.csv")
	require.NoError(t, err)
	return source
}

var (
	mockModelSet = &training.ModelSet{
		Mode:      training.ModeFull,
		RunID:     "foo",
		TrainedAt: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		Best:      "linear_regression",
	}

	mockReport = &training.Report{
		RunID:     "foo",
		Mode:      training.ModeFull,
		BestModel: "linear_regression",
	}
)

func TestService_New(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := New(mockConfig(), historymocks.NewMockSource(ctl), trainingmocks.NewMockTraining(ctl), storagemocks.NewMockStorage(ctl))
	assert := assert.New(t)
	assert.Equal(reflect.TypeOf(s).Elem().Name(), "service")
	assert.Equal(StateUninitialized, s.State())
	assert.Equal(HealthStatusDegraded, s.Health().Status)
}

func TestService_Start(t *testing.T) {
	tests := []struct {
		name   string
		mock   func(ms *historymocks.MockSourceMockRecorder, mt *trainingmocks.MockTrainingMockRecorder, mst *storagemocks.MockStorageMockRecorder)
		expect func(t *testing.T, s Service, err error)
	}{
		{
			name: "load persisted artifacts",
			mock: func(ms *historymocks.MockSourceMockRecorder, mt *trainingmocks.MockTrainingMockRecorder, mst *storagemocks.MockStorageMockRecorder) {
				gomock.InOrder(
					mst.LoadModelSet(training.ModeFull).Return(mockModelSet, nil).Times(1),
					mst.LoadReport(training.ModeFull).Return(mockReport, nil).Times(1),
					mst.LoadModelSet(training.ModeSimple).Return(nil, storage.ErrArtifactMissing).Times(1),
				)
			},
			expect: func(t *testing.T, s Service, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(StateLoaded, s.State())

				h := s.Health()
				assert.Equal(HealthStatusHealthy, h.Status)
				assert.True(h.ModelsLoaded)
				assert.False(h.SimpleLoaded)
				assert.False(h.Training)
				assert.Equal(mockModelSet.TrainedAt, *h.LastTrainedAt)
			},
		},
		{
			name: "train when artifacts are missing",
			mock: func(ms *historymocks.MockSourceMockRecorder, mt *trainingmocks.MockTrainingMockRecorder, mst *storagemocks.MockStorageMockRecorder) {
				gomock.InOrder(
					mst.LoadModelSet(training.ModeFull).Return(nil, storage.ErrArtifactMissing).Times(1),
					ms.Histories(gomock.Any()).Return([]history.CountryHistory{}, nil).Times(1),
					mt.Train(gomock.Any(), []history.CountryHistory{}).Return(mockModelSet, mockReport, nil).Times(1),
					mst.SaveModelSet(mockModelSet).Return(nil).Times(1),
					mst.SaveReport(mockReport).Return(nil).Times(1),
					ms.TopCountryCodes(gomock.Any(), config.DefaultTopLimit).Return([]string{}, nil).Times(1),
					mst.SavePredictions([]predictor.PredictionRecord{}).Return(nil).Times(1),
					mst.LoadModelSet(training.ModeSimple).Return(nil, storage.ErrArtifactMissing).Times(1),
				)
			},
			expect: func(t *testing.T, s Service, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(StateLoaded, s.State())
				assert.True(s.Health().ModelsLoaded)
			},
		},
		{
			name: "corrupt artifacts",
			mock: func(ms *historymocks.MockSourceMockRecorder, mt *trainingmocks.MockTrainingMockRecorder, mst *storagemocks.MockStorageMockRecorder) {
				mst.LoadModelSet(training.ModeFull).Return(nil, errors.New("foo")).Times(1)
			},
			expect: func(t *testing.T, s Service, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "load artifacts: foo")
				assert.Equal(StateFailed, s.State())
			},
		},
		{
			name: "training fails",
			mock: func(ms *historymocks.MockSourceMockRecorder, mt *trainingmocks.MockTrainingMockRecorder, mst *storagemocks.MockStorageMockRecorder) {
				gomock.InOrder(
					mst.LoadModelSet(training.ModeFull).Return(nil, storage.ErrArtifactMissing).Times(1),
					ms.Histories(gomock.Any()).Return(nil, nil).Times(1),
					mt.Train(gomock.Any(), gomock.Any()).Return(nil, nil, training.ErrDataInsufficient).Times(1),
				)
			},
			expect: func(t *testing.T, s Service, err error) {
				assert := assert.New(t)
				assert.True(errors.Is(err, training.ErrDataInsufficient))
				assert.Equal(StateFailed, s.State())
				assert.False(s.Health().ModelsLoaded)
			},
		},
		{
			name: "saving fails",
			mock: func(ms *historymocks.MockSourceMockRecorder, mt *trainingmocks.MockTrainingMockRecorder, mst *storagemocks.MockStorageMockRecorder) {
				gomock.InOrder(
					mst.LoadModelSet(training.ModeFull).Return(nil, storage.ErrArtifactMissing).Times(1),
					ms.Histories(gomock.Any()).Return(nil, nil).Times(1),
					mt.Train(gomock.Any(), gomock.Any()).Return(mockModelSet, mockReport, nil).Times(1),
					mst.SaveModelSet(mockModelSet).Return(errors.New("bar")).Times(1),
				)
			},
			expect: func(t *testing.T, s Service, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "bar")
				assert.Equal(StateFailed, s.State())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			source := historymocks.NewMockSource(ctl)
			tr := trainingmocks.NewMockTraining(ctl)
			st := storagemocks.NewMockStorage(ctl)
			tc.mock(source.EXPECT(), tr.EXPECT(), st.EXPECT())

			s := New(mockConfig(), source, tr, st)
			tc.expect(t, s, s.Start(context.Background()))
		})
	}
}

func TestService_RetrainFailureKeepsModelSet(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	source := historymocks.NewMockSource(ctl)
	tr := trainingmocks.NewMockTraining(ctl)
	st := storagemocks.NewMockStorage(ctl)

	gomock.InOrder(
		st.EXPECT().LoadModelSet(training.ModeFull).Return(mockModelSet, nil).Times(1),
		st.EXPECT().LoadReport(training.ModeFull).Return(mockReport, nil).Times(1),
		st.EXPECT().LoadModelSet(training.ModeSimple).Return(nil, storage.ErrArtifactMissing).Times(1),
		source.EXPECT().Histories(gomock.Any()).Return(nil, nil).Times(1),
		tr.EXPECT().Train(gomock.Any(), gomock.Any()).Return(nil, nil, training.ErrModelNaN).Times(1),
	)

	s := New(mockConfig(), source, tr, st)
	require.NoError(t, s.Start(context.Background()))

	_, err := s.Retrain(context.Background())
	assert.True(t, errors.Is(err, training.ErrModelNaN))

	info, err := s.ModelsInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mockReport, info.Report)
	assert.False(t, s.Health().Training)
}

func TestService_NotTrained(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := New(mockConfig(), historymocks.NewMockSource(ctl), trainingmocks.NewMockTraining(ctl), storagemocks.NewMockStorage(ctl))
	ctx := context.Background()
	assert := assert.New(t)

	_, err := s.PredictCountry(ctx, "FR")
	assert.True(errors.Is(err, ErrNotTrained))
	_, err = s.Top(ctx, 5)
	assert.True(errors.Is(err, ErrNotTrained))
	_, err = s.PredictTotal(ctx, 2024, "Summer")
	assert.True(errors.Is(err, ErrNotTrained))
	_, err = s.ModelsInfo(ctx)
	assert.True(errors.Is(err, ErrNotTrained))
}

func TestService_Stats(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	stats := databasemocks.NewMockStats(ctl)
	ctx := context.Background()

	withoutStats := New(mockConfig(), historymocks.NewMockSource(ctl), trainingmocks.NewMockTraining(ctl), storagemocks.NewMockStorage(ctl))
	_, err := withoutStats.Overview(ctx)
	assert.True(t, errors.Is(err, ErrStatsUnavailable))
	_, err = withoutStats.Hosts(ctx)
	assert.True(t, errors.Is(err, ErrStatsUnavailable))

	gomock.InOrder(
		stats.EXPECT().Overview(gomock.Any()).Return(&database.Overview{TotalMedals: 11}, nil).Times(1),
		stats.EXPECT().TopCountries(gomock.Any(), 10).Return([]database.CountryMedals{{CountryCode: "US"}}, nil).Times(1),
		stats.EXPECT().MedalsByYear(gomock.Any(), "FR").Return([]database.YearMedals{{Year: 2012}}, nil).Times(1),
		stats.EXPECT().Hosts(gomock.Any()).Return([]database.Host{{GameSlug: "paris-2024"}}, nil).Times(1),
	)

	s := New(mockConfig(), historymocks.NewMockSource(ctl), trainingmocks.NewMockTraining(ctl), storagemocks.NewMockStorage(ctl), WithStats(stats))
	overview, err := s.Overview(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(11), overview.TotalMedals)

	countries, err := s.TopCountries(ctx, 10)
	assert.NoError(t, err)
	assert.Len(t, countries, 1)

	years, err := s.MedalsByYear(ctx, "FR")
	assert.NoError(t, err)
	assert.Equal(t, 2012, years[0].Year)

	hosts, err := s.Hosts(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "paris-2024", hosts[0].GameSlug)
}

func TestService_Athletes(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		mock   func(m *databasemocks.MockStatsMockRecorder)
		expect func(t *testing.T, s Service)
	}{
		{
			name: "country medals",
			mock: func(m *databasemocks.MockStatsMockRecorder) {
				m.CountryMedals(gomock.Any(), "FR").Return(&database.CountryMedals{CountryCode: "FR", TotalMedals: 4}, nil).Times(1)
			},
			expect: func(t *testing.T, s Service) {
				country, err := s.CountryMedals(ctx, "FR")
				assert.NoError(t, err)
				assert.Equal(t, int64(4), country.TotalMedals)
			},
		},
		{
			name: "top sports",
			mock: func(m *databasemocks.MockStatsMockRecorder) {
				m.TopSports(gomock.Any(), 10, "").Return([]database.SportMedals{{Sport: "Athletics", Medals: 5}}, nil).Times(1)
			},
			expect: func(t *testing.T, s Service) {
				sports, err := s.TopSports(ctx, 10, "")
				assert.NoError(t, err)
				assert.Equal(t, "Athletics", sports[0].Sport)
			},
		},
		{
			name: "athletes",
			mock: func(m *databasemocks.MockStatsMockRecorder) {
				m.Athletes(gomock.Any(), database.AthleteFilter{Limit: 50, Sport: "Swimming"}).Return([]database.AthleteMedals{{AthleteFullName: "Laure Manaudou"}}, nil).Times(1)
			},
			expect: func(t *testing.T, s Service) {
				athletes, err := s.Athletes(ctx, database.AthleteFilter{Limit: 50, Sport: "Swimming"})
				assert.NoError(t, err)
				assert.Len(t, athletes, 1)
			},
		},
		{
			name: "top athletes",
			mock: func(m *databasemocks.MockStatsMockRecorder) {
				m.TopAthletes(gomock.Any(), 3).Return([]database.AthleteMedals{{AthleteFullName: "Carl Lewis"}}, nil).Times(1)
			},
			expect: func(t *testing.T, s Service) {
				athletes, err := s.TopAthletes(ctx, 3)
				assert.NoError(t, err)
				assert.Equal(t, "Carl Lewis", athletes[0].AthleteFullName)
			},
		},
		{
			name: "athletes by sport",
			mock: func(m *databasemocks.MockStatsMockRecorder) {
				m.AthletesBySport(gomock.Any(), 5).Return(map[string][]database.SportAthlete{"Skiing": {{AthleteFullName: "Marit Bjoergen"}}}, nil).Times(1)
			},
			expect: func(t *testing.T, s Service) {
				bySport, err := s.AthletesBySport(ctx, 5)
				assert.NoError(t, err)
				assert.Contains(t, bySport, "Skiing")
			},
		},
		{
			name: "legends",
			mock: func(m *databasemocks.MockStatsMockRecorder) {
				m.Legends(gomock.Any(), database.DefaultLegendMinGold, database.DefaultLegendLimit).Return(nil, errors.New("foo")).Times(1)
			},
			expect: func(t *testing.T, s Service) {
				_, err := s.Legends(ctx, database.DefaultLegendMinGold, database.DefaultLegendLimit)
				assert.EqualError(t, err, "foo")
			},
		},
		{
			name: "athlete stats",
			mock: func(m *databasemocks.MockStatsMockRecorder) {
				m.AthleteStats(gomock.Any()).Return(&database.AthleteStats{TotalAthletes: 6}, nil).Times(1)
			},
			expect: func(t *testing.T, s Service) {
				summary, err := s.AthleteStats(ctx)
				assert.NoError(t, err)
				assert.Equal(t, int64(6), summary.TotalAthletes)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			stats := databasemocks.NewMockStats(ctl)
			tc.mock(stats.EXPECT())

			tc.expect(t, New(mockConfig(), historymocks.NewMockSource(ctl), trainingmocks.NewMockTraining(ctl), storagemocks.NewMockStorage(ctl), WithStats(stats)))
		})
	}
}

func TestService_AthletesWithoutStats(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	s := New(mockConfig(), historymocks.NewMockSource(ctl), trainingmocks.NewMockTraining(ctl), storagemocks.NewMockStorage(ctl))
	ctx := context.Background()

	_, err := s.CountryMedals(ctx, "FR")
	assert.True(t, errors.Is(err, ErrStatsUnavailable))
	_, err = s.TopSports(ctx, 10, "")
	assert.True(t, errors.Is(err, ErrStatsUnavailable))
	_, err = s.Athletes(ctx, database.AthleteFilter{Limit: 50})
	assert.True(t, errors.Is(err, ErrStatsUnavailable))
	_, err = s.TopAthletes(ctx, 10)
	assert.True(t, errors.Is(err, ErrStatsUnavailable))
	_, err = s.AthletesBySport(ctx, 5)
	assert.True(t, errors.Is(err, ErrStatsUnavailable))
	_, err = s.Legends(ctx, database.DefaultLegendMinGold, database.DefaultLegendLimit)
	assert.True(t, errors.Is(err, ErrStatsUnavailable))
	_, err = s.AthleteStats(ctx)
	assert.True(t, errors.Is(err, ErrStatsUnavailable))
}

func TestService_TrainAndServe(t *testing.T) {
	cfg := mockConfig()
	source := mockCSVSource(t)
	dir := t.TempDir()
	ctx := context.Background()

	s := New(cfg, source, training.New(&cfg.Training), storage.New(dir))
	require.NoError(t, s.Start(ctx))
	assert := assert.New(t)
	assert.Equal(StateLoaded, s.State())

	record, err := s.PredictCountry(ctx, "fr")
	require.NoError(t, err)
	assert.Equal("FR", record.CountryCode)
	assert.Equal(predictor.ConfidenceHigh, record.ModelConfidence)
	assert.GreaterOrEqual(record.PredictedGold, 0)
	assert.Len(record.Models, 2)

	_, err = s.PredictCountry(ctx, "XX")
	assert.True(errors.Is(err, predictor.ErrCountryNotFound))

	records, err := s.Paris2024(ctx)
	require.NoError(t, err)
	assert.Len(records, 21)
	for i := 1; i < len(records); i++ {
		assert.GreaterOrEqual(records[i-1].PredictedTotal, records[i].PredictedTotal)
	}

	top, err := s.Top(ctx, 5)
	require.NoError(t, err)
	assert.Equal(records[:5], top)

	computed, err := s.Top(ctx, cfg.Prediction.TopLimit+5)
	require.NoError(t, err)
	assert.Len(computed, 21)

	_, err = s.PredictTotal(ctx, 2024, "Summer")
	assert.True(errors.Is(err, ErrNotTrained))

	report, err := s.RetrainSimple(ctx, "France")
	require.NoError(t, err)
	assert.Equal(training.ModeSimple, report.Mode)
	assert.Equal("France", report.Country)

	total, err := s.PredictTotal(ctx, 2024, "Summer")
	require.NoError(t, err)
	assert.Equal(report.BestModel, total.Model)

	info, err := s.ModelsInfo(ctx)
	require.NoError(t, err)
	assert.Equal(training.FeatureNames, info.Features)
	assert.NotNil(info.SimpleReport)
	assert.Len(info.Candidates, 2)

	// A restarted service loads what the first one saved.
	restarted := New(cfg, source, training.New(&cfg.Training), storage.New(dir))
	require.NoError(t, restarted.Start(ctx))
	h := restarted.Health()
	assert.True(h.ModelsLoaded)
	assert.True(h.SimpleLoaded)

	again, err := restarted.PredictCountry(ctx, "FR")
	require.NoError(t, err)
	assert.Equal(record, again)
}
