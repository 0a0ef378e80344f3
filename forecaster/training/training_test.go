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

package training

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medalcast/medalcast/forecaster/config"
	"github.com/medalcast/medalcast/forecaster/history"
	"github.com/medalcast/medalcast/forecaster/training/models"
)

var mockTrainingConfig = &config.TrainingConfig{
	TestPercent:    0.2,
	Seed:           42,
	MinTotalMedals: 10,
	RecentYear:     2012,
	RecentWindow:   3,
	Candidates: []config.CandidateConfig{
		{Name: "linear_regression", Type: models.TypeLinearRegression},
		{Name: "random_forest", Type: models.TypeRandomForest, Trees: 20, MaxDepth: 15, MinSamplesSplit: 5, MinSamplesLeaf: 2},
	},
	Simple: config.SimpleTrainingConfig{
		Candidates: []config.CandidateConfig{
			{Name: "linear_regression", Type: models.TypeLinearRegression},
			{Name: "decision_tree", Type: models.TypeDecisionTree, MinSamplesSplit: 2, MinSamplesLeaf: 1},
		},
	},
}

func mockSource(t *testing.T) history.Source {
	source, err := history.NewCSVSource("../history/testdata/country_history.csv", "../history/testdata/game_totals.csv")
	require.NoError(t, err)
	return source
}

func TestTraining_New(t *testing.T) {
	tests := []struct {
		name   string
		expect func(t *testing.T, s any)
	}{
		{
			name: "new training",
			expect: func(t *testing.T, s any) {
				assert := assert.New(t)
				assert.Equal(reflect.TypeOf(s).Elem().Name(), "training")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.expect(t, New(mockTrainingConfig))
		})
	}
}

func TestTraining_Train(t *testing.T) {
	histories, err := mockSource(t).Histories(context.Background())
	require.NoError(t, err)

	tests := []struct {
		name      string
		histories []history.CountryHistory
		expect    func(t *testing.T, set *ModelSet, report *Report, err error)
	}{
		{
			name:      "train on country histories",
			histories: histories,
			expect: func(t *testing.T, set *ModelSet, report *Report, err error) {
				assert := assert.New(t)
				require.NoError(t, err)
				assert.Equal(ModeFull, set.Mode)
				assert.Equal(FeatureNames, set.FeatureNames)
				assert.Len(set.Models, 2)
				assert.Equal("linear_regression", set.Models[0].Name)
				assert.Equal("random_forest", set.Models[1].Name)
				assert.Equal(report.BestModel, set.Best)
				assert.Equal(set.RunID, report.RunID)
				assert.Len(set.Scaler.Means, len(FeatureNames))

				assert.Equal(20, report.Rows)
				assert.Equal(16, report.TrainRows)
				assert.Equal(4, report.TestRows)
				assert.Equal(2, report.ExcludedRows)
				assert.Equal(1, report.BelowThreshold)
				assert.Equal(TargetDefinition, report.TargetDefinition)
				assert.Contains(report.Models, "linear_regression")
				assert.Contains(report.Models, "random_forest")

				best := report.Models[report.BestModel]
				for _, m := range report.Models {
					assert.LessOrEqual(m.R2, best.R2)
				}
			},
		},
		{
			name: "too few rows",
			histories: []history.CountryHistory{
				histories[0],
				histories[1],
			},
			expect: func(t *testing.T, set *ModelSet, report *Report, err error) {
				assert := assert.New(t)
				assert.True(errors.Is(err, ErrDataInsufficient))
				assert.Nil(set)
				assert.Nil(report)
			},
		},
		{
			name:      "empty corpus",
			histories: []history.CountryHistory{},
			expect: func(t *testing.T, set *ModelSet, report *Report, err error) {
				assert.True(t, errors.Is(err, ErrDataInsufficient))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			set, report, err := New(mockTrainingConfig).Train(context.Background(), tc.histories)
			tc.expect(t, set, report, err)
		})
	}
}

func TestTraining_TrainDeterministic(t *testing.T) {
	histories, err := mockSource(t).Histories(context.Background())
	require.NoError(t, err)

	_, report1, err := New(mockTrainingConfig).Train(context.Background(), histories)
	require.NoError(t, err)
	_, report2, err := New(mockTrainingConfig).Train(context.Background(), histories)
	require.NoError(t, err)

	assert.Equal(t, report1.Models, report2.Models)
	assert.Equal(t, report1.BestModel, report2.BestModel)
	assert.NotEqual(t, report1.RunID, report2.RunID)
}

func TestTraining_RetrainSamePredictions(t *testing.T) {
	histories, err := mockSource(t).Histories(context.Background())
	require.NoError(t, err)
	features := [][]float64{Features(mockFrance, 3)}

	var first [][][]float64
	for i := 0; i < 10; i++ {
		set, _, err := New(mockTrainingConfig).Train(context.Background(), histories)
		require.NoError(t, err)

		out, err := set.PredictEach(features)
		require.NoError(t, err)
		if i == 0 {
			first = out
			continue
		}

		assert.Equal(t, first, out, "retrain %d", i)
	}
}

func TestTraining_PredictEach(t *testing.T) {
	histories, err := mockSource(t).Histories(context.Background())
	require.NoError(t, err)

	set, _, err := New(mockTrainingConfig).Train(context.Background(), histories)
	require.NoError(t, err)

	out, err := set.PredictEach([][]float64{Features(mockFrance, 3)})
	require.NoError(t, err)
	assert := assert.New(t)
	assert.Len(out, 2)
	for _, predictions := range out {
		assert.Len(predictions, 1)
		assert.Len(predictions[0], len(TargetNames))
	}

	_, err = set.PredictEach([][]float64{{1, 2}})
	assert.Error(err)
}

func TestTraining_TrainSimple(t *testing.T) {
	totals, err := mockSource(t).GameTotals(context.Background())
	require.NoError(t, err)

	tests := []struct {
		name    string
		country string
		expect  func(t *testing.T, set *ModelSet, report *Report, err error)
	}{
		{
			name:    "train on every country",
			country: "",
			expect: func(t *testing.T, set *ModelSet, report *Report, err error) {
				assert := assert.New(t)
				require.NoError(t, err)
				assert.Equal(ModeSimple, set.Mode)
				assert.Len(set.Models, 1)
				assert.Equal(set.Best, set.Models[0].Name)
				assert.Equal([]string{"Summer", "Winter"}, set.Encoder.Classes)
				assert.Equal(48, report.Rows)
				assert.Len(report.Models, 2)
			},
		},
		{
			name:    "train on one country",
			country: "france",
			expect: func(t *testing.T, set *ModelSet, report *Report, err error) {
				assert := assert.New(t)
				require.NoError(t, err)
				assert.Equal(16, report.Rows)
				assert.Equal("france", report.Country)

				features, err := SimpleFeatures(set.Encoder, 2024, "Summer")
				assert.NoError(err)
				out, err := set.PredictEach([][]float64{features})
				assert.NoError(err)
				assert.Len(out[0][0], 1)
			},
		},
		{
			name:    "unknown country",
			country: "atlantis",
			expect: func(t *testing.T, set *ModelSet, report *Report, err error) {
				assert.True(t, errors.Is(err, ErrDataInsufficient))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			set, report, err := New(mockTrainingConfig).TrainSimple(context.Background(), totals, tc.country)
			tc.expect(t, set, report, err)
		})
	}
}

func TestSelectBest(t *testing.T) {
	tests := []struct {
		name    string
		results []Result
		expect  func(t *testing.T, r Result, err error)
	}{
		{
			name: "highest r2 wins",
			results: []Result{
				{Name: "a", Metrics: Metrics{R2: 0.5}},
				{Name: "b", Metrics: Metrics{R2: 0.9}},
			},
			expect: func(t *testing.T, r Result, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "b", r.Name)
			},
		},
		{
			name: "earliest wins ties",
			results: []Result{
				{Name: "a", Metrics: Metrics{R2: 0.9}},
				{Name: "b", Metrics: Metrics{R2: 0.9}},
			},
			expect: func(t *testing.T, r Result, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "a", r.Name)
			},
		},
		{
			name: "no results",
			expect: func(t *testing.T, r Result, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := SelectBest(tc.results)
			tc.expect(t, r, err)
		})
	}
}

func TestTraining_TrainedAt(t *testing.T) {
	now := time.Date(2024, 7, 26, 18, 0, 0, 0, time.UTC)
	tr := &training{config: mockTrainingConfig, now: func() time.Time { return now }}

	histories, err := mockSource(t).Histories(context.Background())
	require.NoError(t, err)

	set, report, err := tr.Train(context.Background(), histories)
	require.NoError(t, err)
	assert.Equal(t, now, set.TrainedAt)
	assert.Equal(t, now, report.TrainedAt)
}
