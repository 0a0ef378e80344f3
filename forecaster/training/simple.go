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
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/medalcast/medalcast/forecaster/history"
	logger "github.com/medalcast/medalcast/internal/mclog"
)

// SimpleFeatures returns the simple mode feature vector of a games entry.
func SimpleFeatures(encoder *LabelEncoder, year int, season string) ([]float64, error) {
	code, err := encoder.Transform(season)
	if err != nil {
		return nil, err
	}

	return []float64{float64(year), float64(code)}, nil
}

// TrainSimple fits the simple candidates on total medals per games and
// keeps the best model only. An empty country trains on every row.
func (t *training) TrainSimple(ctx context.Context, totals []history.GameTotal, country string) (*ModelSet, *Report, error) {
	runID := uuid.NewString()
	log := logger.WithRun(runID, ModeSimple)

	var (
		rows     []history.GameTotal
		excluded int
	)
	for _, g := range totals {
		if err := history.ValidateGameTotal(g); err != nil {
			log.Warnf("exclude games total: %s", err.Error())
			excluded++
			continue
		}

		if country != "" && !strings.EqualFold(g.CountryName, country) {
			continue
		}

		rows = append(rows, g)
	}

	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: no games totals for country %q", ErrDataInsufficient, country)
	}

	seasons := make([]string, len(rows))
	for i, g := range rows {
		seasons[i] = g.GameSeason
	}
	encoder := FitLabelEncoder(seasons)

	x := make([][]float64, len(rows))
	y := make([][]float64, len(rows))
	for i, g := range rows {
		features, err := SimpleFeatures(encoder, g.GameYear, g.GameSeason)
		if err != nil {
			return nil, nil, err
		}

		x[i] = features
		y[i] = []float64{float64(g.TotalMedals)}
	}

	fit, err := t.fit(ctx, runID, SimpleFeatureNames, SimpleTargetNames, x, y, t.config.Simple.Candidates)
	if err != nil {
		log.Errorf("simple training failed: %s", err.Error())
		return nil, nil, err
	}

	trainedAt := t.now().UTC()
	set := &ModelSet{
		Mode:         ModeSimple,
		RunID:        runID,
		TrainedAt:    trainedAt,
		FeatureNames: SimpleFeatureNames,
		TargetNames:  SimpleTargetNames,
		Scaler:       fit.scaler,
		Encoder:      encoder,
		Models:       []NamedModel{{Name: fit.best.Name, Model: fit.best.Model}},
		Best:         fit.best.Name,
	}

	report := &Report{
		RunID:            runID,
		Mode:             ModeSimple,
		TrainedAt:        trainedAt,
		BestModel:        fit.best.Name,
		Models:           fit.metrics(),
		Features:         SimpleFeatureNames,
		Rows:             len(rows),
		TrainRows:        fit.trainRows,
		TestRows:         fit.testRows,
		ExcludedRows:     excluded,
		Country:          country,
		TargetDefinition: "total medals of a country per games",
	}

	log.Infof("simple training finished, best model %s with r2 %.4f", fit.best.Name, fit.best.Metrics.R2)
	return set, report, nil
}
