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
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/medalcast/medalcast/forecaster/config"
	"github.com/medalcast/medalcast/forecaster/history"
	"github.com/medalcast/medalcast/forecaster/training/models"
	logger "github.com/medalcast/medalcast/internal/mclog"
)

//go:generate mockgen -destination mocks/training_mock.go -source training.go -package mocks

// Training defines the interface to fit and score the candidate models.
type Training interface {
	// Train fits the full mode models on country histories.
	Train(context.Context, []history.CountryHistory) (*ModelSet, *Report, error)

	// TrainSimple fits the total medal models on games totals, optionally of one country.
	TrainSimple(context.Context, []history.GameTotal, string) (*ModelSet, *Report, error)
}

// training implements Training interface.
type training struct {
	// Training config.
	config *config.TrainingConfig

	// now returns the training timestamp.
	now func() time.Time
}

// New returns a new Training.
func New(cfg *config.TrainingConfig) Training {
	return &training{
		config: cfg,
		now:    time.Now,
	}
}

// Result is a fitted and scored candidate.
type Result struct {
	Name    string
	Model   models.Regressor
	Metrics Metrics
}

// SelectBest returns the result of highest R², the earliest wins ties.
func SelectBest(results []Result) (Result, error) {
	if len(results) == 0 {
		return Result{}, errors.New("no candidate results")
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.Metrics.R2 > best.Metrics.R2 {
			best = r
		}
	}

	return best, nil
}

// Train fits every configured candidate on the full mode dataset.
func (t *training) Train(ctx context.Context, histories []history.CountryHistory) (*ModelSet, *Report, error) {
	runID := uuid.NewString()
	log := logger.WithRun(runID, ModeFull)

	ds, err := BuildDataset(histories, t.config.MinTotalMedals, t.config.RecentWindow)
	if err != nil {
		log.Errorf("build dataset failed: %s", err.Error())
		return nil, nil, err
	}

	fit, err := t.fit(ctx, runID, FeatureNames, TargetNames, ds.Features, ds.Targets, t.config.Candidates)
	if err != nil {
		log.Errorf("training failed: %s", err.Error())
		return nil, nil, err
	}

	trainedAt := t.now().UTC()
	set := &ModelSet{
		Mode:         ModeFull,
		RunID:        runID,
		TrainedAt:    trainedAt,
		FeatureNames: FeatureNames,
		TargetNames:  TargetNames,
		Scaler:       fit.scaler,
		Models:       fit.named(),
		Best:         fit.best.Name,
	}

	report := &Report{
		RunID:            runID,
		Mode:             ModeFull,
		TrainedAt:        trainedAt,
		BestModel:        fit.best.Name,
		Models:           fit.metrics(),
		Features:         FeatureNames,
		Rows:             len(ds.Features),
		TrainRows:        fit.trainRows,
		TestRows:         fit.testRows,
		ExcludedRows:     ds.Excluded,
		BelowThreshold:   ds.BelowThreshold,
		TargetDefinition: TargetDefinition,
	}

	log.Infof("training finished, best model %s with r2 %.4f", fit.best.Name, fit.best.Metrics.R2)
	return set, report, nil
}

// fitted is the outcome of fitting candidates on one dataset.
type fitted struct {
	scaler    *StandardScaler
	results   []Result
	best      Result
	trainRows int
	testRows  int
}

func (f *fitted) named() []NamedModel {
	out := make([]NamedModel, len(f.results))
	for i, r := range f.results {
		out[i] = NamedModel{Name: r.Name, Model: r.Model}
	}

	return out
}

func (f *fitted) metrics() map[string]Metrics {
	out := make(map[string]Metrics, len(f.results))
	for _, r := range f.results {
		out[r.Name] = r.Metrics
	}

	return out
}

// fit splits rows, fits the scaler on the train partition only and fits
// candidates concurrently. Results keep candidate order.
func (t *training) fit(ctx context.Context, runID string, featureNames, targetNames []string, x, y [][]float64, candidates []config.CandidateConfig) (*fitted, error) {
	if len(candidates) == 0 {
		return nil, errors.New("no candidates configured")
	}

	trainIdx, testIdx, err := Split(len(x), t.config.TestPercent, t.config.Seed)
	if err != nil {
		return nil, err
	}

	scaler, err := FitScaler(pick(x, trainIdx))
	if err != nil {
		return nil, err
	}

	xTrain, err := scaler.Transform(pick(x, trainIdx))
	if err != nil {
		return nil, err
	}

	xTest, err := scaler.Transform(pick(x, testIdx))
	if err != nil {
		return nil, err
	}

	yTrain, yTest := pick(y, trainIdx), pick(y, testIdx)
	trainGrid, err := models.NewInstances(featureNames, xTrain, targetNames, yTrain)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(candidates))
	eg, ctx := errgroup.WithContext(ctx)
	for i, c := range candidates {
		i, c := i, c
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r, err := models.New(models.Spec{
				Type:            c.Type,
				Trees:           c.Trees,
				MaxDepth:        c.MaxDepth,
				MinSamplesSplit: c.MinSamplesSplit,
				MinSamplesLeaf:  c.MinSamplesLeaf,
				Seed:            t.config.Seed,
			})
			if err != nil {
				return err
			}

			if err := r.Fit(trainGrid); err != nil {
				if errors.Is(err, models.ErrInsufficientRows) {
					return fmt.Errorf("%w: fit %s: %s", ErrDataInsufficient, c.Name, err.Error())
				}

				return fmt.Errorf("fit %s: %w", c.Name, err)
			}

			predicted, err := predictScaled(r, featureNames, targetNames, xTest)
			if err != nil {
				return fmt.Errorf("predict %s: %w", c.Name, err)
			}

			m, err := Evaluate(predicted, yTest)
			if err != nil {
				return fmt.Errorf("evaluate %s: %w", c.Name, err)
			}

			logger.WithRun(runID, c.Name).Infof("model scored mae %.4f rmse %.4f r2 %.4f", m.MAE, m.RMSE, m.R2)
			results[i] = Result{Name: c.Name, Model: r, Metrics: m}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	best, err := SelectBest(results)
	if err != nil {
		return nil, err
	}

	return &fitted{
		scaler:    scaler,
		results:   results,
		best:      best,
		trainRows: len(trainIdx),
		testRows:  len(testIdx),
	}, nil
}
