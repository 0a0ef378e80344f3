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

package predictor

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/medalcast/medalcast/forecaster/history"
	"github.com/medalcast/medalcast/forecaster/training"
	logger "github.com/medalcast/medalcast/internal/mclog"
)

const (
	// ConfidenceHigh is assigned to countries with a long participation history.
	ConfidenceHigh = "high"

	// ConfidenceMedium is assigned to every other country.
	ConfidenceMedium = "medium"
)

// ErrCountryNotFound is returned when no history matches the requested country.
var ErrCountryNotFound = errors.New("country not found")

// PredictionRecord is the ensemble prediction of one country.
type PredictionRecord struct {
	CountryName     string                     `json:"country_name"`
	CountryCode     string                     `json:"country_code"`
	PredictedGold   int                        `json:"predicted_gold"`
	PredictedSilver int                        `json:"predicted_silver"`
	PredictedBronze int                        `json:"predicted_bronze"`
	PredictedTotal  int                        `json:"predicted_total"`
	ModelConfidence string                     `json:"model_confidence"`
	DataSource      string                     `json:"data_source"`
	Models          map[string]ModelPrediction `json:"models,omitempty"`
}

// ModelPrediction is the rounded output of a single model.
type ModelPrediction struct {
	Gold   int `json:"gold"`
	Silver int `json:"silver"`
	Bronze int `json:"bronze"`
	Total  int `json:"total"`
}

// Config is the predictor configuration.
type Config struct {
	// RecentWindow is the games count covered by recent medals.
	RecentWindow int

	// ConfidenceOlympics is the participation above which confidence is high.
	ConfidenceOlympics int

	// DataSource tags every record.
	DataSource string
}

// Predictor predicts medals with a full mode model set. The model set is
// passed to every call and never modified.
type Predictor interface {
	// Predict returns the prediction of a country looked up by code or name.
	Predict(context.Context, *training.ModelSet, string) (*PredictionRecord, error)

	// PredictHistory returns the prediction of a history.
	PredictHistory(*training.ModelSet, history.CountryHistory) (*PredictionRecord, error)

	// Top returns predictions of the n countries with most historical medals,
	// ordered by predicted total descending.
	Top(context.Context, *training.ModelSet, int) ([]PredictionRecord, error)
}

type predictor struct {
	config Config
	source history.Source
}

// New returns a new Predictor.
func New(cfg Config, source history.Source) Predictor {
	return &predictor{config: cfg, source: source}
}

// Predict returns the prediction of a country looked up by code or name.
func (p *predictor) Predict(ctx context.Context, set *training.ModelSet, key string) (*PredictionRecord, error) {
	h, err := p.source.History(ctx, key)
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCountryNotFound, key)
		}

		return nil, err
	}

	return p.PredictHistory(set, *h)
}

// PredictHistory builds features of the history, scales them with the
// persisted scaler and averages the output of every model.
func (p *predictor) PredictHistory(set *training.ModelSet, h history.CountryHistory) (*PredictionRecord, error) {
	if set == nil || set.Mode != training.ModeFull {
		return nil, errors.New("predictor requires a full mode model set")
	}

	if err := history.Validate(h); err != nil {
		return nil, err
	}

	out, err := set.PredictEach([][]float64{training.Features(h, p.config.RecentWindow)})
	if err != nil {
		return nil, err
	}

	breakdown := make(map[string]ModelPrediction, len(out))
	ensemble := make([]float64, len(set.TargetNames))
	for i, predictions := range out {
		values := predictions[0]
		for k, v := range values {
			ensemble[k] += v
		}

		breakdown[set.Models[i].Name] = ModelPrediction{
			Gold:   Round(values[0]),
			Silver: Round(values[1]),
			Bronze: Round(values[2]),
			Total:  Round(values[0] + values[1] + values[2]),
		}
	}

	for k := range ensemble {
		ensemble[k] /= float64(len(out))
	}

	confidence := ConfidenceMedium
	if h.OlympicsParticipated > p.config.ConfidenceOlympics {
		confidence = ConfidenceHigh
	}

	return &PredictionRecord{
		CountryName:     h.CountryName,
		CountryCode:     h.CountryCode,
		PredictedGold:   Round(ensemble[0]),
		PredictedSilver: Round(ensemble[1]),
		PredictedBronze: Round(ensemble[2]),
		PredictedTotal:  Round(ensemble[0] + ensemble[1] + ensemble[2]),
		ModelConfidence: confidence,
		DataSource:      p.config.DataSource,
		Models:          breakdown,
	}, nil
}

// Top returns predictions of the n countries with most historical medals.
// Countries failing prediction are skipped, ties keep the historical order.
func (p *predictor) Top(ctx context.Context, set *training.ModelSet, n int) ([]PredictionRecord, error) {
	if n <= 0 {
		return []PredictionRecord{}, nil
	}

	codes, err := p.source.TopCountryCodes(ctx, n)
	if err != nil {
		return nil, err
	}

	records := make([]PredictionRecord, 0, len(codes))
	var skipped int
	for _, code := range codes {
		record, err := p.Predict(ctx, set, code)
		if err != nil {
			logger.WithCountry(code).Warnf("skip prediction: %s", err.Error())
			skipped++
			continue
		}

		records = append(records, *record)
	}

	if skipped > 0 {
		logger.Infof("top %d predictions skipped %d countries", n, skipped)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].PredictedTotal > records[j].PredictedTotal
	})

	if len(records) > n {
		records = records[:n]
	}

	return records, nil
}

// MaxRounded caps rounded predictions so the conversion to int stays defined.
const MaxRounded = math.MaxInt32

// Round clamps v to [0, MaxRounded] and rounds half to even, NaN gives 0.
func Round(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}

	if v >= MaxRounded {
		return MaxRounded
	}

	return int(math.RoundToEven(v))
}
