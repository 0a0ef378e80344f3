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
	"fmt"
	"math"

	"github.com/medalcast/medalcast/forecaster/history"
	logger "github.com/medalcast/medalcast/internal/mclog"
)

// Features returns the feature vector of a history, the history must pass
// history.Validate. Rows are deterministic for equal input.
func Features(h history.CountryHistory, window int) []float64 {
	olympics := float64(h.OlympicsParticipated)
	total := float64(h.TotalMedals)
	gold := float64(h.GoldMedals)
	silver := float64(h.SilverMedals)
	bronze := float64(h.BronzeMedals)

	avgMedals := total / olympics
	trend := float64(h.RecentMedals) / (avgMedals*float64(window) + 1)

	// Balance heuristic, not clipped.
	diversity := 1 - math.Abs(gold-silver-bronze)/total

	return []float64{
		gold / olympics,
		silver / olympics,
		bronze / olympics,
		olympics,
		total,
		gold / total,
		trend,
		diversity,
	}
}

// Targets returns the trend adjusted averages of a feature vector.
func Targets(features []float64) []float64 {
	trend := features[6]
	return []float64{
		features[0] * trend,
		features[1] * trend,
		features[2] * trend,
	}
}

// Dataset is the training corpus built from country histories.
type Dataset struct {
	Countries []string
	Features  [][]float64
	Targets   [][]float64

	// Excluded counts rows rejected by validation or producing non finite features.
	Excluded int

	// BelowThreshold counts valid rows with too few medals.
	BelowThreshold int
}

// BuildDataset turns histories into feature and target rows. Invalid rows
// are excluded and counted, rows under minTotalMedals are skipped.
func BuildDataset(histories []history.CountryHistory, minTotalMedals, window int) (*Dataset, error) {
	if len(histories) == 0 {
		return nil, fmt.Errorf("%w: empty corpus", ErrDataInsufficient)
	}

	ds := &Dataset{}
	for _, h := range histories {
		if err := history.Validate(h); err != nil {
			logger.WithCountry(h.CountryCode).Warnf("exclude history: %s", err.Error())
			ds.Excluded++
			continue
		}

		if h.TotalMedals < minTotalMedals {
			ds.BelowThreshold++
			continue
		}

		features := Features(h, window)
		if !finite(features) {
			logger.WithCountry(h.CountryCode).Warnf("exclude history: non finite features %v", features)
			ds.Excluded++
			continue
		}

		ds.Countries = append(ds.Countries, h.CountryCode)
		ds.Features = append(ds.Features, features)
		ds.Targets = append(ds.Targets, Targets(features))
	}

	if ds.Excluded > 0 || ds.BelowThreshold > 0 {
		logger.TrainLogger.Infof("dataset built with %d rows, %d excluded, %d below %d medals", len(ds.Features), ds.Excluded, ds.BelowThreshold, minTotalMedals)
	}

	return ds, nil
}

func finite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
