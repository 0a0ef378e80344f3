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
	"errors"
	"time"

	"github.com/medalcast/medalcast/forecaster/training/models"
)

// NamedModel is a fitted regressor with its artifact name.
type NamedModel struct {
	Name  string
	Model models.Regressor
}

// ModelSet is the unit of deployment: one scaler shared by every fitted
// model. It is not mutated after training or loading.
type ModelSet struct {
	Mode         string
	RunID        string
	TrainedAt    time.Time
	FeatureNames []string
	TargetNames  []string
	Scaler       *StandardScaler

	// Encoder maps seasons in simple mode.
	Encoder *LabelEncoder
	Models  []NamedModel
	Best    string
}

// PredictEach scales raw feature rows with the fitted scaler and returns the
// predictions of every model, in model order.
func (s *ModelSet) PredictEach(features [][]float64) ([][][]float64, error) {
	if len(s.Models) == 0 {
		return nil, errors.New("model set has no models")
	}

	scaled, err := s.Scaler.Transform(features)
	if err != nil {
		return nil, err
	}

	out := make([][][]float64, len(s.Models))
	for i, m := range s.Models {
		out[i], err = predictScaled(m.Model, s.FeatureNames, s.TargetNames, scaled)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

func predictScaled(r models.Regressor, featureNames, targetNames []string, scaled [][]float64) ([][]float64, error) {
	X, err := models.NewInstances(featureNames, scaled, targetNames, nil)
	if err != nil {
		return nil, err
	}

	out, err := r.Predict(X)
	if err != nil {
		return nil, err
	}

	return models.Matrix(out, targetNames)
}

// Report is the metrics report of a training run.
type Report struct {
	RunID            string             `json:"run_id"`
	Mode             string             `json:"mode"`
	TrainedAt        time.Time          `json:"trained_at"`
	BestModel        string             `json:"best_model"`
	Models           map[string]Metrics `json:"models"`
	Features         []string           `json:"features"`
	Rows             int                `json:"rows"`
	TrainRows        int                `json:"train_rows"`
	TestRows         int                `json:"test_rows"`
	ExcludedRows     int                `json:"excluded_rows"`
	BelowThreshold   int                `json:"below_threshold_rows"`
	Country          string             `json:"country,omitempty"`
	TargetDefinition string             `json:"target_definition"`
}
