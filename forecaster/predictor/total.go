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
	"errors"

	"github.com/medalcast/medalcast/forecaster/training"
)

// TotalPrediction is the simple mode prediction of one games.
type TotalPrediction struct {
	GameYear       int    `json:"game_year"`
	GameSeason     string `json:"game_season"`
	PredictedTotal int    `json:"predicted_total_medals"`
	Model          string `json:"model_used"`
}

// PredictTotal predicts total medals of a games with a simple mode model set.
func PredictTotal(set *training.ModelSet, year int, season string) (*TotalPrediction, error) {
	if set == nil || set.Mode != training.ModeSimple || set.Encoder == nil {
		return nil, errors.New("total prediction requires a simple mode model set")
	}

	features, err := training.SimpleFeatures(set.Encoder, year, season)
	if err != nil {
		return nil, err
	}

	out, err := set.PredictEach([][]float64{features})
	if err != nil {
		return nil, err
	}

	return &TotalPrediction{
		GameYear:       year,
		GameSeason:     season,
		PredictedTotal: Round(out[0][0][0]),
		Model:          set.Best,
	}, nil
}
