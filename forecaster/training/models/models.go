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

package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sjwhitworth/golearn/base"
)

const (
	// TypeLinearRegression is the ordinary least squares model.
	TypeLinearRegression = "linear_regression"

	// TypeDecisionTree is a single regression tree.
	TypeDecisionTree = "decision_tree"

	// TypeRandomForest is a bagged ensemble of regression trees.
	TypeRandomForest = "random_forest"
)

var (
	// ErrNotFitted is returned when predicting with a model that was never fitted.
	ErrNotFitted = errors.New("no fitted model")

	// ErrInsufficientRows is returned when a grid has too few rows to fit a model.
	ErrInsufficientRows = errors.New("insufficient rows")
)

// Regressor is a multi output regression model over dense instances,
// the class attributes of the fitted grid are its targets.
type Regressor interface {
	// Type returns the model family.
	Type() string

	// Fit trains the model on the float attributes of the grid.
	Fit(base.FixedDataGrid) error

	// Predict returns a grid holding a predicted value of every class attribute per row.
	Predict(base.FixedDataGrid) (base.FixedDataGrid, error)
}

// Spec describes an unfitted model.
type Spec struct {
	Type            string
	Trees           int
	MaxDepth        int
	MinSamplesSplit int
	MinSamplesLeaf  int
	Seed            int64
}

// New returns an unfitted model of the spec.
func New(spec Spec) (Regressor, error) {
	switch spec.Type {
	case TypeLinearRegression:
		return NewLinearRegression(), nil
	case TypeDecisionTree:
		return NewRegressionTree(spec.MaxDepth, spec.MinSamplesSplit, spec.MinSamplesLeaf), nil
	case TypeRandomForest:
		return NewRandomForest(spec.Trees, spec.MaxDepth, spec.MinSamplesSplit, spec.MinSamplesLeaf, spec.Seed), nil
	default:
		return nil, fmt.Errorf("unknown model type %q", spec.Type)
	}
}

type envelope struct {
	Type  string          `json:"type"`
	Model json.RawMessage `json:"model"`
}

// Marshal encodes a model together with its type.
func Marshal(r Regressor) ([]byte, error) {
	model, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}

	return json.Marshal(envelope{Type: r.Type(), Model: model})
}

// Unmarshal decodes a model encoded by Marshal.
func Unmarshal(data []byte) (Regressor, error) {
	var e envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}

	var r Regressor
	switch e.Type {
	case TypeLinearRegression:
		r = &LinearRegression{}
	case TypeDecisionTree:
		r = &RegressionTree{}
	case TypeRandomForest:
		r = &RandomForest{}
	default:
		return nil, fmt.Errorf("unknown model type %q", e.Type)
	}

	if err := json.Unmarshal(e.Model, r); err != nil {
		return nil, err
	}

	return r, nil
}
