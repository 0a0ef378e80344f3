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
	"errors"
	"fmt"

	"github.com/sjwhitworth/golearn/base"
)

// NewInstances packs feature rows into dense float instances, targets are
// added as class attributes. A nil targets leaves class values at zero,
// which is the shape Predict expects.
func NewInstances(featureNames []string, features [][]float64, targetNames []string, targets [][]float64) (*base.DenseInstances, error) {
	if targets != nil && len(targets) != len(features) {
		return nil, fmt.Errorf("features have %d rows, targets have %d", len(features), len(targets))
	}

	inst := base.NewDenseInstances()
	featureSpecs := make([]base.AttributeSpec, len(featureNames))
	for i, name := range featureNames {
		featureSpecs[i] = inst.AddAttribute(base.NewFloatAttribute(name))
	}

	targetSpecs := make([]base.AttributeSpec, len(targetNames))
	for i, name := range targetNames {
		attr := base.NewFloatAttribute(name)
		targetSpecs[i] = inst.AddAttribute(attr)
		if err := inst.AddClassAttribute(attr); err != nil {
			return nil, err
		}
	}

	if err := inst.Extend(len(features)); err != nil {
		return nil, err
	}

	for i, row := range features {
		if len(row) != len(featureSpecs) {
			return nil, fmt.Errorf("row %d has %d features, want %d", i, len(row), len(featureSpecs))
		}

		for j, v := range row {
			inst.Set(featureSpecs[j], i, base.PackFloatToBytes(v))
		}
	}

	for i, row := range targets {
		if len(row) != len(targetSpecs) {
			return nil, fmt.Errorf("row %d has %d targets, want %d", i, len(row), len(targetSpecs))
		}

		for j, v := range row {
			inst.Set(targetSpecs[j], i, base.PackFloatToBytes(v))
		}
	}

	return inst, nil
}

// Matrix reads the named float attributes of every row of the grid.
func Matrix(grid base.FixedDataGrid, names []string) ([][]float64, error) {
	specs, err := resolve(grid, names)
	if err != nil {
		return nil, err
	}

	_, rows := grid.Size()
	out := make([][]float64, 0, rows)
	if err := grid.MapOverRows(specs, func(row [][]byte, i int) (bool, error) {
		values := make([]float64, len(row))
		for j, r := range row {
			values[j] = base.UnpackBytesToFloat(r)
		}

		out = append(out, values)
		return true, nil
	}); err != nil {
		return nil, err
	}

	return out, nil
}

func resolve(grid base.FixedDataGrid, names []string) ([]base.AttributeSpec, error) {
	specs := make([]base.AttributeSpec, len(names))
	for i, name := range names {
		spec, err := grid.GetAttribute(base.NewFloatAttribute(name))
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", name, err)
		}

		specs[i] = spec
	}

	return specs, nil
}

// floatAttributes splits the float attributes of the grid into features and
// classes, both in the order they were added to the grid. golearn keeps class
// attributes in a map, so their order is taken from AllAttributes instead.
func floatAttributes(grid base.FixedDataGrid) ([]string, []string) {
	isClass := make(map[string]bool)
	for _, a := range grid.AllClassAttributes() {
		isClass[a.GetName()] = true
	}

	var attrs, classes []string
	for _, a := range grid.AllAttributes() {
		if _, ok := a.(*base.FloatAttribute); !ok {
			continue
		}

		if isClass[a.GetName()] {
			classes = append(classes, a.GetName())
		} else {
			attrs = append(attrs, a.GetName())
		}
	}

	return attrs, classes
}

// sample is the float content of a fitting grid.
type sample struct {
	attrs   []string
	classes []string
	x       [][]float64
	y       [][]float64
}

func extract(grid base.FixedDataGrid) (*sample, error) {
	attrs, classes := floatAttributes(grid)
	if len(classes) == 0 {
		return nil, errors.New("no float class attributes")
	}

	if len(attrs) == 0 {
		return nil, errors.New("no float feature attributes")
	}

	x, err := Matrix(grid, attrs)
	if err != nil {
		return nil, err
	}

	y, err := Matrix(grid, classes)
	if err != nil {
		return nil, err
	}

	if len(x) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInsufficientRows)
	}

	return &sample{attrs: attrs, classes: classes, x: x, y: y}, nil
}

// predictGrid writes predict(row) of every row of X into a prediction vector.
func predictGrid(X base.FixedDataGrid, attrs, classes []string, predict func([]float64) []float64) (base.FixedDataGrid, error) {
	x, err := Matrix(X, attrs)
	if err != nil {
		return nil, err
	}

	ret := base.GeneratePredictionVector(X)
	specs, err := resolve(ret, classes)
	if err != nil {
		return nil, err
	}

	for i, row := range x {
		out := predict(row)
		for j, spec := range specs {
			ret.Set(spec, i, base.PackFloatToBytes(out[j]))
		}
	}

	return ret, nil
}

func mean(rows [][]float64, idx []int, width int) []float64 {
	out := make([]float64, width)
	if len(idx) == 0 {
		return out
	}

	for _, i := range idx {
		for k := 0; k < width; k++ {
			out[k] += rows[i][k]
		}
	}

	for k := range out {
		out[k] /= float64(len(idx))
	}

	return out
}
