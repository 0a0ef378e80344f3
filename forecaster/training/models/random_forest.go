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
	"math/rand"

	"github.com/sjwhitworth/golearn/base"
)

// RandomForest averages regression trees fitted on bootstrap samples
// drawn from a generator seeded with Seed.
type RandomForest struct {
	Trees           int               `json:"trees"`
	MaxDepth        int               `json:"max_depth"`
	MinSamplesSplit int               `json:"min_samples_split"`
	MinSamplesLeaf  int               `json:"min_samples_leaf"`
	Seed            int64             `json:"seed"`
	Attrs           []string          `json:"attrs"`
	Classes         []string          `json:"classes"`
	Estimators      []*RegressionTree `json:"estimators"`
}

// NewRandomForest returns an unfitted forest of trees estimators.
func NewRandomForest(trees, maxDepth, minSamplesSplit, minSamplesLeaf int, seed int64) *RandomForest {
	return &RandomForest{
		Trees:           trees,
		MaxDepth:        maxDepth,
		MinSamplesSplit: minSamplesSplit,
		MinSamplesLeaf:  minSamplesLeaf,
		Seed:            seed,
	}
}

func (rf *RandomForest) Type() string {
	return TypeRandomForest
}

func (rf *RandomForest) Fit(inst base.FixedDataGrid) error {
	s, err := extract(inst)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(rf.Seed))
	n := len(s.x)
	estimators := make([]*RegressionTree, rf.Trees)
	for t := range estimators {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = rng.Intn(n)
		}

		tree := NewRegressionTree(rf.MaxDepth, rf.MinSamplesSplit, rf.MinSamplesLeaf)
		tree.fit(s, idx)
		estimators[t] = tree
	}

	rf.Attrs = s.attrs
	rf.Classes = s.classes
	rf.Estimators = estimators
	return nil
}

func (rf *RandomForest) Predict(X base.FixedDataGrid) (base.FixedDataGrid, error) {
	if len(rf.Estimators) == 0 {
		return nil, ErrNotFitted
	}

	return predictGrid(X, rf.Attrs, rf.Classes, rf.predictRow)
}

func (rf *RandomForest) predictRow(row []float64) []float64 {
	out := make([]float64, len(rf.Classes))
	for _, tree := range rf.Estimators {
		for k, v := range tree.predictRow(row) {
			out[k] += v
		}
	}

	for k := range out {
		out[k] /= float64(len(rf.Estimators))
	}

	return out
}
