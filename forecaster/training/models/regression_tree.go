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
	"sort"

	"github.com/sjwhitworth/golearn/base"
)

// Node is a node of a regression tree, a node without children is a leaf.
type Node struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Value     []float64 `json:"value"`
	Left      *Node     `json:"left,omitempty"`
	Right     *Node     `json:"right,omitempty"`
}

func (n *Node) leaf() bool {
	return n.Left == nil || n.Right == nil
}

// RegressionTree is a CART tree minimizing the squared error summed over
// every class attribute, leaves predict the mean target vector.
type RegressionTree struct {
	MaxDepth        int      `json:"max_depth"`
	MinSamplesSplit int      `json:"min_samples_split"`
	MinSamplesLeaf  int      `json:"min_samples_leaf"`
	Attrs           []string `json:"attrs"`
	Classes         []string `json:"classes"`
	Root            *Node    `json:"root"`
}

// NewRegressionTree returns an unfitted tree, a zero maxDepth grows the
// tree until leaves are pure or too small to split.
func NewRegressionTree(maxDepth, minSamplesSplit, minSamplesLeaf int) *RegressionTree {
	if minSamplesSplit < 2 {
		minSamplesSplit = 2
	}

	if minSamplesLeaf < 1 {
		minSamplesLeaf = 1
	}

	return &RegressionTree{
		MaxDepth:        maxDepth,
		MinSamplesSplit: minSamplesSplit,
		MinSamplesLeaf:  minSamplesLeaf,
	}
}

func (t *RegressionTree) Type() string {
	return TypeDecisionTree
}

func (t *RegressionTree) Fit(inst base.FixedDataGrid) error {
	s, err := extract(inst)
	if err != nil {
		return err
	}

	t.fit(s, allRows(len(s.x)))
	return nil
}

func (t *RegressionTree) fit(s *sample, idx []int) {
	t.Attrs = s.attrs
	t.Classes = s.classes
	t.Root = t.grow(s, idx, 0)
}

func (t *RegressionTree) Predict(X base.FixedDataGrid) (base.FixedDataGrid, error) {
	if t.Root == nil {
		return nil, ErrNotFitted
	}

	return predictGrid(X, t.Attrs, t.Classes, t.predictRow)
}

func (t *RegressionTree) predictRow(row []float64) []float64 {
	n := t.Root
	for !n.leaf() {
		if row[n.Feature] <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}

	return n.Value
}

func (t *RegressionTree) grow(s *sample, idx []int, depth int) *Node {
	width := len(s.classes)
	node := &Node{Value: mean(s.y, idx, width)}
	if len(idx) < t.MinSamplesSplit || (t.MaxDepth > 0 && depth >= t.MaxDepth) {
		return node
	}

	parent := sse(s.y, idx, width)
	if parent <= 0 {
		return node
	}

	feature, threshold, left, right, ok := t.split(s, idx, parent)
	if !ok {
		return node
	}

	node.Feature = feature
	node.Threshold = threshold
	node.Left = t.grow(s, left, depth+1)
	node.Right = t.grow(s, right, depth+1)
	return node
}

// split returns the first best split over features in attribute order
// and thresholds in ascending order.
func (t *RegressionTree) split(s *sample, idx []int, parent float64) (int, float64, []int, []int, bool) {
	width := len(s.classes)
	n := len(idx)

	best := parent
	bestFeature, bestPos := -1, 0
	var bestOrder []int

	for f := range s.attrs {
		order := make([]int, n)
		copy(order, idx)
		sort.SliceStable(order, func(i, j int) bool {
			return s.x[order[i]][f] < s.x[order[j]][f]
		})

		totalSum := make([]float64, width)
		totalSq := make([]float64, width)
		for _, i := range order {
			for k, v := range s.y[i] {
				totalSum[k] += v
				totalSq[k] += v * v
			}
		}

		leftSum := make([]float64, width)
		leftSq := make([]float64, width)
		for p := 1; p < n; p++ {
			for k, v := range s.y[order[p-1]] {
				leftSum[k] += v
				leftSq[k] += v * v
			}

			if p < t.MinSamplesLeaf || n-p < t.MinSamplesLeaf {
				continue
			}

			if s.x[order[p-1]][f] == s.x[order[p]][f] {
				continue
			}

			var cost float64
			nl, nr := float64(p), float64(n-p)
			for k := 0; k < width; k++ {
				rightSum := totalSum[k] - leftSum[k]
				rightSq := totalSq[k] - leftSq[k]
				cost += leftSq[k] - leftSum[k]*leftSum[k]/nl
				cost += rightSq - rightSum*rightSum/nr
			}

			if cost < best {
				best = cost
				bestFeature = f
				bestPos = p
				bestOrder = order
			}
		}
	}

	if bestFeature < 0 {
		return 0, 0, nil, nil, false
	}

	lo := s.x[bestOrder[bestPos-1]][bestFeature]
	hi := s.x[bestOrder[bestPos]][bestFeature]
	threshold := lo + (hi-lo)/2
	if threshold >= hi {
		threshold = lo
	}

	left := append([]int(nil), bestOrder[:bestPos]...)
	right := append([]int(nil), bestOrder[bestPos:]...)
	return bestFeature, threshold, left, right, true
}

func sse(y [][]float64, idx []int, width int) float64 {
	m := mean(y, idx, width)
	var total float64
	for _, i := range idx {
		for k := 0; k < width; k++ {
			d := y[i][k] - m[k]
			total += d * d
		}
	}

	return total
}
