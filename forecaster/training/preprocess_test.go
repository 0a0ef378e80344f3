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
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitScaler(t *testing.T) {
	rows := [][]float64{{1, 5}, {3, 5}, {5, 5}}
	s, err := FitScaler(rows)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal([]float64{3, 5}, s.Means)
	assert.InDelta(1.632993, s.Scales[0], 1e-6)
	assert.Equal(1.0, s.Scales[1])

	out, err := s.Transform([][]float64{{3, 5}, {9, 7}})
	assert.NoError(err)
	assert.Equal(0.0, out[0][0])
	assert.Equal(0.0, out[0][1])
	assert.InDelta(6/1.632993, out[1][0], 1e-5)
	assert.Equal(2.0, out[1][1])

	// Transform never refits.
	assert.Equal([]float64{3, 5}, s.Means)
	assert.Equal([]float64{1, 5}, rows[0])

	_, err = s.Transform([][]float64{{1}})
	assert.Error(err)

	_, err = FitScaler(nil)
	assert.True(errors.Is(err, ErrDataInsufficient))
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		expect func(t *testing.T, train, test []int, err error)
	}{
		{
			name: "five rows hold out one",
			n:    5,
			expect: func(t *testing.T, train, test []int, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Len(train, 4)
				assert.Len(test, 1)
			},
		},
		{
			name: "twenty rows hold out four",
			n:    20,
			expect: func(t *testing.T, train, test []int, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Len(train, 16)
				assert.Len(test, 4)

				all := append(append([]int{}, train...), test...)
				sort.Ints(all)
				for i, v := range all {
					assert.Equal(i, v)
				}
			},
		},
		{
			name: "two rows leave no test row",
			n:    2,
			expect: func(t *testing.T, train, test []int, err error) {
				assert.True(t, errors.Is(err, ErrDataInsufficient))
			},
		},
		{
			name: "no rows",
			n:    0,
			expect: func(t *testing.T, train, test []int, err error) {
				assert.True(t, errors.Is(err, ErrDataInsufficient))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			train, test, err := Split(tc.n, 0.2, 42)
			tc.expect(t, train, test, err)
		})
	}
}

func TestSplit_Deterministic(t *testing.T) {
	train1, test1, err := Split(30, 0.2, 42)
	require.NoError(t, err)
	train2, test2, err := Split(30, 0.2, 42)
	require.NoError(t, err)

	assert.Equal(t, train1, train2)
	assert.Equal(t, test1, test2)
}

func TestLabelEncoder(t *testing.T) {
	e := FitLabelEncoder([]string{"Winter", "Summer", "Winter"})
	assert := assert.New(t)
	assert.Equal([]string{"Summer", "Winter"}, e.Classes)

	code, err := e.Transform("Winter")
	assert.NoError(err)
	assert.Equal(1, code)

	_, err = e.Transform("Autumn")
	assert.True(errors.Is(err, ErrUnknownLabel))
}
