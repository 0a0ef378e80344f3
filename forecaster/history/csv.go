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

package history

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/gocarina/gocsv"
)

type csvSource struct {
	histories  []CountryHistory
	gameTotals []GameTotal
}

// NewCSVSource reads country histories and, when gamesFile is not empty,
// games totals from csv files with headers.
func NewCSVSource(historyFile, gamesFile string) (Source, error) {
	s := &csvSource{}
	if err := readCSV(historyFile, &s.histories); err != nil {
		return nil, err
	}

	if gamesFile != "" {
		if err := readCSV(gamesFile, &s.gameTotals); err != nil {
			return nil, err
		}
	}

	sort.SliceStable(s.histories, func(i, j int) bool {
		return s.histories[i].TotalMedals > s.histories[j].TotalMedals
	})

	return s, nil
}

func readCSV(filename string, out any) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := gocsv.UnmarshalFile(file, out); err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}

	return nil
}

// Histories returns every country history ordered by total medals descending.
func (s *csvSource) Histories(ctx context.Context) ([]CountryHistory, error) {
	histories := make([]CountryHistory, len(s.histories))
	copy(histories, s.histories)
	return histories, nil
}

// History returns the history of a country looked up by code or name.
func (s *csvSource) History(ctx context.Context, key string) (*CountryHistory, error) {
	for i := range s.histories {
		if s.histories[i].Matches(key) {
			h := s.histories[i]
			return &h, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
}

// TopCountryCodes returns codes of the countries with the most medals.
func (s *csvSource) TopCountryCodes(ctx context.Context, limit int) ([]string, error) {
	if limit < 0 {
		limit = 0
	}

	if limit > len(s.histories) {
		limit = len(s.histories)
	}

	codes := make([]string, 0, limit)
	for _, h := range s.histories[:limit] {
		codes = append(codes, h.CountryCode)
	}

	return codes, nil
}

// GameTotals returns medal totals per country and games.
func (s *csvSource) GameTotals(ctx context.Context) ([]GameTotal, error) {
	gameTotals := make([]GameTotal, len(s.gameTotals))
	copy(gameTotals, s.gameTotals)
	return gameTotals, nil
}
