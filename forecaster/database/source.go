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

package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/medalcast/medalcast/forecaster/history"
)

// historySelect aggregates medals per country, the recent year is its only argument.
const historySelect = `m.country_name AS country_name,
	m.country_code AS country_code,
	COUNT(DISTINCT h.game_slug) AS olympics_participated,
	COUNT(*) AS total_medals,
	COUNT(CASE WHEN m.medal_type = 'GOLD' THEN 1 END) AS gold_medals,
	COUNT(CASE WHEN m.medal_type = 'SILVER' THEN 1 END) AS silver_medals,
	COUNT(CASE WHEN m.medal_type = 'BRONZE' THEN 1 END) AS bronze_medals,
	COUNT(CASE WHEN h.game_year >= ? THEN 1 END) AS recent_medals`

type source struct {
	db         *gorm.DB
	recentYear int
}

// NewSource returns a history source reading medals and hosts tables.
func NewSource(db *gorm.DB, recentYear int) history.Source {
	return &source{db: db, recentYear: recentYear}
}

func (s *source) histories(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("medals m").
		Select(historySelect, s.recentYear).
		Joins("JOIN hosts h ON m.slug_game = h.game_slug").
		Where("m.country_name IS NOT NULL AND m.country_name <> '' AND m.country_code IS NOT NULL AND m.country_code <> ''").
		Group("m.country_name, m.country_code")
}

// Histories returns every country history ordered by total medals descending.
func (s *source) Histories(ctx context.Context) ([]history.CountryHistory, error) {
	var histories []history.CountryHistory
	if err := s.histories(ctx).Order("total_medals DESC, country_code").Scan(&histories).Error; err != nil {
		return nil, err
	}

	return histories, nil
}

// History returns the history of a country looked up by code or name.
func (s *source) History(ctx context.Context, key string) (*history.CountryHistory, error) {
	var histories []history.CountryHistory
	if err := s.histories(ctx).
		Where("UPPER(m.country_code) = UPPER(?) OR LOWER(m.country_name) = LOWER(?)", key, key).
		Order("total_medals DESC").
		Scan(&histories).Error; err != nil {
		return nil, err
	}

	if len(histories) == 0 {
		return nil, fmt.Errorf("%w: %s", history.ErrNotFound, key)
	}

	return &histories[0], nil
}

// TopCountryCodes returns codes of the countries with the most medals.
func (s *source) TopCountryCodes(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}

	var codes []string
	if err := s.db.WithContext(ctx).
		Model(&Medal{}).
		Where("country_code IS NOT NULL AND country_code <> ''").
		Group("country_code").
		Order("COUNT(*) DESC, country_code").
		Limit(limit).
		Pluck("country_code", &codes).Error; err != nil {
		return nil, err
	}

	return codes, nil
}

// GameTotals returns medal totals per country and games.
func (s *source) GameTotals(ctx context.Context) ([]history.GameTotal, error) {
	var totals []history.GameTotal
	if err := s.db.WithContext(ctx).
		Table("medals m").
		Select("m.country_name AS country_name, h.game_year AS game_year, h.game_season AS game_season, COUNT(*) AS total_medals").
		Joins("JOIN hosts h ON m.slug_game = h.game_slug").
		Where("m.country_name IS NOT NULL AND m.country_name <> ''").
		Group("m.country_name, h.game_year, h.game_season").
		Order("m.country_name, h.game_year").
		Scan(&totals).Error; err != nil {
		return nil, err
	}

	return totals, nil
}
