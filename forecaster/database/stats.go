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
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrCountryNotFound is returned when a country code has no medals.
var ErrCountryNotFound = errors.New("country not found")

//go:generate mockgen -destination mocks/stats_mock.go -source stats.go -package mocks

// Overview is the size of the medals corpus.
type Overview struct {
	TotalMedals      int64 `json:"total_medals"`
	TotalCountries   int64 `json:"total_countries"`
	TotalGames       int64 `json:"total_games"`
	TotalDisciplines int64 `json:"total_disciplines"`
}

// CountryMedals is the medal count of a country.
type CountryMedals struct {
	CountryName string `json:"country_name"`
	CountryCode string `json:"country_code"`
	TotalMedals int64  `json:"total_medals"`
	Gold        int64  `json:"gold"`
	Silver      int64  `json:"silver"`
	Bronze      int64  `json:"bronze"`
}

// YearMedals is the medal count of a games year.
type YearMedals struct {
	Year        int   `json:"year"`
	TotalMedals int64 `json:"total_medals"`
	Gold        int64 `json:"gold"`
	Silver      int64 `json:"silver"`
	Bronze      int64 `json:"bronze"`
}

// Stats is the interface used for aggregate queries of the medals corpus.
type Stats interface {
	// Overview returns counts of medals, countries, games and disciplines.
	Overview(context.Context) (*Overview, error)

	// TopCountries returns the countries with the most medals.
	TopCountries(context.Context, int) ([]CountryMedals, error)

	// MedalsByYear returns medals per games year, of one country when the code is not empty.
	MedalsByYear(context.Context, string) ([]YearMedals, error)

	// Hosts returns every games, most recent first.
	Hosts(context.Context) ([]Host, error)

	// CountryMedals returns the medal count of one country.
	CountryMedals(context.Context, string) (*CountryMedals, error)

	// TopSports returns the disciplines with the most medals, of one country when the code is not empty.
	TopSports(context.Context, int, string) ([]SportMedals, error)

	// Athletes returns the athletes with the most medals matching the filter.
	Athletes(context.Context, AthleteFilter) ([]AthleteMedals, error)

	// TopAthletes returns the athletes with the most medals, gold breaking ties.
	TopAthletes(context.Context, int) ([]AthleteMedals, error)

	// AthletesBySport returns the top athletes of each discipline.
	AthletesBySport(context.Context, int) (map[string][]SportAthlete, error)

	// Legends returns the athletes with at least the given number of gold medals.
	Legends(context.Context, int, int) ([]AthleteMedals, error)

	// AthleteStats returns totals and leaders of the athletes.
	AthleteStats(context.Context) (*AthleteStats, error)
}

const medalTypeCounts = `COUNT(*) AS total_medals,
	COUNT(CASE WHEN medal_type = 'GOLD' THEN 1 END) AS gold,
	COUNT(CASE WHEN medal_type = 'SILVER' THEN 1 END) AS silver,
	COUNT(CASE WHEN medal_type = 'BRONZE' THEN 1 END) AS bronze`

type stats struct {
	db *gorm.DB
}

// NewStats returns a new Stats.
func NewStats(db *gorm.DB) Stats {
	return &stats{db: db}
}

// Overview returns counts of medals, countries, games and disciplines.
func (s *stats) Overview(ctx context.Context) (*Overview, error) {
	db := s.db.WithContext(ctx)
	var overview Overview
	if err := db.Model(&Medal{}).Count(&overview.TotalMedals).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&Medal{}).Distinct("country_name").Count(&overview.TotalCountries).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&Host{}).Count(&overview.TotalGames).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&Medal{}).Distinct("discipline_title").Count(&overview.TotalDisciplines).Error; err != nil {
		return nil, err
	}

	return &overview, nil
}

// TopCountries returns the countries with the most medals.
func (s *stats) TopCountries(ctx context.Context, limit int) ([]CountryMedals, error) {
	countries := []CountryMedals{}
	if err := s.db.WithContext(ctx).
		Model(&Medal{}).
		Select("country_name, country_code, "+medalTypeCounts).
		Group("country_name, country_code").
		Order("total_medals DESC, country_code").
		Limit(limit).
		Scan(&countries).Error; err != nil {
		return nil, err
	}

	return countries, nil
}

// MedalsByYear returns medals per games year.
func (s *stats) MedalsByYear(ctx context.Context, countryCode string) ([]YearMedals, error) {
	tx := s.db.WithContext(ctx).
		Table("medals m").
		Select("h.game_year AS year, "+strings.ReplaceAll(medalTypeCounts, "medal_type", "m.medal_type")).
		Joins("JOIN hosts h ON m.slug_game = h.game_slug")
	if countryCode != "" {
		tx = tx.Where("UPPER(m.country_code) = UPPER(?)", countryCode)
	}

	years := []YearMedals{}
	if err := tx.Group("h.game_year").Order("h.game_year").Scan(&years).Error; err != nil {
		return nil, err
	}

	return years, nil
}

// Hosts returns every games, most recent first.
func (s *stats) Hosts(ctx context.Context) ([]Host, error) {
	hosts := []Host{}
	if err := s.db.WithContext(ctx).Order("game_year DESC, game_slug").Find(&hosts).Error; err != nil {
		return nil, err
	}

	return hosts, nil
}
