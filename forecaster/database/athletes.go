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
)

const (
	// MaxSports is the number of disciplines returned by AthletesBySport.
	MaxSports = 20

	// DefaultLegendMinGold is the gold medal count of a legend.
	DefaultLegendMinGold = 5

	// DefaultLegendLimit is the number of legends returned.
	DefaultLegendLimit = 50

	// mostAthletesCountries is the number of countries of AthleteStats.
	mostAthletesCountries = 5
)

const (
	namedAthlete = "athlete_full_name IS NOT NULL AND athlete_full_name <> ''"
	goldCount    = "COUNT(CASE WHEN medal_type = 'GOLD' THEN 1 END)"
	athleteGroup = "athlete_full_name, athlete_url, country_name, country_code"
)

// SportMedals is the medal count of a discipline.
type SportMedals struct {
	Sport  string `json:"sport"`
	Medals int64  `json:"medals"`
}

// AthleteFilter selects the athletes returned by Athletes.
type AthleteFilter struct {
	Limit       int
	CountryCode string
	Sport       string
}

// AthleteMedals is the medal count of an athlete.
type AthleteMedals struct {
	AthleteFullName string   `json:"athlete_full_name"`
	AthleteURL      string   `json:"athlete_url,omitempty"`
	CountryName     string   `json:"country_name"`
	CountryCode     string   `json:"country_code"`
	TotalMedals     int64    `json:"total_medals"`
	Gold            int64    `json:"gold"`
	Silver          int64    `json:"silver"`
	Bronze          int64    `json:"bronze"`
	Sports          []string `json:"sports,omitempty" gorm:"-"`
}

// SportAthlete is the medal count of an athlete in one discipline.
type SportAthlete struct {
	AthleteFullName string `json:"athlete_full_name"`
	CountryName     string `json:"country_name"`
	Medals          int64  `json:"medals"`
}

// CountryAthletes is the number of medalled athletes of a country.
type CountryAthletes struct {
	CountryName string `json:"country_name"`
	Athletes    int64  `json:"athletes"`
}

// AthleteStats is the summary of the medalled athletes.
type AthleteStats struct {
	TotalAthletes             int64             `json:"total_athletes"`
	TopMedalist               *AthleteMedals    `json:"top_medalist"`
	TopGoldMedalist           *AthleteMedals    `json:"top_gold_medalist"`
	CountriesWithMostAthletes []CountryAthletes `json:"countries_with_most_athletes"`
}

// CountryMedals returns the medal count of one country.
func (s *stats) CountryMedals(ctx context.Context, countryCode string) (*CountryMedals, error) {
	countries := []CountryMedals{}
	if err := s.db.WithContext(ctx).
		Model(&Medal{}).
		Select("country_name, country_code, "+medalTypeCounts).
		Where("UPPER(country_code) = UPPER(?)", countryCode).
		Group("country_name, country_code").
		Order("total_medals DESC, country_name").
		Limit(1).
		Scan(&countries).Error; err != nil {
		return nil, err
	}

	if len(countries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrCountryNotFound, countryCode)
	}

	return &countries[0], nil
}

// TopSports returns the disciplines with the most medals.
func (s *stats) TopSports(ctx context.Context, limit int, countryCode string) ([]SportMedals, error) {
	tx := s.db.WithContext(ctx).
		Model(&Medal{}).
		Select("discipline_title AS sport, COUNT(*) AS medals")
	if countryCode != "" {
		tx = tx.Where("UPPER(country_code) = UPPER(?)", countryCode)
	}

	sports := []SportMedals{}
	if err := tx.Group("discipline_title").Order("medals DESC, discipline_title").Limit(limit).Scan(&sports).Error; err != nil {
		return nil, err
	}

	return sports, nil
}

// Athletes returns the athletes with the most medals matching the filter.
func (s *stats) Athletes(ctx context.Context, filter AthleteFilter) ([]AthleteMedals, error) {
	tx := s.athletes(ctx)
	if filter.CountryCode != "" {
		tx = tx.Where("UPPER(country_code) = UPPER(?)", filter.CountryCode)
	}

	if filter.Sport != "" {
		tx = tx.Where("discipline_title = ?", filter.Sport)
	}

	athletes := []AthleteMedals{}
	if err := tx.Order("total_medals DESC, athlete_full_name").Limit(filter.Limit).Scan(&athletes).Error; err != nil {
		return nil, err
	}

	return athletes, nil
}

// TopAthletes returns the athletes with the most medals.
func (s *stats) TopAthletes(ctx context.Context, limit int) ([]AthleteMedals, error) {
	athletes := []AthleteMedals{}
	if err := s.athletes(ctx).Order("total_medals DESC, gold DESC, athlete_full_name").Limit(limit).Scan(&athletes).Error; err != nil {
		return nil, err
	}

	return athletes, nil
}

// AthletesBySport returns the top athletes of the first disciplines by title.
func (s *stats) AthletesBySport(ctx context.Context, limit int) (map[string][]SportAthlete, error) {
	var sports []string
	if err := s.db.WithContext(ctx).
		Model(&Medal{}).
		Where("discipline_title IS NOT NULL AND discipline_title <> ''").
		Distinct("discipline_title").
		Order("discipline_title").
		Limit(MaxSports).
		Pluck("discipline_title", &sports).Error; err != nil {
		return nil, err
	}

	bySport := make(map[string][]SportAthlete, len(sports))
	for _, sport := range sports {
		athletes := []SportAthlete{}
		if err := s.db.WithContext(ctx).
			Model(&Medal{}).
			Select("athlete_full_name, country_name, COUNT(*) AS medals").
			Where(namedAthlete).
			Where("discipline_title = ?", sport).
			Group("athlete_full_name, country_name").
			Order("medals DESC, athlete_full_name").
			Limit(limit).
			Scan(&athletes).Error; err != nil {
			return nil, err
		}

		bySport[sport] = athletes
	}

	return bySport, nil
}

// Legends returns the athletes with at least minGold gold medals and the
// disciplines they medalled in.
func (s *stats) Legends(ctx context.Context, minGold, limit int) ([]AthleteMedals, error) {
	legends := []AthleteMedals{}
	if err := s.athletes(ctx).
		Having(goldCount+" >= ?", minGold).
		Order("gold DESC, total_medals DESC, athlete_full_name").
		Limit(limit).
		Scan(&legends).Error; err != nil {
		return nil, err
	}

	if len(legends) == 0 {
		return legends, nil
	}

	names := make([]string, len(legends))
	for i, legend := range legends {
		names[i] = legend.AthleteFullName
	}

	var disciplines []athleteDiscipline
	if err := s.db.WithContext(ctx).
		Model(&Medal{}).
		Distinct("athlete_full_name", "country_code", "discipline_title").
		Where("athlete_full_name IN ?", names).
		Order("discipline_title").
		Scan(&disciplines).Error; err != nil {
		return nil, err
	}

	sports := make(map[[2]string][]string, len(legends))
	for _, d := range disciplines {
		key := [2]string{d.AthleteFullName, d.CountryCode}
		sports[key] = append(sports[key], d.DisciplineTitle)
	}

	for i := range legends {
		legends[i].Sports = sports[[2]string{legends[i].AthleteFullName, legends[i].CountryCode}]
	}

	return legends, nil
}

type athleteDiscipline struct {
	AthleteFullName string
	CountryCode     string
	DisciplineTitle string
}

// AthleteStats returns totals and leaders of the athletes.
func (s *stats) AthleteStats(ctx context.Context) (*AthleteStats, error) {
	var summary AthleteStats
	if err := s.db.WithContext(ctx).
		Model(&Medal{}).
		Where(namedAthlete).
		Distinct("athlete_full_name").
		Count(&summary.TotalAthletes).Error; err != nil {
		return nil, err
	}

	var err error
	if summary.TopMedalist, err = s.firstAthlete(ctx, "total_medals DESC, gold DESC, athlete_full_name"); err != nil {
		return nil, err
	}

	if summary.TopGoldMedalist, err = s.firstAthlete(ctx, "gold DESC, total_medals DESC, athlete_full_name"); err != nil {
		return nil, err
	}

	summary.CountriesWithMostAthletes = []CountryAthletes{}
	if err := s.db.WithContext(ctx).
		Model(&Medal{}).
		Select("country_name, COUNT(DISTINCT athlete_full_name) AS athletes").
		Where(namedAthlete).
		Group("country_name").
		Order("athletes DESC, country_name").
		Limit(mostAthletesCountries).
		Scan(&summary.CountriesWithMostAthletes).Error; err != nil {
		return nil, err
	}

	return &summary, nil
}

// athletes returns the query of medal counts per named athlete.
func (s *stats) athletes(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&Medal{}).
		Select(athleteGroup+", "+medalTypeCounts).
		Where(namedAthlete).
		Group(athleteGroup)
}

func (s *stats) firstAthlete(ctx context.Context, order string) (*AthleteMedals, error) {
	athletes := []AthleteMedals{}
	if err := s.athletes(ctx).Order(order).Limit(1).Scan(&athletes).Error; err != nil {
		return nil, err
	}

	if len(athletes) == 0 {
		return nil, nil
	}

	return &athletes[0], nil
}
