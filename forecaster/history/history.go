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
	"errors"
	"strings"
)

//go:generate mockgen -destination mocks/source_mock.go -source history.go -package mocks

// ErrNotFound is returned when a country has no history record.
var ErrNotFound = errors.New("country history not found")

// CountryHistory is the per country aggregate of every games attended.
type CountryHistory struct {
	// CountryName is the display name of the country.
	CountryName string `csv:"country_name" json:"country_name" gorm:"column:country_name" validate:"required"`

	// CountryCode is the short identifier of the country.
	CountryCode string `csv:"country_code" json:"country_code" gorm:"column:country_code" validate:"required"`

	// OlympicsParticipated is the count of distinct games attended.
	OlympicsParticipated int `csv:"olympics_participated" json:"olympics_participated" gorm:"column:olympics_participated" validate:"gte=1"`

	// TotalMedals is the count of every medal won.
	TotalMedals int `csv:"total_medals" json:"total_medals" gorm:"column:total_medals" validate:"gt=0"`

	// GoldMedals is the count of gold medals won.
	GoldMedals int `csv:"gold_medals" json:"gold_medals" gorm:"column:gold_medals" validate:"gte=0"`

	// SilverMedals is the count of silver medals won.
	SilverMedals int `csv:"silver_medals" json:"silver_medals" gorm:"column:silver_medals" validate:"gte=0"`

	// BronzeMedals is the count of bronze medals won.
	BronzeMedals int `csv:"bronze_medals" json:"bronze_medals" gorm:"column:bronze_medals" validate:"gte=0"`

	// RecentMedals is the count of medals won in games from the recent year cutoff onward.
	RecentMedals int `csv:"recent_medals" json:"recent_medals" gorm:"column:recent_medals" validate:"gte=0"`
}

// Matches reports whether key is the code, case insensitive, or the name of the country.
func (h *CountryHistory) Matches(key string) bool {
	key = strings.TrimSpace(key)
	return strings.EqualFold(h.CountryCode, key) || strings.EqualFold(h.CountryName, key)
}

// GameTotal is the medal total of one country at one games.
type GameTotal struct {
	CountryName string `csv:"country_name" json:"country_name" gorm:"column:country_name" validate:"required"`
	GameYear    int    `csv:"game_year" json:"game_year" gorm:"column:game_year" validate:"gt=0"`
	GameSeason  string `csv:"game_season" json:"game_season" gorm:"column:game_season" validate:"required"`
	TotalMedals int    `csv:"total_medals" json:"total_medals" gorm:"column:total_medals" validate:"gte=0"`
}

// Source is the interface used for reading history data.
type Source interface {
	// Histories returns every country history ordered by total medals descending.
	Histories(context.Context) ([]CountryHistory, error)

	// History returns the history of a country looked up by code or name,
	// it returns ErrNotFound when no country matches.
	History(context.Context, string) (*CountryHistory, error)

	// TopCountryCodes returns codes of the countries with the most medals.
	TopCountryCodes(context.Context, int) ([]string, error)

	// GameTotals returns medal totals per country and games.
	GameTotals(context.Context) ([]GameTotal, error)
}
