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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/medalcast/medalcast/forecaster/config"
	"github.com/medalcast/medalcast/forecaster/history"
)

var (
	mockHosts = []Host{
		{GameSlug: "barcelona-1992", GameName: "Barcelona 1992", GameYear: 1992, GameSeason: "Summer", GameLocation: "Spain", GameStartDate: time.Date(1992, 7, 25, 0, 0, 0, 0, time.UTC)},
		{GameSlug: "london-2012", GameName: "London 2012", GameYear: 2012, GameSeason: "Summer", GameLocation: "Great Britain", GameStartDate: time.Date(2012, 7, 27, 0, 0, 0, 0, time.UTC)},
		{GameSlug: "tokyo-2020", GameName: "Tokyo 2020", GameYear: 2020, GameSeason: "Summer", GameLocation: "Japan", GameStartDate: time.Date(2021, 7, 23, 0, 0, 0, 0, time.UTC)},
		{GameSlug: "beijing-2022", GameName: "Beijing 2022", GameYear: 2022, GameSeason: "Winter", GameLocation: "China", GameStartDate: time.Date(2022, 2, 4, 0, 0, 0, 0, time.UTC)},
	}

	mockMedals = []Medal{
		{SlugGame: "barcelona-1992", DisciplineTitle: "Athletics", MedalType: MedalTypeGold, AthleteFullName: "Marie-Jose Perec", CountryName: "France", CountryCode: "FR"},
		{SlugGame: "barcelona-1992", DisciplineTitle: "Swimming", MedalType: MedalTypeSilver, AthleteFullName: "Laure Manaudou", CountryName: "France", CountryCode: "FR"},
		{SlugGame: "london-2012", DisciplineTitle: "Athletics", MedalType: MedalTypeBronze, AthleteFullName: "Renaud Lavillenie", CountryName: "France", CountryCode: "FR"},
		{SlugGame: "tokyo-2020", DisciplineTitle: "Swimming", MedalType: MedalTypeGold, AthleteFullName: "Laure Manaudou", CountryName: "France", CountryCode: "FR"},
		{SlugGame: "barcelona-1992", DisciplineTitle: "Athletics", MedalType: MedalTypeGold, AthleteFullName: "Carl Lewis", CountryName: "United States", CountryCode: "US"},
		{SlugGame: "barcelona-1992", DisciplineTitle: "Swimming", MedalType: MedalTypeGold, AthleteFullName: "Michael Phelps", CountryName: "United States", CountryCode: "US"},
		{SlugGame: "london-2012", DisciplineTitle: "Swimming", MedalType: MedalTypeGold, AthleteFullName: "Michael Phelps", CountryName: "United States", CountryCode: "US"},
		{SlugGame: "london-2012", DisciplineTitle: "Athletics", MedalType: MedalTypeSilver, AthleteFullName: "Carl Lewis", CountryName: "United States", CountryCode: "US"},
		{SlugGame: "tokyo-2020", DisciplineTitle: "Athletics", MedalType: MedalTypeBronze, AthleteFullName: "Carl Lewis", CountryName: "United States", CountryCode: "US"},
		{SlugGame: "beijing-2022", DisciplineTitle: "Skiing", MedalType: MedalTypeBronze, CountryName: "United States", CountryCode: "US"},
		{SlugGame: "beijing-2022", DisciplineTitle: "Skiing", MedalType: MedalTypeGold, AthleteFullName: "Marit Bjoergen", CountryName: "Norway", CountryCode: "NO"},
	}
)

func mockDB(t *testing.T) *gorm.DB {
	db, err := open(sqlite.Open(":memory:"), false, true)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Create(&mockHosts).Error)
	require.NoError(t, db.Create(&mockMedals).Error)
	return db
}

func TestDatabase_New(t *testing.T) {
	cfg := config.New()
	cfg.Database.Type = "sqlserver"

	_, err := New(cfg)
	assert.EqualError(t, err, "invalid database type sqlserver")
}

func TestDatabase_FormatDSN(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("host=localhost user=foo password=bar dbname=olympics port=5432 sslmode=disable TimeZone=UTC", formatPostgresDSN(&config.PostgresConfig{
		User:     "foo",
		Password: "bar",
		Host:     "localhost",
		Port:     5432,
		DBName:   "olympics",
		SSLMode:  "disable",
		Timezone: "UTC",
	}))

	dsn := formatMysqlDSN(&config.MysqlConfig{
		User:     "foo",
		Password: "bar",
		Host:     "localhost",
		Port:     3306,
		DBName:   "olympics",
	})
	assert.Contains(dsn, "foo:bar@tcp(localhost:3306)/olympics")
	assert.Contains(dsn, "parseTime=true")
}

func TestSource_Histories(t *testing.T) {
	s := NewSource(mockDB(t), 2012)
	histories, err := s.Histories(context.Background())
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal([]history.CountryHistory{
		{CountryName: "United States", CountryCode: "US", OlympicsParticipated: 4, TotalMedals: 6, GoldMedals: 3, SilverMedals: 1, BronzeMedals: 2, RecentMedals: 4},
		{CountryName: "France", CountryCode: "FR", OlympicsParticipated: 3, TotalMedals: 4, GoldMedals: 2, SilverMedals: 1, BronzeMedals: 1, RecentMedals: 2},
		{CountryName: "Norway", CountryCode: "NO", OlympicsParticipated: 1, TotalMedals: 1, GoldMedals: 1, SilverMedals: 0, BronzeMedals: 0, RecentMedals: 1},
	}, histories)

	for _, h := range histories {
		assert.NoError(history.Validate(h))
	}
}

func TestSource_History(t *testing.T) {
	s := NewSource(mockDB(t), 2012)
	tests := []struct {
		name   string
		key    string
		expect func(t *testing.T, h *history.CountryHistory, err error)
	}{
		{
			name: "lookup by code",
			key:  "fr",
			expect: func(t *testing.T, h *history.CountryHistory, err error) {
				require.NoError(t, err)
				assert.Equal(t, "France", h.CountryName)
				assert.Equal(t, 4, h.TotalMedals)
			},
		},
		{
			name: "lookup by name",
			key:  "united states",
			expect: func(t *testing.T, h *history.CountryHistory, err error) {
				require.NoError(t, err)
				assert.Equal(t, "US", h.CountryCode)
			},
		},
		{
			name: "unknown country",
			key:  "XX",
			expect: func(t *testing.T, h *history.CountryHistory, err error) {
				assert.True(t, errors.Is(err, history.ErrNotFound))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, err := s.History(context.Background(), tc.key)
			tc.expect(t, h, err)
		})
	}
}

func TestSource_TopCountryCodes(t *testing.T) {
	s := NewSource(mockDB(t), 2012)
	codes, err := s.TopCountryCodes(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"US", "FR"}, codes)

	codes, err = s.TopCountryCodes(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, codes)
}

func TestSource_GameTotals(t *testing.T) {
	s := NewSource(mockDB(t), 2012)
	totals, err := s.GameTotals(context.Background())
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Len(totals, 8)
	assert.Equal(history.GameTotal{CountryName: "France", GameYear: 1992, GameSeason: "Summer", TotalMedals: 2}, totals[0])
	assert.Equal(history.GameTotal{CountryName: "Norway", GameYear: 2022, GameSeason: "Winter", TotalMedals: 1}, totals[3])
}

func TestStats(t *testing.T) {
	s := NewStats(mockDB(t))
	ctx := context.Background()
	assert := assert.New(t)

	overview, err := s.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(&Overview{TotalMedals: 11, TotalCountries: 3, TotalGames: 4, TotalDisciplines: 3}, overview)

	countries, err := s.TopCountries(ctx, 2)
	require.NoError(t, err)
	assert.Equal([]CountryMedals{
		{CountryName: "United States", CountryCode: "US", TotalMedals: 6, Gold: 3, Silver: 1, Bronze: 2},
		{CountryName: "France", CountryCode: "FR", TotalMedals: 4, Gold: 2, Silver: 1, Bronze: 1},
	}, countries)

	years, err := s.MedalsByYear(ctx, "")
	require.NoError(t, err)
	assert.Equal([]YearMedals{
		{Year: 1992, TotalMedals: 4, Gold: 3, Silver: 1},
		{Year: 2012, TotalMedals: 3, Gold: 1, Silver: 1, Bronze: 1},
		{Year: 2020, TotalMedals: 2, Gold: 1, Bronze: 1},
		{Year: 2022, TotalMedals: 2, Gold: 1, Bronze: 1},
	}, years)

	years, err = s.MedalsByYear(ctx, "fr")
	require.NoError(t, err)
	assert.Len(years, 3)
	assert.Equal(YearMedals{Year: 1992, TotalMedals: 2, Gold: 1, Silver: 1}, years[0])

	hosts, err := s.Hosts(ctx)
	require.NoError(t, err)
	require.Len(t, hosts, 4)
	assert.Equal("beijing-2022", hosts[0].GameSlug)
	assert.Equal("barcelona-1992", hosts[3].GameSlug)
}

func TestStats_CountryMedals(t *testing.T) {
	s := NewStats(mockDB(t))
	tests := []struct {
		name   string
		code   string
		expect func(t *testing.T, country *CountryMedals, err error)
	}{
		{
			name: "country of code",
			code: "fr",
			expect: func(t *testing.T, country *CountryMedals, err error) {
				require.NoError(t, err)
				assert.Equal(t, &CountryMedals{CountryName: "France", CountryCode: "FR", TotalMedals: 4, Gold: 2, Silver: 1, Bronze: 1}, country)
			},
		},
		{
			name: "country without medals",
			code: "XX",
			expect: func(t *testing.T, country *CountryMedals, err error) {
				assert.Nil(t, country)
				assert.True(t, errors.Is(err, ErrCountryNotFound))
				assert.EqualError(t, err, "country not found: XX")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			country, err := s.CountryMedals(context.Background(), tc.code)
			tc.expect(t, country, err)
		})
	}
}

func TestStats_TopSports(t *testing.T) {
	s := NewStats(mockDB(t))
	ctx := context.Background()

	sports, err := s.TopSports(ctx, 10, "")
	require.NoError(t, err)
	assert.Equal(t, []SportMedals{
		{Sport: "Athletics", Medals: 5},
		{Sport: "Swimming", Medals: 4},
		{Sport: "Skiing", Medals: 2},
	}, sports)

	sports, err = s.TopSports(ctx, 1, "fr")
	require.NoError(t, err)
	assert.Equal(t, []SportMedals{{Sport: "Athletics", Medals: 2}}, sports)
}

func TestStats_Athletes(t *testing.T) {
	s := NewStats(mockDB(t))
	tests := []struct {
		name   string
		filter AthleteFilter
		expect func(t *testing.T, athletes []AthleteMedals)
	}{
		{
			name:   "named athletes only",
			filter: AthleteFilter{Limit: 50},
			expect: func(t *testing.T, athletes []AthleteMedals) {
				require.Len(t, athletes, 6)
				assert.Equal(t, AthleteMedals{AthleteFullName: "Carl Lewis", CountryName: "United States", CountryCode: "US", TotalMedals: 3, Gold: 1, Silver: 1, Bronze: 1}, athletes[0])
				for _, athlete := range athletes {
					assert.NotEmpty(t, athlete.AthleteFullName)
				}
			},
		},
		{
			name:   "filter by country and sport",
			filter: AthleteFilter{Limit: 50, CountryCode: "fr", Sport: "Swimming"},
			expect: func(t *testing.T, athletes []AthleteMedals) {
				assert.Equal(t, []AthleteMedals{
					{AthleteFullName: "Laure Manaudou", CountryName: "France", CountryCode: "FR", TotalMedals: 2, Gold: 1, Silver: 1},
				}, athletes)
			},
		},
		{
			name:   "ties ordered by name",
			filter: AthleteFilter{Limit: 3, Sport: "Athletics"},
			expect: func(t *testing.T, athletes []AthleteMedals) {
				require.Len(t, athletes, 3)
				assert.Equal(t, "Carl Lewis", athletes[0].AthleteFullName)
				assert.Equal(t, "Marie-Jose Perec", athletes[1].AthleteFullName)
				assert.Equal(t, "Renaud Lavillenie", athletes[2].AthleteFullName)
			},
		},
		{
			name:   "unknown sport",
			filter: AthleteFilter{Limit: 50, Sport: "Curling"},
			expect: func(t *testing.T, athletes []AthleteMedals) {
				assert.NotNil(t, athletes)
				assert.Empty(t, athletes)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			athletes, err := s.Athletes(context.Background(), tc.filter)
			require.NoError(t, err)
			tc.expect(t, athletes)
		})
	}
}

func TestStats_TopAthletes(t *testing.T) {
	s := NewStats(mockDB(t))
	athletes, err := s.TopAthletes(context.Background(), 3)
	require.NoError(t, err)

	require.Len(t, athletes, 3)
	assert.Equal(t, "Carl Lewis", athletes[0].AthleteFullName)
	assert.Equal(t, AthleteMedals{AthleteFullName: "Michael Phelps", CountryName: "United States", CountryCode: "US", TotalMedals: 2, Gold: 2}, athletes[1])
	assert.Equal(t, "Laure Manaudou", athletes[2].AthleteFullName)
}

func TestStats_AthletesBySport(t *testing.T) {
	s := NewStats(mockDB(t))
	bySport, err := s.AthletesBySport(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, map[string][]SportAthlete{
		"Athletics": {{AthleteFullName: "Carl Lewis", CountryName: "United States", Medals: 3}},
		"Skiing":    {{AthleteFullName: "Marit Bjoergen", CountryName: "Norway", Medals: 1}},
		"Swimming":  {{AthleteFullName: "Laure Manaudou", CountryName: "France", Medals: 2}},
	}, bySport)
}

func TestStats_Legends(t *testing.T) {
	s := NewStats(mockDB(t))
	ctx := context.Background()

	legends, err := s.Legends(ctx, 2, DefaultLegendLimit)
	require.NoError(t, err)
	assert.Equal(t, []AthleteMedals{
		{AthleteFullName: "Michael Phelps", CountryName: "United States", CountryCode: "US", TotalMedals: 2, Gold: 2, Sports: []string{"Swimming"}},
	}, legends)

	legends, err = s.Legends(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, legends, 2)
	assert.Equal(t, "Michael Phelps", legends[0].AthleteFullName)
	assert.Equal(t, "Carl Lewis", legends[1].AthleteFullName)
	assert.Equal(t, []string{"Athletics"}, legends[1].Sports)

	legends, err = s.Legends(ctx, DefaultLegendMinGold, DefaultLegendLimit)
	require.NoError(t, err)
	assert.NotNil(t, legends)
	assert.Empty(t, legends)
}

func TestStats_AthleteStats(t *testing.T) {
	s := NewStats(mockDB(t))
	summary, err := s.AthleteStats(context.Background())
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(int64(6), summary.TotalAthletes)
	require.NotNil(t, summary.TopMedalist)
	assert.Equal("Carl Lewis", summary.TopMedalist.AthleteFullName)
	assert.Equal(int64(3), summary.TopMedalist.TotalMedals)
	require.NotNil(t, summary.TopGoldMedalist)
	assert.Equal("Michael Phelps", summary.TopGoldMedalist.AthleteFullName)
	assert.Equal(int64(2), summary.TopGoldMedalist.Gold)
	assert.Equal([]CountryAthletes{
		{CountryName: "France", Athletes: 3},
		{CountryName: "United States", Athletes: 2},
		{CountryName: "Norway", Athletes: 1},
	}, summary.CountriesWithMostAthletes)
}
