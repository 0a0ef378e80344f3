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

import "time"

const (
	// MedalTypeGold is the medal type of gold medals.
	MedalTypeGold = "GOLD"

	// MedalTypeSilver is the medal type of silver medals.
	MedalTypeSilver = "SILVER"

	// MedalTypeBronze is the medal type of bronze medals.
	MedalTypeBronze = "BRONZE"
)

// Host is an olympic games.
type Host struct {
	ID            uint      `gorm:"primarykey;comment:id" json:"id"`
	GameSlug      string    `gorm:"column:game_slug;type:varchar(256);uniqueIndex;not null;comment:games identifier" json:"game_slug"`
	GameName      string    `gorm:"column:game_name;type:varchar(256);comment:games name" json:"game_name"`
	GameYear      int       `gorm:"column:game_year;index;comment:games year" json:"game_year"`
	GameSeason    string    `gorm:"column:game_season;type:varchar(32);comment:summer or winter" json:"game_season"`
	GameLocation  string    `gorm:"column:game_location;type:varchar(256);comment:host country" json:"game_location"`
	GameStartDate time.Time `gorm:"column:game_start_date;comment:opening date" json:"game_start_date"`
	GameEndDate   time.Time `gorm:"column:game_end_date;comment:closing date" json:"game_end_date"`
}

func (Host) TableName() string {
	return "hosts"
}

// Medal is a medal awarded at an event.
type Medal struct {
	ID                 uint   `gorm:"primarykey;comment:id" json:"id"`
	DisciplineTitle    string `gorm:"column:discipline_title;type:varchar(256);comment:discipline" json:"discipline_title"`
	SlugGame           string `gorm:"column:slug_game;type:varchar(256);index;comment:games identifier" json:"slug_game"`
	EventTitle         string `gorm:"column:event_title;type:varchar(256);comment:event" json:"event_title"`
	EventGender        string `gorm:"column:event_gender;type:varchar(32);comment:event gender" json:"event_gender"`
	MedalType          string `gorm:"column:medal_type;type:varchar(32);comment:gold, silver or bronze" json:"medal_type"`
	ParticipantType    string `gorm:"column:participant_type;type:varchar(32);comment:athlete or team" json:"participant_type"`
	ParticipantTitle   string `gorm:"column:participant_title;type:varchar(256);comment:team name" json:"participant_title"`
	AthleteURL         string `gorm:"column:athlete_url;type:varchar(512);comment:athlete page" json:"athlete_url"`
	AthleteFullName    string `gorm:"column:athlete_full_name;type:varchar(256);comment:athlete name" json:"athlete_full_name"`
	CountryName        string `gorm:"column:country_name;type:varchar(256);index;comment:country name" json:"country_name"`
	CountryCode        string `gorm:"column:country_code;type:varchar(16);index;comment:country code" json:"country_code"`
	Country3LetterCode string `gorm:"column:country_3_letter_code;type:varchar(16);comment:country iso code" json:"country_3_letter_code"`
}

func (Medal) TableName() string {
	return "medals"
}

// Athlete is a competitor.
type Athlete struct {
	ID              uint   `gorm:"primarykey;comment:id" json:"id"`
	AthleteFullName string `gorm:"column:athlete_full_name;type:varchar(256);index;comment:athlete name" json:"athlete_full_name"`
	Gender          string `gorm:"column:gender;type:varchar(32);comment:gender" json:"gender"`
	CountryName     string `gorm:"column:country_name;type:varchar(256);comment:country name" json:"country_name"`
}

func (Athlete) TableName() string {
	return "athletes"
}

// Result is a ranking of an event.
type Result struct {
	ID                 uint   `gorm:"primarykey;comment:id" json:"id"`
	DisciplineTitle    string `gorm:"column:discipline_title;type:varchar(256);comment:discipline" json:"discipline_title"`
	EventTitle         string `gorm:"column:event_title;type:varchar(256);comment:event" json:"event_title"`
	SlugGame           string `gorm:"column:slug_game;type:varchar(256);index;comment:games identifier" json:"slug_game"`
	ParticipantType    string `gorm:"column:participant_type;type:varchar(32);comment:athlete or team" json:"participant_type"`
	MedalType          string `gorm:"column:medal_type;type:varchar(32);comment:medal if any" json:"medal_type"`
	RankEqual          bool   `gorm:"column:rank_equal;comment:shared rank" json:"rank_equal"`
	RankPosition       string `gorm:"column:rank_position;type:varchar(32);comment:rank" json:"rank_position"`
	CountryName        string `gorm:"column:country_name;type:varchar(256);comment:country name" json:"country_name"`
	CountryCode        string `gorm:"column:country_code;type:varchar(16);comment:country code" json:"country_code"`
	Country3LetterCode string `gorm:"column:country_3_letter_code;type:varchar(16);comment:country iso code" json:"country_3_letter_code"`
	AthleteURL         string `gorm:"column:athlete_url;type:varchar(512);comment:athlete page" json:"athlete_url"`
	AthleteFullName    string `gorm:"column:athlete_full_name;type:varchar(256);comment:athlete name" json:"athlete_full_name"`
	ValueUnit          string `gorm:"column:value_unit;type:varchar(64);comment:performance unit" json:"value_unit"`
	ValueType          string `gorm:"column:value_type;type:varchar(64);comment:performance type" json:"value_type"`
}

func (Result) TableName() string {
	return "results"
}
