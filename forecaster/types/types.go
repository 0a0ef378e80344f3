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

package types

const (
	// Paris2024 is the games of the generated predictions list.
	Paris2024 = "Paris 2024"
)

// Response is the envelope of every API response.
type Response struct {
	Success    bool   `json:"success"`
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
	Message    string `json:"message,omitempty"`
	Count      *int   `json:"count,omitempty"`
	Olympics   string `json:"olympics,omitempty"`
	DataSource string `json:"data_source,omitempty"`
	Criteria   string `json:"criteria,omitempty"`
}

type PredictCountryParams struct {
	Code string `uri:"code" binding:"required,min=1,max=64"`
}

type TopParams struct {
	Limit int `uri:"limit" binding:"required,gte=1"`
}

type PredictTotalQuery struct {
	Year   int    `form:"year" binding:"required,gte=1896,lte=2100"`
	Season string `form:"season" binding:"required,oneof=Summer Winter"`
}

type RetrainSimpleRequest struct {
	Country string `json:"country" binding:"omitempty,max=256"`
}

type TopCountriesQuery struct {
	Limit int `form:"limit" binding:"omitempty,gte=1,lte=1000"`
}

type MedalsByYearQuery struct {
	Country string `form:"country" binding:"omitempty,max=64"`
}

type CountryStatsParams struct {
	Code string `uri:"code" binding:"required,min=1,max=64"`
}

type LimitQuery struct {
	Limit int `form:"limit" binding:"omitempty,gte=1,lte=1000"`
}

type TopSportsQuery struct {
	Limit   int    `form:"limit" binding:"omitempty,gte=1,lte=1000"`
	Country string `form:"country" binding:"omitempty,max=64"`
}

type AthletesQuery struct {
	Limit   int    `form:"limit" binding:"omitempty,gte=1,lte=1000"`
	Country string `form:"country" binding:"omitempty,max=64"`
	Sport   string `form:"sport" binding:"omitempty,max=256"`
}
