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

package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/medalcast/medalcast/forecaster/database"
	"github.com/medalcast/medalcast/forecaster/types"
)

const (
	franceCountryCode = "FR"

	defaultTopSportsLimit     = 10
	defaultAthletesLimit      = 50
	defaultTopAthletesLimit   = 10
	defaultSportAthletesLimit = 5
)

func (h *Handlers) GetFrance(ctx *gin.Context) {
	h.countryMedals(ctx, franceCountryCode)
}

func (h *Handlers) GetCountryStats(ctx *gin.Context) {
	var params types.CountryStatsParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	h.countryMedals(ctx, strings.ToUpper(params.Code))
}

func (h *Handlers) countryMedals(ctx *gin.Context, code string) {
	country, err := h.service.CountryMedals(ctx.Request.Context(), code)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, types.Response{Success: true, Data: country})
}

func (h *Handlers) GetTopSports(ctx *gin.Context) {
	var query types.TopSportsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if query.Limit == 0 {
		query.Limit = defaultTopSportsLimit
	}

	sports, err := h.service.TopSports(ctx.Request.Context(), query.Limit, strings.ToUpper(query.Country))
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, types.Response{Success: true, Data: sports, Count: count(len(sports))})
}

func (h *Handlers) GetAthletes(ctx *gin.Context) {
	var query types.AthletesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if query.Limit == 0 {
		query.Limit = defaultAthletesLimit
	}

	athletes, err := h.service.Athletes(ctx.Request.Context(), database.AthleteFilter{
		Limit:       query.Limit,
		CountryCode: strings.ToUpper(query.Country),
		Sport:       query.Sport,
	})
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, types.Response{Success: true, Data: athletes, Count: count(len(athletes))})
}

func (h *Handlers) GetTopAthletes(ctx *gin.Context) {
	var query types.LimitQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if query.Limit == 0 {
		query.Limit = defaultTopAthletesLimit
	}

	athletes, err := h.service.TopAthletes(ctx.Request.Context(), query.Limit)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, types.Response{Success: true, Data: athletes, Count: count(len(athletes))})
}

func (h *Handlers) GetAthletesBySport(ctx *gin.Context) {
	var query types.LimitQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if query.Limit == 0 {
		query.Limit = defaultSportAthletesLimit
	}

	bySport, err := h.service.AthletesBySport(ctx.Request.Context(), query.Limit)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, types.Response{Success: true, Data: bySport, Count: count(len(bySport))})
}

func (h *Handlers) GetLegends(ctx *gin.Context) {
	legends, err := h.service.Legends(ctx.Request.Context(), database.DefaultLegendMinGold, database.DefaultLegendLimit)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, types.Response{
		Success:  true,
		Data:     legends,
		Count:    count(len(legends)),
		Criteria: fmt.Sprintf("Athletes with %d+ gold medals", database.DefaultLegendMinGold),
	})
}

func (h *Handlers) GetAthleteStats(ctx *gin.Context) {
	summary, err := h.service.AthleteStats(ctx.Request.Context())
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, types.Response{Success: true, Data: summary})
}
