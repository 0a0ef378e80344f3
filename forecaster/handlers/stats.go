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
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/medalcast/medalcast/forecaster/types"
)

const defaultTopCountriesLimit = 10

func (h *Handlers) GetOverview(ctx *gin.Context) {
	overview, err := h.service.Overview(ctx.Request.Context())
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, types.Response{Success: true, Data: overview})
}

func (h *Handlers) GetTopCountries(ctx *gin.Context) {
	var query types.TopCountriesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if query.Limit == 0 {
		query.Limit = defaultTopCountriesLimit
	}

	countries, err := h.service.TopCountries(ctx.Request.Context(), query.Limit)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, types.Response{Success: true, Data: countries, Count: count(len(countries))})
}

func (h *Handlers) GetMedalsByYear(ctx *gin.Context) {
	var query types.MedalsByYearQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	years, err := h.service.MedalsByYear(ctx.Request.Context(), strings.ToUpper(query.Country))
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, types.Response{Success: true, Data: years, Count: count(len(years))})
}

func (h *Handlers) GetHosts(ctx *gin.Context) {
	hosts, err := h.service.Hosts(ctx.Request.Context())
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, types.Response{Success: true, Data: hosts, Count: count(len(hosts))})
}
