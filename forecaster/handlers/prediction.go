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

	"github.com/medalcast/medalcast/forecaster/types"
)

// GetParis2024 returns the generated predictions list.
func (h *Handlers) GetParis2024(ctx *gin.Context) {
	records, err := h.service.Paris2024(ctx.Request.Context())
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, types.Response{
		Success:    true,
		Data:       records,
		Count:      count(len(records)),
		Olympics:   types.Paris2024,
		DataSource: h.config.DataSource,
	})
}

// GetCountry returns the prediction of a country by code or name.
func (h *Handlers) GetCountry(ctx *gin.Context) {
	var params types.PredictCountryParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	record, err := h.service.PredictCountry(ctx.Request.Context(), strings.ToUpper(strings.TrimSpace(params.Code)))
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, types.Response{
		Success:    true,
		Data:       record,
		Olympics:   types.Paris2024,
		DataSource: h.config.DataSource,
	})
}

// GetTop returns predictions of the countries with most historical medals.
func (h *Handlers) GetTop(ctx *gin.Context) {
	var params types.TopParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if params.Limit > h.config.MaxLimit {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fmt.Sprintf("limit must not exceed %d", h.config.MaxLimit)})
		return
	}

	records, err := h.service.Top(ctx.Request.Context(), params.Limit)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, types.Response{
		Success:    true,
		Data:       records,
		Count:      count(len(records)),
		DataSource: h.config.DataSource,
	})
}

// GetTotal returns the total medals prediction of a games.
func (h *Handlers) GetTotal(ctx *gin.Context) {
	var query types.PredictTotalQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	prediction, err := h.service.PredictTotal(ctx.Request.Context(), query.Year, query.Season)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, types.Response{
		Success: true,
		Data:    prediction,
	})
}
