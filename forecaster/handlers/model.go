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
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medalcast/medalcast/forecaster/types"
)

// GetModelsInfo returns reports and configuration of the loaded models.
func (h *Handlers) GetModelsInfo(ctx *gin.Context) {
	info, err := h.service.ModelsInfo(ctx.Request.Context())
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, types.Response{
		Success: true,
		Data:    info,
	})
}

// RetrainResponse is the response of retraining.
type RetrainResponse struct {
	Report               any `json:"report"`
	PredictionsGenerated int `json:"predictions_generated"`
}

// Retrain trains a new full model set and regenerates predictions.
func (h *Handlers) Retrain(ctx *gin.Context) {
	report, err := h.service.Retrain(ctx.Request.Context())
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	records, err := h.service.Paris2024(ctx.Request.Context())
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, types.Response{
		Success: true,
		Message: "models retrained",
		Data: RetrainResponse{
			Report:               report,
			PredictionsGenerated: len(records),
		},
	})
}

// RetrainSimple trains a new total medals model, the body is optional.
func (h *Handlers) RetrainSimple(ctx *gin.Context) {
	var json types.RetrainSimpleRequest
	if err := ctx.ShouldBindJSON(&json); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	report, err := h.service.RetrainSimple(ctx.Request.Context(), json.Country)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, types.Response{
		Success: true,
		Message: "simple model retrained",
		Data:    report,
	})
}
