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

package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medalcast/medalcast/forecaster/database"
	"github.com/medalcast/medalcast/forecaster/history"
	"github.com/medalcast/medalcast/forecaster/predictor"
	"github.com/medalcast/medalcast/forecaster/service"
	"github.com/medalcast/medalcast/forecaster/training"
	"github.com/medalcast/medalcast/forecaster/types"
	logger "github.com/medalcast/medalcast/internal/mclog"
)

// Error writes the response of the last handler error.
func Error() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		err := c.Errors.Last()
		if err == nil {
			return
		}

		c.JSON(status(err.Err), types.Response{
			Success: false,
			Error:   err.Err.Error(),
		})
	}
}

func status(err error) int {
	switch {
	case errors.Is(err, predictor.ErrCountryNotFound), errors.Is(err, database.ErrCountryNotFound), errors.Is(err, service.ErrStatsUnavailable):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNotTrained):
		return http.StatusServiceUnavailable
	case errors.Is(err, training.ErrDataInsufficient), errors.Is(err, training.ErrUnknownLabel), errors.Is(err, history.ErrInvalid):
		return http.StatusUnprocessableEntity
	default:
		logger.Errorf("request failed: %s", err.Error())
		return http.StatusInternalServerError
	}
}
