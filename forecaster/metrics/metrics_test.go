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

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medalcast/medalcast/forecaster/config"
)

func TestMetrics_New(t *testing.T) {
	svr := New(&config.MetricsConfig{Enable: true, Addr: ":8000"})
	assert.Equal(t, ":8000", svr.Addr)

	TrainStartedCount.WithLabelValues("full").Inc()
	ModelR2Gauge.WithLabelValues("full", "random_forest").Set(0.9)

	w := httptest.NewRecorder()
	svr.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "medalcast_forecaster_version"))
	assert.True(t, strings.Contains(string(body), `medalcast_forecaster_model_r2{mode="full",model="random_forest"} 0.9`))
	assert.True(t, strings.Contains(string(body), `medalcast_forecaster_training_started_total{mode="full"}`))
}
