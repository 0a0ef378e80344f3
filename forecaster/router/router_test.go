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

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-http-utils/headers"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medalcast/medalcast/forecaster/config"
	"github.com/medalcast/medalcast/forecaster/predictor"
	"github.com/medalcast/medalcast/forecaster/service"
	"github.com/medalcast/medalcast/forecaster/service/mocks"
)

func TestRouter_Init(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	svc := mocks.NewMockService(ctl)
	svc.EXPECT().Health().Return(service.Health{Status: service.HealthStatusHealthy}).Times(1)
	svc.EXPECT().Paris2024(gomock.Any()).Return([]predictor.PredictionRecord{}, nil).Times(1)
	svc.EXPECT().Overview(gomock.Any()).Return(nil, service.ErrStatsUnavailable).Times(1)

	r, err := Init(config.New(), svc)
	require.NoError(t, err)

	routes := map[string]bool{}
	for _, route := range r.Routes() {
		routes[route.Method+" "+route.Path] = true
	}

	for _, route := range []string{
		"GET /api/ml/health",
		"GET /api/ml/predict/paris2024",
		"GET /api/ml/predict/country/:code",
		"GET /api/ml/predict/total",
		"GET /api/ml/models/info",
		"GET /api/ml/top/:limit",
		"POST /api/ml/retrain",
		"POST /api/ml/retrain/simple",
		"GET /api/stats/overview",
		"GET /api/medals/top-countries",
		"GET /api/medals/by-year",
		"GET /api/hosts",
		"GET /api/stats/france",
		"GET /api/stats/country/:code",
		"GET /api/sports/top",
		"GET /api/athletes",
		"GET /api/athletes/top",
		"GET /api/athletes/by-sport",
		"GET /api/athletes/legends",
		"GET /api/athletes/stats",
	} {
		assert.True(t, routes[route], route)
	}

	tests := []struct {
		req    *http.Request
		expect int
	}{
		{req: httptest.NewRequest("GET", "/api/ml/health", nil), expect: http.StatusOK},
		{req: httptest.NewRequest("GET", "/api/ml/predict/paris2024", nil), expect: http.StatusOK},
		{req: httptest.NewRequest("GET", "/api/stats/overview", nil), expect: http.StatusNotFound},
	}

	for _, tc := range tests {
		w := httptest.NewRecorder()
		tc.req.Header.Set(headers.Origin, "http://localhost:3000")
		r.ServeHTTP(w, tc.req)
		assert.Equal(t, tc.expect, w.Code, tc.req.URL.Path)
		assert.Equal(t, "*", w.Header().Get(headers.AccessControlAllowOrigin))
	}
}
