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
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/medalcast/medalcast/forecaster/config"
	"github.com/medalcast/medalcast/pkg/types"
	"github.com/medalcast/medalcast/version"
)

// Variables declared for metrics.
var (
	TrainStartedCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ForecasterMetricsName,
		Name:      "training_started_total",
		Help:      "Counter of the number of the training started.",
	}, []string{"mode"})

	TrainFailureCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ForecasterMetricsName,
		Name:      "training_failure_total",
		Help:      "Counter of the number of failed of the training.",
	}, []string{"mode"})

	ExcludedRowsCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ForecasterMetricsName,
		Name:      "excluded_rows_total",
		Help:      "Counter of the number of the rows excluded from training.",
	}, []string{"mode"})

	ModelR2Gauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ForecasterMetricsName,
		Name:      "model_r2",
		Help:      "R2 of the model on the test partition of the last training.",
	}, []string{"mode", "model"})

	PredictionCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ForecasterMetricsName,
		Name:      "prediction_total",
		Help:      "Counter of the number of the prediction served.",
	}, []string{"kind"})

	PredictionNotFoundCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ForecasterMetricsName,
		Name:      "prediction_not_found_total",
		Help:      "Counter of the number of the prediction of unknown countries.",
	})

	VersionGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ForecasterMetricsName,
		Name:      "version",
		Help:      "Version info of the service.",
	}, []string{"major", "minor", "git_version", "git_commit", "platform", "build_time", "go_version", "go_tags", "go_gcflags"})
)

func New(cfg *config.MetricsConfig) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	VersionGauge.WithLabelValues(version.Major, version.Minor, version.GitVersion, version.GitCommit, version.Platform, version.BuildTime, version.GoVersion, version.Gotags, version.Gogcflags).Set(1)
	return &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}
}
