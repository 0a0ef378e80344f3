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
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/go-http-utils/headers"
	ginprometheus "github.com/mcuadros/go-gin-prometheus"

	"github.com/medalcast/medalcast/forecaster/config"
	"github.com/medalcast/medalcast/forecaster/handlers"
	"github.com/medalcast/medalcast/forecaster/middlewares"
	"github.com/medalcast/medalcast/forecaster/service"
	logger "github.com/medalcast/medalcast/internal/mclog"
	"github.com/medalcast/medalcast/pkg/types"
)

func Init(cfg *config.Config, service service.Service) (*gin.Engine, error) {
	// Set mode.
	if !cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	h := handlers.New(service, &cfg.Prediction)

	// Prometheus metrics, labelled by path without query string.
	p := ginprometheus.NewPrometheus(types.GinMetricsName)
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		return c.FullPath()
	}
	p.Use(r)

	// CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{headers.Origin, headers.ContentType, headers.Accept}
	corsConfig.ExposeHeaders = []string{middlewares.ServerVersion}

	// Middleware
	r.Use(gin.Recovery())
	r.Use(ginzap.Ginzap(logger.GinLogger.Desugar(), time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger.GinLogger.Desugar(), true))
	r.Use(middlewares.Server())
	r.Use(middlewares.Error())
	r.Use(cors.New(corsConfig))

	// Router
	ml := r.Group("/api/ml")
	ml.GET("health", h.GetHealth)
	ml.GET("top/:limit", h.GetTop)
	ml.POST("retrain", h.Retrain)
	ml.POST("retrain/simple", h.RetrainSimple)

	pr := ml.Group("/predict")
	pr.GET("paris2024", h.GetParis2024)
	pr.GET("country/:code", h.GetCountry)
	pr.GET("total", h.GetTotal)

	m := ml.Group("/models")
	m.GET("info", h.GetModelsInfo)

	// Aggregates of the medals corpus.
	api := r.Group("/api")
	api.GET("stats/overview", h.GetOverview)
	api.GET("medals/top-countries", h.GetTopCountries)
	api.GET("medals/by-year", h.GetMedalsByYear)
	api.GET("hosts", h.GetHosts)
	api.GET("stats/france", h.GetFrance)
	api.GET("stats/country/:code", h.GetCountryStats)
	api.GET("sports/top", h.GetTopSports)

	a := api.Group("/athletes")
	a.GET("", h.GetAthletes)
	a.GET("top", h.GetTopAthletes)
	a.GET("by-sport", h.GetAthletesBySport)
	a.GET("legends", h.GetLegends)
	a.GET("stats", h.GetAthleteStats)

	return r, nil
}
