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

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/medalcast/medalcast/cmd/dependency"
	"github.com/medalcast/medalcast/forecaster"
	"github.com/medalcast/medalcast/forecaster/config"
	logger "github.com/medalcast/medalcast/internal/mclog"
	"github.com/medalcast/medalcast/pkg/mcpath"
	"github.com/medalcast/medalcast/version"
)

var (
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "medalcast",
	Short: "the olympic medal forecaster",
	Long: `Medalcast trains regression models on per country olympic medal history
and serves gold, silver and bronze predictions of the next games over http.`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		return runForecaster(ctx, d)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func init() {
	// Initialize default forecaster config.
	cfg = config.New()

	rootCmd.AddCommand(trainCmd, predictCmd)

	// Initialize command and config.
	dependency.InitCommandAndConfig(rootCmd, true, cfg)
}

// setup converts and validates the config, then initializes directories and loggers.
func setup() (mcpath.Mcpath, error) {
	if err := cfg.Convert(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d, err := initMcpath(&cfg.Server)
	if err != nil {
		return nil, err
	}

	rotateConfig := logger.LogRotateConfig{
		MaxSize:    cfg.Server.LogMaxSize,
		MaxAge:     cfg.Server.LogMaxAge,
		MaxBackups: cfg.Server.LogMaxBackups,
	}

	if err := logger.InitForecaster(cfg.Verbose, cfg.Console, d.LogDir(), rotateConfig); err != nil {
		return nil, fmt.Errorf("init forecaster logger: %w", err)
	}

	dependency.InitMonitor(cfg.Verbose, cfg.PProfPort)

	return d, nil
}

func initMcpath(cfg *config.ServerConfig) (mcpath.Mcpath, error) {
	var options []mcpath.Option
	if cfg.WorkHome != "" {
		options = append(options, mcpath.WithWorkHome(cfg.WorkHome))
	}

	if cfg.LogDir != "" {
		options = append(options, mcpath.WithLogDir(cfg.LogDir))
	}

	if cfg.DataDir != "" {
		options = append(options, mcpath.WithDataDir(cfg.DataDir))
	}

	if cfg.ModelDir != "" {
		options = append(options, mcpath.WithModelDir(cfg.ModelDir))
	}

	return mcpath.New(options...)
}

func runForecaster(ctx context.Context, d mcpath.Mcpath) error {
	logger.Infof("version:\n%s", version.Version())

	svr, err := forecaster.New(ctx, cfg, d)
	if err != nil {
		return err
	}

	dependency.SetupQuitSignalHandler(func() { svr.Stop() })
	return svr.Serve()
}
