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
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/medalcast/medalcast/forecaster"
	"github.com/medalcast/medalcast/forecaster/training"
)

var (
	trainSimple  bool
	trainCountry string
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "train and save a model set",
	Long: `train fits the candidate models, saves the best performing set with its
metrics report and, for the full mode, regenerates the predictions list.`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup()
		if err != nil {
			return err
		}

		svc, err := forecaster.NewService(cfg, d)
		if err != nil {
			return err
		}

		var report *training.Report
		if trainSimple {
			report, err = svc.RetrainSimple(context.Background(), trainCountry)
		} else {
			report, err = svc.Retrain(context.Background())
		}
		if err != nil {
			return err
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	},
}

func init() {
	flags := trainCmd.Flags()
	flags.BoolVar(&trainSimple, "simple", false, "train the total medals models on games year and season")
	flags.StringVar(&trainCountry, "country", "", "restrict the simple mode to a country name")
}
