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
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/medalcast/medalcast/forecaster"
)

var (
	predictCountry string
	predictTop     int
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "predict medals of a country or the top countries",
	Long: `predict loads the saved model set, training one when none is saved,
and prints the prediction of a country or of the top countries.`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if predictCountry == "" && predictTop <= 0 {
			return errors.New("predict requires parameter country or top")
		}

		d, err := setup()
		if err != nil {
			return err
		}

		ctx := context.Background()
		svc, err := forecaster.NewService(cfg, d)
		if err != nil {
			return err
		}

		if err := svc.Start(ctx); err != nil {
			return err
		}

		var result any
		if predictCountry != "" {
			result, err = svc.PredictCountry(ctx, strings.ToUpper(predictCountry))
		} else {
			result, err = svc.Top(ctx, predictTop)
		}
		if err != nil {
			return err
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	},
}

func init() {
	flags := predictCmd.Flags()
	flags.StringVar(&predictCountry, "country", "", "country code or name")
	flags.IntVar(&predictTop, "top", 0, "number of countries with most historical medals")
}
