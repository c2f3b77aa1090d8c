// Copyright 2025
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/JohanThomas16/valucompany-data-integration/data"
	"github.com/JohanThomas16/valucompany-data-integration/export"
	"github.com/JohanThomas16/valucompany-data-integration/source"
	"github.com/charmbracelet/huh"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type pipelineConfig struct {
	Source         string `toml:"source"`
	TargetCurrency string `toml:"target_currency"`
	TargetUnit     string `toml:"target_unit"`
}

type directoryConfig struct {
	Dir string `toml:"dir"`
}

type parquetConfig struct {
	Enabled bool `toml:"enabled"`
}

type simulatedConfig struct {
	Seed      int64 `toml:"seed"`
	Companies int   `toml:"companies"`
}

type marketdataConfig struct {
	Endpoint  string `toml:"endpoint"`
	Token     string `toml:"token"`
	RateLimit int    `toml:"rate_limit"`
}

type healthcheckConfig struct {
	UUID string `toml:"uuid"`
}

type vcdataConfig struct {
	Pipeline    pipelineConfig    `toml:"pipeline"`
	Output      directoryConfig   `toml:"output"`
	Input       directoryConfig   `toml:"input"`
	Parquet     parquetConfig     `toml:"parquet"`
	Simulated   simulatedConfig   `toml:"simulated"`
	Marketdata  marketdataConfig  `toml:"marketdata"`
	Healthcheck healthcheckConfig `toml:"healthcheck"`
}

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Gather pipeline configuration and create artifact directories",
	Run: func(cmd *cobra.Command, args []string) {
		config := vcdataConfig{
			Pipeline: pipelineConfig{
				Source:         "simulated",
				TargetCurrency: data.DefaultTargetCurrency,
				TargetUnit:     data.DefaultTargetUnit,
			},
			Output: directoryConfig{Dir: "output"},
			Input:  directoryConfig{Dir: "input"},
			Simulated: simulatedConfig{
				Seed:      source.DefaultSeed,
				Companies: source.DefaultCompanies,
			},
			Marketdata: marketdataConfig{RateLimit: 60},
		}

		// build a source selection field
		sourceOptions := make([]huh.Option[string], 0, len(source.Map))
		for key, dataSource := range source.Map {
			sourceOptions = append(sourceOptions, huh.NewOption[string](dataSource.Name(), key))
		}

		form := huh.NewForm(
			// Select the data source and conversion target
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Which data source should the pipeline collect from?").
					Options(sourceOptions...).
					Value(&config.Pipeline.Source),

				huh.NewInput().
					Title("Which currency should all monetary values be converted to?").
					Value(&config.Pipeline.TargetCurrency).
					Validate(func(currency string) error {
						if len(strings.TrimSpace(currency)) != 3 {
							return errors.New("provide a 3 letter currency code (e.g. USD)")
						}
						return nil
					}),

				huh.NewConfirm().
					Title("Should the integrated dataset also be written as parquet?").
					Value(&config.Parquet.Enabled),
			),

			// Choose where run artifacts are written
			huh.NewGroup(
				huh.NewInput().
					Title("Directory for raw data snapshots:").
					Value(&config.Input.Dir),

				huh.NewInput().
					Title("Directory for the integrated dataset and quality report:").
					Value(&config.Output.Dir),
			),

			// Optional integrations
			huh.NewGroup(
				huh.NewInput().
					Title("healthchecks.io check UUID (leave blank to skip monitoring):").
					Value(&config.Healthcheck.UUID),

				huh.NewInput().
					Title("Market data API endpoint (only needed for the marketdata source):").
					Value(&config.Marketdata.Endpoint),

				huh.NewInput().
					Title("Market data API token (only needed for the marketdata source):").
					Value(&config.Marketdata.Token),
			),
		)

		err := form.Run()
		if err != nil {
			log.Fatal().Err(err).Msg("error gathering pipeline settings")
		}

		config.Pipeline.TargetCurrency = strings.ToUpper(strings.TrimSpace(config.Pipeline.TargetCurrency))

		log.Info().Msg("creating artifact directories")

		if err := export.EnsureDir(config.Input.Dir); err != nil {
			log.Fatal().Err(err).Msg("could not create the snapshot directory")
		}

		if err := export.EnsureDir(config.Output.Dir); err != nil {
			log.Fatal().Err(err).Msg("could not create the output directory")
		}

		// save pipeline settings to config file
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal().Err(err).Msg("could not determine user home directory")
		}

		configFN := filepath.Join(home, ".vcdata.toml")
		log.Info().Str("ConfigFile", configFN).Msg("Saving pipeline settings to config file")
		configData, err := toml.Marshal(config)
		if err != nil {
			log.Fatal().Err(err).Msg("could not marshal configuration data")
		}

		err = os.WriteFile(configFN, configData, 0644)
		if err != nil {
			log.Fatal().Err(err).Str("FileName", configFN).Msg("could not save configuration to file")
		}

		log.Info().Msg("Your data integration pipeline has been configured")
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	// Here you will define your flags and configuration settings.

	// Cobra supports Persistent Flags which will work for this command
	// and all subcommands, e.g.:
	// initCmd.PersistentFlags().String("foo", "", "A help for foo")

	// Cobra supports local flags which will only run when this command
	// is called directly, e.g.:
	// initCmd.Flags().BoolP("toggle", "t", false, "Help message for toggle")
}
