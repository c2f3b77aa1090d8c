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
	"os"

	"github.com/JohanThomas16/valucompany-data-integration/data"
	"github.com/JohanThomas16/valucompany-data-integration/source"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vcdata",
	Short: "vcdata builds the integrated valuation dataset used by the ValuCompany analysis tools",
	Long: `vcdata is a command line utility that assembles private market company
transactions and industry benchmark statistics into a single, analysis-ready
valuation dataset. Data is pulled from a configured source, converted into a
common currency, reshaped into a canonical schema, and joined so every company
row carries the benchmark figures for its industry alongside valuation and
margin deltas.

Supported data sources include:

	* simulated (seeded random data for development and testing)
	* marketdata (commercial private market transaction API)

Even though both feeds describe the same companies they arrive with their own
field names, currencies, and reporting units. vcdata solves this by
normalizing each feed against a configured exchange rate table before the
join, scoring the result for completeness, and writing the integrated table
plus a data quality report for downstream valuation models.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if viper.GetBool("log.pretty") {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		}

		zerolog.SetGlobalLevel(zerolog.InfoLevel)

		if viper.GetBool("log.debug") {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}

		if viper.GetBool("log.trace") {
			zerolog.SetGlobalLevel(zerolog.TraceLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.vcdata.toml)")

	rootCmd.PersistentFlags().Bool("log-pretty", true, "print logs in a human friendly format")
	if err := viper.BindPFlag("log.pretty", rootCmd.PersistentFlags().Lookup("log-pretty")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for log.pretty failed")
	}

	rootCmd.PersistentFlags().Bool("debug", false, "print debug logging")
	if err := viper.BindPFlag("log.debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for log.debug failed")
	}

	rootCmd.PersistentFlags().Bool("trace", false, "print trace logging")
	if err := viper.BindPFlag("log.trace", rootCmd.PersistentFlags().Lookup("trace")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for log.trace failed")
	}
}

// initConfig reads in the config file if present
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".vcdata" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("toml")
		viper.SetConfigName(".vcdata")
	}

	viper.SetDefault("pipeline.source", "simulated")
	viper.SetDefault("pipeline.target_currency", data.DefaultTargetCurrency)
	viper.SetDefault("pipeline.target_unit", data.DefaultTargetUnit)
	viper.SetDefault("output.dir", "output")
	viper.SetDefault("input.dir", "input")
	viper.SetDefault("simulated.seed", source.DefaultSeed)
	viper.SetDefault("simulated.companies", source.DefaultCompanies)
	viper.SetDefault("marketdata.rate_limit", 60)
	viper.SetDefault("parquet.enabled", false)

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Info().Str("ConfigFN", viper.ConfigFileUsed()).Msg("Using config file")
	}
}
