/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/JohanThomas16/valucompany-data-integration/fx"
	"github.com/JohanThomas16/valucompany-data-integration/healthcheck"
	"github.com/JohanThomas16/valucompany-data-integration/pipeline"
	"github.com/JohanThomas16/valucompany-data-integration/source"
	"github.com/charmbracelet/lipgloss"
	"github.com/hako/durafmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var runArchive bool

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the data integration pipeline",
	Long: `The run sub-command executes the full integration pipeline: collect private
market and industry benchmark data from the configured source, snapshot the
raw feeds, convert every monetary metric into the target currency, join the
datasets on industry, and save the integrated table together with a data
quality report.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := log.Logger.WithContext(context.Background())

		dataSource, err := source.FromName(viper.GetString("pipeline.source"))
		if err != nil {
			log.Fatal().Err(err).Str("SourceName", viper.GetString("pipeline.source")).Msg("could not load data source")
		}

		myPipeline, err := pipeline.New(pipeline.Config{
			Source:       dataSource,
			Rates:        fx.FromConfig(),
			TargetUnit:   viper.GetString("pipeline.target_unit"),
			WriteParquet: viper.GetBool("parquet.enabled"),
			Archive:      runArchive,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("could not configure pipeline")
		}

		healthcheck.PingStart(ctx)

		startTime := time.Now()

		_, report, err := myPipeline.Run(ctx, viper.GetString("output.dir"), viper.GetString("input.dir"))
		if err != nil {
			healthcheck.PingFail(ctx)
			log.Fatal().Err(err).Msg("pipeline run failed")
		}

		healthcheck.PingSuccess(ctx)

		runTime := time.Since(startTime)
		elapsed := durafmt.Parse(runTime).String()
		summary := myPipeline.Summary()

		log.Info().Str("RunTime", elapsed).Int("NumRecords", summary.NumIntegrated).Msg("successfully integrated datasets")

		if !report.Clean() {
			log.Warn().Float64("DataQualityScore", report.DataQualityScore).Msg("data quality issues detected, run vcdata info for details")
		}

		// Print run summary
		{
			var sb strings.Builder
			keyword := func(s string) string {
				return lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Render(s)
			}

			fmt.Fprintf(&sb,
				"%s\n\nID: %s\nSource: %s\nStatus: %s\nRun Time: %s\n\n",
				lipgloss.NewStyle().Bold(true).Render("PIPELINE RUN"),
				keyword(summary.RunID.String()),
				keyword(summary.Source),
				keyword(summary.Status.String()),
				keyword(elapsed),
			)

			fmt.Fprintln(&sb, lipgloss.NewStyle().Bold(true).Render("Integration Results"))
			fmt.Fprintf(&sb, "\nPrivate Records: %s", keyword(fmt.Sprintf("%d", summary.NumPrivate)))
			fmt.Fprintf(&sb, "\nBenchmark Records: %s", keyword(fmt.Sprintf("%d", summary.NumBenchmarks)))
			fmt.Fprintf(&sb, "\nRejected Records: %s", keyword(fmt.Sprintf("%d", summary.NumRejected)))
			fmt.Fprintf(&sb, "\nIntegrated Records: %s", keyword(fmt.Sprintf("%d", summary.NumIntegrated)))
			fmt.Fprintf(&sb, "\nData Quality Score: %s", keyword(fmt.Sprintf("%.2f", summary.QualityScore)))

			fmt.Println(
				lipgloss.NewStyle().
					Width(60).
					BorderStyle(lipgloss.RoundedBorder()).
					BorderForeground(lipgloss.Color("63")).
					Padding(1, 2).
					Render(sb.String()),
			)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("source", "s", "simulated", "data source to collect from (see: vcdata sources)")
	if err := viper.BindPFlag("pipeline.source", runCmd.Flags().Lookup("source")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for pipeline.source failed")
	}

	runCmd.Flags().String("output-dir", "output", "directory the integrated dataset and report are written to")
	if err := viper.BindPFlag("output.dir", runCmd.Flags().Lookup("output-dir")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for output.dir failed")
	}

	runCmd.Flags().String("input-dir", "input", "directory raw data snapshots are written to")
	if err := viper.BindPFlag("input.dir", runCmd.Flags().Lookup("input-dir")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for input.dir failed")
	}

	runCmd.Flags().BoolP("parquet", "p", false, "additionally save the integrated dataset as parquet")
	if err := viper.BindPFlag("parquet.enabled", runCmd.Flags().Lookup("parquet")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for parquet.enabled failed")
	}

	runCmd.Flags().BoolVar(&runArchive, "archive", true, "upload run artifacts to backblaze when credentials are configured")
}
