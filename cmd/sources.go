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
	"fmt"
	"strings"

	"github.com/JohanThomas16/valucompany-data-integration/source"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// sourcesCmd represents the sources command
var sourcesCmd = &cobra.Command{
	Use:   "sources <name>",
	Short: "List all data sources available or get details about a specific source",
	Run: func(cmd *cobra.Command, args []string) {

		r, _ := glamour.NewTermRenderer(
			// detect background color and pick either the default dark or light theme
			glamour.WithAutoStyle(),
			// wrap output at specific width (default is 80)
			glamour.WithWordWrap(80),
		)

		builder := strings.Builder{}

		if len(args) > 0 {
			if dataSource, ok := source.Map[strings.ToLower(args[0])]; ok {
				builder.WriteString(fmt.Sprintf("# %s\n", dataSource.Name()))
				builder.WriteString(dataSource.Description())
				builder.WriteString("\n\n## Configuration\n")
				for key, description := range dataSource.ConfigDescription() {
					builder.WriteString(fmt.Sprintf("- `%s`: %s\n", key, description))
				}
			}
		} else {
			builder.WriteString("# Available Data Sources\n")
			for _, dataSource := range source.Map {
				builder.WriteString(fmt.Sprintf("\n## %s\n", dataSource.Name()))
				builder.WriteString(dataSource.Description())
			}
		}

		out, err := r.Render(builder.String())
		if err != nil {
			log.Fatal().Err(err).Msg("could not render data source document")
		}

		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)

	// Here you will define your flags and configuration settings.

	// Cobra supports Persistent Flags which will work for this command
	// and all subcommands, e.g.:
	// sourcesCmd.PersistentFlags().String("foo", "", "A help for foo")

	// Cobra supports local flags which will only run when this command
	// is called directly, e.g.:
	// sourcesCmd.Flags().BoolP("toggle", "t", false, "Help message for toggle")
}
