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
package data

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/xeonx/timeago"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Summary returns a description of the validation report in markdown
func (report *ValidationReport) Summary() (string, error) {
	p := message.NewPrinter(language.English)
	builder := strings.Builder{}

	if _, err := builder.WriteString("# Data Quality Report\n"); err != nil {
		return "", err
	}

	if _, err := builder.WriteString("## Details\n\n"); err != nil {
		return "", err
	}

	// Originating run
	if _, err := builder.WriteString(fmt.Sprintf("Run: %s (%s)\n\n", report.RunID, report.Source)); err != nil {
		return "", err
	}

	if _, err := builder.WriteString(p.Sprintf("  * Total Records: %d\n", report.TotalRecords)); err != nil {
		return "", err
	}

	if _, err := builder.WriteString(p.Sprintf("  * Duplicate Companies: %d\n", report.DuplicateCompanies)); err != nil {
		return "", err
	}

	if _, err := builder.WriteString(fmt.Sprintf("  * Data Quality Score: %.2f / 100\n\n", report.DataQualityScore)); err != nil {
		return "", err
	}

	// Report age
	age := timeago.English.Format(report.GeneratedAt.Time)

	if report.GeneratedAt.Time.Equal(time.Time{}) {
		if _, err := builder.WriteString("Generated: unknown\n\n"); err != nil {
			return "", err
		}
	} else {
		if _, err := builder.WriteString(fmt.Sprintf("Generated: %s (%s)\n\n", age, report.GeneratedAt.Time.Local().Format("01/02/2006"))); err != nil {
			return "", err
		}
	}

	// Missing values by column
	if _, err := builder.WriteString("## Missing Values\n\n"); err != nil {
		return "", err
	}

	missingColumns := 0

	for _, column := range IntegratedColumns() {
		count := report.MissingValues[column]
		if count == 0 {
			continue
		}

		missingColumns++

		if _, err := builder.WriteString(p.Sprintf("  * %s: %d\n", column, count)); err != nil {
			return "", err
		}
	}

	if missingColumns == 0 {
		if _, err := builder.WriteString("All columns are fully populated.\n"); err != nil {
			return "", err
		}
	}

	// Negative values by column
	if _, err := builder.WriteString("\n## Negative Values\n\n"); err != nil {
		return "", err
	}

	negativeColumns := make([]string, 0, len(report.NegativeValues))
	for column, count := range report.NegativeValues {
		if count == 0 {
			continue
		}

		negativeColumns = append(negativeColumns, column)
	}

	sort.Strings(negativeColumns)

	for _, column := range negativeColumns {
		if _, err := builder.WriteString(p.Sprintf("  * %s: %d\n", column, report.NegativeValues[column])); err != nil {
			return "", err
		}
	}

	if len(negativeColumns) == 0 {
		if _, err := builder.WriteString("No negative revenue or ebitda values found.\n"); err != nil {
			return "", err
		}
	}

	return builder.String(), nil
}
