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
package export

import (
	"path/filepath"

	"github.com/JohanThomas16/valucompany-data-integration/data"
	"github.com/rs/zerolog/log"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

// WriteParquet writes the integrated table to a parquet file inside dir.
func WriteParquet(records []*data.IntegratedRecord, dir string) (string, error) {
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	outFile := filepath.Join(dir, IntegratedParquetName)

	fh, err := local.NewLocalFileWriter(outFile)
	if err != nil {
		log.Error().Err(err).Str("FileName", outFile).Msg("cannot create local file")
		return "", err
	}
	defer fh.Close()

	pw, err := writer.NewParquetWriter(fh, new(data.IntegratedRecord), 4)
	if err != nil {
		log.Error().
			Str("OriginalError", err.Error()).
			Msg("Parquet write failed")
		return "", err
	}

	pw.RowGroupSize = 128 * 1024 * 1024 // 128M
	pw.PageSize = 8 * 1024              // 8k
	pw.CompressionType = parquet.CompressionCodec_ZSTD

	for _, record := range records {
		if err = pw.Write(record); err != nil {
			log.Error().
				Str("OriginalError", err.Error()).
				Str("CompanyName", record.CompanyName).Str("Industry", record.Industry).
				Msg("Parquet write failed for record")
		}
	}

	if err = pw.WriteStop(); err != nil {
		log.Error().Err(err).Msg("Parquet write failed")
		return "", err
	}

	log.Info().Int("NumRecords", len(records)).Msg("Parquet write finished")
	return outFile, nil
}
