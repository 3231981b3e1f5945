/*
 *    Copyright 2023 iFood
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package scan

import (
	"context"
	"errors"
	"fmt"
	"gzip-checker/domain/entities"
	"gzip-checker/domain/ports/out"
	"gzip-checker/fileutils"
	"gzip-checker/logging"
	"strings"

	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 1

// Executor runs scans against a single container.
type Executor struct {
	source    out.ObjectSource
	container string
	workers   int
	logger    logging.Logger
}

func NewExecutor(source out.ObjectSource, container string, workers int, logger logging.Logger) *Executor {
	if workers < 1 {
		workers = defaultWorkers
	}

	return &Executor{source: source, container: container, workers: workers, logger: logger}
}

func (e *Executor) ScanSingle(ctx context.Context, path string, policy entities.ScanPolicy) (entities.ValidationOutcome, error) {
	data, err := e.source.Fetch(ctx, path)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return entities.ValidationOutcome{}, err
		}

		return entities.ValidationOutcome{}, storeError(err, "fetch", path)
	}

	return entities.ValidationOutcome{Path: path, IsValid: e.validate(path, data, policy)}, nil
}

// ScanFolder validates every object below the prefix whose name ends with the suffix and overwrites the bad-file list.
// Any store failure aborts the scan without persisting anything.
func (e *Executor) ScanFolder(ctx context.Context, folder entities.FolderScan, policy entities.ScanPolicy) (*entities.ScanReport, error) {
	names, err := e.collect(ctx, folder.Prefix, folder.Suffix)
	if err != nil {
		return nil, err
	}

	e.logger.Debugw("objects selected for scan", "container", e.container, "prefix", folder.Prefix, "count", len(names))

	outcomes := make([]entities.ValidationOutcome, len(names))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(e.workers)

	for i, name := range names {
		i, name := i, name

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			data, err := e.source.Fetch(groupCtx, name)
			if err != nil {
				return storeError(err, "fetch", name)
			}

			outcomes[i] = entities.ValidationOutcome{Path: name, IsValid: e.validate(name, data, policy)}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	report := entities.NewScanReport(e.container)
	report.BadFileListPath = folder.BadFileListPath

	for _, outcome := range outcomes {
		report.Add(outcome)
	}

	if err := e.source.Put(ctx, folder.BadFileListPath, report.BadFilePayload()); err != nil {
		return nil, storeError(err, "persist", folder.BadFileListPath)
	}

	return report, nil
}

// collect walks the hierarchy depth first, keeping listing order.
func (e *Executor) collect(ctx context.Context, prefix, suffix string) ([]string, error) {
	records, err := e.source.List(ctx, prefix, out.PathDelimiter)
	if err != nil {
		return nil, storeError(err, "list", prefix)
	}

	names := make([]string, 0, len(records))

	for _, record := range records {
		if record.IsPrefix {
			if record.Name == prefix {
				continue
			}

			nested, err := e.collect(ctx, record.Name, suffix)
			if err != nil {
				return nil, err
			}

			names = append(names, nested...)

			continue
		}

		if strings.HasSuffix(record.Name, out.PathDelimiter) {
			continue
		}

		if strings.HasSuffix(record.Name, suffix) {
			names = append(names, record.Name)
		}
	}

	return names, nil
}

func (e *Executor) validate(name string, data []byte, policy entities.ScanPolicy) bool {
	if !fileutils.HasGzipHeader(data) {
		e.logger.Infow("object has no gzip header", "container", e.container, "object", name,
			"size", len(data), "detected_type", fileutils.DetectType(data))

		return false
	}

	if !policy.FullScan {
		return true
	}

	if !fileutils.IsFullyDecompressible(data) {
		e.logger.Infow("object failed decompression", "container", e.container, "object", name, "size", len(data))
		return false
	}

	return true
}

func storeError(err error, operation, name string) error {
	if errors.Is(err, entities.ErrStore) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return fmt.Errorf("%w: %s %q: %s", entities.ErrStore, operation, name, err)
}
