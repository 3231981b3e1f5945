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
	"gzip-checker/domain/entities"
	"gzip-checker/logging"
)

type FolderScanner interface {
	VerifyFolder(ctx context.Context, request entities.ScanRequest) (*entities.ScanReport, error)
}

// Handler runs queued folder scans inside the stage pipeline.
type Handler struct {
	scanner FolderScanner
	logger  logging.Logger
}

func NewScanHandler(scanner FolderScanner, logger logging.Logger) *Handler {
	return &Handler{scanner: scanner, logger: logger}
}

func (h *Handler) Handle(ctx context.Context, request *entities.ScanRequest, w *entities.OutputWriter[entities.CompletedScan]) error {
	report, err := h.scanner.VerifyFolder(ctx, *request)
	if err != nil {
		h.logger.Errorw("queued folder scan failed", "error", err, "scan_id", request.ScanID,
			"account", request.Account, "container", request.Container)

		return err
	}

	w.Write(ctx, &entities.CompletedScan{Request: *request, Report: report})

	return nil
}

func (h *Handler) Name() string {
	return "Folder Scan Handler"
}
