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

package entities

import (
	"fmt"
	"gzip-checker/domain/entities"
	"strconv"
)

const (
	HeaderAccount         = "x-storage-account"
	HeaderContainer       = "x-storage-container"
	HeaderPath            = "x-storage-path"
	HeaderFolder          = "x-storage-folder"
	HeaderFileSuffix      = "x-storage-file-suffix"
	HeaderBadFileListPath = "x-storage-bad-file-list-path"
	HeaderFullScan        = "x-storage-full-scan"

	fullScanEnabled = 1
)

type ObjectHeaders struct {
	Account   string `validate:"required"`
	Container string `validate:"required"`
	Path      string `validate:"required"`
	FullScan  string `validate:"omitempty,numeric"`
}

type FolderHeaders struct {
	Account         string `validate:"required"`
	Container       string `validate:"required"`
	Folder          string `validate:"required"`
	FileSuffix      string
	BadFileListPath string
	FullScan        string `validate:"omitempty,numeric"`
}

func (h ObjectHeaders) ToScanRequest(scanID string) (entities.ScanRequest, error) {
	policy, err := parsePolicy(h.FullScan)
	if err != nil {
		return entities.ScanRequest{}, err
	}

	return entities.ScanRequest{
		ScanID:    scanID,
		Account:   h.Account,
		Container: h.Container,
		Target:    entities.NewSingleObjectTarget(h.Path),
		Policy:    policy,
	}, nil
}

func (h FolderHeaders) ToScanRequest(scanID string) (entities.ScanRequest, error) {
	policy, err := parsePolicy(h.FullScan)
	if err != nil {
		return entities.ScanRequest{}, err
	}

	return entities.ScanRequest{
		ScanID:    scanID,
		Account:   h.Account,
		Container: h.Container,
		Target:    entities.NewFolderTarget(h.Folder, h.FileSuffix, h.BadFileListPath),
		Policy:    policy,
	}, nil
}

// parsePolicy reads the full scan flag. Only 1 enables full decompression, absence means full scan.
func parsePolicy(value string) (entities.ScanPolicy, error) {
	if value == "" {
		return entities.ScanPolicy{FullScan: true}, nil
	}

	flag, err := strconv.Atoi(value)
	if err != nil {
		return entities.ScanPolicy{}, fmt.Errorf("%w: %s must be an integer", entities.ErrConfig, HeaderFullScan)
	}

	return entities.ScanPolicy{FullScan: flag == fullScanEnabled}, nil
}
