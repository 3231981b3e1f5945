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

import "gzip-checker/domain/entities"

// SQSNotification is the envelope added when the job is published through SNS.
type SQSNotification struct {
	Message string `json:"Message"`
}

type ScanJobMessage struct {
	Account         string `json:"account" validate:"required"`
	Container       string `json:"container" validate:"required"`
	Folder          string `json:"folder" validate:"required"`
	Suffix          string `json:"suffix,omitempty"`
	BadFileListPath string `json:"badFileListPath,omitempty"`
	FullScan        *bool  `json:"fullScan,omitempty"`
}

func (m ScanJobMessage) ToScanRequest(scanID, messageID string) entities.ScanRequest {
	fullScan := true
	if m.FullScan != nil {
		fullScan = *m.FullScan
	}

	return entities.ScanRequest{
		ScanID:    scanID,
		Account:   m.Account,
		Container: m.Container,
		Target:    entities.NewFolderTarget(m.Folder, m.Suffix, m.BadFileListPath),
		Policy:    entities.ScanPolicy{FullScan: fullScan},
		MessageID: messageID,
	}
}
