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

package notification

import (
	"context"
	"fmt"
	"gzip-checker/domain/entities"
	"gzip-checker/domain/ports/out"
	"gzip-checker/logging"
	"sort"
	"strings"
	"sync"
	"time"
)

const defaultSendTimeout = 30 * time.Second

type corruptionSummary struct {
	corrupt         int
	scanned         int
	badFileListPath string
}

// EmergencyService collects folder scans that found corrupt objects and alerts every notifier on UpdateGlobal.
type EmergencyService struct {
	mu           sync.Mutex
	perContainer map[string]corruptionSummary
	notifiers    []out.Notifier
	sendTimeout  time.Duration
	logger       logging.Logger
}

func NewEmergencyService(notifiers []out.Notifier, logger logging.Logger) *EmergencyService {
	return &EmergencyService{
		perContainer: make(map[string]corruptionSummary),
		notifiers:    notifiers,
		sendTimeout:  defaultSendTimeout,
		logger:       logger,
	}
}

func (e *EmergencyService) Update(result entities.CompletedScan) {
	if result.Report == nil || result.Report.Corrupt() == 0 {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	key := fmt.Sprintf("%s/%s", result.Request.Account, result.Request.Container)
	summary := e.perContainer[key]
	summary.corrupt += result.Report.Corrupt()
	summary.scanned += result.Report.Scanned()
	summary.badFileListPath = result.Report.BadFileListPath
	e.perContainer[key] = summary
}

// UpdateGlobal sends the pending batch outside the lock. Each notifier gets its own deadline.
func (e *EmergencyService) UpdateGlobal() {
	pending := e.drain()
	if len(pending) == 0 {
		return
	}

	message := alertMessage(pending)

	for _, notifier := range e.notifiers {
		ctx, cancel := context.WithTimeout(context.Background(), e.sendTimeout)
		if err := notifier.SendMessage(ctx, message); err != nil {
			e.logger.Errorw("failed to send corruption alert", "error", err, "notifier", fmt.Sprintf("%T", notifier))
		}
		cancel()
	}
}

func (e *EmergencyService) drain() map[string]corruptionSummary {
	e.mu.Lock()
	defer e.mu.Unlock()

	pending := e.perContainer
	e.perContainer = make(map[string]corruptionSummary)

	return pending
}

func alertMessage(pending map[string]corruptionSummary) string {
	keys := make([]string, 0, len(pending))
	for key := range pending {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	var builder strings.Builder

	builder.WriteString("Corrupt GZIP objects detected, bad file lists were updated:\n")

	for _, key := range keys {
		summary := pending[key]
		builder.WriteString(fmt.Sprintf("%s -> %d of %d corrupt, see %s\n", key, summary.corrupt, summary.scanned, summary.badFileListPath))
	}

	return builder.String()
}
