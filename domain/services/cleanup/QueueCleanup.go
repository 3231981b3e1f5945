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

package cleanup

import (
	"context"
	"errors"
	"gzip-checker/domain/entities"
	"gzip-checker/domain/ports/out"
	"gzip-checker/domain/services/stages"
	"gzip-checker/logging"
)

// QueueCleanup drops messages that can never succeed. Everything else stays queued for redelivery.
type QueueCleanup struct {
	queue  out.MessageQueue
	logger logging.Logger
}

func NewQueueCleanup(queue out.MessageQueue, logger logging.Logger) *QueueCleanup {
	return &QueueCleanup{queue: queue, logger: logger}
}

func (q *QueueCleanup) Clean(_ context.Context, request *stages.Cleanup[entities.ScanRequest]) {
	originalRequest := request.Request
	if originalRequest == nil || originalRequest.MessageID == "" {
		return
	}

	if !errors.Is(request.Error, entities.ErrConfig) {
		q.logger.Infow("leaving failed scan for redelivery", "error", request.Error, "scan_id", originalRequest.ScanID)
		return
	}

	q.logger.Debugw("Deleting message", "scan_id", originalRequest.ScanID)

	if err := q.queue.Acknowledge(originalRequest.MessageID); err != nil {
		q.logger.Errorw("failed to delete invalid message from queue", "error", err, "scan_id", originalRequest.ScanID)
	}
}
