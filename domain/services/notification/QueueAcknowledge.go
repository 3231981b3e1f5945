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
	"gzip-checker/domain/entities"
	"gzip-checker/domain/ports/out"
	"gzip-checker/logging"
)

// QueueAcknowledge removes the originating message once its scan completed.
type QueueAcknowledge struct {
	queue  out.MessageQueue
	logger logging.Logger
}

func NewQueueAcknowledge(queue out.MessageQueue, logger logging.Logger) *QueueAcknowledge {
	return &QueueAcknowledge{queue: queue, logger: logger}
}

func (q *QueueAcknowledge) Update(result entities.CompletedScan) {
	if result.Request.MessageID == "" {
		return
	}

	if err := q.queue.Acknowledge(result.Request.MessageID); err != nil {
		q.logger.Errorw("failed to acknowledge queued scan", "error", err, "scan_id", result.Request.ScanID)
	}
}

func (q *QueueAcknowledge) UpdateGlobal() {}
