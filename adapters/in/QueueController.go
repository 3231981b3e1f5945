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

package in

import (
	"context"
	"encoding/json"
	"fmt"
	adapterentities "gzip-checker/adapters/entities"
	"gzip-checker/domain/entities"
	"gzip-checker/logging"
	"time"

	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/uber-go/tally/v4"
)

const (
	consumeCount     = "queue_consume_count"
	rejectedCount    = "queue_rejected_count"
	singleMessageInc = 1
	receiveBackoff   = 5 * time.Second
)

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../mocks/mock_message_receiver.go -package=mocks -source=QueueController.go
type MessageReceiver interface {
	ReceiveMessageFromSQS(ctx context.Context, queueURL string) ([]*sqs.Message, error)
	DeleteMessageFromSQS(queueURL string, message *sqs.Message) error
}

// QueueController turns queued scan jobs into folder scan requests for the stage pipeline.
type QueueController struct {
	outputChannel chan<- *entities.ScanRequest
	validate      *validator.Validate

	sqsService MessageReceiver
	queue      string

	logger       logging.Logger
	metricsScope tally.Scope
}

func NewQueueController(queue string, outputChannel chan<- *entities.ScanRequest, sqsService MessageReceiver, metricsScope tally.Scope, logger logging.Logger) QueueController {
	return QueueController{queue: queue, outputChannel: outputChannel, sqsService: sqsService, logger: logger, metricsScope: metricsScope, validate: validator.New()}
}

func (q *QueueController) AsyncScan(ctx context.Context) {
	if q.queue == "" {
		q.logger.Infow("Won't attempt to read SQS queue, because none was configured")
		return
	}

	q.logger.Infow("Start of async queue processing")

	for {
		select {
		case <-ctx.Done():
			q.logger.Infow("End of async queue processing")
			return

		default:
			messages, err := q.sqsService.ReceiveMessageFromSQS(ctx, q.queue)
			if err != nil {
				q.logger.Errorw("failed to obtain scan request", "error", err)
				q.wait(ctx)

				continue
			}

			for _, m := range messages {
				q.consume(ctx, m)
			}
		}
	}
}

func (q *QueueController) consume(ctx context.Context, m *sqs.Message) {
	job, err := q.extractJob(m)
	if err != nil {
		q.logger.Errorw("dropping invalid scan job", "error", err, "message_id", m.MessageId)
		q.metricsScope.Counter(rejectedCount).Inc(singleMessageInc)

		if err := q.sqsService.DeleteMessageFromSQS(q.queue, m); err != nil {
			q.logger.Errorw("deleting invalid message from sqs service failed", "error", err, "message_id", m.MessageId)
		}

		return
	}

	request := job.ToScanRequest(uuid.New().String(), *m.ReceiptHandle)
	q.logger.Debugw("Received new scan job", "scan_id", request.ScanID, "account", job.Account, "container", job.Container, "folder", job.Folder)

	select {
	case <-ctx.Done():
	case q.outputChannel <- &request:
		q.metricsScope.Counter(consumeCount).Inc(singleMessageInc)
	}
}

// extractJob accepts the job either as the raw body or wrapped in an SNS notification.
func (q *QueueController) extractJob(m *sqs.Message) (adapterentities.ScanJobMessage, error) {
	if m.Body == nil || m.ReceiptHandle == nil {
		return adapterentities.ScanJobMessage{}, fmt.Errorf("message without body or receipt handle")
	}

	payload := []byte(*m.Body)

	var notification adapterentities.SQSNotification
	if err := json.Unmarshal(payload, &notification); err == nil && notification.Message != "" {
		payload = []byte(notification.Message)
	}

	var job adapterentities.ScanJobMessage
	if err := json.Unmarshal(payload, &job); err != nil {
		return job, fmt.Errorf("failed to unmarshal message. %w", err)
	}

	if err := q.validate.Struct(job); err != nil {
		return job, fmt.Errorf("scan job is missing fields. %w", err)
	}

	return job, nil
}

func (q *QueueController) wait(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(receiveBackoff):
	}
}
