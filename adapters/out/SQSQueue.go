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

package out

import (
	"gzip-checker/pkg/awsutils"

	"github.com/aws/aws-sdk-go/service/sqs"
)

type SQSQueue struct {
	queue      string
	sqsService *awsutils.SQS
}

func NewSQSQueue(queue string, sqsService *awsutils.SQS) *SQSQueue {
	return &SQSQueue{queue: queue, sqsService: sqsService}
}

func (s *SQSQueue) Acknowledge(messageID string) error {
	return s.sqsService.DeleteMessageFromSQS(s.queue, &sqs.Message{ReceiptHandle: &messageID})
}
