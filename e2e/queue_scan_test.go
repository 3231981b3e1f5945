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

package e2e

import (
	"context"
	"encoding/json"
	adapterentities "gzip-checker/adapters/entities"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

func (suite *E2E) TestQueueFolderScan() {
	ctx := context.Background()
	suite.seedFolder(ctx, "queue/")

	job, err := json.Marshal(adapterentities.ScanJobMessage{
		Account:         account,
		Container:       suite.bucketName,
		Folder:          "queue/",
		BadFileListPath: "queue/issues.txt",
	})
	suite.Require().NoError(err)

	_, err = suite.sqsClient.SendMessage(ctx, &awssqs.SendMessageInput{
		QueueUrl:    aws.String(suite.queueURL),
		MessageBody: aws.String(string(job)),
	})
	suite.Require().NoError(err)

	suite.Require().Eventually(func() bool {
		badFiles, err := suite.download(ctx, "queue/issues.txt")
		return err == nil && string(badFiles) == "gzip-samples/queue/b.gz\ngzip-samples/queue/nested/c.gz"
	}, time.Minute, 2*time.Second)

	// acknowledged jobs leave the queue
	suite.Require().Eventually(func() bool {
		attributes, err := suite.sqsClient.GetQueueAttributes(ctx, &awssqs.GetQueueAttributesInput{
			QueueUrl:       aws.String(suite.queueURL),
			AttributeNames: []types.QueueAttributeName{types.QueueAttributeNameApproximateNumberOfMessages, types.QueueAttributeNameApproximateNumberOfMessagesNotVisible},
		})
		if err != nil {
			return false
		}

		return attributes.Attributes[string(types.QueueAttributeNameApproximateNumberOfMessages)] == "0" &&
			attributes.Attributes[string(types.QueueAttributeNameApproximateNumberOfMessagesNotVisible)] == "0"
	}, time.Minute, 2*time.Second)
}
