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
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

const slackUsername = "gzip-checker"

type SlackNotifier struct {
	webhook   string
	channelID string
}

func NewSlackNotifier(webhook, channelID string) *SlackNotifier {
	return &SlackNotifier{webhook: webhook, channelID: channelID}
}

func (s *SlackNotifier) SendMessage(ctx context.Context, message string) error {
	msg := slack.WebhookMessage{
		Username: slackUsername,
		Channel:  s.channelID,
		Text:     message,
	}

	if err := slack.PostWebhookContext(ctx, s.webhook, &msg); err != nil {
		return fmt.Errorf("failed to post slack webhook. %w", err)
	}

	return nil
}
