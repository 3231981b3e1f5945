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
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/stretchr/testify/assert"
)

func TestSMSNotifierSendsToEveryPhone(t *testing.T) {
	sent := make(map[string]string)

	notifier := NewSMSNotifier(nil, []string{"+5511999999999", "+5511888888888", "+5511777777777"})
	notifier.send = func(_ context.Context, _ *session.Session, phone, message string) error {
		sent[phone] = message
		if phone == "+5511888888888" {
			return errors.New("opted out")
		}

		return nil
	}

	err := notifier.SendMessage(context.Background(), "corrupt objects")

	assert.Len(t, sent, 3)
	assert.EqualError(t, err, "failed to send sms. +5511888888888: opted out")
}

func TestSMSNotifierWithoutPhones(t *testing.T) {
	notifier := NewSMSNotifier(nil, nil)
	notifier.send = func(context.Context, *session.Session, string, string) error {
		t.Fatal("no phone configured")
		return nil
	}

	assert.NoError(t, notifier.SendMessage(context.Background(), "corrupt objects"))
}
