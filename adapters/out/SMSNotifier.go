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
	"gzip-checker/pkg/awsutils"
	"strings"

	"github.com/aws/aws-sdk-go/aws/session"
)

type SMSNotifier struct {
	phones  []string
	session *session.Session
	send    func(ctx context.Context, awsSession *session.Session, phone, message string) error
}

func NewSMSNotifier(awsSession *session.Session, phones []string) *SMSNotifier {
	return &SMSNotifier{session: awsSession, phones: phones, send: func(ctx context.Context, awsSession *session.Session, phone, message string) error {
		return awsutils.SendSMS(ctx, awsSession, nil, phone, message)
	}}
}

// SendMessage tries every phone and reports the failed ones together.
func (s *SMSNotifier) SendMessage(ctx context.Context, message string) error {
	var errorsList []string

	for _, phone := range s.phones {
		if err := s.send(ctx, s.session, phone, message); err != nil {
			errorsList = append(errorsList, fmt.Sprintf("%s: %s", phone, err))
		}
	}

	if len(errorsList) != 0 {
		return fmt.Errorf("failed to send sms. %s", strings.Join(errorsList, "; "))
	}

	return nil
}
