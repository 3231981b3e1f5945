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
	"fmt"
	"gzip-checker/domain/entities"
	"gzip-checker/domain/services/stages"
	"gzip-checker/logging"
	"gzip-checker/mocks"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/uber-go/tally/v4"
)

func TestQueueCleanup(t *testing.T) {
	tests := []struct {
		name      string
		request   *entities.ScanRequest
		err       error
		deletions int
		reason    string
	}{
		{name: "invalid request is dropped", request: &entities.ScanRequest{MessageID: "receipt"}, err: fmt.Errorf("%w: missing account", entities.ErrConfig), deletions: 1, reason: "config"},
		{name: "store failure is redelivered", request: &entities.ScanRequest{MessageID: "receipt"}, err: fmt.Errorf("%w: timeout", entities.ErrStore), deletions: 0, reason: "store"},
		{name: "concurrent scan is redelivered", request: &entities.ScanRequest{MessageID: "receipt"}, err: entities.ErrScanInProgress, deletions: 0, reason: "in_progress"},
		{name: "deadline is redelivered", request: &entities.ScanRequest{MessageID: "receipt"}, err: context.DeadlineExceeded, deletions: 0, reason: "timeout"},
		{name: "panic is redelivered", request: &entities.ScanRequest{MessageID: "receipt"}, err: fmt.Errorf("index out of range"), deletions: 0, reason: "other"},
		{name: "request without message", request: &entities.ScanRequest{}, err: entities.ErrConfig, deletions: 0, reason: "config"},
		{name: "no request", request: nil, err: entities.ErrConfig, deletions: 0, reason: "config"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()

			queue := mocks.NewMockMessageQueue(mockCtrl)
			queue.EXPECT().Acknowledge("receipt").Return(nil).Times(tt.deletions)

			scope := tally.NewTestScope("", nil)
			handler := NewCleanupHandler([]Job{NewQueueCleanup(queue, logging.NewDiscardLog())}, scope, logging.NewDiscardLog())
			err := handler.Handle(context.Background(), &stages.Cleanup[entities.ScanRequest]{Request: tt.request, Error: tt.err}, nil)
			assert.NoError(t, err)

			counter, ok := scope.Snapshot().Counters()[failedScans+"+reason="+tt.reason]
			if assert.True(t, ok) {
				assert.Equal(t, int64(1), counter.Value())
			}
		})
	}
}
