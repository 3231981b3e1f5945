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
	"gzip-checker/domain/services/stages"
	"gzip-checker/logging"
	"reflect"
	"strings"

	"github.com/uber-go/tally/v4"
)

const (
	failedScans = "queue_failed_scans"
	reasonTag   = "reason"
)

type Job interface {
	Clean(ctx context.Context, request *stages.Cleanup[entities.ScanRequest])
}

// Handler receives every queued scan that failed in an earlier stage.
type Handler struct {
	jobs         []Job
	metricsScope tally.Scope
	logger       logging.Logger
}

func NewCleanupHandler(cleanupJobs []Job, metricsScope tally.Scope, logger logging.Logger) *Handler {
	return &Handler{
		logger:       logger,
		metricsScope: metricsScope,
		jobs:         cleanupJobs,
	}
}

func (c *Handler) Handle(ctx context.Context, request *stages.Cleanup[entities.ScanRequest], _ *entities.OutputWriter[entities.Empty]) error {
	c.metricsScope.Tagged(map[string]string{reasonTag: failureReason(request.Error)}).Counter(failedScans).Inc(1)

	for _, job := range c.jobs {
		c.logger.Debugw("Running job", "job", reflect.ValueOf(job).Type())
		job.Clean(ctx, request)
	}

	return nil
}

func (c *Handler) Name() string {
	var jobs []string
	for _, job := range c.jobs {
		jobs = append(jobs, reflect.TypeOf(job).Elem().Name())
	}

	return "Cleanup Handler with jobs: " + strings.Join(jobs, ", ")
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, entities.ErrConfig):
		return "config"
	case errors.Is(err, entities.ErrScanInProgress):
		return "in_progress"
	case errors.Is(err, entities.ErrStore), errors.Is(err, entities.ErrNotFound):
		return "store"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "other"
	}
}
