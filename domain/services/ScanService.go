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

package services

import (
	"context"
	"fmt"
	"gzip-checker/domain/entities"
	"gzip-checker/domain/ports/out"
	"gzip-checker/domain/services/notification"
	"gzip-checker/domain/services/scan"
	"gzip-checker/logging"
	"time"

	"github.com/uber-go/tally/v4"
)

const (
	objectsScanned = "objects_scanned"
	objectsCorrupt = "objects_corrupt"
	scanFailures   = "scan_failures"
	scanDuration   = "scan_duration"
	modeTag        = "mode"
)

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../../mocks/mock_scanner_service.go -package=mocks -source=ScanService.go
type Scanner interface {
	VerifyObject(ctx context.Context, request entities.ScanRequest) (entities.ValidationOutcome, error)
	VerifyFolder(ctx context.Context, request entities.ScanRequest) (*entities.ScanReport, error)
}

type ScanDefaults struct {
	Suffix          string
	BadFileListPath string
	Workers         int
	Timeout         time.Duration
}

type ScanService struct {
	sourceFactory out.ObjectSourceFactory
	locker        out.ScanLocker
	alerts        notification.Job
	defaults      ScanDefaults
	metricsScope  tally.Scope
	logger        logging.Logger
}

func NewScanService(sourceFactory out.ObjectSourceFactory, locker out.ScanLocker, alerts notification.Job, defaults ScanDefaults,
	metricsScope tally.Scope, logger logging.Logger) *ScanService {
	return &ScanService{
		sourceFactory: sourceFactory,
		locker:        locker,
		alerts:        alerts,
		defaults:      defaults,
		metricsScope:  metricsScope,
		logger:        logger,
	}
}

func (s *ScanService) VerifyObject(ctx context.Context, request entities.ScanRequest) (entities.ValidationOutcome, error) {
	if request.Target.Mode() != entities.SingleObjectMode {
		return entities.ValidationOutcome{}, fmt.Errorf("%w: folder target given to single object scan", entities.ErrConfig)
	}

	if err := request.Validate(); err != nil {
		return entities.ValidationOutcome{}, err
	}

	executor, err := s.executor(request)
	if err != nil {
		return entities.ValidationOutcome{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	scope := s.metricsScope.Tagged(map[string]string{modeTag: string(entities.SingleObjectMode)})
	stopwatch := scope.Timer(scanDuration).Start()
	defer stopwatch.Stop()

	outcome, err := executor.ScanSingle(ctx, request.Target.Object.Path, request.Policy)
	if err != nil {
		scope.Counter(scanFailures).Inc(1)
		return entities.ValidationOutcome{}, err
	}

	scope.Counter(objectsScanned).Inc(1)

	if !outcome.IsValid {
		scope.Counter(objectsCorrupt).Inc(1)
	}

	return outcome, nil
}

func (s *ScanService) VerifyFolder(ctx context.Context, request entities.ScanRequest) (*entities.ScanReport, error) {
	if request.Target.Mode() != entities.FolderMode {
		return nil, fmt.Errorf("%w: single object target given to folder scan", entities.ErrConfig)
	}

	folder := s.withDefaults(*request.Target.Folder)
	request.Target = entities.ScanTarget{Folder: &folder}

	if err := request.Validate(); err != nil {
		return nil, err
	}

	executor, err := s.executor(request)
	if err != nil {
		return nil, err
	}

	release, err := s.locker.Lock(ctx, lockKey(request.Account, request.Container, folder.BadFileListPath))
	if err != nil {
		return nil, err
	}
	defer release()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	scope := s.metricsScope.Tagged(map[string]string{modeTag: string(entities.FolderMode)})
	stopwatch := scope.Timer(scanDuration).Start()
	defer stopwatch.Stop()

	report, err := executor.ScanFolder(ctx, folder, request.Policy)
	if err != nil {
		scope.Counter(scanFailures).Inc(1)
		return nil, err
	}

	scope.Counter(objectsScanned).Inc(int64(report.Scanned()))
	scope.Counter(objectsCorrupt).Inc(int64(report.Corrupt()))

	s.logger.Infow("folder scan finished", "scan_id", request.ScanID, "account", request.Account,
		"container", request.Container, "prefix", folder.Prefix, "scanned", report.Scanned(), "corrupt", report.Corrupt())

	s.alerts.Update(entities.CompletedScan{Request: request, Report: report})

	return report, nil
}

func (s *ScanService) executor(request entities.ScanRequest) (*scan.Executor, error) {
	source, err := s.sourceFactory.GetObjectSource(request.Account, request.Container)
	if err != nil {
		return nil, err
	}

	logger := s.logger.With("scan_id", request.ScanID, "account", request.Account)

	return scan.NewExecutor(source, request.Container, s.defaults.Workers, logger), nil
}

func (s *ScanService) withDefaults(folder entities.FolderScan) entities.FolderScan {
	if folder.Suffix == "" {
		folder.Suffix = s.defaults.Suffix
	}

	if folder.BadFileListPath == "" {
		folder.BadFileListPath = s.defaults.BadFileListPath
	}

	return folder
}

func (s *ScanService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.defaults.Timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, s.defaults.Timeout)
}

func lockKey(account, container, badFileListPath string) string {
	return fmt.Sprintf("gzip-scan/%s/%s/%s", account, container, badFileListPath)
}
