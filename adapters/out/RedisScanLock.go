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
	"fmt"
	"gzip-checker/domain/entities"
	"gzip-checker/logging"
	"gzip-checker/pkg/awsutils"
	"time"

	"github.com/bsm/redislock"
)

const releaseTimeout = 5 * time.Second

type RedisScanLock struct {
	elasticache *awsutils.Elasticache
	ttl         time.Duration
	logger      logging.Logger
}

func NewRedisScanLock(elasticache *awsutils.Elasticache, ttl time.Duration, logger logging.Logger) *RedisScanLock {
	return &RedisScanLock{elasticache: elasticache, ttl: ttl, logger: logger}
}

func (r *RedisScanLock) Lock(ctx context.Context, key string) (func(), error) {
	lock, err := r.elasticache.TryLock(ctx, key, r.ttl)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, fmt.Errorf("%w: %s", entities.ErrScanInProgress, key)
	}

	if err != nil {
		return nil, storeError(err, "failed to obtain scan lock %s", key)
	}

	release := func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()

		if err := r.elasticache.Unlock(releaseCtx, lock); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			r.logger.Errorw("failed to release scan lock", "error", err, "key", key)
		}
	}

	return release, nil
}

// NoopScanLock is used when no Redis is configured.
type NoopScanLock struct{}

func (NoopScanLock) Lock(context.Context, string) (func(), error) {
	return func() {}, nil
}
