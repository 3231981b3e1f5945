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

package common

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
)

//go:generate go run -mod=mod github.com/golang/mock/mockgen -destination=../mocks/mock_rate_limiter.go -package=mocks -source=RedisRateLimiter.go
type RateLimiter interface {
	IsRequestAllowed(ctx context.Context, key string) bool
}

type RateLimitConfig struct {
	Hour   int
	Minute int
	Prefix string
}

type RedisRateLimiter struct {
	config  RateLimitConfig
	limiter *redis_rate.Limiter
	client  *redis.Client
}

func NewRateLimiter(url, password string, useTLS bool, config RateLimitConfig) *RedisRateLimiter {
	options := redis.Options{
		Addr:     url,
		Password: password,
		DB:       0, // use default DB
	}

	if useTLS {
		options.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client := redis.NewClient(&options)

	return &RedisRateLimiter{config: config, client: client, limiter: redis_rate.NewLimiter(client)}
}

// IsRequestAllowed consumes one request from the minute and hour budgets of key.
// Redis failures deny the request.
func (r *RedisRateLimiter) IsRequestAllowed(ctx context.Context, key string) bool {
	if r.config.Minute != 0 {
		res, err := r.limiter.Allow(ctx, fmt.Sprintf("%s-Minute-%s", r.config.Prefix, key), redis_rate.PerMinute(r.config.Minute))
		if err != nil || res.Allowed == 0 {
			return false
		}
	}

	if r.config.Hour != 0 {
		res, err := r.limiter.Allow(ctx, fmt.Sprintf("%s-Hour-%s", r.config.Prefix, key), redis_rate.PerHour(r.config.Hour))
		if err != nil || res.Allowed == 0 {
			return false
		}
	}

	return true
}

func (r *RedisRateLimiter) Close() error {
	return r.client.Close()
}

// NoopRateLimiter allows every request. Used when no Redis is configured.
type NoopRateLimiter struct{}

func (NoopRateLimiter) IsRequestAllowed(context.Context, string) bool {
	return true
}
