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

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("NOTIFICATION_SLACK_WEBHOOK", "https://hooks.slack.com/services/T03XXXXXX/A02AA5AAAA4/invalid")
	t.Setenv("NOTIFICATION_PHONES", "+55111111111111,+55222222222222")
	t.Setenv("REDIS_PASSWORD", "password")
	t.Setenv("HTTPSERVER_AUTHORIZATIONKEYS", "alias1:key1,alias2:key2")
	t.Setenv("SCANNER_WORKERS", "8")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, generateSampleConfig(), cfg)
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(config *AppConfig)
	}{
		{
			name:   "unknown storage",
			mutate: func(config *AppConfig) { config.Storage.Type = "gcs" },
		},
		{
			name:   "local storage without root",
			mutate: func(config *AppConfig) { config.Storage.Type = "local" },
		},
		{
			name: "s3 without region",
			mutate: func(config *AppConfig) {
				config.Storage.Type = "s3"
				config.Aws.Region = ""
			},
		},
		{
			name: "queue without region",
			mutate: func(config *AppConfig) {
				config.Aws.Queue = "https://sqs.us-east-1.amazonaws.com/000000000100/jobs"
				config.Aws.Region = ""
			},
		},
		{
			name:   "no workers",
			mutate: func(config *AppConfig) { config.Scanner.Workers = 0 },
		},
		{
			name: "lock expires before scan timeout",
			mutate: func(config *AppConfig) {
				config.Redis.URL = "localhost:6379"
				config.Redis.LockTTL = 10
			},
		},
		{
			name:   "no update interval",
			mutate: func(config *AppConfig) { config.Notification.UpdateInterval = 0 },
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			config := NewConfig()
			tt.mutate(config)

			assert.Error(t, validateConfig(*config))
		})
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, validateConfig(*NewConfig()))
}

func generateSampleConfig() AppConfig {
	config := AppConfig{
		Storage: Storage{
			Type:   "azure",
			Domain: "blob.core.windows.net",
		},
		HTTPServer: HTTPServer{
			AuthorizationKeys: []string{"alias1:key1", "alias2:key2"},
			Port:              3000,
			Profiler:          false,
			Swagger:           false,
			Metrics:           true,
			Tracing:           false,
			MaxRequestSize:    1048576,
		},
		Aws: AWS{
			Queue:    "https://sqs.us-east-1.amazonaws.com/000000000100/gzip-scan-jobs",
			Region:   "us-east-1",
			Resolver: "test",
		},
		Scanner: Scanner{
			DebugLog:               false,
			Workers:                8,
			Timeout:                230,
			DefaultSuffix:          ".gz",
			DefaultBadFileListPath: "gzipissues/currentissues.txt",
		},
		Redis: Redis{
			URL:      "master.app-name.xxx1xx.use1.cache.amazonaws.com:6379",
			Password: "password",
			UseTLS:   true,
			LockTTL:  600,
			RateLimit: RateLimit{
				Minute: 30,
				Hour:   600,
			},
		},
		Notification: Notification{
			UpdateInterval: 10,
			Slack: Slack{
				ChannelID: "XXXXXXXXX",
				Webhook:   "https://hooks.slack.com/services/T03XXXXXX/A02AA5AAAA4/invalid",
			},
			Phones: []string{"+55111111111111", "+55222222222222"},
		},
	}

	return config
}
