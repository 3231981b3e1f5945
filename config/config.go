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
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	defaultPort            = 3000
	defaultMaxRequestSize  = 1048576
	defaultUpdateInterval  = 60
	defaultWorkers         = 1
	defaultTimeout         = 300
	defaultLockTTL         = 600
	defaultStorageType     = "azure"
	defaultDomain          = "blob.core.windows.net"
	defaultSuffix          = ".gz"
	defaultBadFileListPath = "gzipissues/currentissues.txt"
)

var storageTypes = map[string]bool{"azure": true, "s3": true, "local": true}

type AppConfig struct {
	Storage      Storage
	Aws          AWS
	Scanner      Scanner
	Redis        Redis
	Notification Notification
	HTTPServer   HTTPServer
}

type HTTPServer struct {
	AuthorizationKeys []string
	Profiler          bool
	Swagger           bool
	Metrics           bool
	Tracing           bool
	MaxRequestSize    int
	Port              int
}

// Storage selects the object store backend. Domain only shapes the URLs returned to callers.
type Storage struct {
	Type      string
	Domain    string
	LocalRoot string
}

type AWS struct {
	Queue    string
	Region   string
	Resolver string
}

type Scanner struct {
	DebugLog               bool
	Workers                int
	Timeout                int
	DefaultSuffix          string
	DefaultBadFileListPath string
}

type Redis struct {
	URL       string
	Password  string
	UseTLS    bool
	LockTTL   int
	RateLimit RateLimit
}

type RateLimit struct {
	Minute int
	Hour   int
}

type Notification struct {
	UpdateInterval int
	Slack          Slack
	Phones         []string
}

type Slack struct {
	ChannelID string
	Webhook   string
}

func NewConfig() *AppConfig {
	return &AppConfig{
		Storage: Storage{
			Type:   defaultStorageType,
			Domain: defaultDomain,
		},
		Aws: AWS{
			Region: "us-east-1",
		},
		Scanner: Scanner{
			Workers:                defaultWorkers,
			Timeout:                defaultTimeout,
			DefaultSuffix:          defaultSuffix,
			DefaultBadFileListPath: defaultBadFileListPath,
		},
		Redis: Redis{
			LockTTL: defaultLockTTL,
		},
		Notification: Notification{
			UpdateInterval: defaultUpdateInterval,
		},
		HTTPServer: HTTPServer{
			Port:           defaultPort,
			MaxRequestSize: defaultMaxRequestSize,
			Metrics:        true,
		},
	}
}

func validateConfig(config AppConfig) error {
	if !storageTypes[config.Storage.Type] {
		return fmt.Errorf("unknown storage type %q, expected azure, s3 or local", config.Storage.Type)
	}

	if config.Storage.Type == "local" && config.Storage.LocalRoot == "" {
		return fmt.Errorf("local storage requires storage.localRoot")
	}

	if (config.Storage.Type == "s3" || config.Aws.Queue != "") && config.Aws.Region == "" {
		return fmt.Errorf("no AWS region specified")
	}

	if config.Scanner.Workers < 1 {
		return fmt.Errorf("scanner.workers must be at least 1, got %d", config.Scanner.Workers)
	}

	if config.Scanner.Timeout < 0 {
		return fmt.Errorf("scanner.timeout must not be negative, got %d", config.Scanner.Timeout)
	}

	if config.Redis.URL != "" && config.Redis.LockTTL < config.Scanner.Timeout {
		return fmt.Errorf("redis.lockTTL (%d) must not be shorter than scanner.timeout (%d)", config.Redis.LockTTL, config.Scanner.Timeout)
	}

	if config.Notification.UpdateInterval < 1 {
		return fmt.Errorf("notification.updateInterval must be at least 1 second")
	}

	return nil
}

// see supershal approach https://github.com/spf13/viper/issues/188
func LoadConfig() (AppConfig, error) {
	const keyDelimiter = "/"
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))

	// set default values in viper.
	// Viper needs to know if a key exists in order to override it.
	// https://github.com/spf13/viper/issues/188
	b, err := yaml.Marshal(NewConfig())
	if err != nil {
		return AppConfig{}, err
	}

	defaultConfig := bytes.NewReader(b)

	v.AddConfigPath(os.Getenv("CONFIG_DIR"))
	v.AddConfigPath("../resources/")
	v.AddConfigPath(".")
	v.AddConfigPath("/app/data/")
	v.AddConfigPath("/app/config/")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.MergeConfig(defaultConfig); err != nil {
		return AppConfig{}, err
	}

	// If file not found, return error
	if err := v.MergeInConfig(); err != nil {
		return AppConfig{}, err
	}

	// tell viper to overwrite env variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(keyDelimiter, "_"))
	// refresh configuration with all merged values
	config := AppConfig{}
	err = v.Unmarshal(&config)

	if err != nil {
		return AppConfig{}, err
	}

	err = validateConfig(config)
	if err != nil {
		return AppConfig{}, err
	}

	return config, nil
}
