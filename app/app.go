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

package app

import (
	"context"
	"fmt"
	adaptersin "gzip-checker/adapters/in"
	adaptersout "gzip-checker/adapters/out"
	"gzip-checker/common"
	"gzip-checker/config"
	"gzip-checker/domain/entities"
	portsout "gzip-checker/domain/ports/out"
	"gzip-checker/domain/services"
	"gzip-checker/domain/services/cleanup"
	"gzip-checker/domain/services/notification"
	"gzip-checker/domain/services/scan"
	"gzip-checker/domain/services/stages"
	checkerhttp "gzip-checker/http"
	"gzip-checker/logging"
	"gzip-checker/metrics"
	"gzip-checker/pkg/awsutils"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/uber-go/tally/v4"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
	"gopkg.in/DataDog/dd-trace-go.v1/profiler"
)

const rateLimitPrefix = "gzip-checker"

//nolint:cyclop
func Start(ctx context.Context) error {
	appConfig, err := config.LoadConfig()
	if err != nil {
		return err
	}

	if appConfig.HTTPServer.Tracing {
		// Enable Datadog tracer
		tracer.Start()
		defer tracer.Stop()

		// Enable Datadog Profiler
		if err = profiler.Start(); err != nil {
			return err
		}
		defer profiler.Stop()
	}

	logger, err := logging.NewZapLogger(appConfig.Scanner.DebugLog)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	var metricsHandler http.Handler
	var metricsScope tally.Scope
	var metricsClose io.Closer

	if appConfig.HTTPServer.Metrics {
		metricsScope, metricsHandler, metricsClose = metrics.NewPrometheusScope()
	} else {
		metricsScope, metricsHandler, metricsClose = metrics.NewNoopScope()
	}
	defer metricsClose.Close()

	var awsSession *session.Session

	if needsAWS(appConfig) {
		var client awsutils.Clients
		awsSession, err = client.Session(appConfig.Aws.Region, appConfig.Aws.Resolver)

		if err != nil {
			return fmt.Errorf("failed to initialize aws client. Error: %s, Region: %s, Resolver: %s", err, appConfig.Aws.Region, appConfig.Aws.Resolver)
		}
	}

	sourceFactory, err := newObjectSourceFactory(appConfig, awsSession)
	if err != nil {
		return fmt.Errorf("failed to initialize %s storage. Error: %w", appConfig.Storage.Type, err)
	}

	var elasticache *awsutils.Elasticache
	var locker portsout.ScanLocker = adaptersout.NoopScanLock{}
	var rateLimiter common.RateLimiter = common.NoopRateLimiter{}

	if appConfig.Redis.URL != "" {
		elasticache = &awsutils.Elasticache{}
		elasticache.InitRedis(appConfig.Redis.URL, appConfig.Redis.Password, appConfig.Redis.UseTLS)
		locker = adaptersout.NewRedisScanLock(elasticache, time.Duration(appConfig.Redis.LockTTL)*time.Second, logger)

		if appConfig.Redis.RateLimit.Minute != 0 || appConfig.Redis.RateLimit.Hour != 0 {
			redisRateLimiter := common.NewRateLimiter(appConfig.Redis.URL, appConfig.Redis.Password, appConfig.Redis.UseTLS, common.RateLimitConfig{
				Hour:   appConfig.Redis.RateLimit.Hour,
				Minute: appConfig.Redis.RateLimit.Minute,
				Prefix: rateLimitPrefix,
			})
			defer redisRateLimiter.Close()

			rateLimiter = redisRateLimiter
		}
	} else {
		logger.Infow("No Redis configured, concurrent folder scans are not serialized and requests are not rate limited")
	}

	// Alerts
	emergencyService := notification.NewEmergencyService(newNotifiers(appConfig, awsSession), logger)
	alertHandler := notification.NewNotificationHandler([]notification.Job{emergencyService}, logger)
	alertHandler.HandleAsync(ctx, time.Duration(appConfig.Notification.UpdateInterval)*time.Second)

	scanService := services.NewScanService(sourceFactory, locker, emergencyService, services.ScanDefaults{
		Suffix:          appConfig.Scanner.DefaultSuffix,
		BadFileListPath: appConfig.Scanner.DefaultBadFileListPath,
		Workers:         appConfig.Scanner.Workers,
		Timeout:         time.Duration(appConfig.Scanner.Timeout) * time.Second,
	}, metricsScope, logger)

	var sqsService *awsutils.SQS

	if appConfig.Aws.Queue != "" {
		sqsService = &awsutils.SQS{}
		sqsService.Init(awsSession, nil)
		startQueuePipeline(ctx, appConfig.Aws.Queue, sqsService, scanService, metricsScope, logger)
	}

	// Controllers
	scanController := adaptersin.NewScanController(scanService, rateLimiter, appConfig.Storage.Domain, logger)

	fiberConfig := checkerhttp.FiberConfig{
		MaxRequestSize:    appConfig.HTTPServer.MaxRequestSize,
		AuthorizationKeys: appConfig.HTTPServer.AuthorizationKeys,
		Profiler:          appConfig.HTTPServer.Profiler,
		Swagger:           appConfig.HTTPServer.Swagger,
		Tracing:           appConfig.HTTPServer.Tracing,
		Metrics:           adaptor.HTTPHandler(metricsHandler),
		RequestLogger: func(c *fiber.Ctx) error {
			err := c.Next()
			// Prevent generating lots of requests because of healthcheck
			if !strings.HasPrefix(c.Path(), "/healthcheck/") && !strings.HasPrefix(c.Path(), "/metrics") {
				logger.Infow("Received webapi request", "ip", c.IP(), "method", c.Method(), "path", c.Path(),
					"scan_id", c.GetRespHeader(adaptersin.ScanIDHeader), "response_status", c.Response().StatusCode())
			}
			return err
		},
		Readiness: func(c *fiber.Ctx) error {
			if sqsService != nil {
				if err := sqsService.GetQueueAttributes(c.UserContext(), appConfig.Aws.Queue); err != nil {
					logger.Errorw("Failed to connect to the SQS in readiness.", "error", err)
					return c.Status(fiber.StatusServiceUnavailable).SendString(fmt.Sprintf("SQS not connectable. %s", err))
				}
			}

			if elasticache != nil {
				if err := elasticache.Ping(c.UserContext()); err != nil {
					logger.Errorw("Failed to connect to the cache.", "error", err)
					return c.Status(fiber.StatusServiceUnavailable).SendString(fmt.Sprintf("Elasticache not connectable. %s", err))
				}
			}

			return c.SendStatus(fiber.StatusOK)
		},
		Liveness: func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
		Handlers: scanRoutes(&scanController),
	}

	app, err := checkerhttp.CreateFiberApp(fiberConfig, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize fiber framework. Error: %s", err)
	}

	go func() {
		<-ctx.Done()

		if err := app.Shutdown(); err != nil {
			logger.Errorw("failed to shutdown http server", "error", err)
		}
	}()

	logger.Infow("gzip-checker listening", "port", appConfig.HTTPServer.Port, "storage", appConfig.Storage.Type)

	return app.Listen(fmt.Sprintf(":%d", appConfig.HTTPServer.Port))
}

// scanRoutes accepts GET as well as POST, like the original HTTP triggers.
func scanRoutes(scanController *adaptersin.ScanController) []checkerhttp.Handler {
	routes := []checkerhttp.Handler{
		{Path: "/objects/verify", HandlerFunc: scanController.VerifyObject},
		{Path: "/folders/verify", HandlerFunc: scanController.VerifyFolder},
		{Path: "/folders/check", HandlerFunc: scanController.CheckFolder},
	}

	handlers := make([]checkerhttp.Handler, 0, 2*len(routes))
	for _, method := range []string{fiber.MethodGet, fiber.MethodPost} {
		for _, route := range routes {
			route.HTTPMethod = method
			handlers = append(handlers, route)
		}
	}

	return handlers
}

func startQueuePipeline(ctx context.Context, queue string, sqsService *awsutils.SQS, scanner scan.FolderScanner,
	metricsScope tally.Scope, logger logging.Logger) {
	messageQueue := adaptersout.NewSQSQueue(queue, sqsService)

	// Channels
	inputChannel := make(chan *entities.ScanRequest)
	cleanupChannel := make(chan *stages.Cleanup[entities.ScanRequest])

	scanHandler := scan.NewScanHandler(scanner, logger)
	acknowledgeHandler := notification.NewNotificationHandler([]notification.Job{notification.NewQueueAcknowledge(messageQueue, logger)}, logger)
	cleanupHandler := cleanup.NewCleanupHandler([]cleanup.Job{cleanup.NewQueueCleanup(messageQueue, logger)}, metricsScope, logger)

	// Stages initialization
	scanStage := stages.NewStage[entities.ScanRequest, entities.CompletedScan](scanHandler, inputChannel, cleanupChannel, logger)
	acknowledgeStage := stages.NewStage[entities.CompletedScan, entities.Empty](acknowledgeHandler, scanStage.Output(), nil, logger)
	cleanupStage := stages.NewStage[stages.Cleanup[entities.ScanRequest], entities.Empty](cleanupHandler, cleanupChannel, nil, logger)

	scanStage.Process(ctx)
	acknowledgeStage.Process(ctx)
	cleanupStage.Process(ctx)

	queueController := adaptersin.NewQueueController(queue, inputChannel, sqsService, metricsScope, logger)
	go queueController.AsyncScan(ctx)
}

func needsAWS(appConfig config.AppConfig) bool {
	return appConfig.Storage.Type == adaptersout.S3Storage || appConfig.Aws.Queue != "" || len(appConfig.Notification.Phones) != 0
}

func newObjectSourceFactory(appConfig config.AppConfig, awsSession *session.Session) (*adaptersout.ObjectSourceFactory, error) {
	factoryConfig := adaptersout.ObjectSourceFactoryConfig{
		StorageType: appConfig.Storage.Type,
		Domain:      appConfig.Storage.Domain,
		AWSSession:  awsSession,
	}

	switch appConfig.Storage.Type {
	case adaptersout.AzureStorage:
		credential, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return nil, err
		}

		factoryConfig.AzureCredential = credential
	case adaptersout.LocalStorage:
		factoryConfig.LocalFs = afero.NewBasePathFs(afero.NewOsFs(), appConfig.Storage.LocalRoot)
	}

	return adaptersout.NewObjectSourceFactory(factoryConfig)
}

func newNotifiers(appConfig config.AppConfig, awsSession *session.Session) []portsout.Notifier {
	var notifiers []portsout.Notifier

	if appConfig.Notification.Slack.Webhook != "" {
		notifiers = append(notifiers, adaptersout.NewSlackNotifier(appConfig.Notification.Slack.Webhook, appConfig.Notification.Slack.ChannelID))
	}

	if len(appConfig.Notification.Phones) != 0 {
		notifiers = append(notifiers, adaptersout.NewSMSNotifier(awsSession, appConfig.Notification.Phones))
	}

	return notifiers
}
