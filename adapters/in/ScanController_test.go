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

package in

import (
	"context"
	"encoding/json"
	"fmt"
	adapterentities "gzip-checker/adapters/entities"
	"gzip-checker/common"
	"gzip-checker/domain/entities"
	checkerhttp "gzip-checker/http"
	"gzip-checker/logging"
	"gzip-checker/mocks"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDomain = "blob.core.windows.net"

func newTestApp(t *testing.T, scanner *mocks.MockScanner, allowed bool) *fiber.App {
	t.Helper()

	rateLimiter := mocks.NewMockRateLimiter(gomock.NewController(t))
	rateLimiter.EXPECT().IsRequestAllowed(gomock.Any(), gomock.Any()).Return(allowed).AnyTimes()

	scanController := NewScanController(scanner, rateLimiter, testDomain, logging.NewDiscardLog())

	handlers := []checkerhttp.Handler{
		{HTTPMethod: fiber.MethodPost, Path: "/objects/verify", HandlerFunc: scanController.VerifyObject},
		{HTTPMethod: fiber.MethodPost, Path: "/folders/verify", HandlerFunc: scanController.VerifyFolder},
		{HTTPMethod: fiber.MethodPost, Path: "/folders/check", HandlerFunc: scanController.CheckFolder},
	}

	return common.CreateFiberAppForTest(handlers)
}

func send(t *testing.T, app *fiber.App, path string, headers map[string]string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(fiber.MethodPost, path, http.NoBody)
	for key, value := range headers {
		request.Header.Set(key, value)
	}

	httpResponse, err := app.Test(request, -1)
	require.NoError(t, err)

	return httpResponse
}

func decode[T any](t *testing.T, response *http.Response) T {
	t.Helper()

	var body T
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))

	return body
}

func TestVerifyObject(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	scanner := mocks.NewMockScanner(mockCtrl)
	scanner.EXPECT().VerifyObject(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, request entities.ScanRequest) (entities.ValidationOutcome, error) {
			assert.Equal(t, "acc", request.Account)
			assert.Equal(t, "logs", request.Container)
			assert.Equal(t, "2024/01/a.gz", request.Target.Object.Path)
			assert.False(t, request.Policy.FullScan)
			assert.NotEmpty(t, request.ScanID)

			return entities.ValidationOutcome{Path: request.Target.Object.Path, IsValid: true}, nil
		}).Times(1)

	app := newTestApp(t, scanner, true)
	httpResponse := send(t, app, "/v1/objects/verify", map[string]string{
		adapterentities.HeaderAccount:   "acc",
		adapterentities.HeaderContainer: "logs",
		adapterentities.HeaderPath:      "2024/01/a.gz",
		adapterentities.HeaderFullScan:  "0",
	})
	defer httpResponse.Body.Close()

	assert.Equal(t, fiber.StatusOK, httpResponse.StatusCode)
	assert.NotEmpty(t, httpResponse.Header.Get(ScanIDHeader))

	results := decode[[]adapterentities.GZipResultResponse](t, httpResponse)
	assert.Equal(t, []adapterentities.GZipResultResponse{
		{Path: "https://acc.blob.core.windows.net/logs/2024/01/a.gz", IsValid: true},
	}, results)
}

func TestVerifyFolder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	report := entities.NewScanReport("logs")
	report.Add(entities.ValidationOutcome{Path: "2024/a.gz", IsValid: true})
	report.Add(entities.ValidationOutcome{Path: "2024/b.gz", IsValid: false})

	scanner := mocks.NewMockScanner(mockCtrl)
	scanner.EXPECT().VerifyFolder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, request entities.ScanRequest) (*entities.ScanReport, error) {
			assert.Equal(t, entities.FolderScan{Prefix: "2024/", Suffix: ".gz", BadFileListPath: ""}, *request.Target.Folder)
			assert.True(t, request.Policy.FullScan)

			return report, nil
		}).Times(1)

	app := newTestApp(t, scanner, true)
	httpResponse := send(t, app, "/v1/folders/verify", map[string]string{
		adapterentities.HeaderAccount:    "acc",
		adapterentities.HeaderContainer:  "logs",
		adapterentities.HeaderFolder:     "2024/",
		adapterentities.HeaderFileSuffix: ".gz",
	})
	defer httpResponse.Body.Close()

	assert.Equal(t, fiber.StatusOK, httpResponse.StatusCode)

	results := decode[[]adapterentities.GZipResultResponse](t, httpResponse)
	assert.Equal(t, []adapterentities.GZipResultResponse{
		{Path: "https://acc.blob.core.windows.net/logs/2024/a.gz", IsValid: true},
		{Path: "https://acc.blob.core.windows.net/logs/2024/b.gz", IsValid: false},
	}, results)
}

func TestVerifyEmptyFolder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	scanner := mocks.NewMockScanner(mockCtrl)
	scanner.EXPECT().VerifyFolder(gomock.Any(), gomock.Any()).Return(entities.NewScanReport("logs"), nil).Times(1)

	app := newTestApp(t, scanner, true)
	httpResponse := send(t, app, "/v1/folders/verify", map[string]string{
		adapterentities.HeaderAccount:   "acc",
		adapterentities.HeaderContainer: "logs",
		adapterentities.HeaderFolder:    "empty/",
	})
	defer httpResponse.Body.Close()

	assert.Equal(t, fiber.StatusOK, httpResponse.StatusCode)
	assert.Empty(t, decode[[]adapterentities.GZipResultResponse](t, httpResponse))
}

func TestCheckFolder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	report := entities.NewScanReport("logs")
	report.Add(entities.ValidationOutcome{Path: "a.gz", IsValid: false})
	report.Add(entities.ValidationOutcome{Path: "b.gz", IsValid: false})
	report.Add(entities.ValidationOutcome{Path: "c.gz", IsValid: true})

	scanner := mocks.NewMockScanner(mockCtrl)
	scanner.EXPECT().VerifyFolder(gomock.Any(), gomock.Any()).Return(report, nil).Times(1)

	app := newTestApp(t, scanner, true)
	httpResponse := send(t, app, "/v1/folders/check", map[string]string{
		adapterentities.HeaderAccount:   "acc",
		adapterentities.HeaderContainer: "logs",
		adapterentities.HeaderFolder:    "/",
	})
	defer httpResponse.Body.Close()

	assert.Equal(t, fiber.StatusOK, httpResponse.StatusCode)
	assert.Equal(t, adapterentities.SummaryResponse{Message: "Found 2 corrupt GZips", Corrupt: 2, Scanned: 3},
		decode[adapterentities.SummaryResponse](t, httpResponse))
}

func TestInvalidScanRequests(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		headers map[string]string
	}{
		{
			name:    "object without path",
			path:    "/v1/objects/verify",
			headers: map[string]string{adapterentities.HeaderAccount: "acc", adapterentities.HeaderContainer: "logs"},
		},
		{
			name:    "object without account",
			path:    "/v1/objects/verify",
			headers: map[string]string{adapterentities.HeaderContainer: "logs", adapterentities.HeaderPath: "a.gz"},
		},
		{
			name:    "folder without folder",
			path:    "/v1/folders/verify",
			headers: map[string]string{adapterentities.HeaderAccount: "acc", adapterentities.HeaderContainer: "logs"},
		},
		{
			name:    "summary without container",
			path:    "/v1/folders/check",
			headers: map[string]string{adapterentities.HeaderAccount: "acc", adapterentities.HeaderFolder: "2024/"},
		},
		{
			name: "full scan is not a number",
			path: "/v1/folders/verify",
			headers: map[string]string{
				adapterentities.HeaderAccount:   "acc",
				adapterentities.HeaderContainer: "logs",
				adapterentities.HeaderFolder:    "2024/",
				adapterentities.HeaderFullScan:  "yes",
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()

			// no scanner expectations: nothing may reach the store
			app := newTestApp(t, mocks.NewMockScanner(mockCtrl), true)
			httpResponse := send(t, app, tt.path, tt.headers)
			defer httpResponse.Body.Close()

			assert.Equal(t, fiber.StatusBadRequest, httpResponse.StatusCode)
			assert.NotEmpty(t, decode[adapterentities.ErrorResponse](t, httpResponse).Error)
		})
	}
}

func TestScanErrorsStatus(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "missing object", err: fmt.Errorf("%w: logs/a.gz", entities.ErrNotFound), expectedStatus: fiber.StatusNotFound},
		{name: "store failure", err: fmt.Errorf("%w: connection reset", entities.ErrStore), expectedStatus: fiber.StatusBadGateway},
		{name: "concurrent scan", err: entities.ErrScanInProgress, expectedStatus: fiber.StatusConflict},
		{name: "deadline", err: context.DeadlineExceeded, expectedStatus: fiber.StatusGatewayTimeout},
		{name: "unexpected", err: fmt.Errorf("boom"), expectedStatus: fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()

			scanner := mocks.NewMockScanner(mockCtrl)
			scanner.EXPECT().VerifyObject(gomock.Any(), gomock.Any()).Return(entities.ValidationOutcome{}, tt.err).Times(1)

			app := newTestApp(t, scanner, true)
			httpResponse := send(t, app, "/v1/objects/verify", map[string]string{
				adapterentities.HeaderAccount:   "acc",
				adapterentities.HeaderContainer: "logs",
				adapterentities.HeaderPath:      "a.gz",
			})
			defer httpResponse.Body.Close()

			assert.Equal(t, tt.expectedStatus, httpResponse.StatusCode)
			assert.NotEmpty(t, httpResponse.Header.Get(ScanIDHeader))
		})
	}
}

func TestRateLimitedScan(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	app := newTestApp(t, mocks.NewMockScanner(mockCtrl), false)

	for _, path := range []string{"/v1/objects/verify", "/v1/folders/verify", "/v1/folders/check"} {
		httpResponse := send(t, app, path, map[string]string{
			adapterentities.HeaderAccount:   "acc",
			adapterentities.HeaderContainer: "logs",
			adapterentities.HeaderPath:      "a.gz",
			adapterentities.HeaderFolder:    "2024/",
		})
		assert.Equal(t, fiber.StatusTooManyRequests, httpResponse.StatusCode, path)
		httpResponse.Body.Close()
	}
}
