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

package e2e

import (
	"context"
	"encoding/json"
	adapterentities "gzip-checker/adapters/entities"
	"net/http"
)

func (suite *E2E) post(ctx context.Context, path string, headers map[string]string) *http.Response {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, serviceURL+path, http.NoBody)
	suite.Require().NoError(err)

	for key, value := range headers {
		request.Header.Set(key, value)
	}

	httpResponse, err := http.DefaultClient.Do(request)
	suite.Require().NoError(err)

	return httpResponse
}

func (suite *E2E) TestHTTPFolderScan() {
	ctx := context.Background()
	suite.seedFolder(ctx, "http/2024/")

	httpResponse := suite.post(ctx, "/v1/folders/verify", map[string]string{
		adapterentities.HeaderAccount:         account,
		adapterentities.HeaderContainer:       suite.bucketName,
		adapterentities.HeaderFolder:          "http/2024/",
		adapterentities.HeaderBadFileListPath: "http/issues.txt",
	})
	defer httpResponse.Body.Close()

	suite.Require().Equal(http.StatusOK, httpResponse.StatusCode)

	var results []adapterentities.GZipResultResponse
	suite.Require().NoError(json.NewDecoder(httpResponse.Body).Decode(&results))

	base := "https://localstack.s3.amazonaws.com/gzip-samples/"
	suite.Assert().Equal([]adapterentities.GZipResultResponse{
		{Path: base + "http/2024/a.gz", IsValid: true},
		{Path: base + "http/2024/b.gz", IsValid: false},
		{Path: base + "http/2024/nested/c.gz", IsValid: false},
	}, results)

	badFiles, err := suite.download(ctx, "http/issues.txt")
	suite.Require().NoError(err)
	suite.Assert().Equal("gzip-samples/http/2024/b.gz\ngzip-samples/http/2024/nested/c.gz", string(badFiles))
}

func (suite *E2E) TestHTTPObjectScan() {
	ctx := context.Background()
	suite.seedFolder(ctx, "object/")

	tests := []struct {
		path           string
		fullScan       string
		expectedStatus int
		expectedValid  bool
	}{
		{path: "object/a.gz", fullScan: "1", expectedStatus: http.StatusOK, expectedValid: true},
		{path: "object/b.gz", fullScan: "1", expectedStatus: http.StatusOK, expectedValid: false},
		{path: "object/b.gz", fullScan: "0", expectedStatus: http.StatusOK, expectedValid: true},
		{path: "object/missing.gz", fullScan: "1", expectedStatus: http.StatusNotFound},
	}
	for _, tt := range tests {
		httpResponse := suite.post(ctx, "/v1/objects/verify", map[string]string{
			adapterentities.HeaderAccount:   account,
			adapterentities.HeaderContainer: suite.bucketName,
			adapterentities.HeaderPath:      tt.path,
			adapterentities.HeaderFullScan:  tt.fullScan,
		})

		suite.Assert().Equal(tt.expectedStatus, httpResponse.StatusCode, tt.path)

		if tt.expectedStatus == http.StatusOK {
			var results []adapterentities.GZipResultResponse
			suite.Require().NoError(json.NewDecoder(httpResponse.Body).Decode(&results))
			suite.Require().Len(results, 1)
			suite.Assert().Equal(tt.expectedValid, results[0].IsValid, tt.path)
		}

		httpResponse.Body.Close()
	}
}

func (suite *E2E) TestHTTPFolderCheck() {
	ctx := context.Background()
	suite.seedFolder(ctx, "check/")

	httpResponse := suite.post(ctx, "/v1/folders/check", map[string]string{
		adapterentities.HeaderAccount:   account,
		adapterentities.HeaderContainer: suite.bucketName,
		adapterentities.HeaderFolder:    "check/",
		adapterentities.HeaderFullScan:  "0",
	})
	defer httpResponse.Body.Close()

	suite.Require().Equal(http.StatusOK, httpResponse.StatusCode)

	var summary adapterentities.SummaryResponse
	suite.Require().NoError(json.NewDecoder(httpResponse.Body).Decode(&summary))
	suite.Assert().Equal(adapterentities.SummaryResponse{Message: "Found 1 corrupt GZips", Corrupt: 1, Scanned: 3}, summary)

	badFiles, err := suite.download(ctx, "gzipissues/currentissues.txt")
	suite.Require().NoError(err)
	suite.Assert().Equal("gzip-samples/check/nested/c.gz", string(badFiles))
}
