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
	"errors"
	"fmt"
	adapterentities "gzip-checker/adapters/entities"
	"gzip-checker/common"
	"gzip-checker/domain/entities"
	"gzip-checker/domain/services"
	checkerhttp "gzip-checker/http"
	"gzip-checker/logging"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const ScanIDHeader = "X-Scan-Id"

type ScanController struct {
	validate    *validator.Validate
	scanner     services.Scanner
	rateLimiter common.RateLimiter
	domain      string
	logger      logging.Logger
}

func NewScanController(scanner services.Scanner, rateLimiter common.RateLimiter, domain string, logger logging.Logger) ScanController {
	return ScanController{scanner: scanner, rateLimiter: rateLimiter, domain: domain, logger: logger, validate: validator.New()}
}

// VerifyObject
// @Summary		Verifies a single GZIP object
// @Tags		objects
// @Produce		json
// @Param		x-storage-account	header	string	true	"Storage account"
// @Param		x-storage-container	header	string	true	"Container"
// @Param		x-storage-path		header	string	true	"Object path inside the container"
// @Param		x-storage-full-scan	header	int		false	"1 decompresses the whole object, anything else only checks the header"	default(1)
// @Success		200 {array} adapterentities.GZipResultResponse
// @Failure		400 {object} adapterentities.ErrorResponse
// @Failure		404 {object} adapterentities.ErrorResponse
// @Failure		429 {object} adapterentities.ErrorResponse
// @Failure		502 {object} adapterentities.ErrorResponse
// @Security	ApiKey
// @Router      /objects/verify [post]
func (s *ScanController) VerifyObject(c *fiber.Ctx) error {
	scanID := s.startScan(c)
	if !s.isAllowed(c) {
		return s.sendError(c, scanID, errRateLimited)
	}

	headers := adapterentities.ObjectHeaders{
		Account:   c.Get(adapterentities.HeaderAccount),
		Container: c.Get(adapterentities.HeaderContainer),
		Path:      c.Get(adapterentities.HeaderPath),
		FullScan:  c.Get(adapterentities.HeaderFullScan),
	}

	if err := s.validate.Struct(headers); err != nil {
		return s.sendError(c, scanID, requiredHeadersError(err))
	}

	request, err := headers.ToScanRequest(scanID)
	if err != nil {
		return s.sendError(c, scanID, err)
	}

	outcome, err := s.scanner.VerifyObject(c.UserContext(), request)
	if err != nil {
		return s.sendError(c, scanID, err)
	}

	s.logger.Infow("object verified", "scan_id", scanID, "account", request.Account, "container", request.Container,
		"path", outcome.Path, "is_valid", outcome.IsValid)

	return c.Status(fiber.StatusOK).JSON([]adapterentities.GZipResultResponse{
		adapterentities.MapToGZipResult(request.Account, s.domain, request.Container, outcome),
	})
}

// VerifyFolder
// @Summary		Verifies every GZIP object below a folder and stores the corrupt ones in the bad file list
// @Tags		folders
// @Produce		json
// @Param		x-storage-account				header	string	true	"Storage account"
// @Param		x-storage-container				header	string	true	"Container"
// @Param		x-storage-folder				header	string	true	"Folder prefix"
// @Param		x-storage-file-suffix			header	string	false	"Suffix of the objects to verify"	default(.gz)
// @Param		x-storage-bad-file-list-path	header	string	false	"Where the bad file list is written"	default(gzipissues/currentissues.txt)
// @Param		x-storage-full-scan				header	int		false	"1 decompresses every object, anything else only checks headers"	default(1)
// @Success		200 {array} adapterentities.GZipResultResponse
// @Failure		400 {object} adapterentities.ErrorResponse
// @Failure		409 {object} adapterentities.ErrorResponse
// @Failure		429 {object} adapterentities.ErrorResponse
// @Failure		502 {object} adapterentities.ErrorResponse
// @Security	ApiKey
// @Router      /folders/verify [post]
func (s *ScanController) VerifyFolder(c *fiber.Ctx) error {
	scanID, request, report, err := s.scanFolder(c)
	if err != nil {
		return s.sendError(c, scanID, err)
	}

	return c.Status(fiber.StatusOK).JSON(adapterentities.MapToGZipResults(request.Account, s.domain, report))
}

// CheckFolder
// @Summary		Verifies a folder and only returns how many corrupt objects were found
// @Tags		folders
// @Produce		json
// @Param		x-storage-account				header	string	true	"Storage account"
// @Param		x-storage-container				header	string	true	"Container"
// @Param		x-storage-folder				header	string	true	"Folder prefix"
// @Param		x-storage-file-suffix			header	string	false	"Suffix of the objects to verify"	default(.gz)
// @Param		x-storage-bad-file-list-path	header	string	false	"Where the bad file list is written"	default(gzipissues/currentissues.txt)
// @Param		x-storage-full-scan				header	int		false	"1 decompresses every object, anything else only checks headers"	default(1)
// @Success		200 {object} adapterentities.SummaryResponse
// @Failure		400 {object} adapterentities.ErrorResponse
// @Failure		409 {object} adapterentities.ErrorResponse
// @Failure		429 {object} adapterentities.ErrorResponse
// @Failure		502 {object} adapterentities.ErrorResponse
// @Security	ApiKey
// @Router      /folders/check [post]
func (s *ScanController) CheckFolder(c *fiber.Ctx) error {
	scanID, _, report, err := s.scanFolder(c)
	if err != nil {
		return s.sendError(c, scanID, err)
	}

	return c.Status(fiber.StatusOK).JSON(adapterentities.MapToSummary(report))
}

func (s *ScanController) scanFolder(c *fiber.Ctx) (string, entities.ScanRequest, *entities.ScanReport, error) {
	scanID := s.startScan(c)
	if !s.isAllowed(c) {
		return scanID, entities.ScanRequest{}, nil, errRateLimited
	}

	headers := adapterentities.FolderHeaders{
		Account:         c.Get(adapterentities.HeaderAccount),
		Container:       c.Get(adapterentities.HeaderContainer),
		Folder:          c.Get(adapterentities.HeaderFolder),
		FileSuffix:      c.Get(adapterentities.HeaderFileSuffix),
		BadFileListPath: c.Get(adapterentities.HeaderBadFileListPath),
		FullScan:        c.Get(adapterentities.HeaderFullScan),
	}

	if err := s.validate.Struct(headers); err != nil {
		return scanID, entities.ScanRequest{}, nil, requiredHeadersError(err)
	}

	request, err := headers.ToScanRequest(scanID)
	if err != nil {
		return scanID, request, nil, err
	}

	s.logger.Infow("verifying folder", "scan_id", scanID, "account", request.Account, "container", request.Container,
		"folder", request.Target.Folder.Prefix, "full_scan", request.Policy.FullScan)

	report, err := s.scanner.VerifyFolder(c.UserContext(), request)

	return scanID, request, report, err
}

func (s *ScanController) startScan(c *fiber.Ctx) string {
	scanID := uuid.New().String()
	c.Set(ScanIDHeader, scanID)

	return scanID
}

func (s *ScanController) isAllowed(c *fiber.Ctx) bool {
	return s.rateLimiter.IsRequestAllowed(c.UserContext(), checkerhttp.RequestUser(c))
}

func (s *ScanController) sendError(c *fiber.Ctx, scanID string, err error) error {
	status := statusFromError(err)

	if status >= fiber.StatusInternalServerError {
		s.logger.Errorw("scan failed", "error", err, "scan_id", scanID, "status", status)
	} else {
		s.logger.Infow("scan rejected", "error", err, "scan_id", scanID, "status", status)
	}

	return c.Status(status).JSON(adapterentities.ErrorResponse{Error: err.Error()})
}

var errRateLimited = errors.New("rate limit exceeded")

func requiredHeadersError(err error) error {
	return fmt.Errorf("%w: missing or invalid headers, required are x-storage-account, x-storage-container "+
		"and x-storage-path or x-storage-folder. %s", entities.ErrConfig, err)
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, errRateLimited):
		return fiber.StatusTooManyRequests
	case errors.Is(err, entities.ErrConfig):
		return fiber.StatusBadRequest
	case errors.Is(err, entities.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, entities.ErrScanInProgress):
		return fiber.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout
	case errors.Is(err, entities.ErrStore):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
