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
	"fmt"
	"gzip-checker/domain/entities"

	"github.com/pkg/errors"
)

// storeError keeps the cause in the chain so deadline errors stay recognizable.
func storeError(err error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %w", entities.ErrStore, errors.Wrapf(err, format, args...))
}

// requestError prefers the context error over the SDK error once the request context is done.
func requestError(ctx context.Context, err error, format string, args ...interface{}) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.Wrapf(ctxErr, format, args...)
	}

	return storeError(err, format, args...)
}

func notFoundError(container, name string) error {
	return fmt.Errorf("%w: %s/%s", entities.ErrNotFound, container, name)
}
