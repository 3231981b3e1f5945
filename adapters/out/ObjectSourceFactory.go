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
	"fmt"
	"gzip-checker/domain/entities"
	"gzip-checker/domain/ports/out"
	"gzip-checker/pkg/awsutils"
	"gzip-checker/pkg/azureutils"
	"path"
	"strings"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/spf13/afero"
)

const (
	AzureStorage = "azure"
	S3Storage    = "s3"
	LocalStorage = "local"
)

type ObjectSourceFactoryConfig struct {
	StorageType     string
	Domain          string
	AzureCredential azcore.TokenCredential
	AWSSession      *session.Session
	LocalFs         afero.Fs
}

// ObjectSourceFactory hands out sources bound to one account and container. Azure clients are cached per account.
type ObjectSourceFactory struct {
	config ObjectSourceFactoryConfig

	mu          sync.Mutex
	blobClients map[string]*azureutils.Blob
	s3          *awsutils.S3
}

func NewObjectSourceFactory(config ObjectSourceFactoryConfig) (*ObjectSourceFactory, error) {
	factory := &ObjectSourceFactory{config: config, blobClients: make(map[string]*azureutils.Blob)}

	switch config.StorageType {
	case AzureStorage:
		if config.AzureCredential == nil {
			return nil, fmt.Errorf("azure storage requires a credential")
		}
	case S3Storage:
		if config.AWSSession == nil {
			return nil, fmt.Errorf("s3 storage requires an aws session")
		}

		factory.s3 = &awsutils.S3{}
		factory.s3.Init(config.AWSSession, nil)
	case LocalStorage:
		if config.LocalFs == nil {
			return nil, fmt.Errorf("local storage requires a filesystem")
		}
	default:
		return nil, fmt.Errorf("there is no such storage type %s", config.StorageType)
	}

	return factory, nil
}

func (f *ObjectSourceFactory) GetObjectSource(account, container string) (out.ObjectSource, error) {
	if err := validateName("account", account); err != nil {
		return nil, err
	}

	if err := validateName("container", container); err != nil {
		return nil, err
	}

	switch f.config.StorageType {
	case AzureStorage:
		client, err := f.blobClient(account)
		if err != nil {
			return nil, err
		}

		return NewAzureBlobSource(client, container), nil
	case S3Storage:
		return NewS3Source(f.s3, container), nil
	default:
		root := path.Join(rootDir, account, container)
		return NewLocalSource(afero.NewBasePathFs(f.config.LocalFs, root), container), nil
	}
}

func (f *ObjectSourceFactory) blobClient(account string) (*azureutils.Blob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if client, ok := f.blobClients[account]; ok {
		return client, nil
	}

	client := &azureutils.Blob{}
	if err := client.Init(account, f.config.Domain, f.config.AzureCredential); err != nil {
		return nil, storeError(err, "failed to create blob client for account %s", account)
	}

	f.blobClients[account] = client

	return client, nil
}

func validateName(kind, name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("%w: invalid %s name %q", entities.ErrConfig, kind, name)
	}

	return nil
}
