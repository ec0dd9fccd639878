package storage

import (
	"context"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

// azAPI is the subset of the azblob service client we use; allows test fakes.
type azAPI interface {
	DownloadStream(ctx context.Context, containerName string, blobName string, o *azblob.DownloadStreamOptions) (azblob.DownloadStreamResponse, error)
	UploadStream(ctx context.Context, containerName string, blobName string, body io.Reader, o *azblob.UploadStreamOptions) (azblob.UploadStreamResponse, error)
}

// AzureStore is an ObjectStore over a single Azure Blob Storage container.
// Uploads are block blob puts, which overwrite existing blobs.
type AzureStore struct {
	client    azAPI
	container string
}

// NewAzure creates an Azure-backed store from a storage account connection string.
func NewAzure(connectionString, container string) (*AzureStore, error) {
	client, err := azblob.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, err
	}
	return &AzureStore{client: client, container: container}, nil
}

// NewAzureWithClient wires an existing client; used by tests.
func NewAzureWithClient(client azAPI, container string) *AzureStore {
	return &AzureStore{client: client, container: container}
}

func (s *AzureStore) Get(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	resp, err := s.client.DownloadStream(ctx, s.container, key, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, err
	}
	size := int64(0)
	if resp.ContentLength != nil {
		size = *resp.ContentLength
	}
	return resp.Body, size, nil
}

func (s *AzureStore) Put(ctx context.Context, key string, body io.Reader) error {
	_, err := s.client.UploadStream(ctx, s.container, key, body, nil)
	return err
}
