package controller

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// CloudStorageClient wraps a Google Cloud Storage bucket used for
// publicly served assets such as profile pictures.
type CloudStorageClient struct {
	BucketName string
	Ctx        context.Context
	Client     *storage.Client
}

func NewCloudStorageClient(bucketName string) (*CloudStorageClient, error) {
	ctx := context.Background()
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud storage client: %v", err)
	}
	return &CloudStorageClient{
		BucketName: bucketName,
		Ctx:        ctx,
		Client:     client,
	}, nil
}

func (c *CloudStorageClient) UploadFile(objectName string, fileData io.Reader) error {
	bucket := c.Client.Bucket(c.BucketName)
	obj := bucket.Object(objectName)
	wc := obj.NewWriter(c.Ctx)
	if _, err := io.Copy(wc, fileData); err != nil {
		return fmt.Errorf("failed to write data to object: %v", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close object writer: %v", err)
	}
	return nil
}

func (c *CloudStorageClient) DeleteFile(objectName string) error {
	obj := c.Client.Bucket(c.BucketName).Object(objectName)
	if err := obj.Delete(c.Ctx); err != nil {
		return fmt.Errorf("failed to delete object %s: %v", objectName, err)
	}
	return nil
}

// ListFiles returns the names of all objects under the given prefix.
func (c *CloudStorageClient) ListFiles(prefix string) ([]string, error) {
	var names []string
	it := c.Client.Bucket(c.BucketName).Objects(c.Ctx, &storage.Query{Prefix: prefix})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %v", err)
		}
		names = append(names, attrs.Name)
	}
	return names, nil
}

// ObjectURL returns the public URL of an uploaded object.
func (c *CloudStorageClient) ObjectURL(objectName string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.BucketName, objectName)
}
