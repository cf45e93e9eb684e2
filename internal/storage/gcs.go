package storage

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"sort"

	"cloud.google.com/go/storage"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

type GCSStorage struct {
	client *storage.Client
	bucket string
	prefix string
}

type GCSOptions struct {
	Bucket          string
	Prefix          string
	CredentialsFile string
}

func NewGCSStorage(ctx context.Context, opts GCSOptions) (*GCSStorage, error) {
	clientOpt, err := credentialsOption(ctx, opts.CredentialsFile)
	if err != nil {
		return nil, err
	}

	client, err := storage.NewClient(ctx, clientOpt)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSStorage{
		client: client,
		bucket: opts.Bucket,
		prefix: opts.Prefix,
	}, nil
}

func credentialsOption(ctx context.Context, credentialsFile string) (option.ClientOption, error) {
	if credentialsFile != "" {
		return option.WithCredentialsFile(credentialsFile), nil
	}

	creds, err := google.FindDefaultCredentials(ctx, storage.ScopeReadWrite)
	if err != nil {
		return nil, fmt.Errorf("failed to find default credentials: %w", err)
	}
	return option.WithCredentials(creds), nil
}

func (s *GCSStorage) Close() error {
	return s.client.Close()
}

func (s *GCSStorage) Save(ctx context.Context, name, text string) (string, error) {
	objectName := path.Join(s.prefix, filepath.Base(name))

	w := s.client.Bucket(s.bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = "text/markdown; charset=utf-8"

	if _, err := w.Write([]byte(text)); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to upload script: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to upload script: %w", err)
	}

	return fmt.Sprintf("gs://%s/%s", s.bucket, objectName), nil
}

func (s *GCSStorage) List(ctx context.Context) ([]string, error) {
	query := &storage.Query{Prefix: s.prefix}

	var objects []string
	it := s.client.Bucket(s.bucket).Objects(ctx, query)
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}

		if path.Ext(attrs.Name) == exportExt {
			objects = append(objects, fmt.Sprintf("gs://%s/%s", s.bucket, attrs.Name))
		}
	}
	sort.Strings(objects)

	return objects, nil
}
