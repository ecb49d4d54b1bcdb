package client

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockObjectStore implements ObjectStore for testing without AWS credentials.
// Uploaded objects are retained in memory for assertions.
type MockObjectStore struct {
	Bucket string

	mu      sync.Mutex
	Objects map[string][]byte

	// Optional function overrides for custom test behavior
	UploadFunc func(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	DeleteFunc func(ctx context.Context, key string) error
}

// NewMockObjectStore creates a new mock object store for testing
func NewMockObjectStore() *MockObjectStore {
	return &MockObjectStore{
		Bucket:  "test-bucket",
		Objects: make(map[string][]byte),
	}
}

// BackupKey builds a backup object key
func (m *MockObjectStore) BackupKey(boardID uuid.UUID) string {
	now := time.Now().UTC()
	return fmt.Sprintf("backups/%s/%s/board_%s_%d.json",
		now.Format("2006"), now.Format("01"), boardID, now.UnixNano())
}

// ExportKey builds an export object key
func (m *MockObjectStore) ExportKey(boardID uuid.UUID, format string) string {
	now := time.Now().UTC()
	return fmt.Sprintf("exports/%s/%s/board_%s_%d.%s",
		now.Format("2006"), now.Format("01"), boardID, now.UnixNano(), format)
}

// Upload records the object in memory and returns its URL
func (m *MockObjectStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, key, body, contentType)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	m.Objects[key] = data
	m.mu.Unlock()
	return m.ObjectURL(key), nil
}

// Delete removes the object from memory
func (m *MockObjectStore) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	delete(m.Objects, key)
	m.mu.Unlock()
	return nil
}

// ObjectURL returns the URL for an object key
func (m *MockObjectStore) ObjectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.us-east-1.amazonaws.com/%s", m.Bucket, key)
}

// Get returns a stored object's bytes
func (m *MockObjectStore) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.Objects[key]
	return data, ok
}
