package services

import (
	"context"
	"fmt"
	"sync"
)

// fakeObjectStore stands in for S3 in tests.
type fakeObjectStore struct {
	mu       sync.Mutex
	uploads  int
	deleted  []string
	failNext bool
}

func (f *fakeObjectStore) Upload(_ context.Context, fileName, _ string, _ []byte) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext {
		f.failNext = false
		return "", "", fmt.Errorf("upload failed for %s", fileName)
	}
	f.uploads++
	key := fmt.Sprintf("profile-pics/%d_%s", f.uploads, fileName)
	return "https://signed.example/" + key, key, nil
}

func (f *fakeObjectStore) PresignGet(_ context.Context, key string) (string, error) {
	return "https://fresh.example/" + key, nil
}

func (f *fakeObjectStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, key)
	return nil
}

// fakeMailer records outgoing mail instead of dialing SMTP.
type fakeMailer struct {
	mu   sync.Mutex
	sent []string // bodies, in order
	to   []string
}

func (f *fakeMailer) Send(to, _ string, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.to = append(f.to, to)
	f.sent = append(f.sent, body)
	return nil
}
