package gateways

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"depscope/internal/domain/entities"
	"depscope/internal/domain/interfaces"
)

// ArtifactFetcher downloads artifacts from remote repositories laid out in
// the standard group/artifact/version structure.
type ArtifactFetcher struct {
	httpClient *http.Client
	log        interfaces.Logger
}

// NewArtifactFetcher creates a fetcher with a download-friendly timeout.
func NewArtifactFetcher(log interfaces.Logger) *ArtifactFetcher {
	if log == nil {
		log = &interfaces.NoOpLogger{}
	}
	return &ArtifactFetcher{
		httpClient: &http.Client{
			Timeout: 5 * time.Minute, // Long timeout for large artifacts
		},
		log: log,
	}
}

// Fetch downloads the requested artifact into destDir and returns the local
// file path.
func (f *ArtifactFetcher) Fetch(ctx context.Context, request *entities.RepositoryRequest, destDir string) (string, error) {
	url := request.URL()

	if err := os.MkdirAll(destDir, 0750); err != nil {
		return "", fmt.Errorf("failed to create destination directory: %w", err)
	}
	destPath := filepath.Join(destDir, request.FileName())

	f.log.Info("Downloading artifact",
		interfaces.F("artifact", request.Artifact.ID()),
		interfaces.F("url", url))

	if err := f.downloadFile(ctx, url, destPath); err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", request.Artifact.ID(), err)
	}
	return destPath, nil
}

func (f *ArtifactFetcher) downloadFile(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "depscope/1.0")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	//nolint:errcheck // Defer close on HTTP response body
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	//nolint:gosec // G304: dest is constructed from the destination directory
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to write download: %w", err)
	}
	return out.Close()
}
