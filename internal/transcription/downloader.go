package transcription

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var ErrInvalidURL = errors.New("invalid url format")

const probeTimeout = 5 * time.Second

// Downloader mocks fetching an audio file. The URL format is always
// validated; with skipProbe unset it additionally probes the URL with a HEAD
// request before returning the mock payload.
type Downloader struct {
	client    *http.Client
	skipProbe bool
}

func NewDownloader(client *http.Client, skipProbe bool) *Downloader {
	if client == nil {
		client = &http.Client{Timeout: probeTimeout}
	}
	return &Downloader{client: client, skipProbe: skipProbe}
}

func (d *Downloader) Download(ctx context.Context, audioURL string) ([]byte, error) {
	u, err := url.Parse(audioURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("%w: %s", ErrInvalidURL, audioURL)
	}

	if !d.skipProbe {
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, audioURL, nil)
		if err != nil {
			return nil, err
		}
		resp, err := d.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to download audio from url: %w", err)
		}
		resp.Body.Close()
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("failed to download audio from url: status %d", resp.StatusCode)
		}
	}

	return []byte("mock-audio-data"), nil
}
