package whatsapp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	domainMessage "github.com/wachat/wachat-bridge/domains/message"
)

// FetchMedia resolves a media id to its bytes in two steps: the metadata
// endpoint hands back a short-lived download URL, and that URL serves the raw
// content. Both calls use the same bearer token. Any failure is logged and
// reported as FetchFailed; nothing propagates to the caller.
func (c *Client) FetchMedia(ctx context.Context, mediaID string) domainMessage.FetchResult {
	failed := domainMessage.FetchResult{State: domainMessage.FetchFailed}

	fileURL, err := c.resolveMediaURL(ctx, mediaID)
	if err != nil {
		logrus.WithError(err).Errorf("[MEDIA] failed to resolve download url for %s", mediaID)
		return failed
	}

	raw, err := c.downloadMedia(ctx, fileURL)
	if err != nil {
		logrus.WithError(err).Errorf("[MEDIA] failed to download %s", mediaID)
		return failed
	}

	logrus.Infof("[MEDIA] downloaded %s (%s)", mediaID, humanize.Bytes(uint64(len(raw))))
	return domainMessage.FetchResult{
		State:  domainMessage.FetchSucceeded,
		Base64: base64.StdEncoding.EncodeToString(raw),
	}
}

func (c *Client) resolveMediaURL(ctx context.Context, mediaID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Whatsapp.MediaURL(mediaID), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Whatsapp.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("media metadata status %d", resp.StatusCode)
	}

	var metadata struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&metadata); err != nil {
		return "", err
	}
	if metadata.URL == "" {
		return "", fmt.Errorf("media metadata has no url field")
	}
	return metadata.URL, nil
}

func (c *Client) downloadMedia(ctx context.Context, fileURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Whatsapp.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("media download status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
