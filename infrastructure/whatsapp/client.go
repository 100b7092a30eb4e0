package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wachat/wachat-bridge/config"
	domainMessage "github.com/wachat/wachat-bridge/domains/message"
)

const httpTimeout = 15 * time.Second

// Client talks to the WhatsApp Cloud API send and media endpoints. It keeps
// no state between requests beyond the shared HTTP client.
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: httpTimeout},
	}
}

// sendEnvelope is the Cloud API message envelope; exactly one type-specific
// payload field is set per send.
type sendEnvelope struct {
	MessagingProduct string        `json:"messaging_product"`
	To               string        `json:"to"`
	Type             string        `json:"type"`
	Text             *textBody     `json:"text,omitempty"`
	Image            *mediaBody    `json:"image,omitempty"`
	Audio            *mediaBody    `json:"audio,omitempty"`
	Sticker          *mediaBody    `json:"sticker,omitempty"`
	Document         *mediaBody    `json:"document,omitempty"`
	Location         *locationBody `json:"location,omitempty"`
}

type textBody struct {
	Body string `json:"body"`
}

type mediaBody struct {
	ID      string `json:"id"`
	Caption string `json:"caption,omitempty"`
}

type locationBody struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name,omitempty"`
	Address   string  `json:"address,omitempty"`
}

// SendText sends one plain text message.
func (c *Client) SendText(ctx context.Context, to, body string) error {
	logrus.Infof("[WHATSAPP] sending text message to %s", to)
	return c.postMessage(ctx, sendEnvelope{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             &textBody{Body: body},
	})
}

// SendMediaByID re-sends provider-hosted media by reference id. Sticker and
// audio payloads never carry a caption; image and document do when caption is
// non-empty.
func (c *Client) SendMediaByID(ctx context.Context, to string, kind domainMessage.Kind, mediaID, caption string) error {
	envelope := sendEnvelope{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             string(kind),
	}

	switch kind {
	case domainMessage.KindSticker:
		envelope.Sticker = &mediaBody{ID: mediaID}
	case domainMessage.KindImage:
		envelope.Image = &mediaBody{ID: mediaID, Caption: caption}
	case domainMessage.KindAudio:
		envelope.Audio = &mediaBody{ID: mediaID}
	case domainMessage.KindDocument:
		envelope.Document = &mediaBody{ID: mediaID, Caption: caption}
	default:
		return fmt.Errorf("unsupported media kind: %s", kind)
	}

	logrus.Infof("[WHATSAPP] sending %s to %s (media id %s)", kind, to, mediaID)
	return c.postMessage(ctx, envelope)
}

// SendLocation re-sends literal coordinates with optional place name/address.
func (c *Client) SendLocation(ctx context.Context, to string, latitude, longitude float64, name, address string) error {
	logrus.Infof("[WHATSAPP] sending location to %s: %v, %v", to, latitude, longitude)
	return c.postMessage(ctx, sendEnvelope{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "location",
		Location: &locationBody{
			Latitude:  latitude,
			Longitude: longitude,
			Name:      name,
			Address:   address,
		},
	})
}

func (c *Client) postMessage(ctx context.Context, envelope sendEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal send payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Whatsapp.MessagesURL(), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build send request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Whatsapp.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	logrus.Debugf("[WHATSAPP] send status %d: %s", resp.StatusCode, string(respBody))

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("send failed with status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
