package whatsapp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainMessage "github.com/wachat/wachat-bridge/domains/message"
)

// captureServer records every envelope posted to the messages endpoint.
func captureServer(t *testing.T, captured *[]map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/987/messages", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var envelope map[string]any
		require.NoError(t, json.Unmarshal(raw, &envelope))
		*captured = append(*captured, envelope)

		w.Write([]byte(`{"messages": [{"id": "wamid.out"}]}`))
	}))
}

func TestSendText(t *testing.T) {
	var captured []map[string]any
	srv := captureServer(t, &captured)
	defer srv.Close()

	err := testClient(srv.URL).SendText(context.Background(), "5215511111111", "Hola desde el bot")

	require.NoError(t, err)
	require.Len(t, captured, 1)
	envelope := captured[0]
	assert.Equal(t, "whatsapp", envelope["messaging_product"])
	assert.Equal(t, "5215511111111", envelope["to"])
	assert.Equal(t, "text", envelope["type"])
	assert.Equal(t, map[string]any{"body": "Hola desde el bot"}, envelope["text"])
}

func TestSendMediaByID_ImageCarriesCaption(t *testing.T) {
	var captured []map[string]any
	srv := captureServer(t, &captured)
	defer srv.Close()

	err := testClient(srv.URL).SendMediaByID(context.Background(), "521", domainMessage.KindImage, "media-1", "una respuesta")

	require.NoError(t, err)
	require.Len(t, captured, 1)
	assert.Equal(t, "image", captured[0]["type"])
	assert.Equal(t, map[string]any{"id": "media-1", "caption": "una respuesta"}, captured[0]["image"])
}

func TestSendMediaByID_StickerHasNoCaptionField(t *testing.T) {
	var captured []map[string]any
	srv := captureServer(t, &captured)
	defer srv.Close()

	err := testClient(srv.URL).SendMediaByID(context.Background(), "521", domainMessage.KindSticker, "media-2", "ignorada")

	require.NoError(t, err)
	require.Len(t, captured, 1)
	assert.Equal(t, "sticker", captured[0]["type"])
	// el caption nunca viaja en stickers
	assert.Equal(t, map[string]any{"id": "media-2"}, captured[0]["sticker"])
}

func TestSendMediaByID_UnsupportedKind(t *testing.T) {
	var captured []map[string]any
	srv := captureServer(t, &captured)
	defer srv.Close()

	err := testClient(srv.URL).SendMediaByID(context.Background(), "521", domainMessage.KindLocation, "x", "")

	assert.Error(t, err)
	assert.Empty(t, captured)
}

func TestSendLocation(t *testing.T) {
	var captured []map[string]any
	srv := captureServer(t, &captured)
	defer srv.Close()

	err := testClient(srv.URL).SendLocation(context.Background(), "521", 19.4326, -99.1332, "CDMX", "Centro")

	require.NoError(t, err)
	require.Len(t, captured, 1)
	loc, ok := captured[0]["location"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 19.4326, loc["latitude"])
	assert.Equal(t, -99.1332, loc["longitude"])
	assert.Equal(t, "CDMX", loc["name"])
	assert.Equal(t, "Centro", loc["address"])
}

func TestPostMessage_UpstreamErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "Invalid OAuth access token"}}`))
	}))
	defer srv.Close()

	err := testClient(srv.URL).SendText(context.Background(), "521", "hola")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
