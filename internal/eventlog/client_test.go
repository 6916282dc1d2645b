package eventlog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	method        string
	contentType   string
	authorization string
	event         Event
}

func newCollector(t *testing.T, status int, body string) (*httptest.Server, <-chan capturedRequest) {
	t.Helper()
	captured := make(chan capturedRequest, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var e Event
		require.NoError(t, json.NewDecoder(r.Body).Decode(&e))
		captured <- capturedRequest{
			method:        r.Method,
			contentType:   r.Header.Get("Content-Type"),
			authorization: r.Header.Get("Authorization"),
			event:         e,
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func TestClient_Log_PostsEventWithBearerToken(t *testing.T) {
	server, captured := newCollector(t, http.StatusOK, `{"logID":"42","message":"log created"}`)
	client := NewClient(server.URL, "secret-token", time.Second)

	result, err := client.Log(context.Background(), "backend", "INFO", "service", "Short URL created")

	require.NoError(t, err)
	assert.True(t, result.OK())
	assert.Equal(t, "42", result.Response["logID"])

	req := <-captured
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "application/json", req.contentType)
	assert.Equal(t, "Bearer secret-token", req.authorization)
	assert.Equal(t, Event{Stack: "backend", Level: "info", Package: "service", Message: "Short URL created"}, req.event)
}

func TestClient_Log_NoToken_OmitsAuthorization(t *testing.T) {
	server, captured := newCollector(t, http.StatusCreated, `{}`)
	client := NewClient(server.URL, "", time.Second)

	result, err := client.Log(context.Background(), "backend", "error", "handler", "boom")

	require.NoError(t, err)
	assert.True(t, result.OK())
	assert.Empty(t, (<-captured).authorization)
}

func TestClient_Log_NonJSONAcknowledgement_IsOK(t *testing.T) {
	server, _ := newCollector(t, http.StatusOK, "accepted")
	client := NewClient(server.URL, "", time.Second)

	result, err := client.Log(context.Background(), "backend", "info", "service", "hello")

	require.NoError(t, err)
	assert.True(t, result.OK())
	assert.Nil(t, result.Response)
}

func TestClient_Log_ErrorStatus_ReturnsResultError(t *testing.T) {
	server, _ := newCollector(t, http.StatusUnauthorized, `{"message":"bad token"}`)
	client := NewClient(server.URL, "wrong", time.Second)

	result, err := client.Log(context.Background(), "backend", "info", "service", "hello")

	require.NoError(t, err)
	assert.False(t, result.OK())
	assert.Equal(t, "logging api returned status 401", result.Error)
}

func TestClient_Log_Unreachable_ReturnsResultError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()
	client := NewClient(endpoint, "", time.Second)

	result, err := client.Log(context.Background(), "backend", "info", "service", "hello")

	require.NoError(t, err)
	assert.False(t, result.OK())
	assert.NotEmpty(t, result.Error)
}

func TestClient_Log_InvalidEvent_DoesNotSend(t *testing.T) {
	server, captured := newCollector(t, http.StatusOK, `{}`)
	client := NewClient(server.URL, "", time.Second)

	_, err := client.Log(context.Background(), "backend", "verbose", "service", "hello")

	assert.ErrorIs(t, err, ErrInvalidLogEvent)
	assert.Empty(t, captured)
}

func TestNopSink_Send_AlwaysOK(t *testing.T) {
	assert.True(t, NopSink{}.Send(context.Background(), Event{}).OK())
}
