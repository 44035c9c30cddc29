package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatService struct {
	sessionKey string
	userInput  string
	answer     string
	err        error
}

func (f *fakeChatService) Respond(ctx context.Context, sessionKey string, userInput string) (string, error) {
	f.sessionKey = sessionKey
	f.userInput = userInput
	return f.answer, f.err
}

func postForm(t *testing.T, handler http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/get", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestGetReturnsTheAnswer(t *testing.T) {
	service := &fakeChatService{answer: "The camera is excellent."}
	handler := NewServer(service).Handler()

	rec := postForm(t, handler, url.Values{"msg": {"Tell me about iPhone 13 camera"}})

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Equal(t, "The camera is excellent.", string(body))
	assert.Equal(t, "Tell me about iPhone 13 camera", service.userInput)
}

func TestGetFallsBackToTheDefaultSession(t *testing.T) {
	service := &fakeChatService{answer: "ok"}
	handler := NewServer(service, WithDefaultSessionKey("shared")).Handler()

	postForm(t, handler, url.Values{"msg": {"hello"}})

	assert.Equal(t, "shared", service.sessionKey)
}

func TestGetForwardsTheSessionField(t *testing.T) {
	service := &fakeChatService{answer: "ok"}
	handler := NewServer(service).Handler()

	postForm(t, handler, url.Values{"msg": {"hello"}, "session_id": {"user-42"}})

	assert.Equal(t, "user-42", service.sessionKey)
}

func TestGetMapsPipelineFailuresToBadGateway(t *testing.T) {
	service := &fakeChatService{err: errors.New("model unavailable")}
	handler := NewServer(service).Handler()

	rec := postForm(t, handler, url.Values{"msg": {"hello"}})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestIndexServesTheChatPage(t *testing.T) {
	handler := NewServer(&fakeChatService{}).Handler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product Review Assistant")
}

func TestMetricsEndpointIsExposed(t *testing.T) {
	handler := NewServer(&fakeChatService{}).Handler()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}
