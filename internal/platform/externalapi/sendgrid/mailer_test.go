package sendgrid

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailer_Send(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody sendRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &gotBody)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	m := NewMailer(Config{
		APIKey:  "sg-test-key",
		BaseURL: srv.URL,
		Timeout: time.Second,
	}, srv.Client(), nil)

	err := m.Send(context.Background(), "mike@example.com", "noreply@tomthefrog.com",
		"Hello from a customer", "<p>I want a shirt</p>")

	require.NoError(t, err)
	assert.Equal(t, "/v3/mail/send", gotPath)
	assert.Equal(t, "Bearer sg-test-key", gotAuth)
	require.Len(t, gotBody.Personalizations, 1)
	require.Len(t, gotBody.Personalizations[0].To, 1)
	assert.Equal(t, "mike@example.com", gotBody.Personalizations[0].To[0].Email)
	assert.Equal(t, "noreply@tomthefrog.com", gotBody.From.Email)
	assert.Equal(t, "Hello from a customer", gotBody.Subject)
	require.Len(t, gotBody.Content, 1)
	assert.Equal(t, "text/html", gotBody.Content[0].Type)
	assert.Equal(t, "<p>I want a shirt</p>", gotBody.Content[0].Value)
}

func TestMailer_Send_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	m := NewMailer(Config{APIKey: "bad-key", BaseURL: srv.URL}, srv.Client(), nil)

	err := m.Send(context.Background(), "mike@example.com", "noreply@tomthefrog.com", "subject", "body")

	assert.ErrorContains(t, err, "sendgrid http 401")
}

func TestMailer_Send_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed up front so the request fails

	m := NewMailer(Config{APIKey: "key", BaseURL: srv.URL}, http.DefaultClient, nil)

	err := m.Send(context.Background(), "mike@example.com", "noreply@tomthefrog.com", "subject", "body")

	assert.Error(t, err)
}
