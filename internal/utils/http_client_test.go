package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Configuration(t *testing.T) {
	client := NewHTTPClient("http://localhost:8080", 5*time.Second)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
	assert.Equal(t, "http://localhost:8080", client.BaseURL)
	assert.Equal(t, 5*time.Second, client.GetClient().Timeout)
	assert.NotNil(t, client.GetClient().Jar)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", 0)
	client2 := NewHTTPClient("http://b", 0)

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_KeepsCookies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/set" {
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "token", Path: "/"})
			return
		}
		if c, err := r.Cookie("session"); err == nil {
			w.Write([]byte(c.Value))
		}
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, time.Second)

	_, err := client.R().Get("/set")
	require.NoError(t, err)

	resp, err := client.R().Get("/echo")
	require.NoError(t, err)
	assert.Equal(t, "token", resp.String())
}
