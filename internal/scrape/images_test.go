package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFetchImageBytes_Success(t *testing.T) {
	payload := []byte("fake-png-bytes")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{})
	data := client.FetchImageBytes(context.Background(), server.URL+"/icon.png")
	require.Equal(t, payload, data)
}

func TestFetchImageBytes_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{})
	require.Nil(t, client.FetchImageBytes(context.Background(), server.URL+"/missing.png"))
}

func TestFetchImageBytes_ConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(ClientOptions{})
	require.Nil(t, client.FetchImageBytes(context.Background(), server.URL+"/icon.png"))
}

func TestFetchImageBytes_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{ImageTimeout: 50 * time.Millisecond})
	require.Nil(t, client.FetchImageBytes(context.Background(), server.URL+"/icon.png"))
}
