package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFetchPage_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, userAgent, r.Header.Get("User-Agent"))
		require.Equal(t, acceptLanguage, r.Header.Get("Accept-Language"))
		w.Write([]byte(`<html><body><h1>Core Builds</h1></body></html>`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{})
	doc, err := client.FetchPage(context.Background(), server.URL)
	require.NoError(t, err)
	require.NotNil(t, doc)
	require.Equal(t, "Core Builds", Text(doc.Find("h1")))
}

func TestFetchPage_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{})
	doc, err := client.FetchPage(context.Background(), server.URL)
	require.Nil(t, doc)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFetchPage_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{})
	doc, err := client.FetchPage(context.Background(), server.URL)
	require.Nil(t, doc)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound, "a 500 is a transfer failure, not a missing champion")
}

func TestFetchPage_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{PageTimeout: 50 * time.Millisecond})
	doc, err := client.FetchPage(context.Background(), server.URL)
	require.Nil(t, doc)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestFetchPage_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(ClientOptions{})
	doc, err := client.FetchPage(context.Background(), server.URL)
	require.Nil(t, doc)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestHasBuildMarkers(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		expected bool
	}{
		{"core builds marker", `<html><body><h2>Core Builds</h2></body></html>`, true},
		{"starter items marker", `<html><body><span>Starter Items</span></body></html>`, true},
		{"no markers", `<html><body><h1>Welcome</h1></body></html>`, false},
		{"empty page", `<html><body></body></html>`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseDoc(t, tt.page)
			require.Equal(t, tt.expected, HasBuildMarkers(doc))
		})
	}
}
