package scrape

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aramlens/aram-builds/internal/model"
)

// buildServer serves a minimal but complete build page at the champion
// build path, with item icons served from the same host.
func buildServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	page := fmt.Sprintf(`<html><body>
	<table>
	  <thead><tr><th>Core Builds</th><th>Pick Rate</th><th>Win Rate</th></tr></thead>
	  <tbody><tr>
	    <td><div class="relative"><img src="%s/img/shoes.png" alt="Sorcerer's Shoes"><div class="absolute">2</div></div></td>
	    <td><strong>24.5%%</strong><span>1,234</span></td>
	    <td><strong>55.2%%</strong></td>
	  </tr></tbody>
	</table>
	<table>
	  <thead><tr><th>Starter Items</th><th>Pick Rate</th><th>Win Rate</th></tr></thead>
	  <tbody><tr>
	    <td><img src="%s/img/broken.png" alt="Doran's Ring"></td>
	    <td><strong>60.1%%</strong><span>9,876</span></td>
	    <td><strong>51.0%%</strong></td>
	  </tr></tbody>
	</table>
	</body></html>`, server.URL, server.URL)

	mux.HandleFunc("/lol/modes/aram/velkoz/build", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	})
	mux.HandleFunc("/img/shoes.png", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("shoes-bytes"))
	})
	mux.HandleFunc("/img/broken.png", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	return server
}

// trackService wires a service to a status channel. Status values are
// snapshotted inside the callback because the callback runs synchronously
// on the pipeline goroutine.
func trackService(baseURL string, client *Client) (*Service, chan model.FetchStatus) {
	svc := NewService(baseURL, client)
	updates := make(chan model.FetchStatus, 16)
	svc.SetUpdateCallback(func(task *model.FetchTask) {
		updates <- task.Status
	})
	return svc, updates
}

func waitForFinished(t *testing.T, updates <-chan model.FetchStatus) model.FetchStatus {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case status := <-updates:
			if status.IsFinished() {
				return status
			}
		case <-deadline:
			t.Fatal("timed out waiting for fetch to finish")
		}
	}
}

func TestService_FetchCompletes(t *testing.T) {
	server := buildServer(t)
	svc, updates := trackService(server.URL, NewClient(ClientOptions{}))

	task, err := svc.Fetch("Vel'Koz")
	require.NoError(t, err)
	require.Equal(t, "velkoz", task.Slug)

	require.Equal(t, model.FetchStatusCompleted, waitForFinished(t, updates))
	require.NotNil(t, task.Results)
	require.False(t, task.FinishedAt.IsZero())

	core := task.Results.Rows(model.CategoryCoreBuilds)
	require.Len(t, core, 1)
	require.Equal(t, "55.2%", core[0].WinRate)
	require.Len(t, core[0].Items, 1)
	require.Equal(t, 2, core[0].Items[0].Count)
	require.Equal(t, []byte("shoes-bytes"), core[0].Items[0].ImageData)

	// The broken icon is absorbed: the item is present without bytes.
	starter := task.Results.Rows(model.CategoryStarterItems)
	require.Len(t, starter, 1)
	require.Nil(t, starter[0].Items[0].ImageData)
	require.False(t, starter[0].Items[0].HasImage())

	// Categories absent from the page stay empty while others populate.
	require.Empty(t, task.Results.Rows(model.CategoryBoots))
	require.Empty(t, task.Results.Rows(model.CategorySkills))
}

func TestService_UnknownChampionIsNotFound(t *testing.T) {
	server := buildServer(t)
	svc, updates := trackService(server.URL, NewClient(ClientOptions{}))

	task, err := svc.Fetch("Nonexistent")
	require.NoError(t, err)

	require.Equal(t, model.FetchStatusNotFound, waitForFinished(t, updates))
	require.Nil(t, task.Results)
}

func TestService_PageWithoutMarkersIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><h1>Welcome</h1></body></html>`))
	}))
	defer server.Close()

	svc, updates := trackService(server.URL, NewClient(ClientOptions{}))
	_, err := svc.Fetch("Vel'Koz")
	require.NoError(t, err)

	require.Equal(t, model.FetchStatusNotFound, waitForFinished(t, updates))
}

func TestService_ConnectionFailureIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	svc, updates := trackService(server.URL, NewClient(ClientOptions{}))
	task, err := svc.Fetch("Vel'Koz")
	require.NoError(t, err)

	require.Equal(t, model.FetchStatusError, waitForFinished(t, updates))
	require.NotEmpty(t, task.LastError)
}

func TestService_TimeoutIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{PageTimeout: 50 * time.Millisecond})
	svc, updates := trackService(server.URL, client)
	_, err := svc.Fetch("Vel'Koz")
	require.NoError(t, err)

	require.Equal(t, model.FetchStatusError, waitForFinished(t, updates))
}

func TestService_RejectsOverlappingFetch(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write([]byte(`<html><body>Core Builds</body></html>`))
	}))
	defer server.Close()

	svc, updates := trackService(server.URL, NewClient(ClientOptions{}))
	_, err := svc.Fetch("Vel'Koz")
	require.NoError(t, err)

	_, err = svc.Fetch("Ahri")
	require.Error(t, err, "a second fetch must be rejected while one is in flight")

	close(release)
	waitForFinished(t, updates)
}

func TestService_RejectsUnusableName(t *testing.T) {
	svc := NewService("https://example.invalid", NewClient(ClientOptions{}))

	_, err := svc.Fetch("123!?")
	require.Error(t, err)

	_, err = svc.Fetch("")
	require.Error(t, err)
}
