package media

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImageServer(t *testing.T, hits *atomic.Int32, release <-chan struct{}) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if release != nil {
			<-release
		}
		switch r.URL.Path {
		case "/missing.jpg":
			http.NotFound(w, r)
		default:
			w.Header().Set("Content-Type", "image/jpeg")
			_, _ = w.Write([]byte("jpeg:" + r.URL.Path))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func held(f *Fetcher) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

func TestFetcher_Get(t *testing.T) {
	var hits atomic.Int32
	srv := newImageServer(t, &hits, nil)
	f := New(WithHTTPClient(srv.Client()))
	defer f.Close()

	img, err := f.Get(context.Background(), srv.URL+"/a.jpg")

	require.NoError(t, err)
	assert.Equal(t, "jpeg:/a.jpg", string(img.Data))
	assert.Equal(t, "image/jpeg", img.ContentType)
	assert.Equal(t, 11, img.Size())

	_, err = f.Get(context.Background(), srv.URL+"/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load(), "held image should not be downloaded again")
}

func TestFetcher_Get_SharesInFlightDownload(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	srv := newImageServer(t, &hits, release)
	f := New(WithHTTPClient(srv.Client()))
	defer f.Close()

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.Get(context.Background(), srv.URL+"/b.jpg")
			assert.NoError(t, err)
		}()
	}
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load())
}

func TestFetcher_Get_ErrorNotKept(t *testing.T) {
	var hits atomic.Int32
	srv := newImageServer(t, &hits, nil)
	f := New(WithHTTPClient(srv.Client()))
	defer f.Close()

	_, err := f.Get(context.Background(), srv.URL+"/missing.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Equal(t, 0, held(f))

	_, err = f.Get(context.Background(), srv.URL+"/missing.jpg")
	require.Error(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestFetcher_Get_EmptyURL(t *testing.T) {
	f := New()
	defer f.Close()

	_, err := f.Get(context.Background(), "")
	require.Error(t, err)
}

func TestFetcher_Get_ContextCanceled(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	srv := newImageServer(t, &hits, release)
	defer close(release)
	f := New(WithHTTPClient(srv.Client()))
	defer f.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Get(ctx, srv.URL+"/c.jpg")
	require.ErrorIs(t, err, context.Canceled)
}

func TestFetcher_RetainKeepsOnlyCurrentAndNext(t *testing.T) {
	var hits atomic.Int32
	srv := newImageServer(t, &hits, nil)
	f := New(WithHTTPClient(srv.Client()))
	defer f.Close()

	a, b, c := srv.URL+"/a.jpg", srv.URL+"/b.jpg", srv.URL+"/c.jpg"
	for _, u := range []string{a, b, c} {
		_, err := f.Get(context.Background(), u)
		require.NoError(t, err)
	}
	require.Equal(t, 3, held(f))

	f.Retain(b, c)
	assert.Equal(t, 2, held(f))

	_, err := f.Get(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, int32(3), hits.Load(), "retained image should not be downloaded again")

	_, err = f.Get(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, int32(4), hits.Load(), "dropped image should be downloaded again")
}

func TestFetcher_Prefetch(t *testing.T) {
	var hits atomic.Int32
	srv := newImageServer(t, &hits, nil)
	f := New(WithHTTPClient(srv.Client()))
	defer f.Close()

	f.Prefetch(srv.URL + "/next.jpg")
	f.Prefetch(srv.URL + "/next.jpg")
	f.Prefetch("")

	img, err := f.Get(context.Background(), srv.URL+"/next.jpg")
	require.NoError(t, err)
	assert.Equal(t, "jpeg:/next.jpg", string(img.Data))
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetcher_RetainCancelsDroppedDownload(t *testing.T) {
	started := make(chan struct{})
	canceled := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/slow.jpg" {
			close(started)
			<-r.Context().Done()
			close(canceled)
			return
		}
		_, _ = w.Write([]byte("jpeg"))
	}))
	t.Cleanup(srv.Close)
	f := New(WithHTTPClient(srv.Client()))
	defer f.Close()

	slow := srv.URL + "/slow.jpg"
	f.Prefetch(slow)
	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("download never started")
	}

	f.Retain(srv.URL + "/a.jpg")

	select {
	case <-canceled:
	case <-time.After(5 * time.Second):
		t.Fatal("dropped download was not cancelled")
	}
	assert.Equal(t, 0, held(f))
}
