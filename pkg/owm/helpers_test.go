package owm

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeService records every request and answers with a canned response.
type fakeService struct {
	mu       sync.Mutex
	requests []*http.Request
	status   int
	body     string
	server   *httptest.Server
}

func newFakeService(t *testing.T) *fakeService {
	t.Helper()
	f := &fakeService{status: http.StatusOK, body: "{}"}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Clone(r.Context()))
		status, body := f.status, f.body
		f.mu.Unlock()

		if body != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeService) respond(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
	f.body = body
}

func (f *fakeService) last(t *testing.T) *http.Request {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests, "no request reached the service")
	return f.requests[len(f.requests)-1]
}

func (f *fakeService) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func newTestClient(t *testing.T, svc *fakeService, opts ...Option) *Client {
	t.Helper()
	base := []Option{WithLogger(zap.NewNop().Sugar())}
	for _, area := range allAreas {
		base = append(base, WithBaseURL(area, svc.server.URL))
	}
	c, err := New("test-key", append(base, opts...)...)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}
