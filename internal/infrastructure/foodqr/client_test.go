package foodqr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/allergenlens/backend/internal/domain"
	"github.com/allergenlens/backend/internal/infrastructure/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRegistry answers per query parameter and records which ones were used
type fakeRegistry struct {
	mu       sync.Mutex
	calls    []string
	byReport http.HandlerFunc
	byCode   http.HandlerFunc
}

func (f *fakeRegistry) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f.mu.Lock()
	switch {
	case q.Get("imrptNo") != "":
		f.calls = append(f.calls, "imrptNo")
	case q.Get("brcdNo") != "":
		f.calls = append(f.calls, "brcdNo")
	}
	f.mu.Unlock()

	if q.Get("imrptNo") != "" && f.byReport != nil {
		f.byReport(w, r)
		return
	}
	if q.Get("brcdNo") != "" && f.byCode != nil {
		f.byCode(w, r)
		return
	}
	w.Write([]byte(`{"response":{"body":{"items":[]}}}`))
}

func (f *fakeRegistry) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func respond(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

func newTestClient(t *testing.T, fake *fakeRegistry, timeout time.Duration) *Client {
	t.Helper()
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)
	return NewClient("access-key", server.URL, registry.NewClient(registry.Options{Timeout: timeout}))
}

func TestSearch_ReportNumberHit(t *testing.T) {
	fake := &fakeRegistry{
		byReport: func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, productInfoPath, r.URL.Path)
			q := r.URL.Query()
			assert.Equal(t, "access-key", q.Get("accessKey"))
			assert.Equal(t, "10", q.Get("numOfRows"))
			assert.Equal(t, "1", q.Get("pageNo"))
			assert.Equal(t, "json", q.Get("_type"))
			respond(`{"response":{"body":{"items":{"item":{"prdctNm":"초코파이","prvwCn":"<p>원재료명: 밀가루, <b>우유</b></p>"}}}}}`)(w, r)
		},
	}
	client := newTestClient(t, fake, time.Second)

	result := client.Search(context.Background(), "197202880024061")

	require.Equal(t, domain.SourceFound, result.Status)
	assert.Equal(t, "초코파이", result.Record.ProductName)
	assert.Equal(t, "원재료명: 밀가루, 우유", result.Record.RawMaterials)
	assert.Equal(t, domain.SearchMethodReportNumber, result.Record.SearchMethod)
	assert.Equal(t, []string{"imrptNo"}, fake.Calls())
}

func TestSearch_FallsBackToBarcode(t *testing.T) {
	fake := &fakeRegistry{
		byReport: respond(`{"response":{"body":{"items":[]}}}`),
		byCode:   respond(`{"response":{"body":{"items":{"item":{"prdctNm":"새우깡","prvwCn":"새우 8%"}}}}}`),
	}
	client := newTestClient(t, fake, time.Second)

	result := client.Search(context.Background(), "8801043014809")

	require.Equal(t, domain.SourceFound, result.Status)
	assert.Equal(t, "새우깡", result.Record.ProductName)
	assert.Equal(t, domain.SearchMethodBarcode, result.Record.SearchMethod)
	assert.Equal(t, "Food QR (e-Label) - barcode", result.Record.SourceLabel())
	assert.Equal(t, []string{"imrptNo", "brcdNo"}, fake.Calls())
}

func TestSearch_ListItems(t *testing.T) {
	fake := &fakeRegistry{
		byReport: respond(`{"response":{"body":{"items":[{"item":{"prdctNm":"첫번째"}},{"item":{"prdctNm":"두번째"}}]}}}`),
	}
	client := newTestClient(t, fake, time.Second)

	result := client.Search(context.Background(), "1")

	require.Equal(t, domain.SourceFound, result.Status)
	assert.Equal(t, "첫번째", result.Record.ProductName)
	assert.False(t, result.Record.HasIngredients())
}

func TestSearch_ErrorOnFirstAttemptStillTriesBarcode(t *testing.T) {
	fake := &fakeRegistry{
		byReport: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadGateway) },
		byCode:   respond(`{"response":{"body":{"items":[{"prdctNm":"맛동산"}]}}}`),
	}
	client := newTestClient(t, fake, time.Second)

	result := client.Search(context.Background(), "1")

	require.Equal(t, domain.SourceFound, result.Status)
	assert.Equal(t, "맛동산", result.Record.ProductName)
	assert.Equal(t, domain.SearchMethodBarcode, result.Record.SearchMethod)
}

func TestSearch_NothingFound(t *testing.T) {
	fake := &fakeRegistry{}
	client := newTestClient(t, fake, time.Second)

	result := client.Search(context.Background(), "1")

	assert.Equal(t, domain.SourceNotFound, result.Status)
	assert.Equal(t, []string{"imrptNo", "brcdNo"}, fake.Calls())
}

func TestSearch_FailedWhenAttemptsError(t *testing.T) {
	fake := &fakeRegistry{
		byReport: respond(`not json`),
		byCode:   respond(`{"response":{"body":{"items":""}}}`),
	}
	client := newTestClient(t, fake, time.Second)

	result := client.Search(context.Background(), "1")

	assert.Equal(t, domain.SourceFailed, result.Status)
	assert.ErrorIs(t, result.Err, domain.ErrUpstreamFailure)
}

func TestSearch_TimeoutStopsSearch(t *testing.T) {
	release := make(chan struct{})
	fake := &fakeRegistry{
		byReport: func(w http.ResponseWriter, r *http.Request) { <-release },
		byCode:   respond(`{"response":{"body":{"items":[{"prdctNm":"맛동산"}]}}}`),
	}
	client := newTestClient(t, fake, 50*time.Millisecond)
	t.Cleanup(func() { close(release) })

	result := client.Search(context.Background(), "1")

	assert.Equal(t, domain.SourceTimedOut, result.Status)
	assert.ErrorIs(t, result.Err, domain.ErrUpstreamTimeout)
	assert.Equal(t, []string{"imrptNo"}, fake.Calls())
}
