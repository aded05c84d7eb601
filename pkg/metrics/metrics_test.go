package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordCatalogLoad(t *testing.T) {
	RecordCatalogLoad(12, 30)

	if got := testutil.ToFloat64(CatalogMoviesLoaded); got != 12 {
		t.Fatalf("expected 12 movies got %v", got)
	}
	if got := testutil.ToFloat64(CatalogReviewsLoaded); got != 30 {
		t.Fatalf("expected 30 reviews got %v", got)
	}
}

func TestRecordLoadSkipped(t *testing.T) {
	before := testutil.ToFloat64(CatalogLoadSkipped.WithLabelValues("movies"))
	RecordLoadSkipped("movies")
	RecordLoadSkipped("movies")

	if got := testutil.ToFloat64(CatalogLoadSkipped.WithLabelValues("movies")); got != before+2 {
		t.Fatalf("expected %v skipped got %v", before+2, got)
	}
}

func TestRecordSearch(t *testing.T) {
	before := testutil.ToFloat64(SearchRequests.WithLabelValues("name"))
	RecordSearch("name", 3)

	if got := testutil.ToFloat64(SearchRequests.WithLabelValues("name")); got != before+1 {
		t.Fatalf("expected %v searches got %v", before+1, got)
	}
}

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/movies", "200"))
	RecordHTTPRequest("GET", "/api/movies", 200, 5*time.Millisecond)

	if got := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/movies", "200")); got != before+1 {
		t.Fatalf("expected %v requests got %v", before+1, got)
	}
}
