package scraper

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pmorel/cfp-radar/internal/cfp"
)

func TestParseDetail(t *testing.T) {
	doc := loadFixture(t, "detail_full.html")
	conf := parseDetail(doc, "http://www.wikicfp.com/cfp/servlet/event.showcfp?eventid=100001")

	assert.Equal(t, "International Conference on Quantum Computing", conf.Title)
	assert.Equal(t, "ICQC 2026", conf.Acronym)
	// Two rows match "when"; the later one wins
	assert.Equal(t, "Jun 1, 2026 - Jun 3, 2026", conf.When)
	assert.Equal(t, "Lyon, France", conf.Where)
	assert.Equal(t, "Jan 15, 2026", conf.Deadline)
	assert.Equal(t, "http://www.wikicfp.com/cfp/servlet/event.showcfp?eventid=100001", conf.SourceURL)

	assert.True(t, strings.HasPrefix(conf.Description, "Call for Papers\n"),
		"br tags should become newlines, got %q", conf.Description)
	assert.Contains(t, conf.Description, "stabilizer codes")
}

func TestParseDetailMissingFields(t *testing.T) {
	doc := loadFixture(t, "detail_missing.html")
	conf := parseDetail(doc, "http://www.wikicfp.com/cfp/servlet/event.showcfp?eventid=100009")

	assert.Equal(t, cfp.NotAvailable, conf.Title)
	assert.Equal(t, cfp.NotAvailable, conf.Acronym)
	assert.Equal(t, cfp.NotAvailable, conf.When)
	assert.Equal(t, "Online", conf.Where)
	assert.Equal(t, cfp.NotAvailable, conf.Deadline)
	assert.Equal(t, cfp.NotAvailable, conf.Description)
}

func TestParseDetailNeverLeavesFieldEmpty(t *testing.T) {
	for _, fixture := range []string{"detail_full.html", "detail_missing.html", "listing_no_total.html"} {
		doc := loadFixture(t, fixture)
		conf := parseDetail(doc, "http://example.com")
		assert.NotEmpty(t, conf.Title, fixture)
		assert.NotEmpty(t, conf.Acronym, fixture)
		assert.NotEmpty(t, conf.When, fixture)
		assert.NotEmpty(t, conf.Where, fixture)
		assert.NotEmpty(t, conf.Deadline, fixture)
		assert.NotEmpty(t, conf.Description, fixture)
	}
}

func TestFetchDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serveFixture(t, w, "detail_full.html")
	}))
	defer srv.Close()

	s := NewWithBaseURL(zap.NewNop(), srv.URL)
	conf, err := s.FetchDetail(srv.URL + "/cfp/servlet/event.showcfp?eventid=100001")
	require.NoError(t, err)
	assert.Equal(t, "ICQC 2026", conf.Acronym)
}

func TestFetchDetailHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	s := NewWithBaseURL(zap.NewNop(), srv.URL)
	_, err := s.FetchDetail(srv.URL + "/cfp/servlet/event.showcfp?eventid=100001")
	require.Error(t, err)
}
