package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/dateview/internal/config"
)

// fixedClock pins "now" for the /when endpoint.
type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func newTestServer() *FeedServer {
	return NewFeedServer("0", fixedClock{t: testNow}, config.DefaultMask)
}

func getResult(t *testing.T, srv *FeedServer, target string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		return w.Code, ""
	}
	assert.Equal(t, config.MimeJSON, w.Header().Get(config.HeaderContentType))

	var body result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body.Result
}

func TestHandleFormat(t *testing.T) {
	srv := newTestServer()
	at := url.QueryEscape("2017-01-02T03:04:05")

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"default mask", "/format?at=" + at, "2017 January 02"},
		{"custom mask", "/format?at=" + at + "&mask=" + url.QueryEscape("y/m/d"), "17/Jan/2"},
		{"time mask", "/format?at=" + at + "&mask=" + url.QueryEscape("H:I:S"), "03:04:05"},
		{"ordinal", "/format?at=" + at + "&mask=" + url.QueryEscape("M #, Y"), "January 2nd, 2017"},
		{"explicit empty mask", "/format?at=" + at + "&mask=", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, got := getResult(t, srv, tt.target)
			assert.Equal(t, http.StatusOK, code)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandleFormat_DefaultsToNow(t *testing.T) {
	srv := NewFeedServer("0", fixedClock{t: testNow}, "Y")
	code, got := getResult(t, srv, "/format")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "2025", got)
}

func TestHandleWhen(t *testing.T) {
	srv := newTestServer()

	code, got := getResult(t, srv, "/when?at="+url.QueryEscape(testNow.Add(30*24*time.Hour).Format(time.RFC3339)))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "30 days from now", got)

	code, got = getResult(t, srv, "/when")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "today", got)
}

func TestHandleLookups_BadInstant(t *testing.T) {
	srv := newTestServer()

	for _, target := range []string{"/format?at=garbage", "/when?at=garbage"} {
		t.Run(target, func(t *testing.T) {
			code, _ := getResult(t, srv, target)
			assert.Equal(t, http.StatusBadRequest, code)
		})
	}
}

func TestHandleLookups_MethodNotAllowed(t *testing.T) {
	srv := newTestServer()

	for _, target := range []string{"/format", "/when"} {
		req := httptest.NewRequest(http.MethodPost, target, nil)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Equal(t, config.AllowedMethods, w.Header().Get(config.HeaderAllow))
	}
}
