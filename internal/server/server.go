package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/tartampluch/dateview/internal/config"
	"github.com/tartampluch/dateview/internal/engine"
)

// cacheItem stores the rendered calendar and its metadata for HTTP caching.
type cacheItem struct {
	data         []byte
	etag         string
	lastModified string // RFC1123 format required by HTTP headers
}

// FeedServer serves the milestone calendar and on-demand format/when lookups.
type FeedServer struct {
	// cache uses atomic.Pointer for lock-free reads.
	// The feed is read on every request but only replaced by the refresh
	// scheduler, so readers never contend with each other on the hot path.
	cache atomic.Pointer[cacheItem]
	Port  string
	Clock engine.Clock
	Mask  string // default mask for /format
}

// result is the JSON body of /format and /when.
type result struct {
	Result string `json:"result"`
}

// NewFeedServer creates a new instance of the server.
func NewFeedServer(port string, clock engine.Clock, mask string) *FeedServer {
	return &FeedServer{
		Port:  port,
		Clock: clock,
		Mask:  mask,
	}
}

// Handler returns the routes served by the FeedServer.
func (s *FeedServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteRoot, s.handleCalendarRequest)
	mux.HandleFunc(config.RouteFormat, s.handleFormat)
	mux.HandleFunc(config.RouteWhen, s.handleWhen)
	return mux
}

// Start initializes the HTTP server and blocks until the context is cancelled.
func (s *FeedServer) Start(ctx context.Context) error {
	if s.Port == "" {
		return errors.New(config.ErrPortRequired)
	}

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      s.Handler(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// Update atomically replaces the served calendar.
func (s *FeedServer) Update(data []byte) {
	// Centralized format string keeps the ETag consistent across renders.
	hash := sha256.Sum256(data)
	etag := fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:]))

	item := &cacheItem{
		data:         data,
		etag:         etag,
		lastModified: time.Now().UTC().Format(http.TimeFormat),
	}
	// Any concurrent reader sees either the old or the new complete item,
	// never a partial state.
	s.cache.Store(item)

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeySizeBytes, len(data),
		config.LogKeyETag, etag,
	)
}

// handleCalendarRequest serves the ICS content with HTTP caching support.
func (s *FeedServer) handleCalendarRequest(w http.ResponseWriter, r *http.Request) {
	// 1. Method Validation
	if !allowMethod(w, r) {
		return
	}

	// 2. Load Data (Atomic / Lock-Free)
	item := s.cache.Load()

	// 3. Readiness Check
	if item == nil {
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return
	}

	// 4. Set Response Headers
	w.Header().Set(config.HeaderContentType, config.MimeTextCalendar)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
	w.Header().Set(config.HeaderETag, item.etag)
	w.Header().Set(config.HeaderLastModified, item.lastModified)

	// 5. Check Conditional Headers (Browser Caching)
	if match := r.Header.Get(config.HeaderIfNoneMatch); match == item.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if since := r.Header.Get(config.HeaderIfModifiedSince); since != "" {
		if clientTime, err := time.Parse(http.TimeFormat, since); err == nil {
			if serverTime, err := time.Parse(http.TimeFormat, item.lastModified); err == nil {
				// Content not newer than the client copy: 304.
				if !serverTime.After(clientTime) {
					w.WriteHeader(http.StatusNotModified)
					return
				}
			}
		}
	}

	// 6. Serve Content (HEAD stops at the headers)
	if r.Method == http.MethodGet {
		if _, err := io.Copy(w, bytes.NewReader(item.data)); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyError, err,
			)
		}
	}
}

// handleFormat renders ?at= with ?mask=, falling back to the server mask.
// A present but empty mask yields an empty result.
func (s *FeedServer) handleFormat(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r) {
		return
	}
	at, ok := instantFromQuery(w, r, engine.NewInstant(s.Clock))
	if !ok {
		return
	}

	mask := s.Mask
	if values, present := r.URL.Query()[config.QueryMask]; present {
		mask = values[0]
	}
	writeResult(w, at.Format(mask))
}

// handleWhen describes ?at= relative to the server clock, read once per request.
func (s *FeedServer) handleWhen(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r) {
		return
	}
	now := engine.NewInstant(s.Clock)
	at, ok := instantFromQuery(w, r, now)
	if !ok {
		return
	}
	writeResult(w, at.Describe(now))
}

// instantFromQuery reads ?at=, defaulting to now.
func instantFromQuery(w http.ResponseWriter, r *http.Request, now engine.Instant) (engine.Instant, bool) {
	raw := r.URL.Query().Get(config.QueryAt)
	if raw == "" {
		return now, true
	}
	at, err := engine.Parse(raw)
	if err != nil {
		http.Error(w, config.HTTPMsgBadInstant, http.StatusBadRequest)
		return engine.Instant{}, false
	}
	return at, true
}

func allowMethod(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func writeResult(w http.ResponseWriter, value string) {
	w.Header().Set(config.HeaderContentType, config.MimeJSON)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	if err := json.NewEncoder(w).Encode(result{Result: value}); err != nil {
		slog.Error(config.ErrWriteResp,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
	}
}
