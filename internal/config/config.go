package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "dateview"
	LocalhostBindAddr = "127.0.0.1"
	ConfigFileName    = "config.yaml"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagDebug  = "debug"
	FlagConfig = "config"
	FlagAt     = "at"
	FlagEpoch  = "epoch"
	FlagParts  = "parts"
	FlagOutput = "output"
	FlagPort   = "port"

	FlagDescDebug  = "Enable debug logging"
	FlagDescConfig = "Path to the YAML configuration file"
	FlagDescAt     = "Date to use, in any supported layout (default: now)"
	FlagDescEpoch  = "Date to use, as milliseconds since the Unix epoch"
	FlagDescParts  = "Date to use, as year,monthIndex[,day[,hour[,min[,sec[,ms]]]]]"
	FlagDescOutput = "Output format: text, json, yaml"
	FlagDescPort   = "HTTP port for the feed server (overrides config)"

	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"

	MsgVersionOutput = "%s version %s (commit %s, built %s, %s/%s)\n"
)

// -----------------------------------------------------------------------------
// Formatting & Relative Time
// -----------------------------------------------------------------------------

const (
	// DefaultMask is used when no mask is supplied.
	DefaultMask = "Y M D"

	// PadWidth is the width of zero-padded numeric tokens.
	PadWidth = 2

	UnitYears   = "years"
	UnitMonths  = "months"
	UnitDays    = "days"
	UnitHours   = "hours"
	UnitMinutes = "minutes"
	UnitSeconds = "seconds"

	SuffixFuture = "from now"
	SuffixPast   = "ago"
	PhraseToday  = "today"

	// Fixed approximations used for bucketing, not real calendar lengths.
	DaysPerYear  = 365
	DaysPerMonth = 30

	MillisPerSecond = 1000
	MillisPerDay    = 24 * 60 * 60 * MillisPerSecond
	SecondsPerHour  = 3600
	SecondsPerMin   = 60
	HoursPerDay     = 24
	MinutesPerHour  = 60

	// MaxEpochMillis mirrors the ±100,000,000 day range of an ECMAScript date.
	MaxEpochMillis = 8_640_000_000_000_000
)

// ParseLayouts lists the accepted layouts for textual dates, tried in order.
// Layouts without a zone are interpreted in the local zone.
var ParseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"1/2/2006",
	"1/2/2006 15:04:05",
	"January 2, 2006",
	"January 2, 2006 15:04:05",
	"Jan 2, 2006",
	"Jan 2, 2006 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
}

// -----------------------------------------------------------------------------
// Standards: iCalendar
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//dateview//Engine//EN"
	ICalCalName = "Milestones"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDescription = "DESCRIPTION"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	DefaultICalRefresh = 15 * time.Minute

	// FormatSummary expects the milestone name and the formatted date.
	FormatSummary = "%s: %s"
	// FormatUIDInput expects the milestone name and its RFC 3339 instant.
	FormatUIDInput = "%s|%s"
	FormatUID      = "%s@" + AppName

	// StubVCalendar is the minimal valid iCalendar object used when no milestones exist.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Defaults
// -----------------------------------------------------------------------------

const (
	DefaultPort    = "18081"
	DefaultRefresh = "*/15 * * * *"
	MinPort        = 1
	MaxPort        = 65535
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "10"
	AllowedMethods     = "GET, HEAD"
	RouteRoot          = "/"
	RouteFormat        = "/format"
	RouteWhen          = "/when"
	QueryAt            = "at"
	QueryMask          = "mask"
	AddrSeparator      = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeJSON            = "application/json"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrInvalidInstant  = "invalid instant"
	ErrDateParse       = "unable to parse date"
	ErrEpochRange      = "epoch milliseconds out of range"
	ErrComponentCount  = "expected between 2 and 7 date components"
	ErrComponentValue  = "date component is not an integer"
	ErrDateSourceCount = "at most one of --at, --epoch, --parts may be set"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrServerStartup   = "server startup failed"
	ErrServerShutdown  = "server shutdown failed"
	ErrPortRequired    = "server port is required"
	ErrPortNumber      = "server port must be a number"
	ErrPortRange       = "server port must be between 1 and 65535"
	ErrRefreshSpec     = "invalid refresh schedule"
	ErrConfigRead      = "failed to read config file"
	ErrConfigParse     = "failed to parse config file"
	ErrMilestone       = "invalid milestone"
	ErrMilestoneName   = "milestone name is empty"
	ErrUnknownOutput   = "unknown output format"
	ErrWriteResp       = "failed to write response body"
	ErrRender          = "failed to render calendar"
	ErrAppFailed       = "application failed"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Calendar initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
	HTTPMsgBadInstant   = "Bad Request: invalid 'at' parameter"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting  = "Starting application"
	MsgAppStop      = "Application stopped"
	MsgConfigLoaded = "Configuration loaded"
	MsgConfigAbsent = "Config file not found, using defaults"
	MsgRenderDone   = "Calendar render finished"
	MsgServerListen = "HTTP server listening"
	MsgServerStop   = "Shutting down HTTP server..."
	MsgCacheUpdated = "Calendar cache updated"
	MsgSchedStart   = "Refresh scheduler started"
	MsgSchedStop    = "Refresh scheduler stopped"
	MsgRefreshFail  = "Scheduled refresh failed"
	MsgDescribed    = "Relative time computed"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyPath      = "path"
	LogKeyPort      = "port"
	LogKeyRefresh   = "refresh"
	LogKeyCount     = "count"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyDuration  = "duration_ms"
	LogKeyDeltaMs   = "delta_ms"
	LogKeyResult    = "result"

	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompEngine = "engine"
	CompServer = "server"
	CompSched  = "scheduler"
	CompConfig = "config"
	CompMain   = "main"
)
