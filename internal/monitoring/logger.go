package monitoring

import (
	"log"
	"net/http"
	"time"

	"github.com/banshee-data/tvmount/internal/timeutil"
)

// Logf is the package-level diagnostic logger. It defaults to log.Printf but may
// be replaced by SetLogger. Tests or production code can redirect or mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

var clock timeutil.Clock = timeutil.RealClock{}

// SetClock replaces the clock used to time requests. Passing nil restores
// the wall clock.
func SetClock(c timeutil.Clock) {
	if c == nil {
		c = timeutil.RealClock{}
	}
	clock = c
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// LogRequests wraps next so every request is logged through Logf with its
// status, response size and duration.
func LogRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := clock.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		Logf("%s %s?%s -> %d (%d bytes, %s)", r.Method, r.URL.Path, r.URL.RawQuery, rec.status, rec.bytes, clock.Since(start).Round(time.Microsecond))
	})
}
