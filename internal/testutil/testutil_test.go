package testutil

import (
	"net/http"
	"testing"
)

func TestServe(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(r.Method + " " + r.URL.RawQuery))
	})

	w := Serve(h, http.MethodPost, "/x?a=1")

	AssertStatusCode(t, w.Code, http.StatusTeapot)
	AssertContentType(t, w, "text/plain")
	if got := w.Body.String(); got != "POST a=1" {
		t.Errorf("body = %q", got)
	}
}
