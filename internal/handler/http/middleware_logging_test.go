package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-car-rental/internal/logger"
)

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handler          http.HandlerFunc
		checkLogContains []string
	}{
		{
			name:   "GET 200",
			method: http.MethodGet,
			path:   "/cars",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("OK"))
			},
			checkLogContains: []string{`"method":"GET"`, `"uri":"/cars"`, `"status":200`, `"size":2`, `"duration":`, `"level":"info"`},
		},
		{
			name:   "POST 402",
			method: http.MethodPost,
			path:   "/orders",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusPaymentRequired)
			},
			checkLogContains: []string{`"method":"POST"`, `"status":402`, `"size":0`, `"level":"warn"`},
		},
		{
			name:             "handler writes nothing",
			method:           http.MethodGet,
			path:             "/logout",
			handler:          func(w http.ResponseWriter, r *http.Request) {},
			checkLogContains: []string{`"status":200`},
		},
		{
			name:   "GET 500",
			method: http.MethodGet,
			path:   "/health",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			checkLogContains: []string{`"status":500`, `"level":"error"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := zerolog.New(&buf)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = req.WithContext(l.WithContext(req.Context()))
			rec := httptest.NewRecorder()

			h := &Handler{logger: logger.Nop()}
			h.withLogging(tt.handler).ServeHTTP(rec, req)

			for _, s := range tt.checkLogContains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}
