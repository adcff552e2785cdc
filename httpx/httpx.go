/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"

	"dirpx.dev/resultcode/apis"
	"dirpx.dev/resultcode/taxonomy"
)

// HeaderRequestID carries the request correlation id in both directions.
const HeaderRequestID = "X-Request-Id"

// DefaultMaxCodes bounds the number of codes accepted by one request.
const DefaultMaxCodes = 256

// errorDomain is the ErrorInfo domain of error responses.
const errorDomain = "resultcode.dirpx.dev"

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the request logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithTaxonomy sets the store served by GET /v1/taxonomy.
// The default is taxonomy.Default().
func WithTaxonomy(s *taxonomy.Store) Option {
	return func(h *Handler) {
		if s != nil {
			h.store = s
		}
	}
}

// WithMaxCodes bounds the number of code parameters per request.
func WithMaxCodes(n int) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxCodes = n
		}
	}
}

// Handler serves the translation API:
//
//	GET /v1/translate?code=<c>[&code=<c>...]
//	GET /v1/taxonomy[?prefix=SCHED_E]
//
// Successful responses are JSON documents. Errors are google.rpc.Status
// documents rendered with protojson, carrying an ErrorInfo detail.
type Handler struct {
	t        apis.Translator
	store    *taxonomy.Store
	log      *zap.Logger
	maxCodes int
	mux      *http.ServeMux
}

// NewHandler builds a Handler around t.
func NewHandler(t apis.Translator, opts ...Option) *Handler {
	h := &Handler{
		t:        t,
		store:    taxonomy.Default(),
		log:      zap.NewNop(),
		maxCodes: DefaultMaxCodes,
		mux:      http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.mux.HandleFunc("GET /v1/translate", h.translate)
	h.mux.HandleFunc("GET /v1/taxonomy", h.taxonomy)
	return h
}

// TranslateResponse is the body of GET /v1/translate.
type TranslateResponse struct {
	RequestID string        `json:"request_id"`
	Results   []apis.Result `json:"results"`
}

// TaxonomyEntry is one entry of GET /v1/taxonomy.
type TaxonomyEntry struct {
	Code    int64  `json:"code"`
	HexCode string `json:"hex_code"`
	Name    string `json:"name"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// TaxonomyResponse is the body of GET /v1/taxonomy.
type TaxonomyResponse struct {
	RequestID string          `json:"request_id"`
	Entries   []TaxonomyEntry `json:"entries"`
}

// ServeHTTP implements http.Handler. It assigns a request id, dispatches
// and logs one record per request.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := r.Header.Get(HeaderRequestID)
	if id == "" {
		id = uuid.NewString()
		r.Header.Set(HeaderRequestID, id)
	}
	w.Header().Set(HeaderRequestID, id)

	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	h.mux.ServeHTTP(rec, r)

	h.log.Info("http request",
		zap.String("request_id", id),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", rec.status),
		zap.Duration("duration", time.Since(start)),
	)
}

func (h *Handler) translate(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query()["code"]
	switch {
	case len(raw) == 0:
		writeError(w, http.StatusBadRequest, gcodes.InvalidArgument, "MISSING_CODE", "at least one code parameter is required")
		return
	case len(raw) > h.maxCodes:
		writeError(w, http.StatusBadRequest, gcodes.InvalidArgument, "TOO_MANY_CODES",
			fmt.Sprintf("at most %d code parameters are accepted, got %d", h.maxCodes, len(raw)))
		return
	}

	vs := make([]any, len(raw))
	for i, s := range raw {
		vs[i] = s
	}
	results, err := h.t.TranslateAll(r.Context(), vs)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, gcodes.Canceled, "CANCELED", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, TranslateResponse{
		RequestID: r.Header.Get(HeaderRequestID),
		Results:   results,
	})
}

func (h *Handler) taxonomy(w http.ResponseWriter, r *http.Request) {
	entries := h.store.Filter(r.URL.Query().Get("prefix"))
	out := make([]TaxonomyEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, TaxonomyEntry{
			Code:    e.Code.Int64(),
			HexCode: e.Code.Hex(),
			Name:    e.Name.String(),
			Message: e.Message,
			Success: e.Success,
		})
	}
	writeJSON(w, http.StatusOK, TaxonomyResponse{
		RequestID: r.Header.Get(HeaderRequestID),
		Entries:   out,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError writes a google.rpc.Status document.
func writeError(w http.ResponseWriter, httpStatus int, c gcodes.Code, reason, msg string) {
	st := gstatus.New(c, msg)
	if with, err := st.WithDetails(&errdetails.ErrorInfo{Reason: reason, Domain: errorDomain}); err == nil {
		st = with
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)

	// protojson renders the Any details with their @type.
	b, _ := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false,
	}).Marshal(st.Proto())
	_, _ = w.Write(b)
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
