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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	gcodes "google.golang.org/grpc/codes"
	"google.golang.org/protobuf/encoding/protojson"

	"dirpx.dev/resultcode"
	"dirpx.dev/resultcode/oserr"
)

func newHandler(t *testing.T, opts ...Option) *Handler {
	t.Helper()
	tr, err := resultcode.New(resultcode.WithLookup(oserr.Win32()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return NewHandler(tr, opts...)
}

func do(h http.Handler, target string, hdr map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestTranslate_Batch(t *testing.T) {
	h := newHandler(t)
	rec := do(h, "/v1/translate?code=0x8004131F&code=&code=267009&code=junk", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var body TranslateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Results) != 3 {
		t.Fatalf("got %d results, want 3 (blank code skipped)", len(body.Results))
	}
	if body.Results[0].ConstantName != "SCHED_E_ALREADY_RUNNING" ||
		body.Results[1].ConstantName != "SCHED_S_TASK_RUNNING" ||
		body.Results[2].Message != resultcode.ParseFailureMessage {
		t.Fatalf("unexpected results %+v", body.Results)
	}
	if _, err := uuid.Parse(body.RequestID); err != nil {
		t.Fatalf("request id %q is not a uuid", body.RequestID)
	}
	if rec.Header().Get(HeaderRequestID) != body.RequestID {
		t.Fatal("response header and body request ids differ")
	}
}

func TestTranslate_PropagatesRequestID(t *testing.T) {
	rec := do(newHandler(t), "/v1/translate?code=0", map[string]string{HeaderRequestID: "abc-123"})
	if got := rec.Header().Get(HeaderRequestID); got != "abc-123" {
		t.Fatalf("request id = %q", got)
	}
}

func TestTranslate_Errors(t *testing.T) {
	h := newHandler(t, WithMaxCodes(2))
	tests := []struct {
		target string
		reason string
	}{
		{"/v1/translate", "MISSING_CODE"},
		{"/v1/translate?code=1&code=2&code=3", "TOO_MANY_CODES"},
	}
	for _, tt := range tests {
		rec := do(h, tt.target, nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d", tt.target, rec.Code)
		}
		var st spb.Status
		if err := protojson.Unmarshal(rec.Body.Bytes(), &st); err != nil {
			t.Fatalf("%s: decode status: %v", tt.target, err)
		}
		if gcodes.Code(st.GetCode()) != gcodes.InvalidArgument || len(st.GetDetails()) != 1 {
			t.Fatalf("%s: unexpected status %v", tt.target, &st)
		}
		var info errdetails.ErrorInfo
		if err := st.GetDetails()[0].UnmarshalTo(&info); err != nil || info.GetReason() != tt.reason {
			t.Fatalf("%s: ErrorInfo = (%v, %v), want reason %s", tt.target, &info, err, tt.reason)
		}
	}
}

func TestTaxonomy(t *testing.T) {
	rec := do(newHandler(t), "/v1/taxonomy?prefix=sched_s", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body TaxonomyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Entries) == 0 {
		t.Fatal("no entries")
	}
	first := body.Entries[0]
	if first.Name != "SCHED_S_TASK_READY" || first.HexCode != "0x00041300" || first.Code != 0x00041300 || !first.Success {
		t.Fatalf("unexpected first entry %+v", first)
	}
	for _, e := range body.Entries {
		if !strings.HasPrefix(e.Name, "SCHED_S_") {
			t.Fatalf("prefix filter leaked %s", e.Name)
		}
	}
}

func TestServeHTTP_LogsRequests(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := newHandler(t, WithLogger(zap.New(core)))

	do(h, "/v1/translate?code=5", nil)
	do(h, "/nope", nil)

	entries := logs.FilterMessage("http request").All()
	if len(entries) != 2 {
		t.Fatalf("got %d records, want 2", len(entries))
	}
	if got := entries[1].ContextMap()["status"]; got != int64(http.StatusNotFound) {
		t.Fatalf("status field = %v", got)
	}
}
