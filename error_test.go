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

package resultcode

import (
	"errors"
	"strings"
	"testing"
)

func TestCheck(t *testing.T) {
	tr := newTranslator(t)

	if err := tr.Check(0); err != nil {
		t.Fatalf("Check(0) = %v, want nil", err)
	}
	if err := tr.Check(267009); err != nil {
		t.Fatalf("Check(SCHED_S_TASK_RUNNING) = %v, want nil", err)
	}
	if err := tr.Check(""); err != nil {
		t.Fatalf("Check(\"\") = %v, want nil", err)
	}

	err := tr.Check("0x8004131F", WithOpOption(`\Backup\Nightly`), WithDetailOption("attempt", 2))
	var rcErr *Error
	if !errors.As(err, &rcErr) {
		t.Fatalf("Check() = %v, want *Error", err)
	}
	if rcErr.ResultCode() != 2147750687 || rcErr.Details["attempt"] != 2 {
		t.Fatalf("unexpected error %+v", rcErr)
	}
	want := `\Backup\Nightly: SCHED_E_ALREADY_RUNNING (0x8004131F): An instance of this task is already running`
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestError_Formats(t *testing.T) {
	tr := newTranslator(t)

	unknown := tr.Check("0x80FF0001").Error()
	if unknown != "Unknown (0x80FF0001): Unknown result code: 0x80FF0001" {
		t.Fatalf("unknown Error() = %q", unknown)
	}

	junk := tr.Check("junk").Error()
	if junk != "Unknown: Unable to parse result code" {
		t.Fatalf("parse failure Error() = %q", junk)
	}

	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatal("nil *Error must render as <nil>")
	}
}

func TestError_WithCause_Unwrap(t *testing.T) {
	root := errors.New("root")
	r, _ := newTranslator(t).Translate(5)
	e := E(r, WithCauseOption(root))
	if !errors.Is(e, root) {
		t.Fatal("errors.Is failed")
	}
	if errors.Unwrap(e) != root {
		t.Fatal("Unwrap failed")
	}
	if e.WithCause(nil) != e {
		t.Fatal("WithCause(nil) must return the receiver")
	}
	if !strings.HasPrefix(e.Error(), "ERROR_ACCESS_DENIED (0x00000005)") {
		t.Fatalf("Error() = %q", e.Error())
	}
}

func TestError_Immutability_CopyOnWrite(t *testing.T) {
	r, _ := newTranslator(t).Translate(5)
	e1 := E(r).WithDetail("k1", 1)
	e2 := e1.WithDetail("k2", 2)
	e3 := e2.WithOp("op")

	if len(e1.Details) != 1 || len(e2.Details) != 2 {
		t.Fatal("details size mismatch")
	}
	if _, ok := e1.Details["k2"]; ok {
		t.Fatal("original mutated")
	}
	if e2.Op != "" || e3.Op != "op" {
		t.Fatal("WithOp must copy")
	}
}
