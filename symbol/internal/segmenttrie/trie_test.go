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

package segmenttrie

import "testing"

func TestInsert_Invalid(t *testing.T) {
	tr := New[int]()
	for _, p := range []string{"", "*", "*_*", "SCHED__E", "sched_e", "SCHED-E", "_E"} {
		if err := tr.Insert(p, 1); err == nil {
			t.Fatalf("Insert(%q) must fail", p)
		}
	}
}

func TestMatch_LongestPrefixWins(t *testing.T) {
	tr := New[string]()
	mustInsert(t, tr, "ERROR", "error")
	mustInsert(t, tr, "ERROR_SUCCESS", "success")
	mustInsert(t, tr, "SCHED_E", "error")
	mustInsert(t, tr, "SCHED_S", "success")

	tests := []struct {
		key, want, pattern string
		ok                 bool
	}{
		{"ERROR_FILE_NOT_FOUND", "error", "ERROR", true},
		{"ERROR_SUCCESS", "success", "ERROR_SUCCESS", true},
		{"ERROR_SUCCESS_REBOOT_REQUIRED", "success", "ERROR_SUCCESS", true},
		{"SCHED_E_ALREADY_RUNNING", "error", "SCHED_E", true},
		{"SCHED_S_TASK_READY", "success", "SCHED_S", true},
		{"SCHED_EX", "", "", false},
		{"E_FAIL", "", "", false},
		{"sched_e_lower", "", "", false},
	}
	for _, tt := range tests {
		got, pat, ok := tr.Match(tt.key)
		if ok != tt.ok || got != tt.want || pat != tt.pattern {
			t.Fatalf("Match(%q) = (%q, %q, %v); want (%q, %q, %v)",
				tt.key, got, pat, ok, tt.want, tt.pattern, tt.ok)
		}
	}
}

func TestMatch_Wildcard(t *testing.T) {
	tr := New[int]()
	mustInsert(t, tr, "*_E", 1)
	mustInsert(t, tr, "CO_E_SERVER", 2)

	if v, pat, ok := tr.Match("RPC_E_DISCONNECTED"); !ok || v != 1 || pat != "*_E" {
		t.Fatalf("wildcard match failed: %d %q %v", v, pat, ok)
	}
	if v, _, ok := tr.Match("CO_E_SERVER_EXEC_FAILURE"); !ok || v != 2 {
		t.Fatalf("deeper exact rule must win, got %d %v", v, ok)
	}
	if _, _, ok := tr.Match("RPC_S_OK"); ok {
		t.Fatalf("RPC_S_OK must not match *_E")
	}
}

func TestNilTrie(t *testing.T) {
	var tr *Trie[int]
	if _, _, ok := tr.Match("ERROR"); ok {
		t.Fatal("nil trie must not match")
	}
	if err := tr.Insert("ERROR", 1); err == nil {
		t.Fatal("insert into nil trie must fail")
	}
}

func mustInsert[T any](t *testing.T, tr *Trie[T], p string, v T) {
	t.Helper()
	if err := tr.Insert(p, v); err != nil {
		t.Fatalf("Insert(%q): %v", p, err)
	}
}
