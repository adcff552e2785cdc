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

package adapter

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"dirpx.dev/resultcode/apis"
)

func ptr[T any](v T) *T { return &v }

func TestToDescriptor(t *testing.T) {
	r := apis.Result{
		ResultCode: ptr(int64(2147750687)), HexCode: "0x8004131F",
		Message: "An instance of this task is already running", Source: apis.SourceDomainTaxonomy,
		ConstantName: "SCHED_E_ALREADY_RUNNING", IsSuccess: ptr(false),
		Facility: "FACILITY_ITF", FacilityCode: ptr(4),
	}
	want := apis.Descriptor{
		HexCode: "0x8004131F", ConstantName: "SCHED_E_ALREADY_RUNNING", Source: "DomainTaxonomy",
		Facility: "FACILITY_ITF", Message: "An instance of this task is already running",
	}
	if diff := cmp.Diff(want, ToDescriptor(r)); diff != "" {
		t.Fatalf("ToDescriptor mismatch (-want +got):\n%s", diff)
	}
}

func TestToView(t *testing.T) {
	tests := []struct {
		name string
		in   apis.Result
		want apis.View
	}{
		{
			name: "known with alternatives",
			in: apis.Result{
				ResultCode: ptr(int64(0x80070005)), HexCode: "0x80070005",
				Message: "Task account lacks access", Source: apis.SourceDomainTaxonomy,
				ConstantName: "SCHED_E_DENIED", IsSuccess: ptr(false),
				Meanings: []apis.Meaning{
					{Source: apis.SourceDomainTaxonomy, ConstantName: "SCHED_E_DENIED", Message: "Task account lacks access"},
					{Source: apis.SourceOSError, ConstantName: "ERROR_ACCESS_DENIED", Message: "Access is denied."},
				},
			},
			want: apis.View{
				Code: "0x80070005", Name: "SCHED_E_DENIED", Status: StatusFailure,
				Message: "Task account lacks access", Alternatives: []string{"Access is denied."},
			},
		},
		{
			name: "success",
			in: apis.Result{
				ResultCode: ptr(int64(0)), HexCode: "0x00000000", Message: "ok",
				Source: apis.SourceOSError, ConstantName: "ERROR_SUCCESS", IsSuccess: ptr(true),
				Meanings: []apis.Meaning{{Source: apis.SourceOSError, Message: "ok", IsSuccess: true}},
			},
			want: apis.View{Code: "0x00000000", Name: "ERROR_SUCCESS", Status: StatusSuccess, Message: "ok"},
		},
		{
			name: "unknown never guesses",
			in: apis.Result{
				ResultCode: ptr(int64(999999999)), HexCode: "0x3B9AC9FF",
				Message: "Unknown result code: 0x3B9AC9FF", Source: apis.SourceUnknown, IsSuccess: ptr(true),
				Meanings: []apis.Meaning{},
			},
			want: apis.View{Code: "0x3B9AC9FF", Status: StatusUnknown, Message: "Unknown result code: 0x3B9AC9FF"},
		},
		{
			name: "unparsed input",
			in:   apis.Result{Input: "junk", Message: "Unable to parse result code", Source: apis.SourceUnknown, Meanings: []apis.Meaning{}},
			want: apis.View{Code: "junk", Status: StatusUnknown, Message: "Unable to parse result code"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ToView(tt.in)); diff != "" {
				t.Fatalf("ToView mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
