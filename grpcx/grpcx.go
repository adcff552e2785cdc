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

package grpcx

import (
	"context"
	"errors"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/resultcode/adapter"
	"dirpx.dev/resultcode/apis"
)

// Domain is the ErrorInfo domain of every status produced by this package.
const Domain = "resultcode.dirpx.dev"

// ErrorInfo reasons for results without a constant name.
const (
	ReasonUnknown     = "UNKNOWN_RESULT_CODE"
	ReasonUnparseable = "UNPARSEABLE_RESULT_CODE"
)

// ErrorInfo metadata keys.
const (
	MetaHexCode    = "hex_code"
	MetaResultCode = "result_code"
	MetaFacility   = "facility"
	MetaSource     = "source"
)

// nameCodes maps well-known constant names onto gRPC codes. Every other
// recognized failure maps to Internal.
var nameCodes = map[string]gcodes.Code{
	"ERROR_FILE_NOT_FOUND":           gcodes.NotFound,
	"ERROR_PATH_NOT_FOUND":           gcodes.NotFound,
	"ERROR_NOT_FOUND":                gcodes.NotFound,
	"ERROR_SERVICE_DOES_NOT_EXIST":   gcodes.NotFound,
	"SCHED_E_TRIGGER_NOT_FOUND":      gcodes.NotFound,
	"SCHED_E_ACCOUNT_NAME_NOT_FOUND": gcodes.NotFound,

	"ERROR_ACCESS_DENIED":        gcodes.PermissionDenied,
	"ERROR_PRIVILEGE_NOT_HELD":   gcodes.PermissionDenied,
	"ERROR_ELEVATION_REQUIRED":   gcodes.PermissionDenied,
	"ERROR_LOGON_FAILURE":        gcodes.Unauthenticated,
	"ERROR_ACCOUNT_LOCKED_OUT":   gcodes.Unauthenticated,
	"ERROR_PASSWORD_MUST_CHANGE": gcodes.Unauthenticated,

	"ERROR_INVALID_PARAMETER": gcodes.InvalidArgument,
	"ERROR_INVALID_DATA":      gcodes.InvalidArgument,
	"ERROR_INVALID_NAME":      gcodes.InvalidArgument,
	"SCHED_E_INVALID_TASK":    gcodes.InvalidArgument,
	"SCHED_E_MALFORMEDXML":    gcodes.InvalidArgument,
	"SCHED_E_INVALIDVALUE":    gcodes.InvalidArgument,

	"ERROR_ALREADY_EXISTS":          gcodes.AlreadyExists,
	"ERROR_FILE_EXISTS":             gcodes.AlreadyExists,
	"SCHED_E_ALREADY_RUNNING":       gcodes.FailedPrecondition,
	"SCHED_E_TASK_NOT_RUNNING":      gcodes.FailedPrecondition,
	"SCHED_E_TASK_NOT_READY":        gcodes.FailedPrecondition,
	"SCHED_E_TASK_DISABLED":         gcodes.FailedPrecondition,
	"ERROR_SERVICE_ALREADY_RUNNING": gcodes.FailedPrecondition,

	"ERROR_TIMEOUT":                 gcodes.DeadlineExceeded,
	"WAIT_TIMEOUT":                  gcodes.DeadlineExceeded,
	"ERROR_SERVICE_REQUEST_TIMEOUT": gcodes.DeadlineExceeded,
	"ERROR_CANCELLED":               gcodes.Canceled,
	"ERROR_OPERATION_ABORTED":       gcodes.Aborted,

	"SCHED_E_SERVICE_NOT_RUNNING":   gcodes.Unavailable,
	"SCHED_E_SERVICE_NOT_AVAILABLE": gcodes.Unavailable,
	"RPC_S_SERVER_UNAVAILABLE":      gcodes.Unavailable,
	"ERROR_SERVICE_NOT_ACTIVE":      gcodes.Unavailable,
	"SCHED_E_SERVICE_TOO_BUSY":      gcodes.ResourceExhausted,
	"ERROR_DISK_FULL":               gcodes.ResourceExhausted,
	"ERROR_NOT_ENOUGH_MEMORY":       gcodes.ResourceExhausted,
	"ERROR_OUTOFMEMORY":             gcodes.ResourceExhausted,
	"ERROR_NOT_ENOUGH_QUOTA":        gcodes.ResourceExhausted,

	"ERROR_NOT_SUPPORTED":                gcodes.Unimplemented,
	"ERROR_INVALID_FUNCTION":             gcodes.Unimplemented,
	"SCHED_E_UNSUPPORTED_ACCOUNT_OPTION": gcodes.Unimplemented,
}

// Code maps a Result onto a gRPC code.
//
// Resolution order:
//  1. unparsed input -> InvalidArgument;
//  2. unrecognized code -> Unknown, whatever its severity bit says;
//  3. success -> OK;
//  4. well-known constant name -> its code;
//  5. Internal.
func Code(r apis.Result) gcodes.Code {
	switch {
	case !r.Parsed():
		return gcodes.InvalidArgument
	case r.Source == apis.SourceUnknown:
		return gcodes.Unknown
	case r.Success():
		return gcodes.OK
	}
	if c, ok := nameCodes[r.ConstantName]; ok {
		return c
	}
	return gcodes.Internal
}

// Status converts a Result into a gRPC status carrying an
// errdetails.ErrorInfo detail. Successful results yield an OK status
// without details.
func Status(r apis.Result) *gstatus.Status {
	return newStatus(r, r.Message)
}

func newStatus(r apis.Result, msg string) *gstatus.Status {
	c := Code(r)
	base := gstatus.New(c, msg)
	if c == gcodes.OK {
		return base
	}
	// If attaching the detail fails, return base.
	if with, err := base.WithDetails(Info(r)); err == nil {
		return with
	}
	return base
}

// Info builds the ErrorInfo detail for a Result.
func Info(r apis.Result) *errdetails.ErrorInfo {
	d := adapter.ToDescriptor(r)
	reason := d.ConstantName
	switch {
	case !r.Parsed():
		reason = ReasonUnparseable
	case reason == "":
		reason = ReasonUnknown
	}
	md := map[string]string{MetaSource: d.Source}
	if r.Parsed() {
		md[MetaHexCode] = d.HexCode
		md[MetaResultCode] = strconv.FormatInt(r.Code(), 10)
		md[MetaFacility] = d.Facility
	}
	return &errdetails.ErrorInfo{Reason: reason, Domain: Domain, Metadata: md}
}

// ExtractInfo pulls this package's ErrorInfo out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, a := range st.Proto().GetDetails() {
		var info errdetails.ErrorInfo
		if !a.MessageIs(&info) {
			continue
		}
		if a.UnmarshalTo(&info) == nil && info.GetDomain() == Domain {
			return &info, true
		}
	}
	return nil, false
}

// translated is implemented by errors that already carry a translation,
// such as *resultcode.Error.
type translated interface {
	Translation() apis.Result
}

// coded is implemented by errors that carry a raw result code.
type coded interface {
	ResultCode() int64
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that turns
// handler errors carrying a result code into gRPC statuses with an
// ErrorInfo detail.
//
// Errors exposing Translation() apis.Result are used as-is; errors exposing
// ResultCode() int64 are translated with t. Anything else is returned
// unchanged. The status message is the handler error's text.
func UnaryServerInterceptor(t apis.Translator) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var r apis.Result
		var tr translated
		var cd coded
		switch {
		case errors.As(err, &tr):
			r = tr.Translation()
		case errors.As(err, &cd):
			res, ok := t.Translate(cd.ResultCode())
			if !ok {
				return nil, err
			}
			r = res
		default:
			// Not ours, return as-is.
			return nil, err
		}

		st := newStatus(r, err.Error())
		if st.Code() == gcodes.OK {
			// A success code is not an RPC failure, but the handler failed.
			return nil, err
		}
		return nil, st.Err()
	}
}
