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

package oserr

// win32Entries are the bundled Win32 error codes (winerror.h) with the
// en-US text FormatMessage returns for them. Append only.
var win32Entries = []Entry{
	{0, "ERROR_SUCCESS", "The operation completed successfully."},
	{1, "ERROR_INVALID_FUNCTION", "Incorrect function."},
	{2, "ERROR_FILE_NOT_FOUND", "The system cannot find the file specified."},
	{3, "ERROR_PATH_NOT_FOUND", "The system cannot find the path specified."},
	{4, "ERROR_TOO_MANY_OPEN_FILES", "The system cannot open the file."},
	{5, "ERROR_ACCESS_DENIED", "Access is denied."},
	{6, "ERROR_INVALID_HANDLE", "The handle is invalid."},
	{8, "ERROR_NOT_ENOUGH_MEMORY", "Not enough memory resources are available to process this command."},
	{13, "ERROR_INVALID_DATA", "The data is invalid."},
	{14, "ERROR_OUTOFMEMORY", "Not enough memory resources are available to complete this operation."},
	{15, "ERROR_INVALID_DRIVE", "The system cannot find the drive specified."},
	{21, "ERROR_NOT_READY", "The device is not ready."},
	{32, "ERROR_SHARING_VIOLATION", "The process cannot access the file because it is being used by another process."},
	{33, "ERROR_LOCK_VIOLATION", "The process cannot access the file because another process has locked a portion of the file."},
	{50, "ERROR_NOT_SUPPORTED", "The request is not supported."},
	{53, "ERROR_BAD_NETPATH", "The network path was not found."},
	{64, "ERROR_NETNAME_DELETED", "The specified network name is no longer available."},
	{67, "ERROR_BAD_NET_NAME", "The network name cannot be found."},
	{80, "ERROR_FILE_EXISTS", "The file exists."},
	{86, "ERROR_INVALID_PASSWORD", "The specified network password is not correct."},
	{87, "ERROR_INVALID_PARAMETER", "The parameter is incorrect."},
	{109, "ERROR_BROKEN_PIPE", "The pipe has been ended."},
	{112, "ERROR_DISK_FULL", "There is not enough space on the disk."},
	{122, "ERROR_INSUFFICIENT_BUFFER", "The data area passed to a system call is too small."},
	{123, "ERROR_INVALID_NAME", "The filename, directory name, or volume label syntax is incorrect."},
	{126, "ERROR_MOD_NOT_FOUND", "The specified module could not be found."},
	{127, "ERROR_PROC_NOT_FOUND", "The specified procedure could not be found."},
	{183, "ERROR_ALREADY_EXISTS", "Cannot create a file when that file already exists."},
	{193, "ERROR_BAD_EXE_FORMAT", "%1 is not a valid Win32 application."},
	{206, "ERROR_FILENAME_EXCED_RANGE", "The filename or extension is too long."},
	{232, "ERROR_NO_DATA", "The pipe is being closed."},
	{258, "WAIT_TIMEOUT", "The wait operation timed out."},
	{259, "ERROR_NO_MORE_ITEMS", "No more data is available."},
	{267, "ERROR_DIRECTORY", "The directory name is invalid."},
	{740, "ERROR_ELEVATION_REQUIRED", "The requested operation requires elevation."},
	{995, "ERROR_OPERATION_ABORTED", "The I/O operation has been aborted because of either a thread exit or an application request."},
	{997, "ERROR_IO_PENDING", "Overlapped I/O operation is in progress."},
	{1053, "ERROR_SERVICE_REQUEST_TIMEOUT", "The service did not respond to the start or control request in a timely fashion."},
	{1056, "ERROR_SERVICE_ALREADY_RUNNING", "An instance of the service is already running."},
	{1058, "ERROR_SERVICE_DISABLED", "The service cannot be started, either because it is disabled or because it has no enabled devices associated with it."},
	{1060, "ERROR_SERVICE_DOES_NOT_EXIST", "The specified service does not exist as an installed service."},
	{1062, "ERROR_SERVICE_NOT_ACTIVE", "The service has not been started."},
	{1069, "ERROR_SERVICE_LOGON_FAILED", "The service did not start due to a logon failure."},
	{1155, "ERROR_NO_ASSOCIATION", "No application is associated with the specified file for this operation."},
	{1168, "ERROR_NOT_FOUND", "Element not found."},
	{1223, "ERROR_CANCELLED", "The operation was canceled by the user."},
	{1314, "ERROR_PRIVILEGE_NOT_HELD", "A required privilege is not held by the client."},
	{1326, "ERROR_LOGON_FAILURE", "The user name or password is incorrect."},
	{1332, "ERROR_NONE_MAPPED", "No mapping between account names and security IDs was done."},
	{1385, "ERROR_LOGON_TYPE_NOT_GRANTED", "Logon failure: the user has not been granted the requested logon type at this computer."},
	{1450, "ERROR_NO_SYSTEM_RESOURCES", "Insufficient system resources exist to complete the requested service."},
	{1460, "ERROR_TIMEOUT", "This operation returned because the timeout period expired."},
	{1722, "RPC_S_SERVER_UNAVAILABLE", "The RPC server is unavailable."},
	{1726, "RPC_S_CALL_FAILED", "The remote procedure call failed."},
	{1816, "ERROR_NOT_ENOUGH_QUOTA", "Not enough quota is available to process this command."},
	{1907, "ERROR_PASSWORD_MUST_CHANGE", "The user's password must be changed before signing in."},
	{1909, "ERROR_ACCOUNT_LOCKED_OUT", "The referenced account is currently locked out and may not be logged on to."},
	{2250, "ERROR_NOT_CONNECTED", "This network connection does not exist."},
	{10060, "WSAETIMEDOUT", "A connection attempt failed because the connected party did not properly respond after a period of time, or established connection failed because connected host has failed to respond."},
	{10061, "WSAECONNREFUSED", "No connection could be made because the target machine actively refused it."},
}

var win32Table = mustTable(win32Entries...)

// Win32 returns the bundled Win32 error table.
func Win32() *Table { return win32Table }

func mustTable(entries ...Entry) *Table {
	t, err := NewTable(entries...)
	if err != nil {
		panic(err)
	}
	return t
}
