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

package taxonomy

import (
	"dirpx.dev/resultcode/code"
	"dirpx.dev/resultcode/symbol"
)

// Task Scheduler success codes (FACILITY_ITF, severity bit clear).
//
// These are the values a task's "Last Run Result" reports while it is
// healthy or idle. They are small positive int32 values.
const (
	// TaskReady: the task is ready to run at its next scheduled time.
	TaskReady code.Code = 0x00041300
	// TaskRunning: the task is currently running.
	TaskRunning code.Code = 0x00041301
	// TaskDisabled: the task will not run because it has been disabled.
	TaskDisabled code.Code = 0x00041302
	// TaskHasNotRun: the task has not yet run.
	TaskHasNotRun code.Code = 0x00041303
	// TaskNoMoreRuns: there are no more runs scheduled.
	TaskNoMoreRuns code.Code = 0x00041304
	// TaskNotScheduled: schedule properties are missing.
	TaskNotScheduled code.Code = 0x00041305
	// TaskTerminated: the last run was terminated by the user.
	TaskTerminated code.Code = 0x00041306
	// TaskNoValidTriggers: no triggers, or all triggers are disabled.
	TaskNoValidTriggers code.Code = 0x00041307
	// EventTrigger: event triggers do not have set run times.
	EventTrigger code.Code = 0x00041308
	// SomeTriggersFailed: registered, but not all triggers will start the task.
	SomeTriggersFailed code.Code = 0x0004131B
	// BatchLogonProblem: registered, but batch logon privilege is missing.
	BatchLogonProblem code.Code = 0x0004131C
	// TaskQueued: the service has asked the task to run.
	TaskQueued code.Code = 0x00041325
)

// Task Scheduler error codes (FACILITY_ITF, severity bit set).
//
// Written in their unsigned HRESULT form; they exceed int32 range, and
// callers frequently report them as negative int32 values instead. The
// store accepts both.
const (
	TriggerNotFound          code.Code = 0x80041309
	TaskNotReady             code.Code = 0x8004130A
	TaskNotRunning           code.Code = 0x8004130B
	ServiceNotInstalled      code.Code = 0x8004130C
	CannotOpenTask           code.Code = 0x8004130D
	InvalidTask              code.Code = 0x8004130E
	AccountInformationNotSet code.Code = 0x8004130F
	AccountNameNotFound      code.Code = 0x80041310
	AccountDBaseCorrupt      code.Code = 0x80041311
	NoSecurityServices       code.Code = 0x80041312
	UnknownObjectVersion     code.Code = 0x80041313
	UnsupportedAccountOption code.Code = 0x80041314
	ServiceNotRunning        code.Code = 0x80041315
	UnexpectedNode           code.Code = 0x80041316
	Namespace                code.Code = 0x80041317
	InvalidValue             code.Code = 0x80041318
	MissingNode              code.Code = 0x80041319
	MalformedXML             code.Code = 0x8004131A
	TooManyNodes             code.Code = 0x8004131D
	PastEndBoundary          code.Code = 0x8004131E
	AlreadyRunning           code.Code = 0x8004131F
	UserNotLoggedOn          code.Code = 0x80041320
	InvalidTaskHash          code.Code = 0x80041321
	ServiceNotAvailable      code.Code = 0x80041322
	ServiceTooBusy           code.Code = 0x80041323
	TaskAttempted            code.Code = 0x80041324
	TaskDisabledError        code.Code = 0x80041326
	TaskNotV1Compat          code.Code = 0x80041327
	StartOnDemand            code.Code = 0x80041328
	TaskNotUBPMCompat        code.Code = 0x80041329
	DeprecatedFeatureUsed    code.Code = 0x80041330
)

// schedEntries is the bundled Task Scheduler taxonomy, sourced from the
// published winerror.h / Task Scheduler error and success constants.
//
// APPEND ONLY: never renumber or reorder existing rows. Deployed callers
// rely on stable resolution results for already published codes.
var schedEntries = []Entry{
	{TaskReady, symbol.MustParse("SCHED_S_TASK_READY"), "The task is ready to run at its next scheduled time", true},
	{TaskRunning, symbol.MustParse("SCHED_S_TASK_RUNNING"), "The task is currently running", true},
	{TaskDisabled, symbol.MustParse("SCHED_S_TASK_DISABLED"), "The task will not run at the scheduled times because it has been disabled", true},
	{TaskHasNotRun, symbol.MustParse("SCHED_S_TASK_HAS_NOT_RUN"), "The task has not yet run", true},
	{TaskNoMoreRuns, symbol.MustParse("SCHED_S_TASK_NO_MORE_RUNS"), "There are no more runs scheduled for this task", true},
	{TaskNotScheduled, symbol.MustParse("SCHED_S_TASK_NOT_SCHEDULED"), "One or more of the properties that are needed to run this task on a schedule have not been set", true},
	{TaskTerminated, symbol.MustParse("SCHED_S_TASK_TERMINATED"), "The last run of the task was terminated by the user", true},
	{TaskNoValidTriggers, symbol.MustParse("SCHED_S_TASK_NO_VALID_TRIGGERS"), "Either the task has no triggers or the existing triggers are disabled or not set", true},
	{EventTrigger, symbol.MustParse("SCHED_S_EVENT_TRIGGER"), "Event triggers do not have set run times", true},
	{TriggerNotFound, symbol.MustParse("SCHED_E_TRIGGER_NOT_FOUND"), "A task's trigger is not found", false},
	{TaskNotReady, symbol.MustParse("SCHED_E_TASK_NOT_READY"), "One or more of the properties required to run this task have not been set", false},
	{TaskNotRunning, symbol.MustParse("SCHED_E_TASK_NOT_RUNNING"), "There is no running instance of the task", false},
	{ServiceNotInstalled, symbol.MustParse("SCHED_E_SERVICE_NOT_INSTALLED"), "The Task Scheduler service is not installed on this computer", false},
	{CannotOpenTask, symbol.MustParse("SCHED_E_CANNOT_OPEN_TASK"), "The task object could not be opened", false},
	{InvalidTask, symbol.MustParse("SCHED_E_INVALID_TASK"), "The object is either an invalid task object or is not a task object", false},
	{AccountInformationNotSet, symbol.MustParse("SCHED_E_ACCOUNT_INFORMATION_NOT_SET"), "No account information could be found in the Task Scheduler security database for the task indicated", false},
	{AccountNameNotFound, symbol.MustParse("SCHED_E_ACCOUNT_NAME_NOT_FOUND"), "Unable to establish existence of the account specified", false},
	{AccountDBaseCorrupt, symbol.MustParse("SCHED_E_ACCOUNT_DBASE_CORRUPT"), "Corruption was detected in the Task Scheduler security database; the database has been reset", false},
	{NoSecurityServices, symbol.MustParse("SCHED_E_NO_SECURITY_SERVICES"), "Task Scheduler security services are available only on Windows NT", false},
	{UnknownObjectVersion, symbol.MustParse("SCHED_E_UNKNOWN_OBJECT_VERSION"), "The task object version is either unsupported or invalid", false},
	{UnsupportedAccountOption, symbol.MustParse("SCHED_E_UNSUPPORTED_ACCOUNT_OPTION"), "The task has been configured with an unsupported combination of account settings and run time options", false},
	{ServiceNotRunning, symbol.MustParse("SCHED_E_SERVICE_NOT_RUNNING"), "The Task Scheduler Service is not running", false},
	{UnexpectedNode, symbol.MustParse("SCHED_E_UNEXPECTEDNODE"), "The task XML contains an unexpected node", false},
	{Namespace, symbol.MustParse("SCHED_E_NAMESPACE"), "The task XML contains an element or attribute from an unexpected namespace", false},
	{InvalidValue, symbol.MustParse("SCHED_E_INVALIDVALUE"), "The task XML contains a value which is incorrectly formatted or out of range", false},
	{MissingNode, symbol.MustParse("SCHED_E_MISSINGNODE"), "The task XML is missing a required element or attribute", false},
	{MalformedXML, symbol.MustParse("SCHED_E_MALFORMEDXML"), "The task XML is malformed", false},
	{SomeTriggersFailed, symbol.MustParse("SCHED_S_SOME_TRIGGERS_FAILED"), "The task is registered, but not all specified triggers will start the task", true},
	{BatchLogonProblem, symbol.MustParse("SCHED_S_BATCH_LOGON_PROBLEM"), "The task is registered, but may fail to start. Batch logon privilege needs to be enabled for the task principal", true},
	{TooManyNodes, symbol.MustParse("SCHED_E_TOO_MANY_NODES"), "The task XML contains too many nodes of the same type", false},
	{PastEndBoundary, symbol.MustParse("SCHED_E_PAST_END_BOUNDARY"), "The task cannot be started after the trigger end boundary", false},
	{AlreadyRunning, symbol.MustParse("SCHED_E_ALREADY_RUNNING"), "An instance of this task is already running", false},
	{UserNotLoggedOn, symbol.MustParse("SCHED_E_USER_NOT_LOGGED_ON"), "The task will not run because the user is not logged on", false},
	{InvalidTaskHash, symbol.MustParse("SCHED_E_INVALID_TASK_HASH"), "The task image is corrupt or has been tampered with", false},
	{ServiceNotAvailable, symbol.MustParse("SCHED_E_SERVICE_NOT_AVAILABLE"), "The Task Scheduler service is not available", false},
	{ServiceTooBusy, symbol.MustParse("SCHED_E_SERVICE_TOO_BUSY"), "The Task Scheduler service is too busy to handle your request. Please try again later", false},
	{TaskAttempted, symbol.MustParse("SCHED_E_TASK_ATTEMPTED"), "The Task Scheduler service attempted to run the task, but the task did not run due to one of the constraints in the task definition", false},
	{TaskQueued, symbol.MustParse("SCHED_S_TASK_QUEUED"), "The Task Scheduler service has asked the task to run", true},
	{TaskDisabledError, symbol.MustParse("SCHED_E_TASK_DISABLED"), "The task is disabled", false},
	{TaskNotV1Compat, symbol.MustParse("SCHED_E_TASK_NOT_V1_COMPAT"), "The task has properties that are not compatible with earlier versions of Windows", false},
	{StartOnDemand, symbol.MustParse("SCHED_E_START_ON_DEMAND"), "The task settings do not allow the task to start on demand", false},
	{TaskNotUBPMCompat, symbol.MustParse("SCHED_E_TASK_NOT_UBPM_COMPAT"), "The combination of properties that task is using is not compatible with the scheduling engine", false},
	{DeprecatedFeatureUsed, symbol.MustParse("SCHED_E_DEPRECATED_FEATURE_USED"), "The task definition uses a deprecated feature", false},
}

// defaultStore is built once at package init and never mutated.
var defaultStore = MustNew(schedEntries...)

// Default returns the process-wide Task Scheduler taxonomy.
func Default() *Store { return defaultStore }
