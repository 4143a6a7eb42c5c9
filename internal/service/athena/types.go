package athena

import (
	"time"

	smithyjson "github.com/aws/smithy-go/encoding/json"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

// QueryExecutionState is the state of a query execution.
type QueryExecutionState string

const (
	QueryExecutionStateQueued    = QueryExecutionState("QUEUED")
	QueryExecutionStateRunning   = QueryExecutionState("RUNNING")
	QueryExecutionStateSucceeded = QueryExecutionState("SUCCEEDED")
	QueryExecutionStateFailed    = QueryExecutionState("FAILED")
	QueryExecutionStateCancelled = QueryExecutionState("CANCELLED")
)

// Terminal returns whether the state is final.
func (s QueryExecutionState) Terminal() bool {
	switch s {
	case QueryExecutionStateSucceeded, QueryExecutionStateFailed, QueryExecutionStateCancelled:
		return true
	default:
		return false
	}
}

// StatementType is the kind of statement executed.
type StatementType string

const (
	StatementTypeDDL     = StatementType("DDL")
	StatementTypeDML     = StatementType("DML")
	StatementTypeUtility = StatementType("UTILITY")
)

// QueryExecutionContext is the database the query runs in.
type QueryExecutionContext struct {
	Database optional.Value[string]
	Catalog  optional.Value[string]
}

// SetDatabase sets Database and returns the receiver.
func (q *QueryExecutionContext) SetDatabase(v string) *QueryExecutionContext {
	q.Database = optional.Some(v)
	return q
}

// SetCatalog sets Catalog and returns the receiver.
func (q *QueryExecutionContext) SetCatalog(v string) *QueryExecutionContext {
	q.Catalog = optional.Some(v)
	return q
}

// Jsonize emits the members that have been set.
func (q QueryExecutionContext) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if q.Database.IsSome() {
		object.Key("Database").String(q.Database.Unwrap())
	}
	if q.Catalog.IsSome() {
		object.Key("Catalog").String(q.Catalog.Unwrap())
	}
}

// NewQueryExecutionContextFromView constructs a QueryExecutionContext from view.
func NewQueryExecutionContextFromView(view awsjson.View) QueryExecutionContext {
	return QueryExecutionContext{
		Database: awsjson.OptString(view, "Database"),
		Catalog:  awsjson.OptString(view, "Catalog"),
	}
}

// ResultConfiguration tells where query results are stored.
type ResultConfiguration struct {
	// OutputLocation is an S3 URL (e.g., "s3://bucket/prefix/").
	OutputLocation      optional.Value[string]
	ExpectedBucketOwner optional.Value[string]
}

// SetOutputLocation sets OutputLocation and returns the receiver.
func (r *ResultConfiguration) SetOutputLocation(v string) *ResultConfiguration {
	r.OutputLocation = optional.Some(v)
	return r
}

// SetExpectedBucketOwner sets ExpectedBucketOwner and returns the receiver.
func (r *ResultConfiguration) SetExpectedBucketOwner(v string) *ResultConfiguration {
	r.ExpectedBucketOwner = optional.Some(v)
	return r
}

// Jsonize emits the members that have been set.
func (r ResultConfiguration) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if r.OutputLocation.IsSome() {
		object.Key("OutputLocation").String(r.OutputLocation.Unwrap())
	}
	if r.ExpectedBucketOwner.IsSome() {
		object.Key("ExpectedBucketOwner").String(r.ExpectedBucketOwner.Unwrap())
	}
}

// NewResultConfigurationFromView constructs a ResultConfiguration from view.
func NewResultConfigurationFromView(view awsjson.View) ResultConfiguration {
	return ResultConfiguration{
		OutputLocation:      awsjson.OptString(view, "OutputLocation"),
		ExpectedBucketOwner: awsjson.OptString(view, "ExpectedBucketOwner"),
	}
}

// QueryExecutionStatus is the status of a query execution.
type QueryExecutionStatus struct {
	State              optional.Value[QueryExecutionState]
	StateChangeReason  optional.Value[string]
	SubmissionDateTime optional.Value[time.Time]
	CompletionDateTime optional.Value[time.Time]
}

// SetState sets State and returns the receiver.
func (s *QueryExecutionStatus) SetState(v QueryExecutionState) *QueryExecutionStatus {
	s.State = optional.Some(v)
	return s
}

// SetStateChangeReason sets StateChangeReason and returns the receiver.
func (s *QueryExecutionStatus) SetStateChangeReason(v string) *QueryExecutionStatus {
	s.StateChangeReason = optional.Some(v)
	return s
}

// SetSubmissionDateTime sets SubmissionDateTime and returns the receiver.
func (s *QueryExecutionStatus) SetSubmissionDateTime(v time.Time) *QueryExecutionStatus {
	s.SubmissionDateTime = optional.Some(v)
	return s
}

// SetCompletionDateTime sets CompletionDateTime and returns the receiver.
func (s *QueryExecutionStatus) SetCompletionDateTime(v time.Time) *QueryExecutionStatus {
	s.CompletionDateTime = optional.Some(v)
	return s
}

// Jsonize emits the members that have been set.
func (s QueryExecutionStatus) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if s.State.IsSome() {
		object.Key("State").String(string(s.State.Unwrap()))
	}
	if s.StateChangeReason.IsSome() {
		object.Key("StateChangeReason").String(s.StateChangeReason.Unwrap())
	}
	if s.SubmissionDateTime.IsSome() {
		awsjson.EncodeTimestamp(object.Key("SubmissionDateTime"), s.SubmissionDateTime.Unwrap())
	}
	if s.CompletionDateTime.IsSome() {
		awsjson.EncodeTimestamp(object.Key("CompletionDateTime"), s.CompletionDateTime.Unwrap())
	}
}

// NewQueryExecutionStatusFromView constructs a QueryExecutionStatus from view.
func NewQueryExecutionStatusFromView(view awsjson.View) QueryExecutionStatus {
	return QueryExecutionStatus{
		State: awsjson.Opt(view, "State", func(v awsjson.View) QueryExecutionState {
			return QueryExecutionState(v.AsString())
		}),
		StateChangeReason:  awsjson.OptString(view, "StateChangeReason"),
		SubmissionDateTime: awsjson.OptTimestamp(view, "SubmissionDateTime"),
		CompletionDateTime: awsjson.OptTimestamp(view, "CompletionDateTime"),
	}
}

// QueryExecution describes a single execution of a query.
type QueryExecution struct {
	QueryExecutionID      optional.Value[string]
	Query                 optional.Value[string]
	StatementType         optional.Value[StatementType]
	ResultConfiguration   optional.Value[ResultConfiguration]
	QueryExecutionContext optional.Value[QueryExecutionContext]
	Status                optional.Value[QueryExecutionStatus]
	WorkGroup             optional.Value[string]
	ExecutionParameters   optional.Value[[]string]
}

// SetQueryExecutionID sets QueryExecutionID and returns the receiver.
func (q *QueryExecution) SetQueryExecutionID(v string) *QueryExecution {
	q.QueryExecutionID = optional.Some(v)
	return q
}

// SetQuery sets Query and returns the receiver.
func (q *QueryExecution) SetQuery(v string) *QueryExecution {
	q.Query = optional.Some(v)
	return q
}

// SetStatementType sets StatementType and returns the receiver.
func (q *QueryExecution) SetStatementType(v StatementType) *QueryExecution {
	q.StatementType = optional.Some(v)
	return q
}

// SetResultConfiguration sets ResultConfiguration and returns the receiver.
func (q *QueryExecution) SetResultConfiguration(v ResultConfiguration) *QueryExecution {
	q.ResultConfiguration = optional.Some(v)
	return q
}

// SetQueryExecutionContext sets QueryExecutionContext and returns the receiver.
func (q *QueryExecution) SetQueryExecutionContext(v QueryExecutionContext) *QueryExecution {
	q.QueryExecutionContext = optional.Some(v)
	return q
}

// SetStatus sets Status and returns the receiver.
func (q *QueryExecution) SetStatus(v QueryExecutionStatus) *QueryExecution {
	q.Status = optional.Some(v)
	return q
}

// SetWorkGroup sets WorkGroup and returns the receiver.
func (q *QueryExecution) SetWorkGroup(v string) *QueryExecution {
	q.WorkGroup = optional.Some(v)
	return q
}

// AddExecutionParameters appends to ExecutionParameters and returns the receiver.
func (q *QueryExecution) AddExecutionParameters(v ...string) *QueryExecution {
	q.ExecutionParameters = optional.Some(append(q.ExecutionParameters.UnwrapOr(nil), v...))
	return q
}

// Jsonize emits the members that have been set.
func (q QueryExecution) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if q.QueryExecutionID.IsSome() {
		object.Key("QueryExecutionId").String(q.QueryExecutionID.Unwrap())
	}
	if q.Query.IsSome() {
		object.Key("Query").String(q.Query.Unwrap())
	}
	if q.StatementType.IsSome() {
		object.Key("StatementType").String(string(q.StatementType.Unwrap()))
	}
	if q.ResultConfiguration.IsSome() {
		q.ResultConfiguration.Unwrap().Jsonize(object.Key("ResultConfiguration"))
	}
	if q.QueryExecutionContext.IsSome() {
		q.QueryExecutionContext.Unwrap().Jsonize(object.Key("QueryExecutionContext"))
	}
	if q.Status.IsSome() {
		q.Status.Unwrap().Jsonize(object.Key("Status"))
	}
	if q.WorkGroup.IsSome() {
		object.Key("WorkGroup").String(q.WorkGroup.Unwrap())
	}
	if q.ExecutionParameters.IsSome() {
		awsjson.EncodeStringList(object.Key("ExecutionParameters"), q.ExecutionParameters.Unwrap())
	}
}

// NewQueryExecutionFromView constructs a QueryExecution from view.
func NewQueryExecutionFromView(view awsjson.View) QueryExecution {
	return QueryExecution{
		QueryExecutionID: awsjson.OptString(view, "QueryExecutionId"),
		Query:            awsjson.OptString(view, "Query"),
		StatementType: awsjson.Opt(view, "StatementType", func(v awsjson.View) StatementType {
			return StatementType(v.AsString())
		}),
		ResultConfiguration:   awsjson.Opt(view, "ResultConfiguration", NewResultConfigurationFromView),
		QueryExecutionContext: awsjson.Opt(view, "QueryExecutionContext", NewQueryExecutionContextFromView),
		Status:                awsjson.Opt(view, "Status", NewQueryExecutionStatusFromView),
		WorkGroup:             awsjson.OptString(view, "WorkGroup"),
		ExecutionParameters:   awsjson.OptStringList(view, "ExecutionParameters"),
	}
}
