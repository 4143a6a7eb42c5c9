package qldbsession

//
// SendCommand
//

import (
	"net/http"

	smithyjson "github.com/aws/smithy-go/encoding/json"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

// SendCommandInput is the input of SendCommand. Except for SessionToken,
// callers set exactly one member.
type SendCommandInput struct {
	// SessionToken identifies the session. It is not set with StartSession.
	SessionToken optional.Value[string]

	StartSession      optional.Value[StartSessionRequest]
	StartTransaction  optional.Value[StartTransactionRequest]
	EndSession        optional.Value[EndSessionRequest]
	CommitTransaction optional.Value[CommitTransactionRequest]
	AbortTransaction  optional.Value[AbortTransactionRequest]
	ExecuteStatement  optional.Value[ExecuteStatementRequest]
	FetchPage         optional.Value[FetchPageRequest]
}

var _ awsapi.Request = &SendCommandInput{}

// SetSessionToken sets SessionToken and returns the receiver.
func (in *SendCommandInput) SetSessionToken(v string) *SendCommandInput {
	in.SessionToken = optional.Some(v)
	return in
}

// SetStartSession sets StartSession and returns the receiver.
func (in *SendCommandInput) SetStartSession(v StartSessionRequest) *SendCommandInput {
	in.StartSession = optional.Some(v)
	return in
}

// SetStartTransaction sets StartTransaction and returns the receiver.
func (in *SendCommandInput) SetStartTransaction(v StartTransactionRequest) *SendCommandInput {
	in.StartTransaction = optional.Some(v)
	return in
}

// SetEndSession sets EndSession and returns the receiver.
func (in *SendCommandInput) SetEndSession(v EndSessionRequest) *SendCommandInput {
	in.EndSession = optional.Some(v)
	return in
}

// SetCommitTransaction sets CommitTransaction and returns the receiver.
func (in *SendCommandInput) SetCommitTransaction(v CommitTransactionRequest) *SendCommandInput {
	in.CommitTransaction = optional.Some(v)
	return in
}

// SetAbortTransaction sets AbortTransaction and returns the receiver.
func (in *SendCommandInput) SetAbortTransaction(v AbortTransactionRequest) *SendCommandInput {
	in.AbortTransaction = optional.Some(v)
	return in
}

// SetExecuteStatement sets ExecuteStatement and returns the receiver.
func (in *SendCommandInput) SetExecuteStatement(v ExecuteStatementRequest) *SendCommandInput {
	in.ExecuteStatement = optional.Some(v)
	return in
}

// SetFetchPage sets FetchPage and returns the receiver.
func (in *SendCommandInput) SetFetchPage(v FetchPageRequest) *SendCommandInput {
	in.FetchPage = optional.Some(v)
	return in
}

// ServiceRequestName implements awsapi.Request.
func (in *SendCommandInput) ServiceRequestName() string {
	return "SendCommand"
}

// SerializePayload implements awsapi.Request.
func (in *SendCommandInput) SerializePayload() ([]byte, error) {
	return awsjson.MarshalPayload(func(object *smithyjson.Object) {
		if in.SessionToken.IsSome() {
			object.Key("SessionToken").String(in.SessionToken.Unwrap())
		}
		if in.StartSession.IsSome() {
			in.StartSession.Unwrap().Jsonize(object.Key("StartSession"))
		}
		if in.StartTransaction.IsSome() {
			in.StartTransaction.Unwrap().Jsonize(object.Key("StartTransaction"))
		}
		if in.EndSession.IsSome() {
			in.EndSession.Unwrap().Jsonize(object.Key("EndSession"))
		}
		if in.CommitTransaction.IsSome() {
			in.CommitTransaction.Unwrap().Jsonize(object.Key("CommitTransaction"))
		}
		if in.AbortTransaction.IsSome() {
			in.AbortTransaction.Unwrap().Jsonize(object.Key("AbortTransaction"))
		}
		if in.ExecuteStatement.IsSome() {
			in.ExecuteStatement.Unwrap().Jsonize(object.Key("ExecuteStatement"))
		}
		if in.FetchPage.IsSome() {
			in.FetchPage.Unwrap().Jsonize(object.Key("FetchPage"))
		}
	}), nil
}

// RequestSpecificHeaders implements awsapi.HeaderBinder.
func (in *SendCommandInput) RequestSpecificHeaders() http.Header {
	return ServiceMetadata.TargetHeader(in.ServiceRequestName())
}

// Clone implements awsapi.Request.
func (in *SendCommandInput) Clone() awsapi.Request {
	out := *in
	out.CommitTransaction = optional.Map(in.CommitTransaction, func(r CommitTransactionRequest) CommitTransactionRequest {
		r.CommitDigest = optional.Map(r.CommitDigest, cloneBytes)
		return r
	})
	out.ExecuteStatement = optional.Map(in.ExecuteStatement, func(r ExecuteStatementRequest) ExecuteStatementRequest {
		r.Parameters = optional.Map(r.Parameters, cloneValueHolders)
		return r
	})
	return &out
}

func cloneBytes(b []byte) []byte {
	return append([]byte(nil), b...)
}

// SendCommandOutput is the output of SendCommand. Only the member
// matching the command sent is set.
type SendCommandOutput struct {
	awsapi.ResultMetadata

	StartSession      optional.Value[StartSessionResult]
	StartTransaction  optional.Value[StartTransactionResult]
	EndSession        optional.Value[EndSessionResult]
	CommitTransaction optional.Value[CommitTransactionResult]
	AbortTransaction  optional.Value[AbortTransactionResult]
	ExecuteStatement  optional.Value[ExecuteStatementResult]
	FetchPage         optional.Value[FetchPageResult]
}

var _ awsapi.Result = &SendCommandOutput{}

// UnmarshalResponse implements awsapi.Result.
func (out *SendCommandOutput) UnmarshalResponse(resp *awsapi.Response) error {
	view, err := awsjson.ParseResponse(resp)
	if err != nil {
		return err
	}
	out.StartSession = awsjson.Opt(view, "StartSession", NewStartSessionResultFromView)
	out.StartTransaction = awsjson.Opt(view, "StartTransaction", NewStartTransactionResultFromView)
	out.EndSession = awsjson.Opt(view, "EndSession", NewTimedResultFromView)
	out.CommitTransaction = awsjson.Opt(view, "CommitTransaction", NewCommitTransactionResultFromView)
	out.AbortTransaction = awsjson.Opt(view, "AbortTransaction", NewTimedResultFromView)
	out.ExecuteStatement = awsjson.Opt(view, "ExecuteStatement", NewExecuteStatementResultFromView)
	out.FetchPage = awsjson.Opt(view, "FetchPage", NewFetchPageResultFromView)
	return nil
}
