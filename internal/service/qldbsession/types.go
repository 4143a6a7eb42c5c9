package qldbsession

import (
	"slices"

	smithyjson "github.com/aws/smithy-go/encoding/json"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

//
// Shared value types
//

// ValueHolder holds an Amazon Ion value in either binary or text form.
type ValueHolder struct {
	IonBinary optional.Value[[]byte]
	IonText   optional.Value[string]
}

// SetIonBinary sets IonBinary and returns the receiver.
func (v *ValueHolder) SetIonBinary(value []byte) *ValueHolder {
	v.IonBinary = optional.Some(value)
	return v
}

// SetIonText sets IonText and returns the receiver.
func (v *ValueHolder) SetIonText(value string) *ValueHolder {
	v.IonText = optional.Some(value)
	return v
}

// Jsonize emits the members that have been set.
func (v ValueHolder) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if v.IonBinary.IsSome() {
		object.Key("IonBinary").Base64EncodeBytes(v.IonBinary.Unwrap())
	}
	if v.IonText.IsSome() {
		object.Key("IonText").String(v.IonText.Unwrap())
	}
}

// NewValueHolderFromView constructs a ValueHolder from view.
func NewValueHolderFromView(view awsjson.View) ValueHolder {
	return ValueHolder{
		IonBinary: awsjson.OptBlob(view, "IonBinary"),
		IonText:   awsjson.OptString(view, "IonText"),
	}
}

func cloneValueHolders(list []ValueHolder) []ValueHolder {
	out := slices.Clone(list)
	for idx := range out {
		out[idx].IonBinary = optional.Map(out[idx].IonBinary, cloneBytes)
	}
	return out
}

func decodeValueHolders(view awsjson.View) []ValueHolder {
	return awsjson.DecodeList(view.AsArray(), NewValueHolderFromView)
}

// Page is a page of statement results.
type Page struct {
	Values        optional.Value[[]ValueHolder]
	NextPageToken optional.Value[string]
}

// SetValues sets Values and returns the receiver.
func (p *Page) SetValues(v []ValueHolder) *Page {
	p.Values = optional.Some(v)
	return p
}

// AddValues appends to Values and returns the receiver.
func (p *Page) AddValues(v ...ValueHolder) *Page {
	p.Values = optional.Some(append(p.Values.UnwrapOr(nil), v...))
	return p
}

// SetNextPageToken sets NextPageToken and returns the receiver.
func (p *Page) SetNextPageToken(v string) *Page {
	p.NextPageToken = optional.Some(v)
	return p
}

// Jsonize emits the members that have been set.
func (p Page) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if p.Values.IsSome() {
		awsjson.EncodeJsonizerList(object.Key("Values"), p.Values.Unwrap())
	}
	if p.NextPageToken.IsSome() {
		object.Key("NextPageToken").String(p.NextPageToken.Unwrap())
	}
}

// NewPageFromView constructs a Page from view.
func NewPageFromView(view awsjson.View) Page {
	return Page{
		Values:        awsjson.Opt(view, "Values", decodeValueHolders),
		NextPageToken: awsjson.OptString(view, "NextPageToken"),
	}
}

// TimingInformation contains server-side timing.
type TimingInformation struct {
	ProcessingTimeMilliseconds optional.Value[int64]
}

// SetProcessingTimeMilliseconds sets ProcessingTimeMilliseconds and returns the receiver.
func (t *TimingInformation) SetProcessingTimeMilliseconds(v int64) *TimingInformation {
	t.ProcessingTimeMilliseconds = optional.Some(v)
	return t
}

// Jsonize emits the members that have been set.
func (t TimingInformation) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if t.ProcessingTimeMilliseconds.IsSome() {
		object.Key("ProcessingTimeMilliseconds").Long(t.ProcessingTimeMilliseconds.Unwrap())
	}
}

// NewTimingInformationFromView constructs a TimingInformation from view.
func NewTimingInformationFromView(view awsjson.View) TimingInformation {
	return TimingInformation{
		ProcessingTimeMilliseconds: awsjson.OptInt64(view, "ProcessingTimeMilliseconds"),
	}
}

// IOUsage counts the I/O requests consumed by a command.
type IOUsage struct {
	ReadIOs  optional.Value[int64]
	WriteIOs optional.Value[int64]
}

// SetReadIOs sets ReadIOs and returns the receiver.
func (u *IOUsage) SetReadIOs(v int64) *IOUsage {
	u.ReadIOs = optional.Some(v)
	return u
}

// SetWriteIOs sets WriteIOs and returns the receiver.
func (u *IOUsage) SetWriteIOs(v int64) *IOUsage {
	u.WriteIOs = optional.Some(v)
	return u
}

// Jsonize emits the members that have been set.
func (u IOUsage) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if u.ReadIOs.IsSome() {
		object.Key("ReadIOs").Long(u.ReadIOs.Unwrap())
	}
	if u.WriteIOs.IsSome() {
		object.Key("WriteIOs").Long(u.WriteIOs.Unwrap())
	}
}

// NewIOUsageFromView constructs an IOUsage from view.
func NewIOUsageFromView(view awsjson.View) IOUsage {
	return IOUsage{
		ReadIOs:  awsjson.OptInt64(view, "ReadIOs"),
		WriteIOs: awsjson.OptInt64(view, "WriteIOs"),
	}
}

//
// Commands
//

// StartSessionRequest starts a session on a ledger.
type StartSessionRequest struct {
	LedgerName optional.Value[string]
}

// SetLedgerName sets LedgerName and returns the receiver.
func (r *StartSessionRequest) SetLedgerName(v string) *StartSessionRequest {
	r.LedgerName = optional.Some(v)
	return r
}

// Jsonize emits the members that have been set.
func (r StartSessionRequest) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if r.LedgerName.IsSome() {
		object.Key("LedgerName").String(r.LedgerName.Unwrap())
	}
}

// NewStartSessionRequestFromView constructs a StartSessionRequest from view.
func NewStartSessionRequestFromView(view awsjson.View) StartSessionRequest {
	return StartSessionRequest{LedgerName: awsjson.OptString(view, "LedgerName")}
}

// StartTransactionRequest starts a transaction. It has no members.
type StartTransactionRequest struct{}

// Jsonize emits an empty object.
func (StartTransactionRequest) Jsonize(value smithyjson.Value) {
	value.Object().Close()
}

// EndSessionRequest ends the current session. It has no members.
type EndSessionRequest struct{}

// Jsonize emits an empty object.
func (EndSessionRequest) Jsonize(value smithyjson.Value) {
	value.Object().Close()
}

// AbortTransactionRequest aborts the current transaction. It has no members.
type AbortTransactionRequest struct{}

// Jsonize emits an empty object.
func (AbortTransactionRequest) Jsonize(value smithyjson.Value) {
	value.Object().Close()
}

// CommitTransactionRequest commits a transaction.
type CommitTransactionRequest struct {
	TransactionID optional.Value[string]

	// CommitDigest is the client-computed digest of the transaction.
	CommitDigest optional.Value[[]byte]
}

// SetTransactionID sets TransactionID and returns the receiver.
func (r *CommitTransactionRequest) SetTransactionID(v string) *CommitTransactionRequest {
	r.TransactionID = optional.Some(v)
	return r
}

// SetCommitDigest sets CommitDigest and returns the receiver.
func (r *CommitTransactionRequest) SetCommitDigest(v []byte) *CommitTransactionRequest {
	r.CommitDigest = optional.Some(v)
	return r
}

// Jsonize emits the members that have been set.
func (r CommitTransactionRequest) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if r.TransactionID.IsSome() {
		object.Key("TransactionId").String(r.TransactionID.Unwrap())
	}
	if r.CommitDigest.IsSome() {
		object.Key("CommitDigest").Base64EncodeBytes(r.CommitDigest.Unwrap())
	}
}

// NewCommitTransactionRequestFromView constructs a CommitTransactionRequest from view.
func NewCommitTransactionRequestFromView(view awsjson.View) CommitTransactionRequest {
	return CommitTransactionRequest{
		TransactionID: awsjson.OptString(view, "TransactionId"),
		CommitDigest:  awsjson.OptBlob(view, "CommitDigest"),
	}
}

// ExecuteStatementRequest executes a PartiQL statement.
type ExecuteStatementRequest struct {
	TransactionID optional.Value[string]
	Statement     optional.Value[string]
	Parameters    optional.Value[[]ValueHolder]
}

// SetTransactionID sets TransactionID and returns the receiver.
func (r *ExecuteStatementRequest) SetTransactionID(v string) *ExecuteStatementRequest {
	r.TransactionID = optional.Some(v)
	return r
}

// SetStatement sets Statement and returns the receiver.
func (r *ExecuteStatementRequest) SetStatement(v string) *ExecuteStatementRequest {
	r.Statement = optional.Some(v)
	return r
}

// SetParameters sets Parameters and returns the receiver.
func (r *ExecuteStatementRequest) SetParameters(v []ValueHolder) *ExecuteStatementRequest {
	r.Parameters = optional.Some(v)
	return r
}

// AddParameters appends to Parameters and returns the receiver.
func (r *ExecuteStatementRequest) AddParameters(v ...ValueHolder) *ExecuteStatementRequest {
	r.Parameters = optional.Some(append(r.Parameters.UnwrapOr(nil), v...))
	return r
}

// Jsonize emits the members that have been set.
func (r ExecuteStatementRequest) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if r.TransactionID.IsSome() {
		object.Key("TransactionId").String(r.TransactionID.Unwrap())
	}
	if r.Statement.IsSome() {
		object.Key("Statement").String(r.Statement.Unwrap())
	}
	if r.Parameters.IsSome() {
		awsjson.EncodeJsonizerList(object.Key("Parameters"), r.Parameters.Unwrap())
	}
}

// NewExecuteStatementRequestFromView constructs an ExecuteStatementRequest from view.
func NewExecuteStatementRequestFromView(view awsjson.View) ExecuteStatementRequest {
	return ExecuteStatementRequest{
		TransactionID: awsjson.OptString(view, "TransactionId"),
		Statement:     awsjson.OptString(view, "Statement"),
		Parameters:    awsjson.Opt(view, "Parameters", decodeValueHolders),
	}
}

// FetchPageRequest fetches the next page of a statement result.
type FetchPageRequest struct {
	TransactionID optional.Value[string]
	NextPageToken optional.Value[string]
}

// SetTransactionID sets TransactionID and returns the receiver.
func (r *FetchPageRequest) SetTransactionID(v string) *FetchPageRequest {
	r.TransactionID = optional.Some(v)
	return r
}

// SetNextPageToken sets NextPageToken and returns the receiver.
func (r *FetchPageRequest) SetNextPageToken(v string) *FetchPageRequest {
	r.NextPageToken = optional.Some(v)
	return r
}

// Jsonize emits the members that have been set.
func (r FetchPageRequest) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if r.TransactionID.IsSome() {
		object.Key("TransactionId").String(r.TransactionID.Unwrap())
	}
	if r.NextPageToken.IsSome() {
		object.Key("NextPageToken").String(r.NextPageToken.Unwrap())
	}
}

// NewFetchPageRequestFromView constructs a FetchPageRequest from view.
func NewFetchPageRequestFromView(view awsjson.View) FetchPageRequest {
	return FetchPageRequest{
		TransactionID: awsjson.OptString(view, "TransactionId"),
		NextPageToken: awsjson.OptString(view, "NextPageToken"),
	}
}

//
// Command results
//

// StartSessionResult is the result of StartSession.
type StartSessionResult struct {
	SessionToken      optional.Value[string]
	TimingInformation optional.Value[TimingInformation]
}

// Jsonize emits the members that have been set.
func (r StartSessionResult) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if r.SessionToken.IsSome() {
		object.Key("SessionToken").String(r.SessionToken.Unwrap())
	}
	if r.TimingInformation.IsSome() {
		r.TimingInformation.Unwrap().Jsonize(object.Key("TimingInformation"))
	}
}

// NewStartSessionResultFromView constructs a StartSessionResult from view.
func NewStartSessionResultFromView(view awsjson.View) StartSessionResult {
	return StartSessionResult{
		SessionToken:      awsjson.OptString(view, "SessionToken"),
		TimingInformation: awsjson.Opt(view, "TimingInformation", NewTimingInformationFromView),
	}
}

// StartTransactionResult is the result of StartTransaction.
type StartTransactionResult struct {
	TransactionID     optional.Value[string]
	TimingInformation optional.Value[TimingInformation]
}

// Jsonize emits the members that have been set.
func (r StartTransactionResult) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if r.TransactionID.IsSome() {
		object.Key("TransactionId").String(r.TransactionID.Unwrap())
	}
	if r.TimingInformation.IsSome() {
		r.TimingInformation.Unwrap().Jsonize(object.Key("TimingInformation"))
	}
}

// NewStartTransactionResultFromView constructs a StartTransactionResult from view.
func NewStartTransactionResultFromView(view awsjson.View) StartTransactionResult {
	return StartTransactionResult{
		TransactionID:     awsjson.OptString(view, "TransactionId"),
		TimingInformation: awsjson.Opt(view, "TimingInformation", NewTimingInformationFromView),
	}
}

// TimedResult is the result of the commands only reporting timing
// information (EndSession and AbortTransaction).
type TimedResult struct {
	TimingInformation optional.Value[TimingInformation]
}

// Jsonize emits the members that have been set.
func (r TimedResult) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if r.TimingInformation.IsSome() {
		r.TimingInformation.Unwrap().Jsonize(object.Key("TimingInformation"))
	}
}

// NewTimedResultFromView constructs a TimedResult from view.
func NewTimedResultFromView(view awsjson.View) TimedResult {
	return TimedResult{
		TimingInformation: awsjson.Opt(view, "TimingInformation", NewTimingInformationFromView),
	}
}

// EndSessionResult is the result of EndSession.
type EndSessionResult = TimedResult

// AbortTransactionResult is the result of AbortTransaction.
type AbortTransactionResult = TimedResult

// CommitTransactionResult is the result of CommitTransaction.
type CommitTransactionResult struct {
	TransactionID     optional.Value[string]
	CommitDigest      optional.Value[[]byte]
	TimingInformation optional.Value[TimingInformation]
	ConsumedIOs       optional.Value[IOUsage]
}

// Jsonize emits the members that have been set.
func (r CommitTransactionResult) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if r.TransactionID.IsSome() {
		object.Key("TransactionId").String(r.TransactionID.Unwrap())
	}
	if r.CommitDigest.IsSome() {
		object.Key("CommitDigest").Base64EncodeBytes(r.CommitDigest.Unwrap())
	}
	if r.TimingInformation.IsSome() {
		r.TimingInformation.Unwrap().Jsonize(object.Key("TimingInformation"))
	}
	if r.ConsumedIOs.IsSome() {
		r.ConsumedIOs.Unwrap().Jsonize(object.Key("ConsumedIOs"))
	}
}

// NewCommitTransactionResultFromView constructs a CommitTransactionResult from view.
func NewCommitTransactionResultFromView(view awsjson.View) CommitTransactionResult {
	return CommitTransactionResult{
		TransactionID:     awsjson.OptString(view, "TransactionId"),
		CommitDigest:      awsjson.OptBlob(view, "CommitDigest"),
		TimingInformation: awsjson.Opt(view, "TimingInformation", NewTimingInformationFromView),
		ConsumedIOs:       awsjson.Opt(view, "ConsumedIOs", NewIOUsageFromView),
	}
}

// ExecuteStatementResult is the result of ExecuteStatement.
type ExecuteStatementResult struct {
	FirstPage         optional.Value[Page]
	TimingInformation optional.Value[TimingInformation]
	ConsumedIOs       optional.Value[IOUsage]
}

// Jsonize emits the members that have been set.
func (r ExecuteStatementResult) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if r.FirstPage.IsSome() {
		r.FirstPage.Unwrap().Jsonize(object.Key("FirstPage"))
	}
	if r.TimingInformation.IsSome() {
		r.TimingInformation.Unwrap().Jsonize(object.Key("TimingInformation"))
	}
	if r.ConsumedIOs.IsSome() {
		r.ConsumedIOs.Unwrap().Jsonize(object.Key("ConsumedIOs"))
	}
}

// NewExecuteStatementResultFromView constructs an ExecuteStatementResult from view.
func NewExecuteStatementResultFromView(view awsjson.View) ExecuteStatementResult {
	return ExecuteStatementResult{
		FirstPage:         awsjson.Opt(view, "FirstPage", NewPageFromView),
		TimingInformation: awsjson.Opt(view, "TimingInformation", NewTimingInformationFromView),
		ConsumedIOs:       awsjson.Opt(view, "ConsumedIOs", NewIOUsageFromView),
	}
}

// FetchPageResult is the result of FetchPage.
type FetchPageResult struct {
	Page              optional.Value[Page]
	TimingInformation optional.Value[TimingInformation]
	ConsumedIOs       optional.Value[IOUsage]
}

// Jsonize emits the members that have been set.
func (r FetchPageResult) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if r.Page.IsSome() {
		r.Page.Unwrap().Jsonize(object.Key("Page"))
	}
	if r.TimingInformation.IsSome() {
		r.TimingInformation.Unwrap().Jsonize(object.Key("TimingInformation"))
	}
	if r.ConsumedIOs.IsSome() {
		r.ConsumedIOs.Unwrap().Jsonize(object.Key("ConsumedIOs"))
	}
}

// NewFetchPageResultFromView constructs a FetchPageResult from view.
func NewFetchPageResultFromView(view awsjson.View) FetchPageResult {
	return FetchPageResult{
		Page:              awsjson.Opt(view, "Page", NewPageFromView),
		TimingInformation: awsjson.Opt(view, "TimingInformation", NewTimingInformationFromView),
		ConsumedIOs:       awsjson.Opt(view, "ConsumedIOs", NewIOUsageFromView),
	}
}
