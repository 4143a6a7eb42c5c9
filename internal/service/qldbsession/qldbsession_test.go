package qldbsession

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	smithyjson "github.com/aws/smithy-go/encoding/json"
	"github.com/google/go-cmp/cmp"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/awsclient"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

func mustSerialize(t *testing.T, req awsapi.Request) string {
	t.Helper()
	data, err := req.SerializePayload()
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestSendCommandInput(t *testing.T) {
	t.Run("StartSession", func(t *testing.T) {
		in := (&SendCommandInput{}).SetStartSession(*(&StartSessionRequest{}).SetLedgerName("vehicles"))
		if diff := cmp.Diff(`{"StartSession":{"LedgerName":"vehicles"}}`, mustSerialize(t, in)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("commands without members serialize as empty objects", func(t *testing.T) {
		in := (&SendCommandInput{}).SetSessionToken("tok").SetStartTransaction(StartTransactionRequest{})
		if diff := cmp.Diff(`{"SessionToken":"tok","StartTransaction":{}}`, mustSerialize(t, in)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("ExecuteStatement with parameters", func(t *testing.T) {
		stmt := (&ExecuteStatementRequest{}).
			SetTransactionID("tx").
			SetStatement("SELECT * FROM cars WHERE vin = ?").
			AddParameters(*(&ValueHolder{}).SetIonText(`"1N4AL11D75C109151"`)).
			AddParameters(*(&ValueHolder{}).SetIonBinary([]byte{0xe0, 0x01, 0x00, 0xea}))
		in := (&SendCommandInput{}).SetSessionToken("tok").SetExecuteStatement(*stmt)
		expect := `{"SessionToken":"tok","ExecuteStatement":{"TransactionId":"tx",` +
			`"Statement":"SELECT * FROM cars WHERE vin = ?",` +
			`"Parameters":[{"IonText":"\"1N4AL11D75C109151\""},{"IonBinary":"4AEA6g=="}]}}`
		if diff := cmp.Diff(expect, mustSerialize(t, in)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("Clone copies blobs and parameters", func(t *testing.T) {
		digest := []byte{1, 2, 3}
		in := (&SendCommandInput{}).
			SetCommitTransaction(*(&CommitTransactionRequest{}).SetTransactionID("tx").SetCommitDigest(digest))
		clone := in.Clone().(*SendCommandInput)
		digest[0] = 9
		if got := clone.CommitTransaction.Unwrap().CommitDigest.Unwrap(); got[0] != 1 {
			t.Fatal("the clone shares the digest", got)
		}
	})
}

func TestValueTypesRoundTrip(t *testing.T) {
	type testcase struct {
		name string
		doc  string
		run  func(view awsjson.View) awsjson.Jsonizer
	}
	cases := []testcase{{
		name: "Page",
		doc:  `{"Values":[{"IonBinary":"4AEA6g=="},{"IonText":"1"}],"NextPageToken":"n"}`,
		run: func(view awsjson.View) awsjson.Jsonizer {
			return NewPageFromView(view)
		},
	}, {
		name: "ExecuteStatementResult",
		doc: `{"FirstPage":{"Values":[]},"TimingInformation":{"ProcessingTimeMilliseconds":12},` +
			`"ConsumedIOs":{"ReadIOs":3,"WriteIOs":0}}`,
		run: func(view awsjson.View) awsjson.Jsonizer {
			return NewExecuteStatementResultFromView(view)
		},
	}, {
		name: "CommitTransactionResult",
		doc:  `{"TransactionId":"tx","CommitDigest":"AQID"}`,
		run: func(view awsjson.View) awsjson.Jsonizer {
			return NewCommitTransactionResultFromView(view)
		},
	}, {
		name: "ExecuteStatementRequest",
		doc:  `{"TransactionId":"tx","Statement":"SELECT 1"}`,
		run: func(view awsjson.View) awsjson.Jsonizer {
			return NewExecuteStatementRequestFromView(view)
		},
	}, {
		name: "FetchPageRequest",
		doc:  `{"TransactionId":"tx","NextPageToken":"p2"}`,
		run: func(view awsjson.View) awsjson.Jsonizer {
			return NewFetchPageRequestFromView(view)
		},
	}}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			view, err := awsjson.Parse([]byte(tc.doc))
			if err != nil {
				t.Fatal(err)
			}
			encoder := smithyjson.NewEncoder()
			tc.run(view).Jsonize(encoder.Value)
			if diff := cmp.Diff(tc.doc, string(encoder.Bytes())); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestSendCommandOutput(t *testing.T) {
	body := `{"FetchPage":{"Page":{"Values":[{"IonText":"a"}],"NextPageToken":"p3"},` +
		`"TimingInformation":{"ProcessingTimeMilliseconds":5}}}`
	var out SendCommandOutput
	if err := out.UnmarshalResponse(&awsapi.Response{Body: []byte(body)}); err != nil {
		t.Fatal(err)
	}
	if out.StartSession.IsSome() || out.ExecuteStatement.IsSome() {
		t.Fatal("only FetchPage should be set")
	}
	page := out.FetchPage.Unwrap().Page.Unwrap()
	if page.NextPageToken.Unwrap() != "p3" || page.Values.Unwrap()[0].IonText.Unwrap() != "a" {
		t.Fatal("unexpected page", page)
	}
	if out.FetchPage.Unwrap().ConsumedIOs.IsSome() {
		t.Fatal("ConsumedIOs should not be set")
	}
}

// newServer returns a server answering StartSession with a token derived
// from the ledger name.
func newServer(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Amz-Target") != "QLDBSession.SendCommand" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.Header.Get("Content-Type") != "application/x-amz-json-1.0" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		data, _ := io.ReadAll(r.Body)
		var request struct {
			StartSession struct {
				LedgerName string
			}
		}
		if err := json.Unmarshal(data, &request); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/x-amz-json-1.0")
		response, _ := json.Marshal(map[string]any{
			"StartSession": map[string]any{"SessionToken": "token-" + request.StartSession.LedgerName},
		})
		w.Write(response)
	}))
}

func TestClient(t *testing.T) {
	server := newServer(t)
	defer server.Close()

	t.Run("SendCommand", func(t *testing.T) {
		clnt := New(awsclient.Config{Endpoint: server.URL})
		in := (&SendCommandInput{}).SetStartSession(*(&StartSessionRequest{}).SetLedgerName("cars"))
		out, err := clnt.SendCommand(context.Background(), in)
		if err != nil {
			t.Fatal(err)
		}
		if got := out.StartSession.Unwrap().SessionToken.Unwrap(); got != "token-cars" {
			t.Fatal("unexpected token", got)
		}
	})

	t.Run("SendCommandCallable uses a snapshot of the input", func(t *testing.T) {
		executor := awsclient.NewPooledExecutor(1)
		clnt := New(awsclient.Config{Endpoint: server.URL, Executor: executor})
		in := (&SendCommandInput{}).SetStartSession(*(&StartSessionRequest{}).SetLedgerName("first"))
		future := clnt.SendCommandCallable(context.Background(), in)
		in.SetStartSession(*(&StartSessionRequest{}).SetLedgerName("second"))
		out, err := future.Get(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if got := out.StartSession.Unwrap().SessionToken.Unwrap(); got != "token-first" {
			t.Fatal("unexpected token", got)
		}
		executor.Wait()
	})

	t.Run("SendCommandAsync invokes the handler for every call", func(t *testing.T) {
		executor := awsclient.NewPooledExecutor(4)
		clnt := New(awsclient.Config{Endpoint: server.URL, Executor: executor})
		var (
			mu     sync.Mutex
			tokens = map[string]string{}
		)
		for _, ledger := range []string{"a", "b", "c"} {
			in := (&SendCommandInput{}).SetStartSession(*(&StartSessionRequest{}).SetLedgerName(ledger))
			clnt.SendCommandAsync(context.Background(), in,
				func(ctx context.Context, in *SendCommandInput, out *SendCommandOutput, err error) {
					if err != nil {
						t.Error(err)
						return
					}
					mu.Lock()
					defer mu.Unlock()
					tokens[in.StartSession.Unwrap().LedgerName.Unwrap()] = out.StartSession.Unwrap().SessionToken.Unwrap()
				})
		}
		executor.Wait()
		expect := map[string]string{"a": "token-a", "b": "token-b", "c": "token-c"}
		if diff := cmp.Diff(expect, tokens); diff != "" {
			t.Fatal(diff)
		}
	})
}
