package awsjson

//
// Service errors of the JSON protocols.
//

import (
	"strings"

	"github.com/aws/smithy-go"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/model"
)

// SanitizeErrorCode strips the namespace (everything up to '#') and the
// trailing URI (everything after ':') from an error code, so that both
// "aws.protocoltests#FooError:http://internal.amazon.com/" and
// "FooError" become "FooError".
func SanitizeErrorCode(code string) string {
	if idx := strings.Index(code, ":"); idx >= 0 {
		code = code[:idx]
	}
	if idx := strings.LastIndex(code, "#"); idx >= 0 {
		code = code[idx+1:]
	}
	return strings.TrimSpace(code)
}

// FaultForStatus maps a status code to the corresponding smithy fault.
func FaultForStatus(status int) smithy.ErrorFault {
	switch {
	case status >= 500:
		return smithy.FaultServer
	case status >= 400:
		return smithy.FaultClient
	default:
		return smithy.FaultUnknown
	}
}

// DecodeError decodes the service error contained in resp. The code comes
// from the X-Amzn-ErrorType header, falling back to the "__type" or "code"
// members of the body. The message comes from "message" or "Message".
func DecodeError(resp *awsapi.Response) *smithy.GenericAPIError {
	apiErr := &smithy.GenericAPIError{
		Code:  "UnknownError",
		Fault: FaultForStatus(resp.StatusCode),
	}
	view, err := Parse(resp.Body)
	if err != nil {
		view = View{}
	}
	code := resp.Header.Get(model.HTTPHeaderErrorType)
	if code == "" {
		code = view.GetString("__type")
	}
	if code == "" {
		code = view.GetString("code")
	}
	if code = SanitizeErrorCode(code); code != "" {
		apiErr.Code = code
	}
	for _, key := range []string{"message", "Message", "errorMessage"} {
		if msg := view.GetString(key); msg != "" {
			apiErr.Message = msg
			break
		}
	}
	return apiErr
}
