package registry

//
// List of all implemented operations.
//

import (
	"sort"

	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/runtimex"
)

// AllOperations contains all the operations, indexed by canonical name.
var AllOperations = map[string]*Factory{}

// register adds the operation whose request and result types are Req and Res.
func register[Req, Res any, ReqP interface {
	*Req
	awsapi.Request
}, ResP interface {
	*Res
	awsapi.Result
}](service string, md *awsapi.ServiceMetadata) {
	factory := &Factory{
		metadata: md,
		newRequest: func() awsapi.Request {
			return ReqP(new(Req))
		},
		newResult: func() awsapi.Result {
			return ResP(new(Res))
		},
		service: service,
	}
	factory.operation = factory.newRequest().ServiceRequestName()
	key := CanonicalizeOperationName(factory.Name())
	_, found := AllOperations[key]
	runtimex.Assert(!found, "registry: duplicate operation "+factory.Name())
	AllOperations[key] = factory
}

// OperationNames returns the sorted "service.Operation" names of all operations.
func OperationNames() (names []string) {
	for _, factory := range AllOperations {
		names = append(names, factory.Name())
	}
	sort.Strings(names)
	return
}
