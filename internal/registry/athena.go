package registry

//
// Registers the `athena' operations.
//

import "github.com/sdkmodels/awsmodels/internal/service/athena"

func init() {
	register[athena.StartQueryExecutionInput, athena.StartQueryExecutionOutput](
		"athena", athena.ServiceMetadata,
	)
	register[athena.GetQueryExecutionInput, athena.GetQueryExecutionOutput](
		"athena", athena.ServiceMetadata,
	)
	register[athena.StopQueryExecutionInput, athena.StopQueryExecutionOutput](
		"athena", athena.ServiceMetadata,
	)
}
