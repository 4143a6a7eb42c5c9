package registry

//
// Registers the `lambda' operations.
//

import "github.com/sdkmodels/awsmodels/internal/service/lambda"

func init() {
	register[lambda.ListLayersInput, lambda.ListLayersOutput](
		"lambda", lambda.ServiceMetadata,
	)
	register[lambda.InvokeInput, lambda.InvokeOutput](
		"lambda", lambda.ServiceMetadata,
	)
	register[lambda.DeleteFunctionInput, lambda.DeleteFunctionOutput](
		"lambda", lambda.ServiceMetadata,
	)
	register[lambda.TagResourceInput, lambda.TagResourceOutput](
		"lambda", lambda.ServiceMetadata,
	)
	register[lambda.ListTagsInput, lambda.ListTagsOutput](
		"lambda", lambda.ServiceMetadata,
	)
}
