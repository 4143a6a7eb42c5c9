package registry

//
// Registers the `s3control' operations.
//

import "github.com/sdkmodels/awsmodels/internal/service/s3control"

func init() {
	register[s3control.GetPublicAccessBlockInput, s3control.GetPublicAccessBlockOutput](
		"s3control", s3control.ServiceMetadata,
	)
	register[s3control.PutPublicAccessBlockInput, s3control.PutPublicAccessBlockOutput](
		"s3control", s3control.ServiceMetadata,
	)
	register[s3control.DeletePublicAccessBlockInput, s3control.DeletePublicAccessBlockOutput](
		"s3control", s3control.ServiceMetadata,
	)
}
