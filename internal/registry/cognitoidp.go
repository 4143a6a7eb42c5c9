package registry

//
// Registers the `cognitoidp' operations.
//

import "github.com/sdkmodels/awsmodels/internal/service/cognitoidp"

func init() {
	register[cognitoidp.CreateResourceServerInput, cognitoidp.CreateResourceServerOutput](
		"cognitoidp", cognitoidp.ServiceMetadata,
	)
	register[cognitoidp.DeleteResourceServerInput, cognitoidp.DeleteResourceServerOutput](
		"cognitoidp", cognitoidp.ServiceMetadata,
	)
	register[cognitoidp.ListDevicesInput, cognitoidp.ListDevicesOutput](
		"cognitoidp", cognitoidp.ServiceMetadata,
	)
}
