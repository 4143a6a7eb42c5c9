package registry

//
// Registers the `qldbsession' operations.
//

import "github.com/sdkmodels/awsmodels/internal/service/qldbsession"

func init() {
	register[qldbsession.SendCommandInput, qldbsession.SendCommandOutput](
		"qldbsession", qldbsession.ServiceMetadata,
	)
}
