package registry

//
// Registers the `ec2' operations.
//

import "github.com/sdkmodels/awsmodels/internal/service/ec2"

func init() {
	register[ec2.CreateTagsInput, ec2.CreateTagsOutput](
		"ec2", ec2.ServiceMetadata,
	)
	register[ec2.DeleteTagsInput, ec2.DeleteTagsOutput](
		"ec2", ec2.ServiceMetadata,
	)
}
