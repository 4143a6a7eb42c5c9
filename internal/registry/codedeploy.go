package registry

//
// Registers the `codedeploy' operations.
//

import "github.com/sdkmodels/awsmodels/internal/service/codedeploy"

func init() {
	register[codedeploy.GetDeploymentConfigInput, codedeploy.GetDeploymentConfigOutput](
		"codedeploy", codedeploy.ServiceMetadata,
	)
	register[codedeploy.ListDeploymentConfigsInput, codedeploy.ListDeploymentConfigsOutput](
		"codedeploy", codedeploy.ServiceMetadata,
	)
	register[codedeploy.CreateDeploymentConfigInput, codedeploy.CreateDeploymentConfigOutput](
		"codedeploy", codedeploy.ServiceMetadata,
	)
	register[codedeploy.DeleteDeploymentConfigInput, codedeploy.DeleteDeploymentConfigOutput](
		"codedeploy", codedeploy.ServiceMetadata,
	)
}
