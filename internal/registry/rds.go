package registry

//
// Registers the `rds' operations.
//

import "github.com/sdkmodels/awsmodels/internal/service/rds"

func init() {
	register[rds.AddRoleToDBInstanceInput, rds.AddRoleToDBInstanceOutput](
		"rds", rds.ServiceMetadata,
	)
	register[rds.RemoveRoleFromDBInstanceInput, rds.RemoveRoleFromDBInstanceOutput](
		"rds", rds.ServiceMetadata,
	)
	register[rds.DescribeDBInstancesInput, rds.DescribeDBInstancesOutput](
		"rds", rds.ServiceMetadata,
	)
}
