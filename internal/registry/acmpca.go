package registry

//
// Registers the `acmpca' operations.
//

import "github.com/sdkmodels/awsmodels/internal/service/acmpca"

func init() {
	register[acmpca.TagCertificateAuthorityInput, acmpca.TagCertificateAuthorityOutput](
		"acmpca", acmpca.ServiceMetadata,
	)
	register[acmpca.ListTagsInput, acmpca.ListTagsOutput](
		"acmpca", acmpca.ServiceMetadata,
	)
	register[acmpca.DescribeCertificateAuthorityInput, acmpca.DescribeCertificateAuthorityOutput](
		"acmpca", acmpca.ServiceMetadata,
	)
}
