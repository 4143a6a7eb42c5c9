package acmpca

import (
	"time"

	smithyjson "github.com/aws/smithy-go/encoding/json"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

// CertificateAuthorityStatus is the lifecycle status of a private CA.
type CertificateAuthorityStatus string

const (
	CertificateAuthorityStatusCreating           = CertificateAuthorityStatus("CREATING")
	CertificateAuthorityStatusPendingCertificate = CertificateAuthorityStatus("PENDING_CERTIFICATE")
	CertificateAuthorityStatusActive             = CertificateAuthorityStatus("ACTIVE")
	CertificateAuthorityStatusDeleted            = CertificateAuthorityStatus("DELETED")
	CertificateAuthorityStatusDisabled           = CertificateAuthorityStatus("DISABLED")
	CertificateAuthorityStatusExpired            = CertificateAuthorityStatus("EXPIRED")
	CertificateAuthorityStatusFailed             = CertificateAuthorityStatus("FAILED")
)

// CertificateAuthorityType is either ROOT or SUBORDINATE.
type CertificateAuthorityType string

const (
	CertificateAuthorityTypeRoot        = CertificateAuthorityType("ROOT")
	CertificateAuthorityTypeSubordinate = CertificateAuthorityType("SUBORDINATE")
)

// Tag is a key-value pair attached to a private CA.
type Tag struct {
	Key   optional.Value[string]
	Value optional.Value[string]
}

// SetKey sets Key and returns the receiver.
func (t *Tag) SetKey(v string) *Tag {
	t.Key = optional.Some(v)
	return t
}

// SetValue sets Value and returns the receiver.
func (t *Tag) SetValue(v string) *Tag {
	t.Value = optional.Some(v)
	return t
}

// Jsonize emits the members that have been set.
func (t Tag) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if t.Key.IsSome() {
		object.Key("Key").String(t.Key.Unwrap())
	}
	if t.Value.IsSome() {
		object.Key("Value").String(t.Value.Unwrap())
	}
}

// NewTagFromView constructs a Tag from view.
func NewTagFromView(view awsjson.View) Tag {
	return Tag{
		Key:   awsjson.OptString(view, "Key"),
		Value: awsjson.OptString(view, "Value"),
	}
}

// CertificateAuthority describes a private CA.
type CertificateAuthority struct {
	Arn          optional.Value[string]
	OwnerAccount optional.Value[string]
	CreatedAt    optional.Value[time.Time]
	Serial       optional.Value[string]
	Status       optional.Value[CertificateAuthorityStatus]
	Type         optional.Value[CertificateAuthorityType]

	// NotBefore and NotAfter bound the validity of the CA certificate.
	NotBefore optional.Value[time.Time]
	NotAfter  optional.Value[time.Time]

	FailureReason optional.Value[string]
}

// SetArn sets Arn and returns the receiver.
func (c *CertificateAuthority) SetArn(v string) *CertificateAuthority {
	c.Arn = optional.Some(v)
	return c
}

// SetOwnerAccount sets OwnerAccount and returns the receiver.
func (c *CertificateAuthority) SetOwnerAccount(v string) *CertificateAuthority {
	c.OwnerAccount = optional.Some(v)
	return c
}

// SetCreatedAt sets CreatedAt and returns the receiver.
func (c *CertificateAuthority) SetCreatedAt(v time.Time) *CertificateAuthority {
	c.CreatedAt = optional.Some(v)
	return c
}

// SetSerial sets Serial and returns the receiver.
func (c *CertificateAuthority) SetSerial(v string) *CertificateAuthority {
	c.Serial = optional.Some(v)
	return c
}

// SetStatus sets Status and returns the receiver.
func (c *CertificateAuthority) SetStatus(v CertificateAuthorityStatus) *CertificateAuthority {
	c.Status = optional.Some(v)
	return c
}

// SetType sets Type and returns the receiver.
func (c *CertificateAuthority) SetType(v CertificateAuthorityType) *CertificateAuthority {
	c.Type = optional.Some(v)
	return c
}

// SetNotBefore sets NotBefore and returns the receiver.
func (c *CertificateAuthority) SetNotBefore(v time.Time) *CertificateAuthority {
	c.NotBefore = optional.Some(v)
	return c
}

// SetNotAfter sets NotAfter and returns the receiver.
func (c *CertificateAuthority) SetNotAfter(v time.Time) *CertificateAuthority {
	c.NotAfter = optional.Some(v)
	return c
}

// SetFailureReason sets FailureReason and returns the receiver.
func (c *CertificateAuthority) SetFailureReason(v string) *CertificateAuthority {
	c.FailureReason = optional.Some(v)
	return c
}

// Jsonize emits the members that have been set.
func (c CertificateAuthority) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if c.Arn.IsSome() {
		object.Key("Arn").String(c.Arn.Unwrap())
	}
	if c.OwnerAccount.IsSome() {
		object.Key("OwnerAccount").String(c.OwnerAccount.Unwrap())
	}
	if c.CreatedAt.IsSome() {
		awsjson.EncodeTimestamp(object.Key("CreatedAt"), c.CreatedAt.Unwrap())
	}
	if c.Serial.IsSome() {
		object.Key("Serial").String(c.Serial.Unwrap())
	}
	if c.Status.IsSome() {
		object.Key("Status").String(string(c.Status.Unwrap()))
	}
	if c.Type.IsSome() {
		object.Key("Type").String(string(c.Type.Unwrap()))
	}
	if c.NotBefore.IsSome() {
		awsjson.EncodeTimestamp(object.Key("NotBefore"), c.NotBefore.Unwrap())
	}
	if c.NotAfter.IsSome() {
		awsjson.EncodeTimestamp(object.Key("NotAfter"), c.NotAfter.Unwrap())
	}
	if c.FailureReason.IsSome() {
		object.Key("FailureReason").String(c.FailureReason.Unwrap())
	}
}

// NewCertificateAuthorityFromView constructs a CertificateAuthority from view.
func NewCertificateAuthorityFromView(view awsjson.View) CertificateAuthority {
	return CertificateAuthority{
		Arn:          awsjson.OptString(view, "Arn"),
		OwnerAccount: awsjson.OptString(view, "OwnerAccount"),
		CreatedAt:    awsjson.OptTimestamp(view, "CreatedAt"),
		Serial:       awsjson.OptString(view, "Serial"),
		Status: awsjson.Opt(view, "Status", func(v awsjson.View) CertificateAuthorityStatus {
			return CertificateAuthorityStatus(v.AsString())
		}),
		Type: awsjson.Opt(view, "Type", func(v awsjson.View) CertificateAuthorityType {
			return CertificateAuthorityType(v.AsString())
		}),
		NotBefore:     awsjson.OptTimestamp(view, "NotBefore"),
		NotAfter:      awsjson.OptTimestamp(view, "NotAfter"),
		FailureReason: awsjson.OptString(view, "FailureReason"),
	}
}
