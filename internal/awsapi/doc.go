// Package awsapi contains the interfaces implemented by the operation
// models of every service package.
//
// A request is a thin data-transfer object whose members are optional
// values. It knows how to serialize the members that have been set
// into the wire format of the operation's protocol. The client core
// (see the awsclient package) discovers which bindings a request needs
// through the optional capability interfaces declared here.
//
// A result knows how to fill itself from a [*Response].
package awsapi
