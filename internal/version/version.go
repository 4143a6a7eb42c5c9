// Package version contains the awsmodels version.
package version

// Version is the software version.
const Version = "0.4.0"

// UserAgent is the default User-Agent sent by the service clients.
const UserAgent = "awsmodels/" + Version
