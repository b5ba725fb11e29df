// Package config provides configuration loading, merging, and validation
// facilities for the sync server and the sync client.
//
// Configuration is assembled from multiple sources. A field keeps the value
// of the first source that sets it:
//  1. Environment variables (a .env file is loaded by the binaries)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client. Both validate the result with
// ozzo-validation rules and wrap failures in the package sentinel errors.
package config
