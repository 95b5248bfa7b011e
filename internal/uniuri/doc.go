// Package uniuri generates cryptographically secure random strings. The
// session layer uses it for flash identifiers and the seeder for the
// generated initial admin password.
package uniuri
