// Package jwt issues and verifies the HMAC-signed access tokens used by the
// API's bearer authentication.
package jwt
