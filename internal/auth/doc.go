// Package auth verifies who a request is acting as. It parses credentials
// from HTTP Basic authentication or the login form, checks them against the
// stored Argon2id hash on a bounded worker pool, and re-hashes passwords on
// change.
//
// Authenticate performs exactly one hash verification per call whether or not
// the username exists: unknown usernames are verified against a dummy hash so
// that neither the response nor its latency reveals which usernames exist.
package auth
