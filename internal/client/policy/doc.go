// Package policy implements the client-side upload rules: which releases a
// secret may upload to (AccessPolicy), how large a file each release accepts
// (SizeLimitPolicy), and the Validator that composes both.
//
// The secret is a plaintext lookup key, not a credential. Tables are plain
// values injected at construction and copied, so a policy never observes
// later mutation of the maps it was built from.
package policy
