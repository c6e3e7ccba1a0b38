// Package email provides a minimal transactional email abstraction with a
// Postmark-backed implementation.
//
// The EmailSender interface is the seam other packages depend on; production
// wiring uses NewPostmarkClient while tests supply in-memory fakes.
package email
