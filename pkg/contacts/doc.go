// Package contacts implements the contact request state machine: directed
// pending requests, acceptance by the target only, and symmetric verified
// connections unique per unordered member pair.
package contacts
