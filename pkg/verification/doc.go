// Package verification implements email verification with five digit codes.
// A member holds at most one outstanding code; confirming it flips the
// member's verified flag and retires the code atomically.
package verification
