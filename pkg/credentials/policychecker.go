package credentials

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// PasswordPolicy defines the requirements for password complexity.
type PasswordPolicy struct {
	MinLength          int
	MaxLength          int
	RequireUppercase   bool
	RequireLowercase   bool
	RequireDigit       bool
	RequireSpecialChar bool
	SpecialChars       string
}

// PasswordPolicyChecker defines the interface for checking password complexity.
type PasswordPolicyChecker interface {
	CheckPasswordComplexity(password string) error
	GetPolicy() *PasswordPolicy
}

// DefaultPasswordPolicyChecker implements PasswordPolicyChecker.
type DefaultPasswordPolicyChecker struct {
	policy *PasswordPolicy
}

// NewDefaultPasswordPolicyChecker creates a checker for the given policy,
// falling back to the default policy when nil.
func NewDefaultPasswordPolicyChecker(policy *PasswordPolicy) *DefaultPasswordPolicyChecker {
	if policy == nil {
		policy = DefaultPasswordPolicy()
	}
	return &DefaultPasswordPolicyChecker{policy: policy}
}

var (
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
)

// CheckPasswordComplexity verifies that a password meets the complexity
// requirements, returning a descriptive error for the first failed rule.
func (pc *DefaultPasswordPolicyChecker) CheckPasswordComplexity(password string) error {
	if len(password) < pc.policy.MinLength {
		return fmt.Errorf("password must be at least %d characters long", pc.policy.MinLength)
	}

	if pc.policy.MaxLength > 0 && len(password) > pc.policy.MaxLength {
		return fmt.Errorf("password must be at most %d characters long", pc.policy.MaxLength)
	}

	if pc.policy.RequireUppercase && !uppercaseRegex.MatchString(password) {
		return errors.New("password must contain at least one uppercase letter")
	}

	if pc.policy.RequireLowercase && !lowercaseRegex.MatchString(password) {
		return errors.New("password must contain at least one lowercase letter")
	}

	if pc.policy.RequireDigit && !digitRegex.MatchString(password) {
		return errors.New("password must contain at least one digit")
	}

	if pc.policy.RequireSpecialChar && !strings.ContainsAny(password, pc.policy.SpecialChars) {
		return errors.New("password must contain at least one special character")
	}

	return nil
}

// GetPolicy returns the password policy.
func (pc *DefaultPasswordPolicyChecker) GetPolicy() *PasswordPolicy {
	return pc.policy
}

// DefaultPasswordPolicy returns the policy enforced at registration: length
// in [8,255] with at least one digit, uppercase, lowercase and special
// character from the fixed set.
func DefaultPasswordPolicy() *PasswordPolicy {
	return &PasswordPolicy{
		MinLength:          8,
		MaxLength:          255,
		RequireUppercase:   true,
		RequireLowercase:   true,
		RequireDigit:       true,
		RequireSpecialChar: true,
		SpecialChars:       specialChars,
	}
}
