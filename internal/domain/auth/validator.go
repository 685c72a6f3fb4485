package auth

import (
	"regexp"
	"unicode/utf8"

	"talkerbase/internal/domain/fault"
)

const MinPasswordLen = 6

const (
	MsgEmailRequired    = `O campo "email" é obrigatório`
	MsgEmailFormat      = `O "email" deve ter o formato "email@email.com"`
	MsgPasswordRequired = `O campo "password" é obrigatório`
	MsgPasswordTooShort = `O "password" deve ter pelo menos 6 caracteres`
)

// emailPattern is deliberately loose: local@domain.tld, nothing more.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

type Credentials struct {
	Email    string
	Password string
}

// ValidateCredentials gates the login operation, stopping at the first
// failing rule.
func ValidateCredentials(c Credentials) error {
	if c.Email == "" {
		return &fault.Error{Kind: fault.Validation, Message: MsgEmailRequired}
	}
	if !emailPattern.MatchString(c.Email) {
		return &fault.Error{Kind: fault.Validation, Message: MsgEmailFormat}
	}
	if c.Password == "" {
		return &fault.Error{Kind: fault.Validation, Message: MsgPasswordRequired}
	}
	if utf8.RuneCountInString(c.Password) < MinPasswordLen {
		return &fault.Error{Kind: fault.Validation, Message: MsgPasswordTooShort}
	}
	return nil
}
