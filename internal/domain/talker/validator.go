package talker

import (
	"math"
	"regexp"
	"unicode/utf8"

	"talkerbase/internal/domain/auth"
	"talkerbase/internal/domain/fault"
)

const (
	MinNameLen = 3
	MinAge     = 18
	MinRate    = 1
	MaxRate    = 5
)

const (
	MsgNameRequired      = `O campo "name" é obrigatório`
	MsgNameTooShort      = `O "name" deve ter pelo menos 3 caracteres`
	MsgAgeRequired       = `O campo "age" é obrigatório`
	MsgAgeInvalid        = `O campo "age" deve ser um número inteiro igual ou maior que 18`
	MsgTalkRequired      = `O campo "talk" é obrigatório`
	MsgWatchedAtRequired = `O campo "watchedAt" é obrigatório`
	MsgWatchedAtFormat   = `O campo "watchedAt" deve ter o formato "dd/mm/aaaa"`
	MsgRateRequired      = `O campo "rate" é obrigatório`
	MsgRateInvalid       = `O campo "rate" deve ser um número inteiro entre 1 e 5`
)

var watchedAtPattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// Payload is the already-parsed body of a write request plus the raw token
// header. Zero values carry the falsy-missing semantics of the reference
// behavior: an age or rate of 0 counts as absent, an empty name counts as
// absent. Age and Rate stay untyped until validated so that non-numeric and
// non-integer inputs hit the "número inteiro" rules instead of a decode
// failure.
type Payload struct {
	Name  string
	Age   any
	Talk  *TalkPayload
	Token string
}

type TalkPayload struct {
	WatchedAt string
	Rate      any
}

// AgeValue returns the age as an int. Only meaningful after ValidateWrite
// has passed, which guarantees a whole number.
func (p Payload) AgeValue() int {
	age, _ := p.Age.(float64)
	return int(age)
}

// RateValue returns the talk rate as an int under the same contract.
func (p Payload) RateValue() int {
	if p.Talk == nil {
		return 0
	}
	rate, _ := p.Talk.Rate.(float64)
	return int(rate)
}

// Rule checks one field of a write payload. Rules are pure and independent
// of the transport, so each is testable in isolation.
type Rule func(p Payload) error

// run applies rules in order and stops at the first failure, so overlapping
// conditions never report more than one message.
func run(p Payload, rules []Rule) error {
	for _, rule := range rules {
		if err := rule(p); err != nil {
			return err
		}
	}
	return nil
}

// writeRules is the canonical order for create and update. The token checks
// sit between the age and talk rules: a payload missing both name and token
// reports the name error.
var writeRules = []Rule{
	nameRequired,
	nameLength,
	ageRequired,
	ageValue,
	tokenPresent,
	tokenShape,
	talkRequired,
	watchedAtRequired,
	watchedAtFormat,
	rateRequired,
	rateValue,
}

// ValidateWrite gates create and update operations.
func ValidateWrite(p Payload) error {
	return run(p, writeRules)
}

func nameRequired(p Payload) error {
	if p.Name == "" {
		return &fault.Error{Kind: fault.Validation, Message: MsgNameRequired}
	}
	return nil
}

func nameLength(p Payload) error {
	if utf8.RuneCountInString(p.Name) < MinNameLen {
		return &fault.Error{Kind: fault.Validation, Message: MsgNameTooShort}
	}
	return nil
}

// falsy mirrors the reference presence test: absent, zero, the empty string
// and false all count as missing.
func falsy(v any) bool {
	switch n := v.(type) {
	case nil:
		return true
	case float64:
		return n == 0
	case string:
		return n == ""
	case bool:
		return !n
	}
	return false
}

func ageRequired(p Payload) error {
	if falsy(p.Age) {
		return &fault.Error{Kind: fault.Validation, Message: MsgAgeRequired}
	}
	return nil
}

// ageValue rejects anything that is not a whole JSON number of 18 or more,
// including strings and booleans.
func ageValue(p Payload) error {
	age, ok := p.Age.(float64)
	if !ok || age != math.Trunc(age) || age < MinAge {
		return &fault.Error{Kind: fault.Validation, Message: MsgAgeInvalid}
	}
	return nil
}

func tokenPresent(p Payload) error {
	if p.Token == "" {
		return auth.ErrTokenMissing
	}
	return nil
}

func tokenShape(p Payload) error {
	return auth.ValidateToken(p.Token)
}

func talkRequired(p Payload) error {
	if p.Talk == nil {
		return &fault.Error{Kind: fault.Validation, Message: MsgTalkRequired}
	}
	return nil
}

func watchedAtRequired(p Payload) error {
	if p.Talk.WatchedAt == "" {
		return &fault.Error{Kind: fault.Validation, Message: MsgWatchedAtRequired}
	}
	return nil
}

func watchedAtFormat(p Payload) error {
	if !watchedAtPattern.MatchString(p.Talk.WatchedAt) {
		return &fault.Error{Kind: fault.Validation, Message: MsgWatchedAtFormat}
	}
	return nil
}

// rateRequired treats rate 0 as missing, so a 0 reports the "obrigatório"
// message and never reaches the range rule.
func rateRequired(p Payload) error {
	if falsy(p.Talk.Rate) {
		return &fault.Error{Kind: fault.Validation, Message: MsgRateRequired}
	}
	return nil
}

func rateValue(p Payload) error {
	r, ok := p.Talk.Rate.(float64)
	if !ok || r != math.Trunc(r) || r < MinRate || r > MaxRate {
		return &fault.Error{Kind: fault.Validation, Message: MsgRateInvalid}
	}
	return nil
}
