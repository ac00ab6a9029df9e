package onboarding

import (
	"time"
)

// Draft accumulates answers across the flow. It is never persisted; only
// Finalize turns it into a profile and quit record.
type Draft struct {
	Name              string
	Gender            string
	BirthYear         int
	Motivation        string
	Fears             []string
	QuitTime          string
	QuitDate          time.Time
	StartAge          string
	QuitAttempts      string
	QuitChallenges    []string
	CigarettesPerDay  int
	CigarettesPerPack int
	PackPrice         float64
	Currency          string
}

// HasQuitDate reports whether a quit date was answered and still applies.
func (d Draft) HasQuitDate() bool {
	return !d.QuitDate.IsZero() && d.QuitTime != QuitTimeUnknown
}

func (d Draft) clone() Draft {
	c := d
	c.Fears = append([]string(nil), d.Fears...)
	c.QuitChallenges = append([]string(nil), d.QuitChallenges...)
	return c
}

// Answer carries the user's input for one step. Text steps and single
// choices use Value; multi-selects use Values; PackPrice also reads Currency.
type Answer struct {
	Value    string
	Values   []string
	Currency string
}

// Text is the answer for a free-text or single-choice step.
func Text(value string) Answer {
	return Answer{Value: value}
}

// Choices is the answer for a multi-select step.
func Choices(values ...string) Answer {
	return Answer{Values: values}
}

// Price is the answer for the pack price step.
func Price(amount, currency string) Answer {
	return Answer{Value: amount, Currency: currency}
}

// None is the answer for display-only steps.
func None() Answer {
	return Answer{}
}
