// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tutorial holds the lessons gocase is demonstrated with: each
// lesson is a registry of cases exercising one feature of the engine
// against a few trivial functions.
package tutorial

import (
	"fmt"
	"unicode"

	"github.com/pkg/errors"
)

// Add returns the sum of given numbers.
func Add(a, b int) int { return a + b }

// Classify maps a score from 0 to 100 to a grade: 90 and above is an
// "A", 80 and above a "B", 70 and above a "C", 60 and above a "D" and
// everything below an "F".
func Classify(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	}
	return "F"
}

var (
	// ErrUsernameLength is returned for usernames shorter than 3 or
	// longer than 20 characters.
	ErrUsernameLength = errors.New("username must have 3 to 20 characters")

	// ErrUsernameStart is returned for usernames not starting with a
	// letter.
	ErrUsernameStart = errors.New("username must start with a letter")

	// ErrUsernameChar is returned for usernames containing other
	// characters than letters, digits and underscores.
	ErrUsernameChar = errors.New(
		"username may only contain letters, digits and underscores")
)

// ValidateUsername returns nil iff given name is a valid username.
func ValidateUsername(name string) error {
	rr := []rune(name)
	if len(rr) < 3 || len(rr) > 20 {
		return ErrUsernameLength
	}
	if !unicode.IsLetter(rr[0]) {
		return ErrUsernameStart
	}
	for _, r := range rr {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return errors.Wrapf(ErrUsernameChar, "rune %q", r)
		}
	}
	return nil
}

// KeyError reports a missing key of a mapping.
type KeyError struct{ Key string }

func (e *KeyError) Error() string { return fmt.Sprintf("key %q not found", e.Key) }

// Lookup returns the value of given key in given mapping or a *KeyError
// if it is missing.
func Lookup(m map[string]int, key string) (int, error) {
	v, ok := m[key]
	if !ok {
		return 0, &KeyError{Key: key}
	}
	return v, nil
}
