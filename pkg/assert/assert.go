// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package assert

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// thatErr default explanation for a failed condition whose source
// couldn't be determined.
const thatErr = "expected given condition to be true"

// That raises a failure iff given condition is false.  The failure's
// message is given message (see Eq for message arguments) or defaults
// to the source text of the condition, e.g.
//
//	assert.That(value > 5) // "assert: value > 5"
func That(cond bool, msg ...interface{}) {
	if cond {
		return
	}
	raiseThat(1, msg)
}

// ThatSkip is That for wrappers: given skip is the number of stack
// frames between the evaluated call site and the call of ThatSkip.
func ThatSkip(skip int, cond bool, msg ...interface{}) {
	if cond {
		return
	}
	raiseThat(skip+1, msg)
}

func raiseThat(skip int, msg []interface{}) {
	if m := message(msg); m != "" {
		panic(&Failure{Message: m})
	}
	if expr, ok := exprs.of(skip + 1); ok {
		panic(&Failure{Message: "assert: " + expr})
	}
	raise("that", thatErr)
}

const eqTypeErr = "types mismatch %T != %T"

// Eq raises a failure with a diff of given values iff they are not of
// the same type or not deeply equal.  Optional message arguments
// replace the default explanation; a leading format string is formatted
// with the remaining arguments.
func Eq(a, b interface{}, msg ...interface{}) {
	if fmt.Sprintf("%T", a) != fmt.Sprintf("%T", b) {
		raiseOr(msg, "equal: types", fmt.Sprintf(eqTypeErr, a, b))
	}
	if !reflect.DeepEqual(a, b) {
		raiseOr(msg, "equal", diff(a, b))
	}
}

// NotEq raises a failure iff given values are equal in the sense of Eq.
func NotEq(a, b interface{}, msg ...interface{}) {
	if fmt.Sprintf("%T", a) != fmt.Sprintf("%T", b) {
		return
	}
	if reflect.DeepEqual(a, b) {
		raiseOr(msg, "not-equal", fmt.Sprintf("%v == %v", a, b))
	}
}

// diff returns the go-cmp diff of given values falling back to the
// diff of their string representations for values go-cmp can't handle,
// e.g. structs with unexported fields.
func diff(a, b interface{}) (d string) {
	defer func() {
		if r := recover(); r != nil {
			d = cmp.Diff(toString(a), toString(b))
		}
	}()
	return cmp.Diff(a, b)
}

func raiseOr(msg []interface{}, name string, explanation interface{}) {
	if m := message(msg); m != "" {
		panic(&Failure{Message: m})
	}
	raise(name, explanation)
}

// containsErr default explanation for failed 'Contains'-assertion.
const containsErr = "%s doesn't contain %s"

// Contains raises a failure iff given value doesn't contain given
// element.  For strings, Stringer implementations and errors element
// must be a sub-string of the string representation; for slices and
// arrays one of the items must equal element; for maps element must be
// a key.
func Contains(value, element interface{}, msg ...interface{}) {
	if !contains(value, element) {
		raiseOr(msg, "contains", fmt.Sprintf(
			containsErr, toString(value), toString(element)))
	}
}

// notContainsErr default explanation for failed 'NotContains'-assertion.
const notContainsErr = "%s does contain %s"

// NotContains raises a failure iff given value contains given element
// in the sense of Contains.
func NotContains(value, element interface{}, msg ...interface{}) {
	if contains(value, element) {
		raiseOr(msg, "not-contains", fmt.Sprintf(
			notContainsErr, toString(value), toString(element)))
	}
}

func contains(value, element interface{}) bool {
	switch v := value.(type) {
	case string, fmt.Stringer, error:
		return strings.Contains(toString(v), toString(element))
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if reflect.DeepEqual(rv.Index(i).Interface(), element) {
				return true
			}
		}
	case reflect.Map:
		ev := reflect.ValueOf(element)
		if !ev.IsValid() || !ev.Type().AssignableTo(rv.Type().Key()) {
			return false
		}
		return rv.MapIndex(ev).IsValid()
	}
	return false
}

func toString(value interface{}) string {
	switch value := value.(type) {
	case string:
		return value
	case fmt.Stringer:
		return value.String()
	case error:
		return value.Error()
	default:
		return fmt.Sprintf("%v", value)
	}
}

// matchedErr default explanation for failed 'Matched'-assertion.
const matchedErr = "regexp\n'%s'\ndoesn't match\n'%s'"

// Matched raises a failure iff given value's string representation
// isn't matched by given regular expression.
func Matched(value interface{}, regex string, msg ...interface{}) {
	str := toString(value)
	if !regexp.MustCompile(regex).MatchString(str) {
		raiseOr(msg, "matched", fmt.Sprintf(matchedErr, regex, str))
	}
}

// nilErr default explanation for failed 'Nil'-assertion.
const nilErr = "expected nil; got %v"

// Nil raises a failure iff given value is neither nil nor a nil
// pointer, map, slice, channel, function or interface.
func Nil(value interface{}, msg ...interface{}) {
	if !isNil(value) {
		raiseOr(msg, "nil", fmt.Sprintf(nilErr, value))
	}
}

// notNilErr default explanation for failed 'NotNil'-assertion.
const notNilErr = "expected given value to be not nil"

// NotNil raises a failure iff given value is nil in the sense of Nil.
func NotNil(value interface{}, msg ...interface{}) {
	if isNil(value) {
		raiseOr(msg, "not-nil", notNilErr)
	}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// lenErr default explanation for failed 'Len'-assertion.
const lenErr = "expected length %d; got %d"

// Len raises a failure iff given value has no length or its length
// differs from given length.
func Len(value interface{}, n int, msg ...interface{}) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map,
		reflect.Chan:
		if rv.Len() != n {
			raiseOr(msg, "len", fmt.Sprintf(lenErr, n, rv.Len()))
		}
	default:
		raiseOr(msg, "len", fmt.Sprintf("%T has no length", value))
	}
}

// Truthy raises a failure iff given value is falsy, i.e. nil, false, a
// numeric zero, an empty string, slice, array, map or channel, a nil
// pointer or a zero struct.
func Truthy(value interface{}, msg ...interface{}) {
	if !IsTruthy(value) {
		raiseOr(msg, "truthy", fmt.Sprintf("%#v is falsy", value))
	}
}

// Falsy raises a failure iff given value is truthy (see Truthy).
func Falsy(value interface{}, msg ...interface{}) {
	if IsTruthy(value) {
		raiseOr(msg, "falsy", fmt.Sprintf("%#v is truthy", value))
	}
}

// IsTruthy reports if given value is truthy (see Truthy).
func IsTruthy(value interface{}) bool {
	if isNil(value) {
		return false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map,
		reflect.Chan:
		return rv.Len() > 0
	}
	return !rv.IsZero()
}

// errIsErr default explanation for failed "ErrIs"-assertion
const errIsErr = "given error doesn't wrap target-error"

// ErrIs raises a failure iff given error doesn't wrap given target.
func ErrIs(err, target error, msg ...interface{}) {
	if errors.Is(err, target) {
		return
	}
	raiseOr(msg, "error is",
		fmt.Sprintf("%s: %+v\n%+v", errIsErr, err, target))
}
