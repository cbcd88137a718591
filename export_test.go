// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gocase

// FalseErr default message for failed 'false'-assertion.
const FalseErr = falseErr

// Transitions returns the states given state may be left for.
func Transitions(s State) []State { return transitions[s] }
