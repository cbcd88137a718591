// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package assert

// NoneRaisedErr default explanation if a body didn't fail.
const NoneRaisedErr = noneRaisedErr

// OtherKindErr default explanation if a body failed differently.
const OtherKindErr = otherKindErr

// ThatErr default explanation for a failed condition.
const ThatErr = thatErr

// LenErr default explanation for failed 'Len'-assertion.
const LenErr = lenErr
