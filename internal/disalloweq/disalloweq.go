// Copyright (c) 2026 Sable Labs
//
// SPDX-License-Identifier: BSD-3-Clause

// Package disalloweq provides a method for disallowing struct comparisons
// with the `==` operator.
package disalloweq

// DisallowEqual can be used to cause the compiler to reject attempts to
// compare structs with the `==` operator.  Key material and curve points
// must be compared through their own constant-time Equal methods.
type DisallowEqual [0]func()
