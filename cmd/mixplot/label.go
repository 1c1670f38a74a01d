// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

// Label returns the short legend label of a key distribution and
// operation mix. Only the three exact pairs below have their own
// label; every other pair, including ones that are neither Uniform
// nor Normal, is labelled B2.
func Label(distribution, mix string) string {
	switch {
	case distribution == "Uniform" && mix == "1:1:8":
		return "A1"
	case distribution == "Uniform" && mix == "1:1:0":
		return "A2"
	case distribution == "Normal" && mix == "1:1:8":
		return "B1"
	}
	return "B2"
}
