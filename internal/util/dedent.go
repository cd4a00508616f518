/**
 * Copyright (c) 2024, The Selene Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package util

import (
	"strings"
)

// Dedent fixes indentation of a multi-line string literal: leading newlines and trailing spaces
// and tabs are dropped, and the indent of the first line is removed from every line.
func Dedent(s string) string {
	// Remove leading newlines.
	s = strings.TrimLeft(s, "\n")

	// Remove trailing spaces and tabs.
	s = strings.TrimRight(s, " \t")

	// Find the indent from the first line.
	indent := s
	for i := 0; i < len(s); i++ {
		if s[i] != '\t' && s[i] != ' ' {
			indent = s[:i]
			break
		}
	}

	if len(indent) > 0 {
		return strings.ReplaceAll(s[len(indent):], "\n"+indent, "\n")
	}

	return s
}
