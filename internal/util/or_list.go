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

// OrList transforms a string slice like ["A", "B", "C"] into `A, B, or C`. If quoted is true, the
// items are double-quoted: `"A", "B", or "C"`. If a positive integer is provided in limit, only up
// to that number of items is rendered.
func OrList(items []string, limit int, quoted bool) string {
	numItems := len(items)
	if numItems == 0 {
		return ""
	}

	if limit > 0 && numItems > limit {
		items = items[:limit]
		numItems = limit
	}

	var out strings.Builder
	for i, item := range items {
		if i > 0 {
			if numItems > 2 {
				out.WriteString(", ")
			} else {
				out.WriteString(" ")
			}
			if i == numItems-1 {
				out.WriteString("or ")
			}
		}

		if quoted {
			out.WriteString(`"`)
			out.WriteString(item)
			out.WriteString(`"`)
		} else {
			out.WriteString(item)
		}
	}

	return out.String()
}
