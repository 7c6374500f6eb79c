// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pagination

import "slices"

// windowRadius is how many pages on each side of the current page are listed
const windowRadius = 2

// TotalPages returns ceil(totalItems / pageSize)
func TotalPages(totalItems, pageSize int) int {
	if pageSize <= 0 || totalItems <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

// Offset returns the number of rows skipped before the given 1-based page
func Offset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}

// SliceLen returns how many rows the given page holds
func SliceLen(totalItems, page, pageSize int) int {
	return max(0, min(pageSize, totalItems-Offset(page, pageSize)))
}

// Window returns the page numbers offered as links.
//
// Page 1 is always present, the last page is present when there is more
// than one page, and pages within windowRadius of current are present only
// when strictly between 1 and totalPages. Near the end this leaves gaps,
// which the listing keeps as-is.
func Window(current, totalPages int) []int {
	pages := []int{1}

	for i := current - windowRadius; i <= current+windowRadius; i++ {
		if i > 1 && i < totalPages {
			pages = append(pages, i)
		}
	}

	if totalPages > 1 {
		pages = append(pages, totalPages)
	}

	slices.Sort(pages)
	return slices.Compact(pages)
}
