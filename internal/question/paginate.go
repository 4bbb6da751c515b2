package question

// PageWindow returns the offset of a 1-based page over total items and whether the page exists.
// Pages past the end do not exist; they are not empty pages.
func PageWindow(page, size int, total int64) (offset int, ok bool) {
	if page < 1 || size < 1 {
		return 0, false
	}
	// page-1 < total keeps the multiplication below from overflowing.
	if int64(page-1) >= total {
		return 0, false
	}
	start := int64(page-1) * int64(size)
	if start >= total {
		return 0, false
	}
	return int(start), true
}
