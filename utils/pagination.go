package utils

// NormalizeSort validates page/sort parameters against a whitelist of sortable
// columns, falling back to created_at desc
func NormalizeSort(sortBy, sortOrder string, valid map[string]bool) (string, string) {
	if !valid[sortBy] {
		sortBy = "created_at"
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}
	return sortBy, sortOrder
}

// TotalPages computes the page count for a result set
func TotalPages(totalCount int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := int(totalCount) / pageSize
	if int(totalCount)%pageSize > 0 {
		pages++
	}
	return pages
}
