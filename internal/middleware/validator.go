package middleware

import (
	"fmt"
	"regexp"
	"strconv"
)

// Input validation and sanitization utilities

var empresaSlugRe = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

// ValidateEmpresaID checks the company slug used in URL paths.
func ValidateEmpresaID(empresa string) error {
	if empresa == "" {
		return fmt.Errorf("empresa cannot be empty")
	}
	if !empresaSlugRe.MatchString(empresa) {
		return fmt.Errorf("invalid empresa identifier: %s", empresa)
	}
	return nil
}

// ParsePagination normalizes page/page_size query values, applying the
// defaults the repositories expect.
func ParsePagination(pageStr, sizeStr string) (page, size int, err error) {
	page, size = 1, 20
	if pageStr != "" {
		page, err = strconv.Atoi(pageStr)
		if err != nil || page <= 0 {
			return 0, 0, fmt.Errorf("invalid page: %s", pageStr)
		}
	}
	if sizeStr != "" {
		size, err = strconv.Atoi(sizeStr)
		if err != nil || size <= 0 || size > 100 {
			return 0, 0, fmt.Errorf("invalid page_size: %s", sizeStr)
		}
	}
	return page, size, nil
}
