package utils

import "strconv"

// IntPtrToStr converts a pointer to a string. nil pointer returns an empty string
func IntPtrToStr(ptr *int) string {
	if ptr == nil {
		return ""
	}
	return strconv.Itoa(*ptr)
}
