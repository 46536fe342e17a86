package config

import (
	"os"
	"strconv"
)

// Kind returns the list kind selected by the IULIST_KIND environment variable,
// or DefaultKind when it is unset.
func Kind() string {
	if v := os.Getenv("IULIST_KIND"); v != "" {
		return v
	}

	return DefaultKind
}

// Capacity returns the array capacity selected by the IULIST_CAPACITY environment
// variable, or DefaultCapacity when it is unset or not a positive integer.
func Capacity() int {
	n, err := strconv.Atoi(os.Getenv("IULIST_CAPACITY"))
	if err != nil || n < 1 {
		return DefaultCapacity
	}

	return n
}
