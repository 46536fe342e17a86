package sel

import (
	"slices"
	"strings"
)

// CaseFilter returns true if a scenario case is selected.
type CaseFilter func(suite, name string) bool

func AllowAllFilter(string, string) bool {
	return true
}

// MakeFilter builds a filter from "suite.case" patterns.
// "suite.*" or a bare "suite" selects every case of the suite.
func MakeFilter(include, exclude []string) CaseFilter {
	if len(include) == 0 && len(exclude) == 0 {
		return AllowAllFilter
	}

	includeFilter := doMakeFilter(include)
	excludeFilter := doMakeFilter(exclude)

	return func(suite, name string) bool {
		if len(includeFilter) != 0 && !includeFilter.Has(suite, name) {
			return false
		}

		if len(excludeFilter) != 0 && excludeFilter.Has(suite, name) {
			return false
		}

		return true
	}
}

type filterMap map[string][]string

func (f filterMap) Has(suite, name string) bool {
	list, ok := f[suite]
	if !ok {
		return false // the suite is not listed
	}

	if len(list) == 0 {
		return true // all cases of the suite are listed
	}

	return slices.Contains(list, name) // only if explicitly listed
}

func doMakeFilter(filter []string) filterMap {
	// keys are suite names. values are the case names that belong to the suite.
	// if a key holds nil, the whole suite is included.
	filterMap := make(map[string][]string)

	for _, filter := range filter {
		suite, name, _ := strings.Cut(filter, ".")

		l, ok := filterMap[suite]
		if ok && l == nil {
			// all cases of the suite are allowed
			continue
		}

		if name == "" || name == "*" {
			filterMap[suite] = nil

			continue
		}

		filterMap[suite] = append(filterMap[suite], name)
	}

	return filterMap
}
