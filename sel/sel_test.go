package sel_test

import (
	"testing"

	"github.com/percona/percona-iulist/sel"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	cases := map[string]map[string]bool{}
	check := func(t *testing.T, isIncluded sel.CaseFilter, want map[string]map[string]bool) {
		t.Helper()

		for suite, names := range want {
			for name, expected := range names {
				if got := isIncluded(suite, name); got != expected {
					t.Errorf("%s.%s: expected %v, got %v", suite, name, expected, got)
				}
			}
		}
	}

	t.Run("allow all", func(t *testing.T) {
		t.Parallel()

		isIncluded := sel.MakeFilter(nil, nil)
		if !isIncluded("any", "thing") {
			t.Error("expected everything to be selected")
		}
		check(t, isIncluded, cases)
	})

	t.Run("include", func(t *testing.T) {
		t.Parallel()

		includeFilter := []string{
			"basics.*",
			"iter.next",
			"iter.remove",
			"growth",
		}

		want := map[string]map[string]bool{
			"basics": {
				"add":    true,
				"remove": true,
			},
			"iter": {
				"next":   true,
				"remove": true,
				"set":    false,
			},
			"growth": {
				"double": true,
			},
			"other": {
				"add": false,
			},
		}

		check(t, sel.MakeFilter(includeFilter, nil), want)
	})

	t.Run("exclude", func(t *testing.T) {
		t.Parallel()

		excludeFilter := []string{
			"basics.*",
			"iter.next",
		}

		want := map[string]map[string]bool{
			"basics": {
				"add": false,
			},
			"iter": {
				"next": false,
				"set":  true,
			},
			"other": {
				"add": true,
			},
		}

		check(t, sel.MakeFilter(nil, excludeFilter), want)
	})

	t.Run("include with exclude", func(t *testing.T) {
		t.Parallel()

		includeFilter := []string{
			"basics.*",
			"iter.next",
			"iter.set",
		}

		excludeFilter := []string{
			"basics.remove",
			"iter.*",
		}

		want := map[string]map[string]bool{
			"basics": {
				"add":    true,
				"remove": false,
			},
			"iter": {
				"next": false,
				"set":  false,
			},
			"other": {
				"add": false,
			},
		}

		check(t, sel.MakeFilter(includeFilter, excludeFilter), want)
	})

	t.Run("wildcard wins over names", func(t *testing.T) {
		t.Parallel()

		want := map[string]map[string]bool{
			"iter": {
				"next": true,
				"set":  true,
			},
		}

		check(t, sel.MakeFilter([]string{"iter.next", "iter.*", "iter.set"}, nil), want)
	})
}
