package main

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/percona/percona-iulist/list"
)

const kindAll = "all"

// kindFlag is a --kind value. It accepts a list kind, or "all" when allowAll is set.
type kindFlag struct {
	value    string
	allowAll bool
}

var _ pflag.Value = (*kindFlag)(nil)

func (f *kindFlag) String() string {
	return f.value
}

func (f *kindFlag) Set(s string) error {
	if f.allowAll && s == kindAll {
		f.value = s
		return nil
	}

	if _, err := list.ParseKind(s); err != nil {
		return err //nolint:wrapcheck
	}

	f.value = s
	return nil
}

func (f *kindFlag) Type() string {
	return "kind"
}

// Kinds returns the selected kinds.
func (f *kindFlag) Kinds() ([]list.Kind, error) {
	if f.allowAll && f.value == kindAll {
		return list.Kinds(), nil
	}

	kind, err := list.ParseKind(f.value)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return []list.Kind{kind}, nil
}

func (f *kindFlag) usage() string {
	names := make([]string, 0, len(list.Kinds())+1)
	for _, k := range list.Kinds() {
		names = append(names, string(k))
	}
	if f.allowAll {
		names = append(names, kindAll)
	}

	return "List kind: " + strings.Join(names, ", ")
}

func addKindFlag(flags *pflag.FlagSet, f *kindFlag) {
	flags.Var(f, "kind", f.usage())
}
