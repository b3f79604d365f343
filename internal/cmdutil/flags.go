package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// StringEnumFlag defines a string flag that only accepts the listed values.
// Rejected values produce a parse error naming the valid set.
func StringEnumFlag(cmd *cobra.Command, p *string, name, shorthand, defaultValue string, options []string, usage string) *pflag.Flag {
	*p = defaultValue
	val := &enumValue{value: p, options: options}
	return cmd.Flags().VarPF(val, name, shorthand, fmt.Sprintf("%s: {%s}", usage, strings.Join(options, "|")))
}

type enumValue struct {
	value   *string
	options []string
}

func (e *enumValue) Set(s string) error {
	for _, o := range e.options {
		if s == o {
			*e.value = s
			return nil
		}
	}
	return fmt.Errorf("valid values are {%s}", strings.Join(e.options, "|"))
}

func (e *enumValue) String() string { return *e.value }

func (e *enumValue) Type() string { return "string" }
