package flag

import (
	"fmt"
	"strings"
)

// StringEnumFlag is a flag.Value that only accepts one of the given strings.
type StringEnumFlag struct {
	choices []string
	value   string
}

func NewStringEnumFlag(choices []string, defaultChoice string) *StringEnumFlag {
	return &StringEnumFlag{
		choices: choices,
		value:   defaultChoice,
	}
}

func (flag *StringEnumFlag) Set(value string) error {
	for _, choice := range flag.choices {
		if value == choice {
			flag.value = value
			return nil
		}
	}
	return fmt.Errorf("invalid value: '%v' (expected one of {%v})",
		value, strings.Join(flag.choices, "|"))
}

func (flag *StringEnumFlag) String() string {
	return flag.value
}

func (flag *StringEnumFlag) Value() string {
	return flag.value
}
