package scenario

import (
	_ "embed"
)

//go:embed builtin.yaml
var builtinYAML []byte

// Builtin returns the scenarios shipped with the module. They cover every
// sequence operation, including its error cases.
func Builtin() []Scenario {
	scenarios, err := Parse(builtinYAML)
	if err != nil {
		panic("scenario: invalid built-in scenarios: " + err.Error())
	}
	return scenarios
}
