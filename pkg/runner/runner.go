package runner

import (
	"fmt"

	"github.com/a11yaudit/a11yaudit/pkg/engine"
)

// ForEngine returns the check runner for the requested engine.
func ForEngine(tag engine.Tag, cfg Config) (engine.Runner, error) {
	switch tag {
	case engine.Axe:
		return NewAxeRunner(cfg), nil
	case engine.Pa11y:
		return NewPa11yRunner(cfg), nil
	default:
		return nil, fmt.Errorf("unknown engine %q", tag)
	}
}
