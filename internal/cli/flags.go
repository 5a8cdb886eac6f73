package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/spf13/pflag"
)

// enumValue is a string flag restricted to a fixed set of values.
type enumValue struct {
	value    string
	allowed  map[string]bool
	typeName string
}

var _ pflag.Value = (*enumValue)(nil)

func newEnumValue(typeName, def string, allowed map[string]bool) *enumValue {
	return &enumValue{value: def, allowed: allowed, typeName: typeName}
}

func (e *enumValue) String() string { return e.value }

func (e *enumValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !e.allowed[s] {
		return fmt.Errorf("must be one of %s", strings.Join(e.options(), ", "))
	}
	e.value = s
	return nil
}

func (e *enumValue) Type() string { return e.typeName }

func (e *enumValue) options() []string {
	out := make([]string, 0, len(e.allowed))
	for k := range e.allowed {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func goalTypeFlag(def string) *enumValue {
	return newEnumValue("goalType", def, domain.ValidGoalTypes)
}

func levelFlag(def string) *enumValue {
	return newEnumValue("level", def, domain.ValidSkillLevels)
}

// addGoalShapeFlags registers --type and --level on fs.
func addGoalShapeFlags(fs *pflag.FlagSet, goalType, level *enumValue) {
	fs.Var(goalType, "type", "Goal type: "+strings.Join(goalType.options(), ", "))
	fs.Var(level, "level", "Current level: "+strings.Join(level.options(), ", "))
}
