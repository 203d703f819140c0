package game

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Stage is the phase of a turn a skill fires in.
type Stage string

const (
	StageMove    Stage = "move"
	StageAttack  Stage = "attack"
	StageDefense Stage = "defense"
)

func (s Stage) Valid() bool {
	switch s {
	case StageMove, StageAttack, StageDefense:
		return true
	}
	return false
}

// Skill is a named character ability bound to one stage.
type Skill struct {
	name  string
	stage Stage
}

func NewSkill(name string, stage Stage) (Skill, error) {
	name = cleanName(name)
	if name == "" {
		return Skill{}, fieldErr("skill name", name, ErrOutOfRange)
	}
	if !stage.Valid() {
		return Skill{}, fieldErr("skill stage", stage, ErrInvalidCategory)
	}
	return Skill{name: name, stage: stage}, nil
}

func ParseSkill(name, stage string) (Skill, error) {
	return NewSkill(name, Stage(stage))
}

func (s Skill) Name() string   { return s.name }
func (s Skill) Stage() Stage   { return s.stage }
func (s Skill) IsZero() bool   { return s.name == "" }
func (s Skill) String() string { return s.name + "(" + string(s.stage) + ")" }

// cleanName trims surrounding space and folds names to NFC so that the
// same CJK name typed on different systems compares equal.
func cleanName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
