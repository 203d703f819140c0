package game

import (
	"errors"
	"strconv"
)

// CharacterGroup is the coarse tier a character belongs to.
type CharacterGroup string

const (
	GroupL  CharacterGroup = "L"
	GroupR  CharacterGroup = "R"
	GroupEP CharacterGroup = "EP"
	GroupN  CharacterGroup = "N"
	GroupM  CharacterGroup = "M"
)

func (g CharacterGroup) Valid() bool {
	switch g {
	case GroupL, GroupR, GroupEP, GroupN, GroupM:
		return true
	}
	return false
}

// allows reports whether level is permitted within g. M tops out at 3
// except for the special level 10.
func (g CharacterGroup) allows(level int) bool {
	if level < 1 {
		return false
	}
	switch g {
	case GroupM:
		return level <= 3 || level == 10
	case GroupL, GroupR:
		return level <= 5
	default:
		return level == 1
	}
}

// CharacterLevel pairs a group with a level inside that group's ceiling.
type CharacterLevel struct {
	group CharacterGroup
	level int
}

func NewCharacterLevel(group CharacterGroup, level int) (CharacterLevel, error) {
	if !group.Valid() {
		return CharacterLevel{}, fieldErr("character group", group, ErrInvalidCategory)
	}
	if !group.allows(level) {
		return CharacterLevel{}, fieldErr(string(group)+" level", level, ErrInvalidLevel)
	}
	return CharacterLevel{group: group, level: level}, nil
}

// ParseCharacterLevel validates a level decoded from loosely typed input.
// The level must be whole before the group is looked at.
func ParseCharacterLevel(group string, level float64) (CharacterLevel, error) {
	n, err := wholeNumber("level", level)
	if errors.Is(err, ErrOutOfRange) {
		// Too big for an int, so above every group's ceiling.
		g := CharacterGroup(group)
		if !g.Valid() {
			return CharacterLevel{}, fieldErr("character group", g, ErrInvalidCategory)
		}
		return CharacterLevel{}, fieldErr(group+" level", level, ErrInvalidLevel)
	}
	if err != nil {
		return CharacterLevel{}, err
	}
	return NewCharacterLevel(CharacterGroup(group), n)
}

func (l CharacterLevel) Group() CharacterGroup { return l.group }
func (l CharacterLevel) Level() int            { return l.level }
func (l CharacterLevel) IsZero() bool          { return l.group == "" }

func (l CharacterLevel) String() string {
	return string(l.group) + strconv.Itoa(l.level)
}
