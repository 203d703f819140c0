package game

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBoard loads and validates a board from a YAML file. Any invalid
// object fails the whole load.
func LoadBoard(path string) (*Board, error) {
	cleanPath := filepath.Clean(path)
	b, err := os.ReadFile(cleanPath) //nolint:gosec // board path comes from operator config or flags
	if err != nil {
		return nil, err
	}
	board, err := ParseBoard(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cleanPath, err)
	}
	return board, nil
}

// ParseBoard decodes YAML board data. Unknown keys are rejected.
func ParseBoard(data []byte) (*Board, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f BoardFile
	if err := dec.Decode(&f); err != nil {
		return nil, err
	}
	return f.Build()
}

// Build validates every object in f and assembles the board.
func (f *BoardFile) Build() (*Board, error) {
	opponent, err := f.Opponent.build("opponent")
	if err != nil {
		return nil, err
	}
	player, err := f.Player.build("player")
	if err != nil {
		return nil, err
	}
	points, err := wholeNumber("points", f.Points)
	if err != nil {
		return nil, err
	}
	return NewBoard(opponent, player, points)
}

func (f SideFile) build(name string) (Side, error) {
	deck, err := wholeNumber(name+" deck", f.Deck)
	if err != nil {
		return Side{}, err
	}
	side := Side{Deck: deck}
	for i, cf := range f.Characters {
		if cf == nil {
			side.Characters = append(side.Characters, nil)
			continue
		}
		c, err := cf.build()
		if err != nil {
			return Side{}, fmt.Errorf("%s characters[%d]: %w", name, i, err)
		}
		side.Characters = append(side.Characters, c)
	}
	for i, sf := range f.Skills {
		s, err := ParseSkill(sf.Name, sf.Stage)
		if err != nil {
			return Side{}, fmt.Errorf("%s skills[%d]: %w", name, i, err)
		}
		side.Skills = append(side.Skills, SkillSlot{Skill: s, Active: sf.Active})
	}
	for i, hf := range f.Hand {
		c, err := hf.build()
		if err != nil {
			return Side{}, fmt.Errorf("%s hand[%d]: %w", name, i, err)
		}
		side.Hand = append(side.Hand, c)
	}
	return side, nil
}

func (f *CharacterFile) build() (*CharacterCard, error) {
	level, err := ParseCharacterLevel(f.Level.Group, f.Level.Level)
	if err != nil {
		return nil, err
	}
	skills := make([]Skill, 0, len(f.Skills))
	for _, sf := range f.Skills {
		s, err := ParseSkill(sf.Name, sf.Stage)
		if err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return ParseCharacterCard(f.Name, level, f.HP, f.ATK, f.DEF, skills)
}

func (f CardFile) build() (Card, error) {
	first, err := ParseCardHalf(f.First.Kind, f.First.Weight)
	if err != nil {
		return Card{}, err
	}
	second, err := ParseCardHalf(f.Second.Kind, f.Second.Weight)
	if err != nil {
		return Card{}, err
	}
	return NewCard(first, second)
}
