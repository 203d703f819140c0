package game

import "fmt"

// MaxSkills is the number of skill slots on a character card.
const MaxSkills = 4

// CharacterCard is a playable character with its level, stats and skills.
type CharacterCard struct {
	name   string
	level  CharacterLevel
	hp     int
	atk    int
	def    int
	skills []Skill
}

// NewCharacterCard validates every field and copies skills, so later
// changes to the caller's slice are not observed.
func NewCharacterCard(name string, level CharacterLevel, hp, atk, def int, skills []Skill) (*CharacterCard, error) {
	if level.IsZero() {
		return nil, fieldErr("level", level, ErrInvalidComposite)
	}
	if hp < 0 {
		return nil, fieldErr("hp", hp, fmt.Errorf("%w: want >= 0", ErrOutOfRange))
	}
	if atk <= 0 {
		return nil, fieldErr("atk", atk, fmt.Errorf("%w: want > 0", ErrOutOfRange))
	}
	if def <= 0 {
		return nil, fieldErr("def", def, fmt.Errorf("%w: want > 0", ErrOutOfRange))
	}
	if len(skills) > MaxSkills {
		return nil, fieldErr("skills", len(skills), fmt.Errorf("%w: more than %d skills", ErrInvalidComposite, MaxSkills))
	}
	for i, s := range skills {
		if s.IsZero() {
			return nil, fieldErr(fmt.Sprintf("skills[%d]", i), s, ErrInvalidComposite)
		}
	}
	return &CharacterCard{
		name:   cleanName(name),
		level:  level,
		hp:     hp,
		atk:    atk,
		def:    def,
		skills: append([]Skill(nil), skills...),
	}, nil
}

// ParseCharacterCard validates a character decoded from loosely typed
// input. Stats are checked for integer-ness in hp, atk, def order.
func ParseCharacterCard(name string, level CharacterLevel, hp, atk, def float64, skills []Skill) (*CharacterCard, error) {
	h, err := wholeNumber("hp", hp)
	if err != nil {
		return nil, err
	}
	a, err := wholeNumber("atk", atk)
	if err != nil {
		return nil, err
	}
	d, err := wholeNumber("def", def)
	if err != nil {
		return nil, err
	}
	return NewCharacterCard(name, level, h, a, d, skills)
}

func (c *CharacterCard) Name() string          { return c.name }
func (c *CharacterCard) Level() CharacterLevel { return c.level }
func (c *CharacterCard) HP() int               { return c.hp }
func (c *CharacterCard) ATK() int              { return c.atk }
func (c *CharacterCard) DEF() int              { return c.def }

// Skills returns a copy of the character's skills.
func (c *CharacterCard) Skills() []Skill {
	return append([]Skill(nil), c.skills...)
}

func (c *CharacterCard) String() string {
	return fmt.Sprintf("%s %s hp=%d atk=%d def=%d", c.name, c.level, c.hp, c.atk, c.def)
}
