package game

import "fmt"

// Board slot limits.
const (
	MaxCharacters = 3
	// MaxDeck is as many fanned deck tiles as fit the deck column.
	MaxDeck = 38
)

// SkillSlot is a skill as shown on the board; Active skills are the ones
// whose conditions currently hold.
type SkillSlot struct {
	Skill  Skill
	Active bool
}

// Side is everything the board shows for one player. A nil entry in
// Characters is an empty slot. For the player, Characters[0] is the
// character currently in play.
type Side struct {
	Characters []*CharacterCard
	Skills     []SkillSlot
	Hand       []Card
	Deck       int
}

// Board is the validated input of one render pass.
type Board struct {
	opponent Side
	player   Side
	points   int
}

func NewBoard(opponent, player Side, points int) (*Board, error) {
	if err := validateSide("opponent", opponent); err != nil {
		return nil, err
	}
	if err := validateSide("player", player); err != nil {
		return nil, err
	}
	if points < 0 {
		return nil, fieldErr("points", points, fmt.Errorf("%w: want >= 0", ErrOutOfRange))
	}
	return &Board{
		opponent: copySide(opponent),
		player:   copySide(player),
		points:   points,
	}, nil
}

func validateSide(name string, s Side) error {
	if len(s.Characters) > MaxCharacters {
		return fieldErr(name+" characters", len(s.Characters),
			fmt.Errorf("%w: more than %d characters", ErrInvalidComposite, MaxCharacters))
	}
	if len(s.Skills) > MaxSkills {
		return fieldErr(name+" skills", len(s.Skills),
			fmt.Errorf("%w: more than %d skills", ErrInvalidComposite, MaxSkills))
	}
	for i, sl := range s.Skills {
		if sl.Skill.IsZero() {
			return fieldErr(fmt.Sprintf("%s skills[%d]", name, i), sl.Skill, ErrInvalidComposite)
		}
	}
	for i, c := range s.Hand {
		if c.first.IsZero() || c.second.IsZero() {
			return fieldErr(fmt.Sprintf("%s hand[%d]", name, i), c, ErrInvalidComposite)
		}
	}
	return checkRange(name+" deck", s.Deck, 0, MaxDeck)
}

func copySide(s Side) Side {
	return Side{
		Characters: append([]*CharacterCard(nil), s.Characters...),
		Skills:     append([]SkillSlot(nil), s.Skills...),
		Hand:       append([]Card(nil), s.Hand...),
		Deck:       s.Deck,
	}
}

// Opponent and Player return copies; the board itself never changes.
func (b *Board) Opponent() Side { return copySide(b.opponent) }
func (b *Board) Player() Side   { return copySide(b.player) }
func (b *Board) Points() int    { return b.points }

// DemoBoard builds the prototype's sample board: a level M10 raid boss
// against two R-tier characters.
func DemoBoard() (*Board, error) {
	m10, err := NewCharacterLevel(GroupM, 10)
	if err != nil {
		return nil, err
	}
	mob, err := NewCharacterCard("龍鰯", m10, 1200, 4, 6, nil)
	if err != nil {
		return nil, err
	}

	r2, err := NewCharacterLevel(GroupR, 2)
	if err != nil {
		return nil, err
	}
	r1, err := NewCharacterLevel(GroupR, 1)
	if err != nil {
		return nil, err
	}
	tyrrellSkills, err := skills(
		[2]string{"Thunder Struck", "attack"},
		[2]string{"Weasel", "move"},
	)
	if err != nil {
		return nil, err
	}
	tyrrell, err := NewCharacterCard("泰瑞爾", r2, 9, 8, 8, tyrrellSkills)
	if err != nil {
		return nil, err
	}
	evelyn, err := NewCharacterCard("伊芙琳", r1, 8, 8, 7, nil)
	if err != nil {
		return nil, err
	}

	hand, err := cards(
		cardDef{KindMelee, 3, KindRanged, 2},
		cardDef{KindGuard, 2, KindMovement, 1},
		cardDef{KindHeal, 1, KindDraw, 2},
	)
	if err != nil {
		return nil, err
	}

	var playerSkills []SkillSlot
	for i, sk := range tyrrellSkills {
		playerSkills = append(playerSkills, SkillSlot{Skill: sk, Active: i == 0})
	}

	return NewBoard(
		Side{Characters: []*CharacterCard{mob, nil, nil}, Deck: 18},
		Side{Characters: []*CharacterCard{nil, tyrrell, evelyn}, Skills: playerSkills, Hand: hand, Deck: 22},
		0,
	)
}

func skills(defs ...[2]string) ([]Skill, error) {
	out := make([]Skill, 0, len(defs))
	for _, d := range defs {
		s, err := ParseSkill(d[0], d[1])
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

type cardDef struct {
	first        CardKind
	firstWeight  int
	second       CardKind
	secondWeight int
}

func cards(defs ...cardDef) ([]Card, error) {
	out := make([]Card, 0, len(defs))
	for _, d := range defs {
		first, err := NewCardHalf(d.first, d.firstWeight)
		if err != nil {
			return nil, err
		}
		second, err := NewCardHalf(d.second, d.secondWeight)
		if err != nil {
			return nil, err
		}
		c, err := NewCard(first, second)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
