package game

import "fmt"

// CardKind is the action printed on one half of a card.
type CardKind string

const (
	KindMelee       CardKind = "melee"
	KindRanged      CardKind = "ranged"
	KindGuard       CardKind = "guard"
	KindMovement    CardKind = "movement"
	KindSpecial     CardKind = "special"
	KindDraw        CardKind = "draw"
	KindHeal        CardKind = "heal"
	KindHolyWater   CardKind = "holy-water"
	KindCurse       CardKind = "curse"
	KindHolyGrail   CardKind = "holy-grail"
	KindCursedGrail CardKind = "cursed-grail"
)

// weightBounds holds the inclusive weight range for each kind. Kinds
// without a weight concept are pinned to zero.
var weightBounds = map[CardKind][2]int{
	KindMelee:       {1, 8},
	KindRanged:      {1, 8},
	KindGuard:       {1, 5},
	KindMovement:    {1, 5},
	KindSpecial:     {1, 5},
	KindDraw:        {1, 5},
	KindCurse:       {1, 5},
	KindHeal:        {1, 3},
	KindHolyWater:   {0, 0},
	KindHolyGrail:   {0, 0},
	KindCursedGrail: {0, 0},
}

// Valid reports whether k is one of the known card kinds.
func (k CardKind) Valid() bool {
	_, ok := weightBounds[k]
	return ok
}

// WeightBounds returns the inclusive weight range allowed for k.
func (k CardKind) WeightBounds() (lo, hi int) {
	b := weightBounds[k]
	return b[0], b[1]
}

// CardHalf is one validated half of a two-part card.
type CardHalf struct {
	kind   CardKind
	weight int
}

func NewCardHalf(kind CardKind, weight int) (CardHalf, error) {
	if !kind.Valid() {
		return CardHalf{}, fieldErr("card kind", kind, ErrInvalidCategory)
	}
	lo, hi := kind.WeightBounds()
	if err := checkRange(string(kind)+" weight", weight, lo, hi); err != nil {
		return CardHalf{}, err
	}
	return CardHalf{kind: kind, weight: weight}, nil
}

// ParseCardHalf validates a card half decoded from loosely typed input.
// Kind membership is checked before the weight.
func ParseCardHalf(kind string, weight float64) (CardHalf, error) {
	k := CardKind(kind)
	if !k.Valid() {
		return CardHalf{}, fieldErr("card kind", kind, ErrInvalidCategory)
	}
	w, err := wholeNumber(kind+" weight", weight)
	if err != nil {
		return CardHalf{}, err
	}
	return NewCardHalf(k, w)
}

func (h CardHalf) Kind() CardKind { return h.kind }
func (h CardHalf) Weight() int    { return h.weight }

// IsZero reports whether h was not produced by NewCardHalf.
func (h CardHalf) IsZero() bool { return h.kind == "" }

func (h CardHalf) String() string {
	return fmt.Sprintf("%s:%d", h.kind, h.weight)
}

// Card is a two-part card; either half may be played.
type Card struct {
	first  CardHalf
	second CardHalf
}

func NewCard(first, second CardHalf) (Card, error) {
	if first.IsZero() {
		return Card{}, fieldErr("first", first, ErrInvalidComposite)
	}
	if second.IsZero() {
		return Card{}, fieldErr("second", second, ErrInvalidComposite)
	}
	return Card{first: first, second: second}, nil
}

func (c Card) First() CardHalf  { return c.first }
func (c Card) Second() CardHalf { return c.second }

func (c Card) String() string {
	return c.first.String() + "/" + c.second.String()
}
