package render

import "unlight/internal/game"

// Rect is a board region.
type Rect struct {
	X, Y, W, H float64
}

// Fixed board layout. Opponent along the top, player along the bottom,
// decks down the right-hand column.
var (
	opponentChars   = [game.MaxCharacters]Point{{0, 0}, {170, 0}, {340, 0}}
	opponentHand    = Rect{510, 0, 250, 30}
	opponentSkills  = Point{0, 30}
	opponentSkillDX = 150.0
	questArea       = Rect{600, 30, 160, 30}
	opponentDeck    = Rect{760, 0, 100, 60}

	currentChar     = Point{0, 440}
	currentPortrait = Rect{0, 470, 170, 210}
	playerSkills    = Point{170, 440}
	playerSkillDX   = 147.0
	playerHand      = Rect{170, 470, 590, 95}
	chatArea        = Rect{170, 565, 340, 85}
	otherChars      = [game.MaxCharacters - 1]Point{{170, 650}, {340, 650}}
	pointsArea      = Rect{510, 565, 250, 115}
	playerDeck      = Rect{760, 440, 100, 240}

	deckBack = rgb(40, 40, 48)
)

// Renderer paints whole boards. Placeholder colors the regions that have
// no model; it must be set.
type Renderer struct {
	Placeholder Placeholder
}

func NewRenderer(p Placeholder) *Renderer {
	return &Renderer{Placeholder: p}
}

// Paint draws every region of b onto s in a fixed order.
func (r *Renderer) Paint(s Surface, b *game.Board) {
	if b == nil {
		return
	}
	opp, me := b.Opponent(), b.Player()

	for i, p := range opponentChars {
		PaintCharacter(s, p.X, p.Y, slot(opp.Characters, i))
	}
	r.placeholder(s, opponentHand)
	for i := 0; i < game.MaxSkills; i++ {
		r.skill(s, opponentSkills.X+float64(i)*opponentSkillDX+1, opponentSkills.Y, opp.Skills, i)
	}
	r.placeholder(s, questArea)
	r.deck(s, opponentDeck, opp.Deck, 16)

	PaintCharacter(s, currentChar.X, currentChar.Y, slot(me.Characters, 0))
	r.placeholder(s, currentPortrait)
	for i := 0; i < game.MaxSkills; i++ {
		r.skill(s, playerSkills.X+float64(i)*playerSkillDX, playerSkills.Y, me.Skills, i)
	}
	r.placeholder(s, playerHand)
	r.placeholder(s, chatArea)
	for i, p := range otherChars {
		PaintCharacter(s, p.X, p.Y, slot(me.Characters, i+1))
	}
	PaintPoints(s, pointsArea.X, pointsArea.Y, pointsArea.W, pointsArea.H, b.Points())
	r.deck(s, playerDeck, me.Deck, playerDeck.H-deckTileH-6)
}

func (r *Renderer) placeholder(s Surface, a Rect) {
	s.FillRect(a.X, a.Y, a.W, a.H, r.Placeholder.Next())
}

func (r *Renderer) skill(s Surface, x, y float64, slots []game.SkillSlot, i int) {
	if i >= len(slots) {
		s.FillRect(x, y, skillPanelW, skillPanelH, r.Placeholder.Next())
		return
	}
	PaintSkill(s, x, y, slots[i])
}

func (r *Renderer) deck(s Surface, a Rect, n int, dy float64) {
	s.FillRect(a.X, a.Y, a.W, a.H, deckBack)
	PaintDeck(s, a.X+5, a.Y+dy, n)
}

func slot(chars []*game.CharacterCard, i int) *game.CharacterCard {
	if i < len(chars) {
		return chars[i]
	}
	return nil
}
