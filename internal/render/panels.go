package render

import (
	"image/color"
	"strconv"

	"unlight/internal/game"
)

// Panel geometry.
const (
	charPanelW = 140
	charPanelH = 30
	hpCellW    = 30

	skillPanelW = 148
	skillPanelH = 30
	ribbonInner = 12
	ribbonOuter = 22

	deckTileW      = 20
	deckTileH      = 28
	deckTileOffset = 2
)

// Above this HP the number no longer fits the cell and ∞ is shown instead.
const maxShownHP = 99

const infinity = "∞"

var (
	black       = rgb(0, 0, 0)
	white       = rgb(255, 255, 255)
	panelGrey   = rgb(196, 196, 196)
	hpCellBlue  = rgb(48, 60, 88)
	hpCellEmpty = rgb(188, 188, 188)

	activeTop      = rgb(255, 236, 170)
	activeBottom   = rgb(214, 168, 64)
	inactiveTop    = rgb(214, 214, 214)
	inactiveBottom = rgb(150, 150, 150)

	deckFill    = rgb(92, 70, 124)
	pointsBack  = rgb(60, 60, 72)
	targetOuter = rgb(120, 30, 30)
	targetMid   = rgb(230, 200, 120)
	targetInner = rgb(180, 40, 40)
)

var stageColors = map[game.Stage]color.RGBA{
	game.StageMove:    rgb(64, 160, 72),
	game.StageAttack:  rgb(200, 56, 48),
	game.StageDefense: rgb(48, 96, 200),
}

var stageTags = map[game.Stage]string{
	game.StageMove:    "MOV",
	game.StageAttack:  "ATK",
	game.StageDefense: "DEF",
}

// PaintCharacter draws the 140×30 name/stat block and the 30×30 HP cell
// to its right. A nil character leaves an empty slot.
func PaintCharacter(s Surface, x, y float64, c *game.CharacterCard) {
	s.FillRect(x, y, charPanelW, charPanelH, panelGrey)
	if c == nil {
		s.FillRect(x+charPanelW, y, hpCellW, charPanelH, hpCellEmpty)
		return
	}
	s.FillRect(x+charPanelW, y, hpCellW, charPanelH, hpCellBlue)
	s.Line(x+2, y+20, x+charPanelW-2, y+20, 1, black)

	s.Text(x+10, y+5, 15, c.Name(), black)
	s.Text(x+7, y+22, 9, "LV"+strconv.Itoa(c.Level().Level()), black)
	s.Text(x+42, y+22, 9, "ATK "+strconv.Itoa(c.ATK()), black)
	s.Text(x+82, y+22, 9, "DEF "+strconv.Itoa(c.DEF()), black)

	if c.HP() <= maxShownHP {
		s.Text(x+142, y+22, 9, "HP "+strconv.Itoa(c.HP()), panelGrey)
		return
	}
	s.Text(x+142, y+22, 9, "HP", panelGrey)
	s.Text(x+157, y+19, 14, infinity, panelGrey)
}

// PaintSkill draws a 148×30 skill panel: gradient body (gold when active),
// centered name and a corner ribbon colored by stage.
func PaintSkill(s Surface, x, y float64, slot game.SkillSlot) {
	top, bottom := inactiveTop, inactiveBottom
	if slot.Active {
		top, bottom = activeTop, activeBottom
	}
	s.GradientRect(x, y, skillPanelW, skillPanelH, top, bottom)
	s.StrokeRect(x, y, skillPanelW, skillPanelH, 1, black)

	name := slot.Skill.Name()
	tw := s.TextWidth(name, 12)
	s.Text(x+(skillPanelW-tw)/2, y+9, 12, name, black)

	// Diagonal band across the top-left corner; the tag runs along it.
	stage := slot.Skill.Stage()
	s.FillPolygon([]Point{
		{x, y + ribbonInner},
		{x + ribbonInner, y},
		{x + ribbonOuter, y},
		{x, y + ribbonOuter},
	}, stageColors[stage])
	mid := (ribbonInner + ribbonOuter) / 4.0
	cx, cy := x+mid, y+mid
	tag := stageTags[stage]
	s.Rotate(45, cx, cy, func() {
		s.Text(cx-s.TextWidth(tag, 6)/2, cy-3, 6, tag, white)
	})
}

// PaintDeck draws one outlined tile per card left in the deck, each
// shifted right of the one before.
func PaintDeck(s Surface, x, y float64, n int) {
	for i := 0; i < n; i++ {
		tx := x + float64(i)*deckTileOffset
		s.FillRect(tx, y, deckTileW, deckTileH, deckFill)
		s.StrokeRect(tx, y, deckTileW, deckTileH, 0.5, black)
	}
}

// PaintPoints draws the point total over a ruled line and the ringed OK
// target inside a w×h panel.
func PaintPoints(s Surface, x, y, w, h float64, points int) {
	s.FillRect(x, y, w, h, pointsBack)

	s.Text(x+20, y+18, 28, strconv.Itoa(points), white)
	s.Line(x+15, y+55, x+125, y+55, 1, white)
	s.Text(x+20, y+60, 9, "POINT", white)

	cx, cy := x+w-60, y+h/2
	s.FillCircle(cx, cy, 44, targetOuter)
	s.FillCircle(cx, cy, 36, targetMid)
	s.FillCircle(cx, cy, 28, targetInner)
	s.StrokeCircle(cx, cy, 44, 1.5, white)
	s.Text(cx-s.TextWidth("OK", 18)/2, cy-9, 18, "OK", white)
}
