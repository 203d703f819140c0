package game

// BoardFile is the YAML form of a board. Numbers are decoded as float64
// so that fractional values reach validation and fail there instead of
// being rejected by the decoder with a less useful message.
type BoardFile struct {
	Points   float64  `yaml:"points"`
	Opponent SideFile `yaml:"opponent"`
	Player   SideFile `yaml:"player"`
}

// SideFile describes one player's side. A null entry in Characters is an
// empty slot.
type SideFile struct {
	Deck       float64          `yaml:"deck"`
	Characters []*CharacterFile `yaml:"characters"`
	Skills     []SkillSlotFile  `yaml:"skills"`
	Hand       []CardFile       `yaml:"hand"`
}

type CharacterFile struct {
	Name   string      `yaml:"name"`
	Level  LevelFile   `yaml:"level"`
	HP     float64     `yaml:"hp"`
	ATK    float64     `yaml:"atk"`
	DEF    float64     `yaml:"def"`
	Skills []SkillFile `yaml:"skills"`
}

type LevelFile struct {
	Group string  `yaml:"group"`
	Level float64 `yaml:"level"`
}

type SkillFile struct {
	Name  string `yaml:"name"`
	Stage string `yaml:"stage"` // "move" | "attack" | "defense"
}

type SkillSlotFile struct {
	SkillFile `yaml:",inline"`
	Active    bool `yaml:"active"`
}

type CardFile struct {
	First  HalfFile `yaml:"first"`
	Second HalfFile `yaml:"second"`
}

type HalfFile struct {
	Kind   string  `yaml:"kind"`
	Weight float64 `yaml:"weight"`
}
