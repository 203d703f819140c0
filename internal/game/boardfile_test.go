package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBoard(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.yaml")
	err := os.WriteFile(path, []byte(body), 0o600) //nolint:gosec // test file permissions are acceptable
	require.NoError(t, err)
	return path
}

func TestLoadBoard_Valid(t *testing.T) {
	path := writeBoard(t, `points: 2
opponent:
  deck: 10
  characters:
    - name: "X"
      level: {group: M, level: 10}
      hp: 1200
      atk: 4
      def: 6
    - null
player:
  deck: 5
  characters:
    - name: "Y"
      level: {group: L, level: 5}
      hp: 10
      atk: 3
      def: 2
      skills:
        - {name: Rush, stage: move}
  skills:
    - {name: Rush, stage: move, active: true}
  hand:
    - first: {kind: melee, weight: 8}
      second: {kind: cursed-grail, weight: 0}
`)

	b, err := LoadBoard(path)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Points())

	opp := b.Opponent()
	assert.Equal(t, 10, opp.Deck)
	require.Len(t, opp.Characters, 2)
	assert.Equal(t, "X", opp.Characters[0].Name())
	assert.Nil(t, opp.Characters[1])

	me := b.Player()
	require.Len(t, me.Characters, 1)
	assert.Equal(t, "L5", me.Characters[0].Level().String())
	require.Len(t, me.Characters[0].Skills(), 1)
	assert.Equal(t, StageMove, me.Characters[0].Skills()[0].Stage())
	require.Len(t, me.Skills, 1)
	assert.True(t, me.Skills[0].Active)
	require.Len(t, me.Hand, 1)
	assert.Equal(t, "melee:8/cursed-grail:0", me.Hand[0].String())
}

func TestLoadBoard_DemoFile(t *testing.T) {
	b, err := LoadBoard(filepath.Join("..", "..", "boards", "demo.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "龍鰯", b.Opponent().Characters[0].Name())
	assert.Equal(t, 22, b.Player().Deck)
}

func TestLoadBoard_InvalidFile(t *testing.T) {
	_, err := LoadBoard("non_existent_file.yaml")
	assert.Error(t, err)
}

func TestLoadBoard_InvalidYAML(t *testing.T) {
	path := writeBoard(t, `points: 1
opponent:
  characters: [unclosed bracket
`)
	_, err := LoadBoard(path)
	assert.Error(t, err)
}

func TestLoadBoard_UnknownKey(t *testing.T) {
	path := writeBoard(t, "points: 1\nbonus: 3\n")
	_, err := LoadBoard(path)
	assert.Error(t, err)
}

func TestParseBoard_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
	}{
		{
			name: "fractional weight",
			body: `player:
  hand:
    - first: {kind: melee, weight: 2.5}
      second: {kind: guard, weight: 1}
`,
			want: ErrNotAnInteger,
		},
		{
			name: "unknown kind",
			body: `player:
  hand:
    - first: {kind: sword, weight: 2}
      second: {kind: guard, weight: 1}
`,
			want: ErrInvalidCategory,
		},
		{
			name: "weight out of range",
			body: `player:
  hand:
    - first: {kind: heal, weight: 4}
      second: {kind: guard, weight: 1}
`,
			want: ErrOutOfRange,
		},
		{
			name: "bad level",
			body: `opponent:
  characters:
    - {name: X, level: {group: EP, level: 2}, hp: 1, atk: 1, def: 1}
`,
			want: ErrInvalidLevel,
		},
		{
			name: "missing level",
			body: `opponent:
  characters:
    - {name: X, hp: 1, atk: 1, def: 1}
`,
			want: ErrInvalidCategory,
		},
		{
			name: "fractional hp",
			body: `opponent:
  characters:
    - {name: X, level: {group: N, level: 1}, hp: 1.5, atk: 1, def: 1}
`,
			want: ErrNotAnInteger,
		},
		{
			name: "five character skills",
			body: `opponent:
  characters:
    - name: X
      level: {group: N, level: 1}
      hp: 1
      atk: 1
      def: 1
      skills:
        - {name: a, stage: move}
        - {name: b, stage: move}
        - {name: c, stage: move}
        - {name: d, stage: move}
        - {name: e, stage: move}
`,
			want: ErrInvalidComposite,
		},
		{
			name: "bad stage",
			body: `player:
  skills:
    - {name: a, stage: fly}
`,
			want: ErrInvalidCategory,
		},
		{
			name: "fractional deck",
			body: "opponent:\n  deck: 3.5\n",
			want: ErrNotAnInteger,
		},
		{
			name: "deck beyond the column",
			body: "player:\n  deck: 39\n",
			want: ErrOutOfRange,
		},
		{
			name: "huge level",
			body: `opponent:
  characters:
    - name: X
      level: {group: M, level: 1e10}
      hp: 1
      atk: 1
      def: 1
`,
			want: ErrInvalidLevel,
		},
		{
			name: "negative points",
			body: "points: -1\n",
			want: ErrOutOfRange,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := ParseBoard([]byte(tc.body))
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, b)
		})
	}
}
