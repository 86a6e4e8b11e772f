package terminal

import (
	"testing"

	"Ponk/core"

	"github.com/stretchr/testify/assert"
)

func TestGetCellsFromChar(t *testing.T) {
	cells := GetCellsFromChar('1')

	assert.Len(t, cells, 8)
	assert.Contains(t, cells, [2]int{1, 0})
	assert.Contains(t, cells, [2]int{2, 4})
	assert.Nil(t, GetCellsFromChar(' '))
	assert.Nil(t, GetCellsFromChar('x'))
}

func TestGetCellsStayInsideGlyph(t *testing.T) {
	for ch := '0'; ch <= '9'; ch++ {
		for _, c := range GetCellsFromChar(ch) {
			assert.Less(t, c[0], letterWidth)
			assert.Less(t, c[1], letterHeight)
		}
	}
}

func TestTextWidth(t *testing.T) {
	assert.Equal(t, 3, textWidth("8"))
	assert.Equal(t, 7, textWidth("12"))
	assert.Equal(t, 0, textWidth(""))
	assert.Equal(t, 31, textWidth(core.Scoreboard{}.Text()))
}
