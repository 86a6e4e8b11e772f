package terminal

// 3x5 block digits, one string per row
var digitRows = map[rune][5]string{
	'0': {"###", "# #", "# #", "# #", "###"},
	'1': {" # ", "## ", " # ", " # ", "###"},
	'2': {"###", "  #", "###", "#  ", "###"},
	'3': {"###", "  #", "###", "  #", "###"},
	'4': {"# #", "# #", "###", "  #", "  #"},
	'5': {"###", "#  ", "###", "  #", "###"},
	'6': {"###", "#  ", "###", "# #", "###"},
	'7': {"###", "  #", "  #", "  #", "  #"},
	'8': {"###", "# #", "###", "# #", "###"},
	'9': {"###", "# #", "###", "  #", "###"},
}

const letterWidth = 3
const letterHeight = 5
const letterGap = 1

// GetCellsFromChar returns the filled (col, row) cells of a digit glyph.
// Anything that is not a digit, a space included, has no cells.
func GetCellsFromChar(ch rune) [][2]int {
	rows, ok := digitRows[ch]
	if !ok {
		return nil
	}
	var cells [][2]int
	for r, row := range rows {
		for c, px := range row {
			if px == '#' {
				cells = append(cells, [2]int{c, r})
			}
		}
	}
	return cells
}

// textWidth is the cell width of word drawn with drawLetters.
func textWidth(word string) int {
	n := 0
	for _, ch := range word {
		if _, ok := digitRows[ch]; ok {
			n += letterWidth + letterGap
		} else {
			n++
		}
	}
	if n > 0 && lastIsDigit(word) {
		n -= letterGap
	}
	return n
}

func lastIsDigit(word string) bool {
	r := []rune(word)
	_, ok := digitRows[r[len(r)-1]]
	return ok
}
