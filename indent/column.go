package indent

// ExpandedColumn returns the effective column of the character at toIdx
// (0-based) in line, after expanding tabs to tabWidth. A tab advances the
// column to the next multiple of tabWidth strictly greater than the current
// column; every other character advances it by one. Columns are counted in
// runes, so multi-byte characters occupy one column.
func ExpandedColumn(line string, toIdx, tabWidth int) int {
	col := 0
	i := 0

	for _, r := range line {
		if i >= toIdx {
			break
		}
		if r == '\t' {
			col = (col/tabWidth + 1) * tabWidth
		} else {
			col++
		}
		i++
	}

	return col
}
