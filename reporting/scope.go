package reporting

import "strings"

// ScopeColumns narrows all to the columns relevant to system: every direct
// column, the details columns of that system and every removal column.
// Order is preserved.
func ScopeColumns(all Columns, system string) Columns {
	out := make(Columns, 0, len(all))
	for _, col := range all {
		switch {
		case col.IsRemoval():
			out = append(out, col)
		case col.IsDetails():
			if strings.EqualFold(col.DetailsSystem(), system) {
				out = append(out, col)
			}
		default:
			out = append(out, col)
		}
	}
	return out
}
