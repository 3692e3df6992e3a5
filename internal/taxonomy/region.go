package taxonomy

import "strings"

// Region identifies where a post belongs: either an extra board by name, or
// a main category with an optional sub category. The hyphenated string form
// exists only at the storage/URL boundary; everything in between works with
// this value.
type Region struct {
	Main  string
	Sub   string
	Extra bool
}

// Region builds a region from a main/sub selection. When main is an extra
// board the sub selection is ignored.
func (t *Table) Region(main, sub string) Region {
	if t.IsExtraBoard(main) {
		return Region{Main: main, Extra: true}
	}
	return Region{Main: main, Sub: sub}
}

// Encode returns the canonical region string for a main/sub selection
func (t *Table) Encode(main, sub string) string {
	return t.Region(main, sub).String()
}

// Decode parses a canonical region string. An exact extra-board match wins;
// otherwise the string splits on the first hyphen. Unknown mains pass
// through unchanged so stored regions from newer taxonomies still resolve.
func (t *Table) Decode(region string) Region {
	if t.IsExtraBoard(region) {
		return Region{Main: region, Extra: true}
	}
	main, sub, _ := strings.Cut(region, "-")
	return Region{Main: main, Sub: sub}
}

// String serializes a region to its canonical form: the board name verbatim
// for extra boards, otherwise "main-sub" with a trailing hyphen when no sub
// category is selected.
func (r Region) String() string {
	if r.Extra {
		return r.Main
	}
	return r.Main + "-" + r.Sub
}

// Known reports whether the region's main component is part of the taxonomy
func (t *Table) Known(r Region) bool {
	return t.IsMain(r.Main) || t.IsExtraBoard(r.Main)
}
