// Package taxonomy holds the board category structure and the region codec.
// The two-level category table and the flat extra boards are loaded once at
// startup and never mutated; every region string in the system is produced
// and parsed here and nowhere else.
package taxonomy

// Table is the immutable category taxonomy: ordered main categories, each
// with an ordered list of sub categories, plus the flat extra boards.
type Table struct {
	mains    []string
	subs     map[string][]string
	extras   []string
	extraSet map[string]struct{}
	mainSet  map[string]struct{}
}

// Category pairs a main category with its ordered sub categories
type Category struct {
	Main string   `json:"main"`
	Subs []string `json:"subs"`
}

// New builds a taxonomy table from ordered categories and extra boards
func New(categories []Category, extras []string) *Table {
	t := &Table{
		subs:     make(map[string][]string, len(categories)),
		extraSet: make(map[string]struct{}, len(extras)),
		mainSet:  make(map[string]struct{}, len(categories)),
	}
	for _, c := range categories {
		t.mains = append(t.mains, c.Main)
		t.mainSet[c.Main] = struct{}{}
		t.subs[c.Main] = append([]string(nil), c.Subs...)
	}
	for _, e := range extras {
		t.extras = append(t.extras, e)
		t.extraSet[e] = struct{}{}
	}
	return t
}

// Default returns the board's built-in taxonomy
func Default() *Table {
	return New([]Category{
		{Main: "업체추천", Subs: []string{"간판", "전기설비", "인테리어", "철거", "청소"}},
		{Main: "구인구직", Subs: []string{"구인", "구직"}},
		{Main: "부동산", Subs: []string{"매매", "임대"}},
		{Main: "커뮤니티", Subs: []string{"유머게시판", "자유게시판", "질문답변"}},
	}, []string{"공지사항", "중고장터", "갤러리"})
}

// Mains returns the ordered main category names
func (t *Table) Mains() []string {
	return t.mains
}

// Subs returns the ordered sub categories of a main category
func (t *Table) Subs(main string) []string {
	return t.subs[main]
}

// ExtraBoards returns the ordered extra board names
func (t *Table) ExtraBoards() []string {
	return t.extras
}

// IsMain reports whether name is a known main category
func (t *Table) IsMain(name string) bool {
	_, ok := t.mainSet[name]
	return ok
}

// IsExtraBoard reports whether name is an extra board
func (t *Table) IsExtraBoard(name string) bool {
	_, ok := t.extraSet[name]
	return ok
}

// Categories returns the ordered taxonomy as category entries
func (t *Table) Categories() []Category {
	out := make([]Category, 0, len(t.mains))
	for _, m := range t.mains {
		out = append(out, Category{Main: m, Subs: t.Subs(m)})
	}
	return out
}

// RegionsUnder returns every canonical region string filed under a main
// category: the main-only form plus one per sub category. For an extra
// board the board name itself is the only region.
func (t *Table) RegionsUnder(main string) []string {
	if t.IsExtraBoard(main) {
		return []string{main}
	}
	regions := []string{t.Encode(main, "")}
	for _, sub := range t.Subs(main) {
		regions = append(regions, t.Encode(main, sub))
	}
	return regions
}
