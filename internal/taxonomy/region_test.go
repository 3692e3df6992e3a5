package taxonomy

import "testing"

func TestRegionRoundTrip(t *testing.T) {
	table := Default()

	for _, main := range table.Mains() {
		for _, sub := range table.Subs(main) {
			encoded := table.Encode(main, sub)
			decoded := table.Decode(encoded)
			if decoded.Main != main || decoded.Sub != sub {
				t.Errorf("Decode(Encode(%q, %q)) = (%q, %q), want (%q, %q)",
					main, sub, decoded.Main, decoded.Sub, main, sub)
			}
		}

		// Main-only selection round-trips through the trailing-hyphen form
		encoded := table.Encode(main, "")
		if encoded != main+"-" {
			t.Errorf("Encode(%q, \"\") = %q, want %q", main, encoded, main+"-")
		}
		decoded := table.Decode(encoded)
		if decoded.Main != main || decoded.Sub != "" {
			t.Errorf("Decode(%q) = (%q, %q), want (%q, \"\")", encoded, decoded.Main, decoded.Sub, main)
		}
	}
}

func TestExtraBoardEncoding(t *testing.T) {
	table := Default()

	for _, board := range table.ExtraBoards() {
		// Sub selections are ignored for extra boards
		if got := table.Encode(board, "간판"); got != board {
			t.Errorf("Encode(%q, sub) = %q, want %q", board, got, board)
		}

		decoded := table.Decode(board)
		if decoded.Main != board || decoded.Sub != "" || !decoded.Extra {
			t.Errorf("Decode(%q) = %+v, want extra board with empty sub", board, decoded)
		}
	}
}

func TestDecodeUnknownMainPassesThrough(t *testing.T) {
	table := Default()

	tests := []struct {
		name   string
		region string
		main   string
		sub    string
	}{
		{"unknown with sub", "새카테고리-하위", "새카테고리", "하위"},
		{"unknown without hyphen", "새카테고리", "새카테고리", ""},
		{"unknown trailing hyphen", "새카테고리-", "새카테고리", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded := table.Decode(tt.region)
			if decoded.Main != tt.main || decoded.Sub != tt.sub {
				t.Errorf("Decode(%q) = (%q, %q), want (%q, %q)",
					tt.region, decoded.Main, decoded.Sub, tt.main, tt.sub)
			}
			if table.Known(decoded) {
				t.Errorf("Known(%q) = true, want false", tt.region)
			}
		})
	}
}

func TestDecodeSplitsOnFirstHyphenOnly(t *testing.T) {
	table := Default()

	decoded := table.Decode("업체추천-간판-수리")
	if decoded.Main != "업체추천" || decoded.Sub != "간판-수리" {
		t.Errorf("Decode() = (%q, %q), want main split at first hyphen", decoded.Main, decoded.Sub)
	}
}

func TestRegionsUnder(t *testing.T) {
	table := Default()

	regions := table.RegionsUnder("구인구직")
	want := []string{"구인구직-", "구인구직-구인", "구인구직-구직"}
	if len(regions) != len(want) {
		t.Fatalf("RegionsUnder() returned %d regions, want %d", len(regions), len(want))
	}
	for i, region := range regions {
		if region != want[i] {
			t.Errorf("RegionsUnder()[%d] = %q, want %q", i, region, want[i])
		}
	}

	extra := table.RegionsUnder("공지사항")
	if len(extra) != 1 || extra[0] != "공지사항" {
		t.Errorf("RegionsUnder(extra board) = %v, want the board name alone", extra)
	}
}

func TestTableImmutableAccessors(t *testing.T) {
	table := Default()

	if !table.IsMain("업체추천") {
		t.Error("IsMain(업체추천) = false, want true")
	}
	if table.IsMain("공지사항") {
		t.Error("IsMain(extra board) = true, want false")
	}
	if !table.IsExtraBoard("중고장터") {
		t.Error("IsExtraBoard(중고장터) = false, want true")
	}

	cats := table.Categories()
	if len(cats) != len(table.Mains()) {
		t.Errorf("Categories() returned %d entries, want %d", len(cats), len(table.Mains()))
	}
	if cats[0].Main != "업체추천" {
		t.Errorf("Categories()[0].Main = %q, order not preserved", cats[0].Main)
	}
}
