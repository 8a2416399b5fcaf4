package ftn

import "testing"

func TestSymbol(t *testing.T) {
	tests := []struct {
		suffix  Suffix
		routine string
		want    string
	}{
		{WSU, "dsteqr", "dsteqr_"},
		{WDU, "dsteqr", "dsteqr__"},
		{WSU, "DGESV", "dgesv_"},
		{WDU, "Dgetrf", "dgetrf__"},
	}
	for _, tt := range tests {
		t.Run(tt.suffix.String()+"/"+tt.routine, func(t *testing.T) {
			if got := tt.suffix.Symbol(tt.routine); got != tt.want {
				t.Errorf("Symbol(%q) = %q, want %q", tt.routine, got, tt.want)
			}
		})
	}
}

func TestParseSuffix(t *testing.T) {
	for in, want := range map[string]Suffix{"wsu": WSU, "WDU": WDU, "_": WSU, "__": WDU, "": DefaultSuffix} {
		got, err := ParseSuffix(in)
		if err != nil {
			t.Fatalf("ParseSuffix(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseSuffix(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseSuffix("triple"); err == nil {
		t.Error("expected error for unknown suffix")
	}
}

func TestRoutines(t *testing.T) {
	rs := Routines()
	if len(rs) != 4 {
		t.Fatalf("got %d routines, want 4", len(rs))
	}
	for i := 1; i < len(rs); i++ {
		if rs[i-1].Name >= rs[i].Name {
			t.Errorf("routines not sorted: %s before %s", rs[i-1].Name, rs[i].Name)
		}
	}
	if r, ok := Lookup("DSTEQR"); !ok || r.Backend != "tridiag.LAPACK" {
		t.Errorf("Lookup(DSTEQR) = %+v, %v", r, ok)
	}

	syms := Symbols(WDU)
	if syms["dgetrs"] != "dgetrs__" {
		t.Errorf("dgetrs symbol = %q", syms["dgetrs"])
	}
}
