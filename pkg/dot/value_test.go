package dot

import "testing"

func TestFinalFallsBackToUnqt(t *testing.T) {
	// Bool has no Finaler; Final must route to Unqt.
	if got := Render(Final(Bool(true))); got != "true" {
		t.Errorf("Final(Bool) rendered %q", got)
	}
	if got := Render(Final(Bool(false))); got != "false" {
		t.Errorf("Final(Bool) rendered %q", got)
	}
}

func TestFinalUsesOverride(t *testing.T) {
	if got := Render(Final(Str("graph"))); got != `"graph"` {
		t.Errorf("Final(Str) rendered %q, want quoted keyword", got)
	}
}

func TestHTMLPassthrough(t *testing.T) {
	h := HTML(`<b>bold "stuff"</b>`)
	want := `<<b>bold "stuff"</b>>`
	if got := Render(Final(h)); got != want {
		t.Errorf("HTML rendered %q, want %q", got, want)
	}
}

func TestIDVerbatim(t *testing.T) {
	// IDs are caller-owned tokens; no escaping, no quoting.
	if got := Render(Final(ID(`"already quoted"`))); got != `"already quoted"` {
		t.Errorf("ID rendered %q", got)
	}
}

func TestUnqtListDefault(t *testing.T) {
	vs := []Value{Str("a"), Str("b c")}
	if got := Render(UnqtList(vs)); got != `[a,b c]` {
		t.Errorf("UnqtList rendered %q", got)
	}
}

func TestFinalListDefault(t *testing.T) {
	vs := []Value{Str("a"), Str("b")}
	if got := Render(FinalList(vs)); got != `"[a,b]"` {
		t.Errorf("FinalList rendered %q", got)
	}
}

func TestField(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"label", Str("hello world"), `label="hello world"`},
		{"weight", Double(2.0), "weight=2"},
		{"shape", Str("box"), "shape=box"},
		{"constraint", Bool(false), "constraint=false"},
	}
	for _, tt := range tests {
		if got := Render(Field(tt.name, tt.v)); got != tt.want {
			t.Errorf("Field(%q) rendered %q, want %q", tt.name, got, tt.want)
		}
	}
}
