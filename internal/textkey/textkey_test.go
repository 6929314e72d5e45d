package textkey

import "testing"

func TestNormalizeFoldsCaseAccentsAndWhitespace(t *testing.T) {
	want := "lila"
	for _, in := range []string{"Lila", "  LILA  ", "líla", "lila"} {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"", "  ", "Único", "TALLE M", "héllo wörld", "a-b_c"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestNormalizeEmpty(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Errorf("Normalize(\"\") = %q, want empty", got)
	}
	if got := Normalize("   "); got != "" {
		t.Errorf("Normalize(whitespace) = %q, want empty", got)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"Remera Lila", "remera-lila"},
		{"  Campera -- Puffer  ", "campera-puffer"},
		{"Único", "unico"},
		{"¡Hola! ¿Qué tal?", "hola-que-tal"},
		{"---", ""},
		{"Talle 42", "talle-42"},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
