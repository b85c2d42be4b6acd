package celltext

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "BMI", "BMI"},
		{"collapse spaces", "  body   mass \t index \n", "body mass index"},
		{"no-break space", "54.2 kg", "54.2 kg"},
		{"thin space", "1 234", "1 234"},
		{"zero width", "ab​c\uFEFF", "abc"},
		{"enclosing parens", "(n=342)", "n=342"},
		{"nested parens", "((n=342))", "n=342"},
		{"parens not enclosing", "(a) vs (b)", "(a) vs (b)"},
		{"inner parens kept", "mean (SD)", "mean (SD)"},
		{"scientific product", "2.5 × 10-4", "2.5e-4"},
		{"superscript characters", "2.5 × 10⁻⁴", "2.5e-4"},
		{"marker tags survive", "86<sup>a</sup>", "86<sup>a</sup>"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"BMI",
		"(n=342)",
		"((deep))",
		"2.5 × 10-4",
		"value<sup>a</sup>",
		"  spaced   out  ",
	}

	for _, input := range inputs {
		once := Clean(input)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestStripMarkers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"86<sup>a</sup>", "86a"},
		{"H<sub>2</sub>O", "H2O"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := StripMarkers(tt.input); got != tt.want {
			t.Errorf("StripMarkers(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsPlaceholder(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"  ", true},
		{"-", true},
		{"–", true},
		{"—", true},
		{".", true},
		{"n/a", true},
		{"N/A", true},
		{"NA", true},
		{"0", false},
		{"none", false},
		{"--", false},
	}

	for _, tt := range tests {
		if got := IsPlaceholder(tt.input); got != tt.want {
			t.Errorf("IsPlaceholder(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCellKind(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Kind
	}{
		{"integer", "42", KindNumeric},
		{"float", "54.2", KindNumeric},
		{"negative unicode minus", "−3.2", KindNumeric},
		{"scientific", "2.5e-4", KindNumeric},
		{"word", "male", KindText},
		{"blank", "", KindSkip},
		{"dash placeholder", "—", KindSkip},
		{"na placeholder", "n/a", KindSkip},
		{"units", "54 kg", KindMixed},
		{"percent", "12%", KindMixed},
		{"footnote marker", "86<sup>a</sup>", KindMixed},
		{"range", "10-20", KindMixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CellKind(tt.input); got != tt.want {
				t.Errorf("CellKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindSkip, "Skip"},
		{KindNumeric, "Numeric"},
		{KindText, "Text"},
		{KindMixed, "Mixed"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
