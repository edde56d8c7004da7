package fractals

import "testing"

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"1", Koch},
		{"2", Sierpinski},
		{"3", Tree},
		{"4", Mandelbrot},
		{"5", Julia},
		{" 4 ", Mandelbrot},
		{"julia", Julia},
		{"Mandelbrot", Mandelbrot},
		{"TREE", Tree},
		{"0", Koch},
		{"6", Koch},
		{"-3", Koch},
		{"", Koch},
		{"dragon", Koch},
	}
	for _, tt := range tests {
		if got := ParseMode(tt.in); got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestModeProperties(t *testing.T) {
	if len(Modes) != 5 {
		t.Fatalf("len(Modes) = %d, want 5", len(Modes))
	}
	for i, m := range Modes {
		if int(m) != i+1 {
			t.Errorf("Modes[%d] = %d", i, int(m))
		}
		if !m.Valid() {
			t.Errorf("%v not valid", m)
		}
		if ParseMode(m.String()) != m {
			t.Errorf("ParseMode(%q) does not round trip", m.String())
		}
		if m.Title() == "" || m.Description() == "" {
			t.Errorf("%v has no title or description", m)
		}
		if want := m == Mandelbrot || m == Julia; m.Escape() != want {
			t.Errorf("%v.Escape() = %v", m, m.Escape())
		}
	}
	if Mode(0).Valid() || Mode(6).Valid() {
		t.Error("out of range mode reported valid")
	}
	if got := Mode(7).String(); got != "mode(7)" {
		t.Errorf("Mode(7).String() = %q", got)
	}
}
