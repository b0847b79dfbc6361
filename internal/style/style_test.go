package style

import "testing"

func TestFromHex(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    Color
		wantErr bool
	}{
		{"six digits", "#ffcc00", Color{R: 255, G: 204, B: 0}, false},
		{"no hash", "ffcc00", Color{R: 255, G: 204, B: 0}, false},
		{"three digits", "#fc0", Color{R: 255, G: 204, B: 0}, false},
		{"uppercase", "#FFCC00", Color{R: 255, G: 204, B: 0}, false},
		{"bad length", "#ffcc0", Color{}, true},
		{"bad digits", "#zzzzzz", Color{}, true},
		{"empty", "", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromHex(tt.hex)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("FromHex(%q) accepted invalid input", tt.hex)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromHex(%q) error = %v", tt.hex, err)
			}
			if !got.Equals(tt.want) {
				t.Errorf("FromHex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestColorEquals(t *testing.T) {
	tests := []struct {
		name string
		a, b Color
		want bool
	}{
		{"same rgb", FromRGB(1, 2, 3), FromRGB(1, 2, 3), true},
		{"different rgb", FromRGB(1, 2, 3), FromRGB(1, 2, 4), false},
		{"defaults match", ColorDefault, Color{Default: true}, true},
		{"default vs rgb", ColorDefault, ColorBlack, false},
		{"same index", FromIndex(7), FromIndex(7), true},
		{"different index", FromIndex(7), FromIndex(8), false},
		{"index vs rgb with same r", FromIndex(7), FromRGB(7, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equals(tt.b); got != tt.want {
				t.Errorf("%v.Equals(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestColorString(t *testing.T) {
	if got := ColorDefault.String(); got != "default" {
		t.Errorf("String() = %q, want %q", got, "default")
	}
	if got := FromIndex(14).String(); got != "idx(14)" {
		t.Errorf("String() = %q, want %q", got, "idx(14)")
	}
	if got := FromRGB(255, 204, 0).String(); got != "#FFCC00" {
		t.Errorf("String() = %q, want %q", got, "#FFCC00")
	}
}

func TestStyleBuilders(t *testing.T) {
	s := Default()
	if !s.IsDefault() {
		t.Error("Default() is not the default style")
	}

	s2 := s.WithForeground(ColorYellow).WithBackground(ColorBlue).WithBold(true)
	if !s2.Foreground.Equals(ColorYellow) || !s2.Background.Equals(ColorBlue) || !s2.Bold {
		t.Errorf("built style = %+v", s2)
	}
	// Builders are value-returning: the original is untouched.
	if !s.IsDefault() {
		t.Error("WithForeground mutated the receiver")
	}

	if !New(ColorGray).Foreground.Equals(ColorGray) {
		t.Error("New did not set the foreground")
	}
	if !New(ColorGray).Background.IsDefault() {
		t.Error("New did not default the background")
	}
}

func TestStyleEquals(t *testing.T) {
	a := New(ColorYellow).WithBold(true)
	b := New(ColorYellow).WithBold(true)
	if !a.Equals(b) {
		t.Error("identical styles compare unequal")
	}
	if a.Equals(b.WithBold(false)) {
		t.Error("styles differing in bold compare equal")
	}
	if a.Equals(b.WithBackground(ColorBlack)) {
		t.Error("styles differing in background compare equal")
	}
}
