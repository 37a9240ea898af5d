package input

import "testing"

func TestParseKeyName(t *testing.T) {
	tests := []struct {
		name    string
		want    uint8
		wantErr bool
	}{
		{"fire", KeyFire, false},
		{"Use", KeyUse, false},
		{"up", KeyUpArrow, false},
		{"enter", KeyEnter, false},
		{"f11", KeyF11, false},
		{"y", 'y', false},
		{"Y", 'y', false},
		{"", 0, true},
		{"jump", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseKeyName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKeyName(%q) err = %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKeyName(%q) = %#x, want %#x", tt.name, got, tt.want)
		}
	}
}

func TestKeyNameRoundTrip(t *testing.T) {
	for name, code := range keyNames {
		if got := KeyName(code); got != name {
			t.Errorf("KeyName(%#x) = %q, want %q", code, got, name)
		}
	}
	if KeyName('q') != "q" {
		t.Errorf("printable key name %q", KeyName('q'))
	}
	if KeyName(0x01) != "0x01" {
		t.Errorf("control key name %q", KeyName(0x01))
	}
}

func TestParseKeyNamesDefaults(t *testing.T) {
	codes, err := ParseKeyNames([]string{"fire", "use", "enter", "left", "right", "up", "down"})
	if err != nil {
		t.Fatal(err)
	}
	h := NewHoldTable(codes, 0)
	for _, c := range DefaultHoldKeys {
		if !h.Holdable(c) {
			t.Errorf("%s missing from parsed hold set", KeyName(c))
		}
	}
	if _, err := ParseKeyNames([]string{"fire", "nope"}); err == nil {
		t.Error("unknown name accepted")
	}
}
