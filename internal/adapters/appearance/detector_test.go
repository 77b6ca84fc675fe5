package appearance

import "testing"

func newTestDetector(setting, colorfgbg string, terminalDark bool) *Detector {
	d := NewDetector(setting)
	d.getenv = func(key string) string {
		if key == "COLORFGBG" {
			return colorfgbg
		}
		return ""
	}
	d.terminal = func() bool { return terminalDark }
	return d
}

func TestDetector_PrefersDark(t *testing.T) {
	tests := []struct {
		name         string
		setting      string
		colorfgbg    string
		terminalDark bool
		want         bool
	}{
		{"explicit dark", "dark", "0;15", false, true},
		{"explicit light", "light", "15;0", true, false},
		{"auto dark colorfgbg", "auto", "15;0", false, true},
		{"auto light colorfgbg", "auto", "0;15", true, false},
		{"three part colorfgbg", "auto", "15;default;8", false, true},
		{"auto falls back to terminal", "auto", "", true, true},
		{"garbage colorfgbg uses terminal", "auto", "x;y", false, false},
		{"unknown setting is auto", "sepia", "15;0", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDetector(tt.setting, tt.colorfgbg, tt.terminalDark)
			if got := d.PrefersDark(); got != tt.want {
				t.Errorf("PrefersDark() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetector_SetSetting(t *testing.T) {
	d := newTestDetector("light", "", true)
	if d.PrefersDark() {
		t.Fatal("expected light")
	}

	d.SetSetting("dark")
	if !d.PrefersDark() {
		t.Error("expected dark after SetSetting")
	}
	if d.Setting() != "dark" {
		t.Errorf("Setting() = %q", d.Setting())
	}

	d.SetSetting(" AUTO ")
	if d.Setting() != "auto" {
		t.Errorf("Setting() = %q", d.Setting())
	}
	if !d.PrefersDark() {
		t.Error("expected terminal fallback to report dark")
	}
}
