package booking

import "testing"

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Juan Pérez", "Juan Pérez"},
		{"markup stripped", "<b>Juan</b> Pérez", "Juan Pérez"},
		{"script stripped", "<script>alert(1)</script>Ana", "alertAna"},
		{"digits and symbols dropped", "Ana123 O'Higgins!", "Ana OHiggins"},
		{"accents kept", "Ñandú Müñoz", "Ñandú Müñoz"},
		{"surrounding space trimmed", "  Pedro  ", "Pedro"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeName(tt.in); got != tt.want {
				t.Errorf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidName(t *testing.T) {
	if ValidName("Al") {
		t.Error("ValidName(\"Al\") = true, want false (below minimum length)")
	}
	if !ValidName("Ana") {
		t.Error("ValidName(\"Ana\") = false, want true")
	}
	// los acentos cuentan como una letra, no como bytes
	if !ValidName("Áña") {
		t.Error("ValidName(\"Áña\") = false, want true")
	}
}

func TestSanitizeEmail(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"valid", "a@b.com", "a@b.com", true},
		{"not an email", "not-an-email", "", false},
		{"missing tld", "a@b", "", false},
		{"markup stripped then valid", "<i>a@b.com</i>", "a@b.com", true},
		{"spaces trimmed", "  a@b.com  ", "a@b.com", true},
		{"empty", "", "", false},
		{"double at", "a@@b.com", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SanitizeEmail(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("SanitizeEmail(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("SanitizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
