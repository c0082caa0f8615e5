package data

import "testing"

func TestGetLanguageName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"de", "German"},
		{"fr", "French"},
		{"ja", "Japanese"},
		{"", ""},
		{"not-a-language", ""},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := GetLanguageName(tt.code); got != tt.want {
				t.Errorf("GetLanguageName(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestGetLocationName(t *testing.T) {
	if got := GetLocationName("BR"); got != "Brazil" {
		t.Errorf("GetLocationName(BR) = %q, want Brazil", got)
	}
	if got := GetLocationName("??"); got != "" {
		t.Errorf("GetLocationName(??) = %q, want empty", got)
	}
}
