package util

import (
	"testing"
)

func TestGetPrettyLocaleName(t *testing.T) {
	tests := []struct {
		locale  string
		want    string
		wantErr bool
	}{
		{"de", "German", false},
		{"pt_BR", "Portuguese - Brazil", false},
		{"zh-CN", "Chinese - China", false},
		{"sr@latin", "Serbian", false},
		{PotLanguage, "Template", false},
		{"", "", true},
		{"1234", "", true},
		{"fr_1234", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			got, err := GetPrettyLocaleName(tt.locale)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestExist(t *testing.T) {
	dir := t.TempDir()
	if !Exist(dir) || !IsDir(dir) || IsFile(dir) {
		t.Errorf("%s should be an existing directory", dir)
	}
	if Exist(dir + "/missing") {
		t.Errorf("missing file should not exist")
	}
}
