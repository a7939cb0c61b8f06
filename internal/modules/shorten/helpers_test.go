package shorten

import "testing"

func TestDescribe(t *testing.T) {
	cases := []struct {
		name      string
		long      string
		wantNmbr  string
		wantDescr string
	}{
		{
			name:      "plain url yields host",
			long:      "https://example.com/some/path",
			wantNmbr:  "",
			wantDescr: "example.com",
		},
		{
			name:      "wa.me with text and name",
			long:      "https://wa.me/5215551234567?text=Hola%20amigo,Juan%20Perez",
			wantNmbr:  "5215551234567",
			wantDescr: "wa.me para Juan Perez",
		},
		{
			name:      "wa.me without query",
			long:      "https://wa.me/5215551234567",
			wantNmbr:  "5215551234567",
			wantDescr: "wa.me",
		},
		{
			name:      "query without comma keeps host only",
			long:      "https://example.com/p?q=search",
			wantNmbr:  "",
			wantDescr: "example.com",
		},
		{
			name:      "name over limit ignored",
			long:      "https://example.com/p?x,aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			wantNmbr:  "",
			wantDescr: "example.com",
		},
		{
			name:      "too few segments",
			long:      "example.com",
			wantNmbr:  "",
			wantDescr: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			nmbr, descr := Describe(tc.long)
			if nmbr != tc.wantNmbr || descr != tc.wantDescr {
				t.Fatalf("Describe(%q) = (%q, %q), want (%q, %q)",
					tc.long, nmbr, descr, tc.wantNmbr, tc.wantDescr)
			}
		})
	}
}
