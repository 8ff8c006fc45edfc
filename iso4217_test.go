package commodity

import (
	"errors"
	"testing"
)

func TestTypeFromAlpha3(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			alpha3   string
			wantName string
		}{
			{"AUD", "Australian dollar"},
			{"USD", "United States dollar"},
			{"EUR", "Euro"},
			{"JPY", "Japanese yen"},
		}
		for _, tt := range tests {
			got, err := TypeFromAlpha3(tt.alpha3)
			if err != nil {
				t.Errorf("TypeFromAlpha3(%q) failed: %v", tt.alpha3, err)
				continue
			}
			if !got.ID.EqualString(tt.alpha3) {
				t.Errorf("TypeFromAlpha3(%q).ID = %v, want %v", tt.alpha3, got.ID, tt.alpha3)
			}
			if got.Name != tt.wantName {
				t.Errorf("TypeFromAlpha3(%q).Name = %q, want %q", tt.alpha3, got.Name, tt.wantName)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"", "XYZ", "aud", "dollar", "US",
		}
		for _, tt := range tests {
			_, err := TypeFromAlpha3(tt)
			if err == nil {
				t.Errorf("TypeFromAlpha3(%q) did not fail", tt)
				continue
			}
			var invalid *InvalidAlpha3Error
			if !errors.As(err, &invalid) {
				t.Errorf("TypeFromAlpha3(%q) returned %T, want *InvalidAlpha3Error", tt, err)
				continue
			}
			if invalid.Alpha3 != tt {
				t.Errorf("TypeFromAlpha3(%q) error carries code %q, want %q", tt, invalid.Alpha3, tt)
			}
		}
	})
}

func TestAllCurrencies(t *testing.T) {
	currencies := AllCurrencies()
	if len(currencies) != len(alpha3Lookup) {
		t.Fatalf("len(AllCurrencies()) = %v, want %v", len(currencies), len(alpha3Lookup))
	}
	for i, curr := range currencies {
		if curr.Name == "" {
			t.Errorf("AllCurrencies()[%v] = %v has no name", i, curr)
		}
		if i > 0 && !currencies[i-1].ID.Less(curr.ID) {
			t.Errorf("AllCurrencies() not ordered: %v before %v", currencies[i-1].ID, curr.ID)
		}
	}
}
