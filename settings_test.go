package lansky

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ptr[T any](v T) *T { return &v }

func TestSettings_Apply(t *testing.T) {
	testCases := []struct {
		name    string
		patch   SettingsPatch
		check   func(t *testing.T, s Settings)
		wantErr bool
	}{
		{
			name:  "empty patch",
			patch: SettingsPatch{},
			check: func(t *testing.T, s Settings) {
				if diff := cmp.Diff(DefaultSettings(), s); diff != "" {
					t.Errorf("settings changed (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:  "add existing platform is a no-op",
			patch: SettingsPatch{AddPlatforms: []string{"eBay", "Depop", "Depop"}},
			check: func(t *testing.T, s Settings) {
				want := []string{"eBay", "Poshmark", "Mercari", "Facebook", "Whatnot", "Other", "Depop"}
				if diff := cmp.Diff(want, s.Platforms); diff != "" {
					t.Errorf("Platforms mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:  "remove category",
			patch: SettingsPatch{RemoveCategories: []string{"Advertising", "Unknown"}},
			check: func(t *testing.T, s Settings) {
				for _, c := range s.ExpenseCategories {
					if c == "Advertising" {
						t.Errorf("Advertising still listed")
					}
				}
				if len(s.ExpenseCategories) != 6 {
					t.Errorf("len(ExpenseCategories) = %d, want 6", len(s.ExpenseCategories))
				}
			},
		},
		{
			name:  "color preset and theme",
			patch: SettingsPatch{PrimaryColor: ptr("crimson rose"), Theme: ptr(Dark), InspectionMode: ptr(true), AppName: ptr("Thrift Co")},
			check: func(t *testing.T, s Settings) {
				if s.PrimaryColor != "#881337" || s.Theme != Dark || !s.InspectionMode || s.AppName != "Thrift Co" {
					t.Errorf("Apply() = %+v", s)
				}
			},
		},
		{name: "empty platform", patch: SettingsPatch{AddPlatforms: []string{" "}}, wantErr: true},
		{name: "bad color", patch: SettingsPatch{PrimaryColor: ptr("#12345")}, wantErr: true},
		{name: "bad theme", patch: SettingsPatch{Theme: ptr(Theme("sepia"))}, wantErr: true},
		{name: "empty name", patch: SettingsPatch{AppName: ptr("")}, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewState().UpdateSettings(tc.patch)
			if (err != nil) != tc.wantErr {
				t.Fatalf("UpdateSettings() error = %v, wantErr %v", err, tc.wantErr)
			}
			if tc.wantErr {
				if diff := cmp.Diff(DefaultSettings(), got.Settings); diff != "" {
					t.Errorf("settings changed on error (-want +got):\n%s", diff)
				}
				return
			}
			tc.check(t, got.Settings)
		})
	}
}

func TestSettings_DefaultsNotShared(t *testing.T) {
	a := DefaultSettings()
	a, _ = a.Apply(SettingsPatch{AddPlatforms: []string{"Depop"}})
	if b := DefaultSettings(); len(b.Platforms) != 6 {
		t.Errorf("defaults were modified: %v", b.Platforms)
	}
}

func TestSettings_JSONRoundTrip(t *testing.T) {
	s, err := DefaultSettings().Apply(SettingsPatch{
		LogoSVGOverride: ptr(`<svg viewBox="0 0 10 10"></svg>`),
		Theme:           ptr(Dark),
		AddCategories:   []string{"Storage Unit"},
	})
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	got := DefaultSettings()
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(s, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLookupColor(t *testing.T) {
	testCases := []struct {
		in, want string
		wantErr  bool
	}{
		{in: "Power Blue", want: "#1e3a8a"},
		{in: "burnt amber", want: "#78350f"},
		{in: "#ABCDEF", want: "#abcdef"},
		{in: "#abcdeg", wantErr: true},
		{in: "teal", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := LookupColor(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("LookupColor(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("LookupColor(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
