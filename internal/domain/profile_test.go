package domain

import "testing"

func TestParseEducationLevel(t *testing.T) {
	cases := map[string]EducationLevel{
		" SARJANA ": EducationSarjana,
		"bachelor":  EducationSarjana,
		"none":      EducationSD,
		"primary":   EducationSD,
		"secondary": EducationSMA,
		"master":    EducationMagister,
		"doctorate": EducationDoktor,
		"other":     EducationLevel("other"),
	}
	for in, want := range cases {
		if got := ParseEducationLevel(in); got != want {
			t.Errorf("ParseEducationLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAtLeastBachelor(t *testing.T) {
	cases := []struct {
		level EducationLevel
		want  bool
	}{
		{EducationSD, false},
		{EducationSMP, false},
		{EducationSMA, false},
		{EducationDiploma, false},
		{EducationSarjana, true},
		{EducationMagister, true},
		{EducationDoktor, true},
		{"Bachelor", true},
		{"unknown", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := tc.level.AtLeastBachelor(); got != tc.want {
			t.Errorf("%q.AtLeastBachelor() = %v, want %v", tc.level, got, tc.want)
		}
	}
}

func TestUserProfileComplete(t *testing.T) {
	ok := UserProfile{Name: "Sari", Age: 12, EducationLevel: EducationSMP, Location: "Bandung"}
	if !ok.Complete() {
		t.Fatalf("expected complete profile")
	}
	missing := []UserProfile{
		{Age: 12, EducationLevel: EducationSMP, Location: "Bandung"},
		{Name: "Sari", EducationLevel: EducationSMP, Location: "Bandung"},
		{Name: "Sari", Age: 12, Location: "Bandung"},
		{Name: "Sari", Age: 12, EducationLevel: EducationSMP, Location: "  "},
	}
	for i, p := range missing {
		if p.Complete() {
			t.Errorf("case %d: expected incomplete profile", i)
		}
	}
}

func TestDailyActivitiesComplete(t *testing.T) {
	base := DailyActivities{
		Transportation: Transportation{Method: "walking", DistanceKm: 1, WeeklyFrequency: 0},
		Electricity:    Electricity{DailyUsageKwh: 2, Source: "solar"},
	}
	if !base.Complete() {
		t.Fatalf("expected complete activities with zero meat portions")
	}
	noDistance := base
	noDistance.Transportation.DistanceKm = 0
	negativeMeat := base
	negativeMeat.Consumption.WeeklyMeatPortions = -1
	noSource := base
	noSource.Electricity.Source = ""
	for name, a := range map[string]DailyActivities{"distance": noDistance, "meat": negativeMeat, "source": noSource} {
		if a.Complete() {
			t.Errorf("%s: expected incomplete activities", name)
		}
	}
}
