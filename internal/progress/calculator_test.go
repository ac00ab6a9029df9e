package progress

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/julianstephens/smokeless/internal/constants"
	"github.com/julianstephens/smokeless/internal/models"
)

var (
	testQuit    = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	testProfile = models.SmokingProfile{CigarettesPerDay: 20, PricePerPack: 30, CigarettesPerPack: 20}
)

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantDays  int
		wantCigs  int
		wantMoney float64
		wantHours float64
	}{
		{
			name:      "same instant",
			now:       testQuit,
			wantDays:  0,
			wantCigs:  0,
			wantMoney: 0,
			wantHours: 0,
		},
		{
			name:      "ten hours counts as first day",
			now:       testQuit.Add(10 * time.Hour),
			wantDays:  1,
			wantCigs:  20,
			wantMoney: 30,
			wantHours: 20 * 10 / 60.0,
		},
		{
			name:      "one millisecond counts as first day",
			now:       testQuit.Add(time.Millisecond),
			wantDays:  1,
			wantCigs:  20,
			wantMoney: 30,
			wantHours: 20 * 10 / 60.0,
		},
		{
			name:      "exactly thirty days",
			now:       testQuit.Add(30 * 24 * time.Hour),
			wantDays:  30,
			wantCigs:  600,
			wantMoney: 900,
			wantHours: 100,
		},
		{
			name:      "clock before quit date uses absolute distance",
			now:       testQuit.Add(-36 * time.Hour),
			wantDays:  2,
			wantCigs:  40,
			wantMoney: 60,
			wantHours: 40 * 10 / 60.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStats(testQuit, testProfile, tt.now)
			if got.DaysSince != tt.wantDays {
				t.Errorf("DaysSince = %d, want %d", got.DaysSince, tt.wantDays)
			}
			if got.CigarettesNotSmoked != tt.wantCigs {
				t.Errorf("CigarettesNotSmoked = %d, want %d", got.CigarettesNotSmoked, tt.wantCigs)
			}
			if !floatEq(got.MoneySaved, tt.wantMoney) {
				t.Errorf("MoneySaved = %v, want %v", got.MoneySaved, tt.wantMoney)
			}
			if !floatEq(got.TimeRegainedHours, tt.wantHours) {
				t.Errorf("TimeRegainedHours = %v, want %v", got.TimeRegainedHours, tt.wantHours)
			}
		})
	}
}

func TestComputeStats_MoneyFormula(t *testing.T) {
	profiles := []models.SmokingProfile{
		{CigarettesPerDay: 7, PricePerPack: 42.5, CigarettesPerPack: 19},
		{CigarettesPerDay: 35, PricePerPack: 12, CigarettesPerPack: 25},
		{CigarettesPerDay: 0, PricePerPack: 80, CigarettesPerPack: 20},
	}

	for _, p := range profiles {
		for _, h := range []int{1, 23, 24, 25, 1000} {
			now := testQuit.Add(time.Duration(h) * time.Hour)
			got := ComputeStats(testQuit, p, now)
			want := float64(got.DaysSince) * (float64(p.CigarettesPerDay) / float64(p.CigarettesPerPack)) * p.PricePerPack
			if !floatEq(got.MoneySaved, want) {
				t.Errorf("profile %+v at +%dh: MoneySaved = %v, want %v", p, h, got.MoneySaved, want)
			}
			wantDays := int(math.Ceil(float64(h) / 24))
			if got.DaysSince != wantDays {
				t.Errorf("at +%dh: DaysSince = %d, want %d", h, got.DaysSince, wantDays)
			}
		}
	}
}

func TestComputeStats_MonotonicDays(t *testing.T) {
	prev := -1
	for m := 0; m < 5*24*60; m += 37 {
		got := ComputeStats(testQuit, testProfile, testQuit.Add(time.Duration(m)*time.Minute))
		if got.DaysSince < prev {
			t.Fatalf("DaysSince decreased at +%dm: %d < %d", m, got.DaysSince, prev)
		}
		prev = got.DaysSince
	}
}

func TestEvaluateAchievements_ThirtyDays(t *testing.T) {
	stats := ComputeStats(testQuit, testProfile, testQuit.Add(30*24*time.Hour))
	statuses := EvaluateAchievements(stats, Achievements())

	if len(statuses) != len(Achievements()) {
		t.Fatalf("len(statuses) = %d, want %d", len(statuses), len(Achievements()))
	}

	var found bool
	for _, s := range statuses {
		if s.ID == "cigarettes_1" {
			found = true
			if !s.Unlocked {
				t.Error("cigarettes_1 should be unlocked")
			}
			if s.ProgressPercent != 100 {
				t.Errorf("cigarettes_1 ProgressPercent = %v, want 100", s.ProgressPercent)
			}
		}
		if s.ProgressPercent < 0 || s.ProgressPercent > 100 {
			t.Errorf("%s ProgressPercent = %v out of range", s.ID, s.ProgressPercent)
		}
	}
	if !found {
		t.Fatal("cigarettes_1 missing from results")
	}
}

func TestEvaluateAchievements_DisplayOrder(t *testing.T) {
	catalog := []models.Achievement{
		{ID: "a", Category: constants.CategoryDays, Target: 10},
		{ID: "b", Category: constants.CategoryDays, Target: 2},
		{ID: "c", Category: constants.CategoryDays, Target: 5},
		{ID: "d", Category: constants.CategoryMoney, Target: 1000},
		{ID: "e", Category: constants.CategoryCigarettes, Target: 200},
		{ID: "f", Category: constants.CategoryCigarettes, Target: 400},
		{ID: "g", Category: constants.CategoryDays, Target: 20},
	}
	stats := models.DerivedStats{DaysSince: 5, MoneySaved: 100, CigarettesNotSmoked: 100}

	statuses := EvaluateAchievements(stats, catalog)

	var got []string
	for _, s := range statuses {
		got = append(got, s.ID)
	}
	// unlocked: c(5), b(2). locked: a(50%), e(50%), f(25%), g(25%), d(10%)
	want := []string{"c", "b", "a", "e", "f", "g", "d"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("display order mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluateAchievements_UnlockIsMonotonic(t *testing.T) {
	unlocked := map[string]bool{}
	for d := 0; d <= 400; d += 3 {
		stats := ComputeStats(testQuit, testProfile, testQuit.Add(time.Duration(d)*24*time.Hour))
		for _, s := range EvaluateAchievements(stats, Achievements()) {
			if unlocked[s.ID] && !s.Unlocked {
				t.Fatalf("%s re-locked at day %d", s.ID, d)
			}
			if s.Unlocked {
				unlocked[s.ID] = true
			}
		}
	}
}

func TestEvaluateBenefits(t *testing.T) {
	tests := []struct {
		name         string
		elapsed      time.Duration
		wantAchieved []string
	}{
		{"nothing yet", 19*time.Minute + 59*time.Second, nil},
		{"twenty minutes", 20 * time.Minute, []string{"20m"}},
		{"eight hours", 8 * time.Hour, []string{"20m", "8h"}},
		{"three days", 72 * time.Hour, []string{"20m", "8h", "24h", "48h", "72h"}},
		{"before quit", -time.Hour, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, b := range EvaluateBenefits(testQuit, testQuit.Add(tt.elapsed), Benefits()) {
				if b.Achieved {
					got = append(got, b.ID)
				}
			}
			if diff := cmp.Diff(tt.wantAchieved, got); diff != "" {
				t.Errorf("achieved mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNextBenefit(t *testing.T) {
	next, remaining, ok := NextBenefit(testQuit, testQuit.Add(10*time.Minute), Benefits())
	if !ok {
		t.Fatal("NextBenefit() ok = false, want true")
	}
	if next.ID != "20m" {
		t.Errorf("NextBenefit() = %s, want 20m", next.ID)
	}
	if remaining != 10*time.Minute {
		t.Errorf("remaining = %v, want 10m", remaining)
	}

	if _, _, ok := NextBenefit(testQuit, testQuit.Add(400*24*time.Hour), Benefits()); ok {
		t.Error("NextBenefit() ok = true after every benefit, want false")
	}
}

func TestCatalogsAreCopies(t *testing.T) {
	a := Achievements()
	a[0].Target = -1
	if Achievements()[0].Target == -1 {
		t.Error("Achievements() exposes the underlying catalog")
	}

	got, ok := AchievementByID("days_8")
	if !ok || got.Target != 365 {
		t.Errorf("AchievementByID(days_8) = %+v, %v", got, ok)
	}
}
