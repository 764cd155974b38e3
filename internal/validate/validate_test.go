package validate

import (
	"testing"

	"github.com/vitalbridge/vitalbridge/internal/model"
)

func strPtr(s string) *string   { return &s }
func intPtr(i int) *int         { return &i }
func f64Ptr(f float64) *float64 { return &f }

func TestUserID(t *testing.T) {
	for _, ok := range []string{"u1", "user_42", "abc-def", "a"} {
		if err := UserID(ok); err != nil {
			t.Errorf("UserID(%q): unexpected error %v", ok, err)
		}
	}
	for _, bad := range []string{"", "Upper", "has space", "-leading", "日本語"} {
		if err := UserID(bad); err == nil {
			t.Errorf("UserID(%q): expected error", bad)
		}
	}
}

func TestDate(t *testing.T) {
	if err := Date("2024-06-01"); err != nil {
		t.Fatalf("valid date rejected: %v", err)
	}
	for _, bad := range []string{"", "2024-13-01", "01-06-2024", "20240601"} {
		if err := Date(bad); err == nil {
			t.Errorf("Date(%q): expected error", bad)
		}
	}
}

func TestCategoryAndSubtype(t *testing.T) {
	for _, ok := range []string{"physical", "sleep", "body"} {
		if err := Category(ok); err != nil {
			t.Errorf("Category(%q): %v", ok, err)
		}
	}
	if err := Category("mood"); err == nil {
		t.Error("Category(mood): expected error")
	}
	if err := Subtype(""); err != nil {
		t.Errorf("empty subtype should select summary: %v", err)
	}
	if err := Subtype("heart_rate"); err != nil {
		t.Errorf("Subtype(heart_rate): %v", err)
	}
	if err := Subtype("Heart Rate"); err == nil {
		t.Error("Subtype with spaces: expected error")
	}
}

func TestProfile(t *testing.T) {
	good := &model.UserProfile{
		UserID:      "u1",
		DateOfBirth: strPtr("1990-04-15"),
		Sex:         strPtr("female"),
		HeightCm:    intPtr(165),
		WeightKg:    f64Ptr(60.5),
		BMI:         f64Ptr(22.2),
	}
	if err := Profile(good); err != nil {
		t.Fatalf("valid profile rejected: %v", err)
	}

	// Partial profiles are valid; absent fields are not checked
	if err := Profile(&model.UserProfile{UserID: "u1", WeightKg: f64Ptr(75)}); err != nil {
		t.Fatalf("partial profile rejected: %v", err)
	}

	cases := []*model.UserProfile{
		{UserID: ""},
		{UserID: "u1", Sex: strPtr("unknown")},
		{UserID: "u1", HeightCm: intPtr(1000)},
		{UserID: "u1", WeightKg: f64Ptr(0)},
		{UserID: "u1", BMI: f64Ptr(200)},
		{UserID: "u1", DateOfBirth: strPtr("15/04/1990")},
	}
	for i, c := range cases {
		if err := Profile(c); err == nil {
			t.Errorf("case %d: expected validation error for %+v", i, c)
		}
	}
}
