package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFinalPriceClampsAtZero(t *testing.T) {
	course := CourseModel{
		CoursePrice:    decimal.RequireFromString("100000"),
		CourseDiscount: decimal.RequireFromString("25000"),
	}
	if !course.FinalPrice().Equal(decimal.RequireFromString("75000")) {
		t.Errorf("final price = %s, want 75000", course.FinalPrice())
	}

	course.CourseDiscount = decimal.RequireFromString("150000")
	if !course.FinalPrice().IsZero() {
		t.Errorf("final price = %s, want 0 when discount exceeds price", course.FinalPrice())
	}
}

func TestAvailablePlacesClampsAtZero(t *testing.T) {
	course := CourseModel{CourseTotalPlaces: 10, CourseBookedPlaces: 4}
	if got := course.AvailablePlaces(); got != 6 {
		t.Errorf("available = %d, want 6", got)
	}

	course.CourseBookedPlaces = 12
	if got := course.AvailablePlaces(); got != 0 {
		t.Errorf("available = %d, want 0", got)
	}
}
