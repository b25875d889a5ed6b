package utils

import (
	"math"
	"testing"
)

func TestCalculateBMR(t *testing.T) {
	cases := []struct {
		age            int
		weight, height float64
		want           float64
	}{
		{30, 70, 170, 1612.5}, // 10*70 + 6.25*170 - 5*30
		{15, 50, 160, 1430.0}, // minor bonus: +5
		{65, 70, 170, 1432.5}, // senior adjustment: -5
		{18, 70, 170, 1672.5}, // boundary: no adjustment at 18
		{60, 70, 170, 1462.5}, // boundary: no adjustment at 60
	}
	for _, tc := range cases {
		got := CalculateBMR(tc.age, tc.weight, tc.height)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("CalculateBMR(%d, %v, %v) = %v, want %v", tc.age, tc.weight, tc.height, got, tc.want)
		}
	}
}

func TestDailyCalorieTargetBands(t *testing.T) {
	cases := []struct {
		hba1c float64
		want  float64
	}{
		{5.0, 1200}, // normal: 1.2
		{5.7, 1100}, // prediabetes lower bound: 1.1
		{6.0, 1100},
		{6.4, 1100}, // prediabetes upper bound inclusive
		{6.5, 1000}, // diabetes: 1.0
		{8.0, 1000},
	}
	for _, tc := range cases {
		got := DailyCalorieTarget(1000, tc.hba1c)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("DailyCalorieTarget(1000, %v) = %v, want %v", tc.hba1c, got, tc.want)
		}
	}
}

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(170, 70)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(bmi-24.221453287197235) > 1e-9 {
		t.Fatalf("BMI = %v", bmi)
	}
	if got := BMICategory(bmi); got != "Normal weight" {
		t.Fatalf("category = %q", got)
	}

	if _, err := CalculateBMI(0, 70); err == nil {
		t.Fatalf("expected error for zero height")
	}
	if _, err := CalculateBMI(170, 500); err == nil {
		t.Fatalf("expected error for implausible weight")
	}
}

func TestBMICategoryBoundaries(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{18.4, "Underweight"},
		{18.5, "Normal weight"},
		{24.9, "Normal weight"},
		{25.0, "Overweight"},
		{30.0, "Obesity class I"},
		{35.0, "Obesity class II"},
		{40.0, "Obesity class III"},
	}
	for _, tc := range cases {
		if got := BMICategory(tc.bmi); got != tc.want {
			t.Fatalf("BMICategory(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}
