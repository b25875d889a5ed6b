package utils

import "errors"

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	// Sanity checks to avoid garbage input
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return bmi, nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

// CalculateBMR is the Mifflin-St Jeor basal metabolic rate with the
// advisor's age adjustments: +5 under 18, -5 over 60.
func CalculateBMR(age int, weightKg, heightCm float64) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if age < 18 {
		bmr += 5
	} else if age > 60 {
		bmr -= 5
	}
	return bmr
}

// DailyCalorieTarget scales BMR by the HbA1c band: normal gets the
// sedentary 1.2 factor, prediabetes 1.1, diabetes the tightest 1.0.
func DailyCalorieTarget(bmr, hba1c float64) float64 {
	switch {
	case hba1c < 5.7:
		return bmr * 1.2
	case hba1c <= 6.4:
		return bmr * 1.1
	default:
		return bmr
	}
}
