package modem

import "testing"

func TestDefaultBandsValid(t *testing.T) {
	if err := DefaultBands.Validate(Tolerance); err != nil {
		t.Errorf("default band table should validate: %v", err)
	}
	if err := SingleToneBands.Validate(Tolerance); err != nil {
		t.Errorf("single tone band table should validate: %v", err)
	}
}

func TestValidateRejectsWideTolerance(t *testing.T) {
	// 100 Hz tolerance equals half the 200 Hz spacing; a peak could then sit
	// within reach of two tones at once.
	if err := DefaultBands.Validate(100); err == nil {
		t.Errorf("tolerance of half the tone spacing should be rejected")
	}
	if err := DefaultBands.Validate(99); err != nil {
		t.Errorf("tolerance below half the tone spacing should pass: %v", err)
	}
}

func TestValidateRejectsBadTables(t *testing.T) {
	cases := map[string]BandTable{
		"empty":          {},
		"wrong bit":      {{Bit: 1, FreqZero: 300, FreqOne: 500}},
		"inverted tones": {{Bit: 0, FreqZero: 500, FreqOne: 300}},
		"overlap": {
			{Bit: 0, FreqZero: 300, FreqOne: 500},
			{Bit: 1, FreqZero: 450, FreqOne: 700},
		},
		"nine bands": {
			{Bit: 0, FreqZero: 300, FreqOne: 500},
			{Bit: 1, FreqZero: 700, FreqOne: 900},
			{Bit: 2, FreqZero: 1100, FreqOne: 1300},
			{Bit: 3, FreqZero: 1500, FreqOne: 1700},
			{Bit: 4, FreqZero: 1900, FreqOne: 2100},
			{Bit: 5, FreqZero: 2300, FreqOne: 2500},
			{Bit: 6, FreqZero: 2700, FreqOne: 2900},
			{Bit: 7, FreqZero: 3100, FreqOne: 3300},
			{Bit: 8, FreqZero: 3500, FreqOne: 3700},
		},
	}

	for name, table := range cases {
		if err := table.Validate(Tolerance); err == nil {
			t.Errorf("%s: expected a validation error", name)
		}
	}
}
