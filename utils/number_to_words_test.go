package utils

import "testing"

func TestNumberToWords(t *testing.T) {
	cases := map[int]string{
		0:        "",
		7:        "Seven",
		15:       "Fifteen",
		42:       "Forty Two",
		100:      "One Hundred",
		215:      "Two Hundred Fifteen",
		1000:     "One Thousand",
		99999:    "Ninety Nine Thousand Nine Hundred Ninety Nine",
		100000:   "One Lakh",
		250000:   "Two Lakh Fifty Thousand",
		10000000: "One Crore",
		12345678: "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight",
	}
	for num, want := range cases {
		if got := NumberToWords(num); got != want {
			t.Errorf("NumberToWords(%d) = %q, want %q", num, got, want)
		}
	}
}

func TestNumberToCurrencyWords(t *testing.T) {
	cases := map[float64]string{
		0:       "Zero Rupees Only",
		1500:    "One Thousand Five Hundred Rupees Only",
		1500.50: "One Thousand Five Hundred Rupees and Fifty Paise Only",
		0.25:    "Twenty Five Paise Only",
	}
	for amount, want := range cases {
		if got := NumberToCurrencyWords(amount); got != want {
			t.Errorf("NumberToCurrencyWords(%v) = %q, want %q", amount, got, want)
		}
	}
}
