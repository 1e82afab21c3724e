package billing

import (
	"strings"

	"github.com/shopspring/decimal"
)

var wordOnes = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var wordTens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// AmountInWords renders the integer rupee part of an amount in Indian-English
// words (crore / lakh / thousand / hundred grouping). Paise are dropped, not
// spelled out. Examples:
//
//	0      -> "Zero Rupees only"
//	123456 -> "One Lakh Twenty Three Thousand Four Hundred Fifty Six Rupees only"
func AmountInWords(amount decimal.Decimal) string {
	rupees := amount.IntPart()
	if rupees <= 0 {
		return "Zero Rupees only"
	}
	return indianWords(rupees) + " Rupees only"
}

// indianWords converts n > 0 using the Indian grouping: the lowest three
// digits stand alone, every group above them is two digits, and amounts of a
// hundred crore or more recurse on the crore count.
func indianWords(n int64) string {
	var parts []string

	if crore := n / 10_000_000; crore > 0 {
		parts = append(parts, indianWords(crore), "Crore")
		n %= 10_000_000
	}
	if lakh := n / 100_000; lakh > 0 {
		parts = append(parts, belowHundred(lakh), "Lakh")
		n %= 100_000
	}
	if thousand := n / 1000; thousand > 0 {
		parts = append(parts, belowHundred(thousand), "Thousand")
		n %= 1000
	}
	if hundred := n / 100; hundred > 0 {
		parts = append(parts, wordOnes[hundred], "Hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, belowHundred(n))
	}
	return strings.Join(parts, " ")
}

func belowHundred(n int64) string {
	if n < 20 {
		return wordOnes[n]
	}
	if n%10 == 0 {
		return wordTens[n/10]
	}
	return wordTens[n/10] + " " + wordOnes[n%10]
}
