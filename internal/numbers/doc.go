// Package numbers classifies integers by their mathematical properties.
//
// Every function in this package is pure: it reads only its argument and
// never fails. Negative inputs are handled by operating on the magnitude
// for digit-based checks (DigitSum, IsArmstrong) and by the usual
// mathematical definitions elsewhere, so no number below 2 is prime or
// perfect.
package numbers
