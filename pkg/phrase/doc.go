// Package phrase turns a clock reading into a loose natural-language phrase.
//
// The minute is bucketed into fixed ranges. Each bucket contributes a prefix,
// a postfix and an hour offset, and the phrase is assembled as
//
//	prefix + hourWord(hour+offset) + postfix
//
// so 3:16 reads "quarter past three or so" and 3:50 reads "almost four".
// The hour offset wraps on the 12-hour dial: 12:50 reads "almost one".
//
// # Usage
//
//	phrase.Format(3, 16)          // "quarter past three or so"
//	phrase.FromTime(time.Now())   // 24-hour clock folded onto 1..12
//
// Format is a pure function. Inputs outside the dial (hour not in 1..12,
// minute not in 0..59) produce an empty string; use [Validate] to get a
// descriptive error instead.
package phrase
