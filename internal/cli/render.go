package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/number-classifier/internal/model"
)

// RenderClassification renders a classification as a boxed key/value list.
func RenderClassification(c model.Classification) string {
	var b strings.Builder

	row := func(label, value string) {
		b.WriteString(LabelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("prime", yesNo(c.IsPrime))
	row("perfect", yesNo(c.IsPerfect))
	row("properties", strings.Join(c.Properties, ", "))
	row("digit sum", strconv.Itoa(c.DigitSum))
	if c.FunFact != "" {
		row("fun fact", c.FunFact)
	}

	return RenderBox(strconv.FormatInt(c.Number, 10), strings.TrimSuffix(b.String(), "\n"))
}

func yesNo(v bool) string {
	if v {
		return SuccessStyle.Render(SuccessIcon + " yes")
	}
	return SubtleStyle.Render(ErrorIcon + " no")
}

// ScanSummary aggregates classifications over a range of numbers.
type ScanSummary struct {
	Perfect   []int64
	Armstrong []int64
	From      int64
	To        int64
	Total     int
	Primes    int
	Even      int
}

// Add records one classification in the summary.
func (s *ScanSummary) Add(c model.Classification) {
	s.Total++
	if c.IsPrime {
		s.Primes++
	}
	if c.IsPerfect {
		s.Perfect = append(s.Perfect, c.Number)
	}
	if c.HasProperty(model.PropertyEven) {
		s.Even++
	}
	if c.HasProperty(model.PropertyArmstrong) {
		s.Armstrong = append(s.Armstrong, c.Number)
	}
}

// RenderScanSummary renders the aggregated results of a range scan.
func RenderScanSummary(s ScanSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%d\n", LabelStyle.Render("numbers"), s.Total)
	fmt.Fprintf(&b, "%s%d\n", LabelStyle.Render("primes"), s.Primes)
	fmt.Fprintf(&b, "%s%d\n", LabelStyle.Render("even"), s.Even)
	fmt.Fprintf(&b, "%s%d\n", LabelStyle.Render("odd"), s.Total-s.Even)
	fmt.Fprintf(&b, "%s%s\n", LabelStyle.Render("perfect"), joinNumbers(s.Perfect))
	fmt.Fprintf(&b, "%s%s", LabelStyle.Render("armstrong"), joinNumbers(s.Armstrong))

	title := fmt.Sprintf("%s Scan %d..%d", ChartIcon, s.From, s.To)
	return RenderBox(title, b.String())
}

func joinNumbers(ns []int64) string {
	if len(ns) == 0 {
		return SubtleStyle.Render("none")
	}
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.FormatInt(n, 10)
	}
	return strings.Join(parts, ", ")
}
