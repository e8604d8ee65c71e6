package output

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/rothcalc/rothcalc/internal/domain"
	"github.com/rothcalc/rothcalc/pkg/money"
	"gopkg.in/yaml.v3"
)

// GenerateReport resolves the named format and writes the report into dir.
// "all" writes the verbose console, detailed CSV, and JSON variants.
func GenerateReport(results *domain.ScenarioComparison, format, dir string) error {
	if format == "all" {
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, CSVDetailedExporter{}, JSONFormatter{}} {
			if _, err := WriteFormatted(f, results, dir); err != nil {
				return fmt.Errorf("writing %s report: %w", f.Name(), err)
			}
		}
		return nil
	}
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	_, err := WriteFormatted(f, results, dir)
	return err
}

// SaveConfiguration writes a scenario configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// FormatEquivalence renders solver results as console text.
func FormatEquivalence(results []*domain.EquivalenceResult) []byte {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "EQUIVALENT ROTH CONTRIBUTIONS")
	fmt.Fprintln(&buf, "=============================")
	for _, r := range results {
		fmt.Fprintf(&buf, "%s:\n", r.ScenarioName)
		fmt.Fprintf(&buf, "  Input monthly contribution:       %s\n", money.Format(r.InputMonthly))
		fmt.Fprintf(&buf, "  Equivalent Roth (after-tax):      %s/mo\n", money.Format(r.EquivalentAfterTax))
		fmt.Fprintf(&buf, "  Same take-home cost as pre-tax:   %s/mo\n", money.Format(r.EquivalentPreTax))
		fmt.Fprintf(&buf, "  Traditional after-tax target:     %s\n", money.Format(r.TargetTradAfterTax))
		fmt.Fprintf(&buf, "  Roth after-tax achieved:          %s\n", money.Format(r.AchievedRothAfterTax))
		if r.Converged {
			fmt.Fprintf(&buf, "  Converged within %s\n", money.Format(r.Tolerance))
		} else {
			fmt.Fprintf(&buf, "  Best effort: gap exceeds the %s tolerance\n", money.Format(r.Tolerance))
		}
		fmt.Fprintln(&buf)
	}
	return buf.Bytes()
}
