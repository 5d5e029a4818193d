package labnote

import (
	"fmt"
	"strings"
)

// NoAnnotation stands in for an empty annotation in exports.
const NoAnnotation = "_No annotation._"

// Filename is the suggested export filename for n.
func Filename(n Note) string {
	return fmt.Sprintf("snapshot-%s-year%d.md", n.ScenarioID, n.Year)
}

// Export renders n as a Markdown document. Writing it anywhere is up to the caller.
func Export(n Note) Document {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", n.Title)

	if strings.TrimSpace(n.Annotation) == "" {
		fmt.Fprintf(&b, "> %s\n", NoAnnotation)
	} else {
		for _, line := range strings.Split(n.Annotation, "\n") {
			fmt.Fprintf(&b, "> %s\n", line)
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "- **Saved:** %s\n", n.Timestamp.UTC().Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&b, "- **Scenario:** %s\n", n.ScenarioName)
	fmt.Fprintf(&b, "- **Year:** %d\n", n.Year)
	fmt.Fprintf(&b, "- **Composite score:** %d/100\n", n.CompositeScore)
	fmt.Fprintf(&b, "- **Rating:** %s\n", n.Rating)

	b.WriteString("\n| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Gini | %.3f |\n", n.Metrics.Gini)
	fmt.Fprintf(&b, "| Civic trust | %.3f |\n", n.Metrics.CivicTrust)
	fmt.Fprintf(&b, "| AI influence | %.3f |\n", n.Metrics.AIInfluence)
	fmt.Fprintf(&b, "| Annual emissions | %.2f Gt CO2e |\n", n.Metrics.AnnualEmissions)
	fmt.Fprintf(&b, "| Resilience | %.3f |\n", n.Metrics.ResilienceScore)

	b.WriteString("\n## Report\n\n")
	b.WriteString(n.Report)
	if !strings.HasSuffix(n.Report, "\n") {
		b.WriteString("\n")
	}

	return Document{Filename: Filename(n), Body: b.String()}
}

// Export renders the note with id.
func (s *Store) Export(id string) (Document, bool) {
	n, ok := s.Get(id)
	if !ok {
		return Document{}, false
	}
	return Export(n), true
}
