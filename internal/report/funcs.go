package report

import (
	"fmt"
	"math"
	"text/template"
)

// funcs are the formatting helpers available to section templates.
var funcs = template.FuncMap{
	"f1":      func(x float64) string { return fmt.Sprintf("%.1f", x) },
	"f2":      func(x float64) string { return fmt.Sprintf("%.2f", x) },
	"f3":      func(x float64) string { return fmt.Sprintf("%.3f", x) },
	"signed":  func(x float64) string { return fmt.Sprintf("%+.3f", x) },
	"signed1": func(x float64) string { return fmt.Sprintf("%+.1f", x) },
	// pct prints the magnitude of a percentage; pair with belowabove for the sign.
	"pct":   func(x float64) string { return fmt.Sprintf("%.1f%%", math.Abs(x)) },
	"share": func(x float64) string { return fmt.Sprintf("%.0f%%", x*100) },
	"belowabove": func(x float64) string {
		if x < 0 {
			return "below"
		}
		return "above"
	},
	"updown": func(x float64) string {
		switch {
		case x > 0:
			return "up"
		case x < 0:
			return "down"
		}
		return "flat"
	},
	"fellrose": func(x float64) string {
		switch {
		case x > 0:
			return "risen"
		case x < 0:
			return "fallen"
		}
		return "held steady"
	},
	"charter": func(on bool) string {
		if on {
			return "an enforceable AI charter"
		}
		return "no binding AI charter"
	},
	"gapword": func(gap float64) string {
		switch {
		case gap > 0.1:
			return "automation is outpacing institutional trust"
		case gap > 0:
			return "automation is edging ahead of institutional trust"
		}
		return "institutional trust is keeping ahead of automation"
	},
}
