package lint

// Counts tallies findings by severity.
type Counts struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// Total returns the number of findings counted.
func (c Counts) Total() int { return c.Errors + c.Warnings + c.Info }

// Report collects every finding for one table.
type Report struct {
	Source   string    `json:"source"`
	Records  int       `json:"records"`
	Findings []Finding `json:"findings"`
	Counts   Counts    `json:"counts"`
}

// HasErrors reports whether any finding has error severity.
func (r *Report) HasErrors() bool {
	return r != nil && r.Counts.Errors > 0
}

// AtLeast returns findings whose severity is min or more severe.
func (r *Report) AtLeast(minSeverity Severity) []Finding {
	if r == nil {
		return nil
	}
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity <= minSeverity {
			out = append(out, f)
		}
	}
	return out
}

func (r *Report) add(findings ...Finding) {
	for _, f := range findings {
		switch f.Severity {
		case SeverityError:
			r.Counts.Errors++
		case SeverityWarning:
			r.Counts.Warnings++
		default:
			r.Counts.Info++
		}
		r.Findings = append(r.Findings, f)
	}
}
