package render

// Theme holds the colors the renderer bakes into the element tree.
// Values are ANSI 256 palette indexes, the same convention the rest of
// the lipgloss styling uses.
type Theme struct {
	Accent          string
	CodeBackground  string
	QuoteBorder     string
	QuoteBackground string
}

func DefaultTheme() Theme {
	return Theme{
		Accent:          "63",
		CodeBackground:  "236",
		QuoteBorder:     "240",
		QuoteBackground: "235",
	}
}
