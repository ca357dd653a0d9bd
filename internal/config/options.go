package config

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their
// meanings. This is the single source of truth for default values and
// generator output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		// Colors are ANSI 256 palette indexes.
		{Key: "theme.accent", Default: "63", Comment: "Accent color for headings and links"},
		{Key: "theme.code_background", Default: "236", Comment: "Background for code spans and code blocks"},
		{Key: "theme.quote_border", Default: "240", Comment: "Border color of block quotes"},
		{Key: "theme.quote_background", Default: "235", Comment: "Background tint of block quotes"},

		{Key: "preview.wrap", Default: 0, Comment: "Hard wrap width for the preview pane; 0 follows the pane width"},

		{Key: "editor.sample", Default: true, Comment: "Start with the built-in sample document instead of an empty buffer"},
		{Key: "editor.line_numbers", Default: false, Comment: "Show line numbers in the editor pane"},
	}
}
