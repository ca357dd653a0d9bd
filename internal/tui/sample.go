package tui

// sampleDocument seeds the editor on first launch so the preview has
// something to show. Disable with editor.sample = false.
const sampleDocument = `# inkpad

Live **markdown** preview in your terminal. Edit on the left, watch the
right pane follow every keystroke.

## Things it understands

- [x] task lists
- [ ] with open items
- plain bullets, *emphasis*, ~~strikethrough~~ and ` + "`code spans`" + `

1. ordered lists
2. numbered from wherever they start

> Block quotes get a border and a tint.

` + "```go" + `
func main() {
	println("code blocks keep their whitespace")
}
` + "```" + `

| name | role |
|------|------|
| ink  | pigment |
| pad  | paper |

Links work too: [charm](https://charm.sh) — and images fall back to their
alt text: ![a gopher](gopher.png "mascot")
`
