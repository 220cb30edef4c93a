package render

// palette holds the section card colors. Colors are assigned round-robin
// by position, not by key identity, so any section count yields a
// stable, low-repetition assignment.
var palette = []string{
	"#667eea",
	"#764ba2",
	"#f093fb",
	"#4facfe",
	"#43e97b",
	"#fa709a",
	"#30cfd0",
	"#a8edea",
}

// colorFor returns the palette color for the section at position i.
func colorFor(i int) string {
	return palette[i%len(palette)]
}
