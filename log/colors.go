package log

// ANSI color codes for console output.
const (
	colorReset   = "\033[0m"
	colorGray    = "\033[90m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
	colorWhite   = "\033[37m"
)

// palette maps semantic color names to their escape sequences.
var palette = map[string]string{
	"gray":    colorGray,
	"red":     colorRed,
	"green":   colorGreen,
	"yellow":  colorYellow,
	"blue":    colorBlue,
	"magenta": colorMagenta,
	"cyan":    colorCyan,
	"white":   colorWhite,
}

// levelColors maps each severity to its console color name.
var levelColors = map[Level]string{
	LevelDebug:    "white",
	LevelInfo:     "green",
	LevelWarning:  "yellow",
	LevelError:    "magenta",
	LevelCritical: "red",
}

// colorize wraps s in the escape sequence of the named color.
// Unknown color names are the identity wrapper: s is returned unchanged.
func colorize(name, s string) string {
	esc, ok := palette[name]
	if !ok {
		return s
	}

	return esc + s + colorReset
}

// levelColor returns the color name associated with a severity.
// Unnamed levels have no color.
func levelColor(l Level) string {
	return levelColors[l]
}
