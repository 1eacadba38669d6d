package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// IsTTY indicates whether stdout is an interactive terminal.
// When false, UI functions produce plain text without colors or decorations.
var IsTTY = term.IsTerminal(os.Stdout.Fd())

// ═══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Reading-room greens and archive golds
// ═══════════════════════════════════════════════════════════════════════════════

var (
	Gold     = lipgloss.Color("#F4D03F") // Bright gold
	Amber    = lipgloss.Color("#E59866") // Warm amber
	Copper   = lipgloss.Color("#DC7633") // Copper accent
	Green    = lipgloss.Color("#58D68D") // Shelf-check green
	Emerald  = lipgloss.Color("#27AE60") // Deep emerald
	Blue     = lipgloss.Color("#5DADE2") // Catalog blue
	Cyan     = lipgloss.Color("#76D7C4") // Index-card cyan
	Purple   = lipgloss.Color("#9B59B6") // Binding purple
	Pink     = lipgloss.Color("#FF6B9D") // Error pink
	White    = lipgloss.Color("#FDFEFE")
	Gray     = lipgloss.Color("#AAB7B8")
	DarkGray = lipgloss.Color("#566573")
	Black    = lipgloss.Color("#17202A")
)

// ═══════════════════════════════════════════════════════════════════════════════
// TEXT STYLES
// ═══════════════════════════════════════════════════════════════════════════════

var (
	// Title for primary headings
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Gold)

	// Subtitle for secondary headings
	Subtitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Amber)

	// Success messages
	Success = lipgloss.NewStyle().
		Foreground(Green)

	// Error messages
	Error = lipgloss.NewStyle().
		Foreground(Pink).
		Bold(true)

	// Warning messages
	Warning = lipgloss.NewStyle().
		Foreground(Copper)

	// Info messages
	Info = lipgloss.NewStyle().
		Foreground(Blue)

	// Muted/secondary text
	Muted = lipgloss.NewStyle().
		Foreground(Gray)

	// Dim - even more subtle
	Dim = lipgloss.NewStyle().
		Foreground(DarkGray)

	// Highlight for important items
	Highlight = lipgloss.NewStyle().
		Foreground(Gold).
		Bold(true)

	// Code/path style
	Code = lipgloss.NewStyle().
		Foreground(Cyan)
)

// ═══════════════════════════════════════════════════════════════════════════════
// BADGES - Artifact kind indicators
// ═══════════════════════════════════════════════════════════════════════════════

var baseBadge = lipgloss.NewStyle().
	Padding(0, 1).
	Bold(true)

// PromptBadge returns the prompt kind badge
func PromptBadge() string {
	if !IsTTY {
		return "[PROMPT]"
	}
	return baseBadge.Background(Emerald).Foreground(White).Render("✎ PROMPT")
}

// InstructionBadge returns the instruction kind badge
func InstructionBadge() string {
	if !IsTTY {
		return "[INSTR]"
	}
	return baseBadge.Background(Blue).Foreground(White).Render("⌘ INSTR")
}

// ChatModeBadge returns the chat-mode kind badge
func ChatModeBadge() string {
	if !IsTTY {
		return "[MODE]"
	}
	return baseBadge.Background(Purple).Foreground(White).Render("◈ MODE")
}

// CollectionBadge returns the collection badge
func CollectionBadge() string {
	if !IsTTY {
		return "[COLLECTION]"
	}
	return baseBadge.Background(Gold).Foreground(Black).Render("⬡ COLLECTION")
}

// ═══════════════════════════════════════════════════════════════════════════════
// LOGO
// ═══════════════════════════════════════════════════════════════════════════════

// Logo returns the curio logo
func Logo() string {
	// Plain output for non-TTY environments
	if !IsTTY {
		return "\n  CURIO - The Curator's Companion\n"
	}

	lines := []struct {
		text  string
		color lipgloss.Color
	}{
		{"", Black},
		{"     ┌───────┐┌───────┐┌───────┐", DarkGray},
		{"     │ ✎     ││ ⌘     ││ ◈     │", Gold},
		{"     │ C U R ││ I O   ││       │", Amber},
		{"     │       ││       ││       │", Copper},
		{"     └───────┘└───────┘└───────┘", DarkGray},
		{"      ─── the curator's companion ───", Purple},
		{"", Black},
	}

	var result strings.Builder
	for _, line := range lines {
		styled := lipgloss.NewStyle().Foreground(line.color).Render(line.text)
		result.WriteString(styled)
		result.WriteString("\n")
	}

	return result.String()
}

// ═══════════════════════════════════════════════════════════════════════════════
// DECORATIVE ELEMENTS
// ═══════════════════════════════════════════════════════════════════════════════

// Divider returns a horizontal divider
func Divider(width int) string {
	return lipgloss.NewStyle().
		Foreground(DarkGray).
		Render(strings.Repeat("─", width))
}

// SectionHeader creates a decorated section header
func SectionHeader(title string) string {
	// Plain output for non-TTY environments
	if !IsTTY {
		return fmt.Sprintf("=== %s ===", title)
	}

	// Use terminal width, capped at 80
	width := TerminalWidth()
	if width > 80 {
		width = 80
	}

	titleStyled := lipgloss.NewStyle().
		Foreground(Gold).
		Bold(true).
		Render(title)

	titleLen := lipgloss.Width(title)
	padLeft := (width - titleLen - 6) / 2
	padRight := width - titleLen - 6 - padLeft

	left := lipgloss.NewStyle().Foreground(DarkGray).Render(strings.Repeat("─", padLeft) + "┤ ")
	right := lipgloss.NewStyle().Foreground(DarkGray).Render(" ├" + strings.Repeat("─", padRight))

	return left + titleStyled + right
}

// PageFooter creates a consistent page footer matching the header width
func PageFooter() string {
	// Plain output for non-TTY environments
	if !IsTTY {
		return "\n"
	}

	width := TerminalWidth()
	if width > 80 {
		width = 80
	}
	padSide := (width - 5) / 2 // 5 = " ✦ " with spaces
	left := strings.Repeat("─", padSide)
	right := strings.Repeat("─", width-padSide-5)
	line := lipgloss.NewStyle().Foreground(DarkGray).Render(left + " ✦ " + right)
	return "\n" + line + "\n"
}

// ═══════════════════════════════════════════════════════════════════════════════
// STATUS LINE COMPONENTS
// ═══════════════════════════════════════════════════════════════════════════════

// StatusLine creates a status line with icon and message
func StatusLine(icon, message string, color lipgloss.Color) string {
	if !IsTTY {
		return fmt.Sprintf("  %s %s", icon, message)
	}
	iconStyled := lipgloss.NewStyle().Foreground(color).Render(icon)
	msgStyled := lipgloss.NewStyle().Foreground(color).Render(message)
	return fmt.Sprintf("  %s %s", iconStyled, msgStyled)
}

// SuccessLine creates a success status line
func SuccessLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  OK: %s", message)
	}
	return StatusLine("✓", message, Green)
}

// ErrorLine creates an error status line
func ErrorLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  ERROR: %s", message)
	}
	return StatusLine("✗", message, Pink)
}

// WarningLine creates a warning status line
func WarningLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  WARN: %s", message)
	}
	return StatusLine("!", message, Copper)
}

// InfoLine creates an info status line
func InfoLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  %s", message)
	}
	return StatusLine("→", message, Blue)
}

// ═══════════════════════════════════════════════════════════════════════════════
// EMPTY STATES
// ═══════════════════════════════════════════════════════════════════════════════

// EmptyShelf returns a friendly empty state for a repository with no collections
func EmptyShelf() string {
	if !IsTTY {
		return "\n  (empty)\n\n  No collection manifests found.\n  Add a .yml manifest under collections/ to begin.\n"
	}

	shelf := lipgloss.NewStyle().Foreground(DarkGray).Render(`
      ┌─────────────┐
      │             │
      │   (empty)   │
      │             │
      └─────────────┘`)

	message := lipgloss.NewStyle().Foreground(Gray).Render("No collection manifests found.")
	hint := lipgloss.NewStyle().Foreground(Cyan).Render("collections/")

	return fmt.Sprintf("%s\n\n  %s\n  Add a .yml manifest under %s to begin.\n", shelf, message, hint)
}

// NoResults returns a friendly no-results state
func NoResults(query string) string {
	if !IsTTY {
		return fmt.Sprintf("\n  Nothing matched \"%s\"\n  Try broader search terms\n", query)
	}

	icon := lipgloss.NewStyle().Foreground(DarkGray).Render("🔍")
	message := lipgloss.NewStyle().Foreground(Gray).Render(fmt.Sprintf("Nothing matched \"%s\"", query))
	hint := lipgloss.NewStyle().Foreground(Cyan).Render("Try broader search terms")

	return fmt.Sprintf("\n  %s %s\n  %s\n", icon, message, hint)
}

// ═══════════════════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════════════════

// Truncate truncates text to max length with ellipsis
func Truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max-3] + "..."
}

// WrapText wraps text to fit within maxWidth, returning multiple lines.
func WrapText(text string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var currentLine strings.Builder

	for _, word := range words {
		if currentLine.Len() == 0 {
			currentLine.WriteString(word)
		} else if currentLine.Len()+1+len(word) <= maxWidth {
			currentLine.WriteString(" ")
			currentLine.WriteString(word)
		} else {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentLine.WriteString(word)
		}
	}

	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return lines
}

// Render applies a lipgloss style to text, returning plain text in non-TTY environments.
func Render(style lipgloss.Style, text string) string {
	if !IsTTY {
		return text
	}
	return style.Render(text)
}

// RenderMuted renders text in muted style (TTY-aware)
func RenderMuted(text string) string {
	return Render(Muted, text)
}

// RenderDim renders text in dim style (TTY-aware)
func RenderDim(text string) string {
	return Render(Dim, text)
}

// RenderHighlight renders text in highlight style (TTY-aware)
func RenderHighlight(text string) string {
	return Render(Highlight, text)
}

// RenderInfo renders text in info style (TTY-aware)
func RenderInfo(text string) string {
	return Render(Info, text)
}

// TerminalWidth returns the current terminal width, defaulting to 80 if unknown
func TerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// DescriptionWidth returns the recommended width for descriptions based on terminal size
func DescriptionWidth() int {
	w := TerminalWidth()
	// Account for indentation (4 chars) and some margin
	desc := w - 8
	if desc < 40 {
		return 40
	}
	return desc
}
