package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Themes accepted by NewStyled.
const (
	ThemeDefault = "default"
	ThemeMono    = "mono"
)

// Styled renders the same tokens as Text with per-color styling. The mono
// theme forces an ASCII color profile, so its output matches Field exactly.
type Styled struct {
	renderer *lipgloss.Renderer

	border  lipgloss.Style
	status  lipgloss.Style
	gameEnd lipgloss.Style
	colors  map[byte]lipgloss.Style
	virus   map[byte]lipgloss.Style
}

// NewStyled creates a renderer writing to w with the named theme.
func NewStyled(w io.Writer, theme string) *Styled {
	r := lipgloss.NewRenderer(w)
	if theme == ThemeMono {
		r.SetColorProfile(termenv.Ascii)
	}

	s := &Styled{
		renderer: r,
		border:   r.NewStyle().Foreground(lipgloss.Color("#626262")),
		status:   r.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		gameEnd:  r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		colors: map[byte]lipgloss.Style{
			'R': r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
			'Y': r.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
			'B': r.NewStyle().Foreground(lipgloss.Color("#74B9FF")).Bold(true),
		},
		virus: map[byte]lipgloss.Style{
			'r': r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Underline(true),
			'y': r.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Underline(true),
			'b': r.NewStyle().Foreground(lipgloss.Color("#74B9FF")).Underline(true),
		},
	}
	return s
}

// Token styles one three-character cell token by the letter in its middle.
func (s *Styled) Token(token string) string {
	if len(token) != 3 || token == "   " {
		return token
	}
	letter := token[1]
	if style, ok := s.virus[letter]; ok {
		return style.Render(token)
	}
	if style, ok := s.colors[letter]; ok {
		return style.Render(token)
	}
	return token
}

// Field renders the bordered grid with styled tokens.
func (s *Styled) Field(v View) string {
	var b strings.Builder
	wall := s.border.Render("|")
	for r := 0; r < v.Rows(); r++ {
		b.WriteString(wall)
		for c := 0; c < v.Columns(); c++ {
			b.WriteString(s.Token(v.CellDisplay(r, c)))
		}
		b.WriteString(wall)
		b.WriteByte('\n')
	}
	b.WriteString(s.border.Render(Footer(v.Columns())))
	return b.String()
}

// Status renders the status lines, empty while play continues.
func (s *Styled) Status(v View) string {
	var lines []string
	for _, line := range Status(v) {
		if line == GameOver {
			lines = append(lines, s.gameEnd.Render(line))
		} else {
			lines = append(lines, s.status.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}
