package vellum

import "strings"

// Declaration is one `property: value;` pair inside a rule.
type Declaration struct {
	Property string
	Value    string
}

// Rule is one `selector { declarations }` block, already selector-compiled.
// A rule whose selector failed to parse is dropped before it reaches this
// type; ParseSheet records the drop as an error but keeps parsing.
type Rule struct {
	Selector    *CompiledSelector
	Declarations []Declaration
	Order       int32
}

// StyleSheet is a parsed, ready-to-cascade collection of rules plus the
// `:root` variable table.
type StyleSheet struct {
	Rules     []Rule
	Variables map[string]string
}

func newStyleSheet() *StyleSheet {
	return &StyleSheet{Variables: make(map[string]string)}
}

// ParseSheet parses a CSS-like stylesheet string. A rule whose selector or
// whose individual declaration fails to parse is skipped; parsing resumes
// at the next rule boundary rather than aborting the whole sheet. All
// recoverable errors are returned alongside the sheet that could be built
// from the rest of the input.
func ParseSheet(css string) (*StyleSheet, []error) {
	sheet := newStyleSheet()
	var errs []error
	bytes := css
	pos := 0
	order := int32(0)

	for pos < len(bytes) {
		pos = skipWhitespaceAndComments(bytes, pos)
		if pos >= len(bytes) {
			break
		}
		if strings.HasPrefix(bytes[pos:], ":root") {
			next, err := parseRootVariables(bytes, pos, sheet)
			if err != nil {
				errs = append(errs, err)
				// Resume after the next '}' to keep parsing the rest of
				// the sheet.
				if idx := strings.IndexByte(bytes[pos:], '}'); idx >= 0 {
					pos = pos + idx + 1
					continue
				}
				break
			}
			pos = next
			continue
		}

		selStart := pos
		for pos < len(bytes) && bytes[pos] != '{' {
			pos++
		}
		selector := strings.TrimSpace(bytes[selStart:pos])
		if pos >= len(bytes) {
			errs = append(errs, AtOffset("expected '{' after selector '"+selector+"'", bytes, pos).WithCode(ErrMissingBrace))
			break
		}
		pos++ // consume '{'

		decls, next := parseDeclarations(bytes, pos)
		pos = next
		if pos >= len(bytes) || bytes[pos] != '}' {
			errs = append(errs, AtOffset("expected '}'", bytes, pos).WithCode(ErrMissingBrace))
			break
		}
		pos++ // consume '}'

		compiled, err := ParseSelector(selector)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		sheet.Rules = append(sheet.Rules, Rule{
			Selector:     compiled,
			Declarations: dedupDeclarations(decls),
			Order:        order,
		})
		order++
	}
	return sheet, errs
}

func dedupDeclarations(decls []Declaration) []Declaration {
	// Duplicate property keys within one rule keep only the last.
	seen := make(map[string]int, len(decls))
	out := make([]Declaration, 0, len(decls))
	for _, d := range decls {
		if i, ok := seen[d.Property]; ok {
			out[i] = d
			continue
		}
		seen[d.Property] = len(out)
		out = append(out, d)
	}
	return out
}

func parseRootVariables(css string, pos int, sheet *StyleSheet) (int, error) {
	pos += len(":root")
	pos = skipWhitespace(css, pos)
	if pos >= len(css) || css[pos] != '{' {
		return pos, AtOffset("expected '{' after :root", css, pos).WithCode(ErrMissingBrace)
	}
	pos++

	for {
		pos = skipWhitespaceAndComments(css, pos)
		if pos >= len(css) {
			return pos, AtOffset("expected '}'", css, pos).WithCode(ErrMissingBrace)
		}
		if css[pos] == '}' {
			pos++
			break
		}
		if !strings.HasPrefix(css[pos:], "--") {
			return pos, AtOffset("CSS variables must start with '--'", css, pos).
				WithCode(ErrInvalidSyntax).
				Suggest("use '--variable-name: value;' format")
		}
		start := pos
		for pos < len(css) && css[pos] != ':' && css[pos] != ' ' && css[pos] != '\t' && css[pos] != '\n' {
			pos++
		}
		name := css[start:pos]
		pos = skipWhitespace(css, pos)
		if pos >= len(css) || css[pos] != ':' {
			return pos, AtOffset("expected ':' after variable name", css, pos).
				WithCode(ErrInvalidSyntax).
				Suggest("format: --variable-name: value;")
		}
		pos++
		pos = skipWhitespace(css, pos)
		start = pos
		for pos < len(css) && css[pos] != ';' && css[pos] != '}' {
			pos++
		}
		value := strings.TrimSpace(css[start:pos])
		sheet.Variables[name] = value
		if pos < len(css) && css[pos] == ';' {
			pos++
		}
	}
	return pos, nil
}

func parseDeclarations(css string, pos int) ([]Declaration, int) {
	var decls []Declaration
	for {
		pos = skipWhitespaceAndComments(css, pos)
		if pos >= len(css) || css[pos] == '}' {
			break
		}
		start := pos
		for pos < len(css) && css[pos] != ':' && css[pos] != '}' {
			pos++
		}
		property := strings.TrimSpace(css[start:pos])
		if pos >= len(css) || css[pos] == '}' {
			break
		}
		pos++ // skip ':'
		pos = skipWhitespace(css, pos)
		start = pos
		depth := 0
		for pos < len(css) {
			switch css[pos] {
			case '(':
				depth++
			case ')':
				if depth > 0 {
					depth--
				}
			case ';', '}':
				if depth == 0 {
					goto doneValue
				}
			}
			pos++
		}
	doneValue:
		value := strings.TrimSpace(css[start:pos])
		if property != "" {
			decls = append(decls, Declaration{Property: property, Value: value})
		}
		if pos < len(css) && css[pos] == ';' {
			pos++
		}
	}
	return decls, pos
}

func skipWhitespace(s string, pos int) int {
	for pos < len(s) && (s[pos] == ' ' || s[pos] == '\t' || s[pos] == '\n' || s[pos] == '\r') {
		pos++
	}
	return pos
}

func skipWhitespaceAndComments(s string, pos int) int {
	for {
		pos = skipWhitespace(s, pos)
		if pos+1 < len(s) && s[pos] == '/' && s[pos+1] == '*' {
			end := strings.Index(s[pos+2:], "*/")
			if end < 0 {
				return len(s)
			}
			pos = pos + 2 + end + 2
			continue
		}
		return pos
	}
}

// expandVars replaces every `var(--name)` occurrence in value with the
// sheet's variable table entry, or the empty string when the name is
// undeclared.
func (sheet *StyleSheet) expandVars(value string) string {
	if !strings.Contains(value, "var(") {
		return value
	}
	var b strings.Builder
	i := 0
	for {
		idx := strings.Index(value[i:], "var(")
		if idx < 0 {
			b.WriteString(value[i:])
			break
		}
		b.WriteString(value[i : i+idx])
		start := i + idx + len("var(")
		end := strings.IndexByte(value[start:], ')')
		if end < 0 {
			b.WriteString(value[i+idx:])
			break
		}
		name := strings.TrimSpace(value[start : start+end])
		b.WriteString(sheet.Variables[name])
		i = start + end + 1
	}
	return b.String()
}

// ApplyDeclaration parses one declaration's value and merges it into out
// per spec.md §6.1's property table. An unparseable declaration is
// silently discarded; the rest of the rule still applies.
func (sheet *StyleSheet) ApplyDeclaration(out *Style, d Declaration) {
	value := sheet.expandVars(d.Value)
	switch d.Property {
	case "color":
		if c, ok := ParseColor(value); ok {
			out.Visual.Color = c
		}
	case "background":
		if c, ok := ParseColor(value); ok {
			out.Visual.Background = c
		}
	case "border-color":
		if c, ok := ParseColor(value); ok {
			out.Visual.BorderColor = c
		}
	case "opacity":
		if o, ok := parseOpacity(value); ok {
			out.Visual.Opacity = o
		}
	case "visible":
		if v, ok := parseBool(value); ok {
			out.Visual.Visible = &v
		}
	case "z-index":
		if z, ok := parseZIndex(value); ok {
			out.Visual.ZIndex = z
		}
	case "border-style":
		if bs, ok := parseBorderStyle(value); ok {
			out.Visual.BorderStyle = bs
		}
	case "display":
		if d, ok := parseDisplay(value); ok {
			out.Layout.Display = d
		}
	case "position":
		if p, ok := parsePosition(value); ok {
			out.Layout.Position = p
		}
	case "flex-direction":
		if fd, ok := parseFlexDirection(value); ok {
			out.Layout.FlexDirection = fd
		}
	case "justify-content":
		if j, ok := parseJustify(value); ok {
			out.Layout.JustifyContent = j
		}
	case "align-items":
		if a, ok := parseAlign(value); ok {
			out.Layout.AlignItems = a
		}
	case "flex-grow":
		if f, ok := parseFloat32(value); ok {
			out.Layout.FlexGrow = f
		}
	case "gap":
		if n, ok := parseUint16(value); ok {
			out.Layout.Gap = n
		}
	case "row-gap":
		if n, ok := parseUint16(value); ok {
			out.Layout.RowGap = &n
		}
	case "column-gap":
		if n, ok := parseUint16(value); ok {
			out.Layout.ColumnGap = &n
		}
	case "padding":
		if e, ok := parseEdges(value); ok {
			out.Spacing.Padding = e
		}
	case "margin":
		if e, ok := parseEdges(value); ok {
			out.Spacing.Margin = e
		}
	case "top":
		if n, ok := parseSignedLength(value); ok {
			out.Spacing.Top = &n
		}
	case "right":
		if n, ok := parseSignedLength(value); ok {
			out.Spacing.Right = &n
		}
	case "bottom":
		if n, ok := parseSignedLength(value); ok {
			out.Spacing.Bottom = &n
		}
	case "left":
		if n, ok := parseSignedLength(value); ok {
			out.Spacing.Left = &n
		}
	case "width":
		if s, ok := parseLength(value); ok {
			out.Sizing.Width = s
		}
	case "min-width":
		if s, ok := parseLength(value); ok {
			out.Sizing.MinWidth = s
		}
	case "max-width":
		if s, ok := parseLength(value); ok {
			out.Sizing.MaxWidth = s
		}
	case "height":
		if s, ok := parseLength(value); ok {
			out.Sizing.Height = s
		}
	case "min-height":
		if s, ok := parseLength(value); ok {
			out.Sizing.MinHeight = s
		}
	case "max-height":
		if s, ok := parseLength(value); ok {
			out.Sizing.MaxHeight = s
		}
	case "grid-template-rows":
		if t, ok := parseGridTemplate(value); ok {
			out.Layout.GridTemplateRows = t
		}
	case "grid-template-columns":
		if t, ok := parseGridTemplate(value); ok {
			out.Layout.GridTemplateColumns = t
		}
	case "grid-row":
		if g, ok := parseGridPlacement(value); ok {
			out.Layout.GridRow = g
		}
	case "grid-column":
		if g, ok := parseGridPlacement(value); ok {
			out.Layout.GridColumn = g
		}
	case "transition":
		out.Transitions = parseTransitions(value)
	}
}

func parseUint16(v string) (uint16, bool) {
	s, ok := parseLength(v)
	if !ok || s.Kind != SizeFixed {
		return 0, false
	}
	return uint16(s.Fixed), true
}

func parseBorderStyle(v string) (BorderStyle, bool) {
	switch strings.TrimSpace(v) {
	case "none":
		return BorderStyleNone, true
	case "solid":
		return BorderStyleSolid, true
	case "dashed":
		return BorderStyleDashed, true
	case "double":
		return BorderStyleDouble, true
	case "thick":
		return BorderStyleThick, true
	case "rounded":
		return BorderStyleRounded, true
	default:
		return 0, false
	}
}

func parseDisplay(v string) (Display, bool) {
	switch strings.TrimSpace(v) {
	case "block":
		return DisplayBlock, true
	case "flex":
		return DisplayFlex, true
	case "grid":
		return DisplayGrid, true
	case "none":
		return DisplayNone, true
	default:
		return 0, false
	}
}

func parsePosition(v string) (Position, bool) {
	switch strings.TrimSpace(v) {
	case "static":
		return PositionStatic, true
	case "relative":
		return PositionRelative, true
	case "absolute":
		return PositionAbsolute, true
	case "fixed":
		return PositionFixed, true
	default:
		return 0, false
	}
}

func parseFlexDirection(v string) (FlexDirection, bool) {
	switch strings.TrimSpace(v) {
	case "row":
		return FlexDirectionRow, true
	case "column":
		return FlexDirectionColumn, true
	default:
		return 0, false
	}
}

func parseJustify(v string) (Justify, bool) {
	switch strings.TrimSpace(v) {
	case "start":
		return JustifyStart, true
	case "center":
		return JustifyCenter, true
	case "end":
		return JustifyEnd, true
	case "space-between":
		return JustifySpaceBetween, true
	case "space-around":
		return JustifySpaceAround, true
	default:
		return 0, false
	}
}

func parseAlign(v string) (Align, bool) {
	switch strings.TrimSpace(v) {
	case "start":
		return AlignStart, true
	case "center":
		return AlignCenter, true
	case "end":
		return AlignEnd, true
	case "stretch":
		return AlignStretch, true
	default:
		return 0, false
	}
}
