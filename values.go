package vellum

import (
	"strconv"
	"strings"
	"time"
)

// parseLength parses `auto`, `N`, or `N%` into a Size.
func parseLength(v string) (Size, bool) {
	v = strings.TrimSpace(v)
	if v == "auto" || v == "" {
		return Auto(), true
	}
	if strings.HasSuffix(v, "%") {
		n, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 32)
		if err != nil {
			return Size{}, false
		}
		return Pct(float32(n)), true
	}
	n, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return Size{}, false
	}
	return Cells(int32(n)), true
}

// parseSignedLength parses a signed cell offset (`top`, `right`, …).
func parseSignedLength(v string) (int16, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 16)
	if err != nil {
		return 0, false
	}
	return int16(n), true
}

// parseEdges parses the 1/2/3/4-value edge shorthand used by padding and
// margin, in CSS order (top, right, bottom, left).
func parseEdges(v string) (Edges, bool) {
	fields := strings.Fields(v)
	nums := make([]uint16, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 16)
		if err != nil {
			return Edges{}, false
		}
		nums = append(nums, uint16(n))
	}
	switch len(nums) {
	case 1:
		return EdgesAll(nums[0]), true
	case 2:
		return Edges{Top: nums[0], Bottom: nums[0], Right: nums[1], Left: nums[1]}, true
	case 3:
		return Edges{Top: nums[0], Right: nums[1], Left: nums[1], Bottom: nums[2]}, true
	case 4:
		return Edges{Top: nums[0], Right: nums[1], Bottom: nums[2], Left: nums[3]}, true
	default:
		return Edges{}, false
	}
}

// parseDuration parses `Nms` or `Ns`.
func parseDuration(v string) (time.Duration, bool) {
	v = strings.TrimSpace(v)
	if strings.HasSuffix(v, "ms") {
		n, err := strconv.ParseFloat(strings.TrimSuffix(v, "ms"), 64)
		if err != nil {
			return 0, false
		}
		return time.Duration(n * float64(time.Millisecond)), true
	}
	if strings.HasSuffix(v, "s") {
		n, err := strconv.ParseFloat(strings.TrimSuffix(v, "s"), 64)
		if err != nil {
			return 0, false
		}
		return time.Duration(n * float64(time.Second)), true
	}
	return 0, false
}

// parseEasing parses an easing keyword or `cubic-bezier(x1,y1,x2,y2)`.
func parseEasing(v string) (Easing, float32, float32, float32, float32, bool) {
	v = strings.TrimSpace(v)
	switch v {
	case "linear":
		return EasingLinear, 0, 0, 0, 0, true
	case "ease-in":
		return EasingEaseIn, 0, 0, 0, 0, true
	case "ease-out":
		return EasingEaseOut, 0, 0, 0, 0, true
	case "ease-in-out", "ease":
		return EasingEaseInOut, 0, 0, 0, 0, true
	}
	if strings.HasPrefix(v, "cubic-bezier(") && strings.HasSuffix(v, ")") {
		inner := v[len("cubic-bezier(") : len(v)-1]
		parts := strings.Split(inner, ",")
		if len(parts) != 4 {
			return 0, 0, 0, 0, 0, false
		}
		nums := make([]float32, 4)
		for i, p := range parts {
			n, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
			if err != nil {
				return 0, 0, 0, 0, 0, false
			}
			nums[i] = float32(n)
		}
		return EasingCubicBezier, nums[0], nums[1], nums[2], nums[3], true
	}
	return 0, 0, 0, 0, 0, false
}

// parseTransitions parses a comma-separated `transition:` value into a
// list of TransitionSpec entries. A malformed entry is skipped, not fatal
// — per spec, transition errors do not exist.
func parseTransitions(v string) []TransitionSpec {
	var out []TransitionSpec
	for _, entry := range splitTopLevelCommas(v) {
		fields := strings.Fields(entry)
		if len(fields) == 0 {
			continue
		}
		spec := TransitionSpec{Property: fields[0]}
		if len(fields) > 1 {
			if d, ok := parseDuration(fields[1]); ok {
				spec.Duration = d
			} else {
				continue
			}
		}
		if len(fields) > 2 {
			if d, ok := parseDuration(fields[2]); ok {
				spec.Delay = d
			}
		}
		if len(fields) > 3 {
			easingStr := strings.Join(fields[3:], " ")
			if e, x1, y1, x2, y2, ok := parseEasing(easingStr); ok {
				spec.Easing, spec.X1, spec.Y1, spec.X2, spec.Y2 = e, x1, y1, x2, y2
			}
		}
		out = append(out, spec)
	}
	return out
}

func splitTopLevelCommas(s string) []string {
	var out []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, s[start:])
	return out
}

// parseGridTrack parses one track of a grid-template list: a bare number
// (cells), `auto`, `min-content`, `max-content`, or `Nfr`.
func parseGridTrack(tok string) (GridTrack, bool) {
	tok = strings.TrimSpace(tok)
	switch tok {
	case "auto":
		return GridTrack{Kind: GridTrackAuto}, true
	case "min-content":
		return GridTrack{Kind: GridTrackMinContent}, true
	case "max-content":
		return GridTrack{Kind: GridTrackMaxContent}, true
	}
	if strings.HasSuffix(tok, "fr") {
		n, err := strconv.ParseFloat(strings.TrimSuffix(tok, "fr"), 32)
		if err != nil {
			return GridTrack{}, false
		}
		return GridTrack{Kind: GridTrackFraction, Frac: float32(n)}, true
	}
	n, err := strconv.ParseFloat(tok, 32)
	if err != nil {
		return GridTrack{}, false
	}
	return GridTrack{Kind: GridTrackFixed, Fixed: int32(n)}, true
}

// parseGridTemplate parses a `grid-template-rows`/`grid-template-columns`
// value, expanding a single top-level `repeat(n, track)` call.
func parseGridTemplate(v string) ([]GridTrack, bool) {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "repeat(") && strings.HasSuffix(v, ")") {
		inner := v[len("repeat(") : len(v)-1]
		parts := strings.SplitN(inner, ",", 2)
		if len(parts) != 2 {
			return nil, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil || n <= 0 {
			return nil, false
		}
		track, ok := parseGridTrack(parts[1])
		if !ok {
			return nil, false
		}
		tracks := make([]GridTrack, n)
		for i := range tracks {
			tracks[i] = track
		}
		return tracks, true
	}
	fields := strings.Fields(v)
	tracks := make([]GridTrack, 0, len(fields))
	for _, f := range fields {
		t, ok := parseGridTrack(f)
		if !ok {
			return nil, false
		}
		tracks = append(tracks, t)
	}
	return tracks, true
}

// parseGridPlacement parses `grid-row`/`grid-column`: `N`, `N / N`, or
// `span N` (encoded as End = -N per the spec's convention).
func parseGridPlacement(v string) (GridPlacement, bool) {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "span ") {
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(v, "span ")))
		if err != nil {
			return GridPlacement{}, false
		}
		return GridPlacement{Start: 0, End: int32(-n)}, true
	}
	if idx := strings.Index(v, "/"); idx >= 0 {
		start, err1 := strconv.Atoi(strings.TrimSpace(v[:idx]))
		end, err2 := strconv.Atoi(strings.TrimSpace(v[idx+1:]))
		if err1 != nil || err2 != nil {
			return GridPlacement{}, false
		}
		return GridPlacement{Start: int32(start), End: int32(end)}, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return GridPlacement{}, false
	}
	return GridPlacement{Start: int32(n)}, true
}

func parseBool(v string) (bool, bool) {
	switch strings.TrimSpace(v) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

func parseOpacity(v string) (float32, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 32)
	if err != nil {
		return 0, false
	}
	if n < 0 {
		n = 0
	}
	if n > 1 {
		n = 1
	}
	return float32(n), true
}

func parseFloat32(v string) (float32, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 32)
	if err != nil {
		return 0, false
	}
	return float32(n), true
}

func parseZIndex(v string) (int32, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}
