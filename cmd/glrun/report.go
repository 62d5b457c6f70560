package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasm-gl/headless"
	"github.com/wippyai/wasm-gl/resource"
	"github.com/wippyai/wasm-gl/shim"
)

type importStatus int

const (
	importProvided importStatus = iota
	importUnsupported
	importMissing
)

func (s importStatus) String() string {
	switch s {
	case importProvided:
		return "ok"
	case importUnsupported:
		return "unsupported"
	case importMissing:
		return "missing"
	default:
		return "unknown"
	}
}

type importInfo struct {
	name   string
	status importStatus
}

// inspectImports classifies the functions imported from moduleName.
func inspectImports(defs []api.FunctionDefinition, moduleName string) []importInfo {
	var out []importInfo
	for _, def := range defs {
		mod, name, ok := def.Import()
		if !ok || mod != moduleName {
			continue
		}
		info := importInfo{name: name, status: importMissing}
		if ep, found := shim.Lookup(name); found {
			info.status = importProvided
			if !ep.Supported() {
				info.status = importUnsupported
			}
		}
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// frameStats describes backend activity over a run of frames.
type frameStats struct {
	frame   int
	calls   int
	draws   int
	live    map[resource.Category]int
	pending error
}

func collectStats(b *headless.Backend, c *shim.Context) frameStats {
	s := frameStats{
		calls: b.TotalCalls(),
		draws: len(b.Draws()),
		live:  make(map[resource.Category]int),
	}
	for _, cat := range resource.Categories() {
		s.live[cat] = c.Live(cat)
	}
	if err := c.Err(); err != nil {
		s.pending = err
	}
	return s
}

// since turns cumulative counters into deltas from prev. Live counts and
// the pending error stay absolute.
func (s frameStats) since(prev frameStats) frameStats {
	s.calls -= prev.calls
	s.draws -= prev.draws
	return s
}

type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	ok    lipgloss.Style
	warn  lipgloss.Style
	err   lipgloss.Style
	help  lipgloss.Style
}

func plainStyles() styles {
	s := lipgloss.NewStyle()
	return styles{title: s, label: s, value: s, ok: s, warn: s, err: s, help: s}
}

func colorStyles() styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		label: lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")),
		value: lipgloss.NewStyle().Bold(true),
		ok:    lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98")),
		warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD166")),
		err:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		help:  lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
	}
}

func renderImports(imports []importInfo, st styles) string {
	var b strings.Builder
	counts := map[importStatus]int{}
	for _, imp := range imports {
		counts[imp.status]++
		status := st.ok
		switch imp.status {
		case importUnsupported:
			status = st.warn
		case importMissing:
			status = st.err
		}
		fmt.Fprintf(&b, "  %-32s %s\n", imp.name, status.Render(imp.status.String()))
	}
	fmt.Fprintf(&b, "%d GL imports: %d ok, %d unsupported, %d missing\n",
		len(imports), counts[importProvided], counts[importUnsupported], counts[importMissing])
	return b.String()
}

func renderStats(s frameStats, st styles) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s %s  %s %s\n",
		st.label.Render("frame"), st.value.Render(fmt.Sprint(s.frame)),
		st.label.Render("gl calls"), st.value.Render(fmt.Sprint(s.calls)),
		st.label.Render("draws"), st.value.Render(fmt.Sprint(s.draws)))

	var live []string
	for _, cat := range resource.Categories() {
		if n := s.live[cat]; n > 0 {
			live = append(live, fmt.Sprintf("%s=%d", cat, n))
		}
	}
	if len(live) == 0 {
		live = append(live, "none")
	}
	fmt.Fprintf(&b, "%s %s\n", st.label.Render("live objects"), strings.Join(live, " "))

	if s.pending != nil {
		fmt.Fprintf(&b, "%s %s\n", st.label.Render("pending error"), st.err.Render(s.pending.Error()))
	} else {
		fmt.Fprintf(&b, "%s %s\n", st.label.Render("pending error"), st.ok.Render("none"))
	}
	return b.String()
}
