package viz

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/heatcurve/internal/curve"
	"github.com/san-kum/heatcurve/internal/series"
)

const (
	fieldTarget = iota
	fieldHeatCurve
	numFields
)

// chartMargin covers the y labels and panel border.
const chartMargin = 16

// App is the interactive calculator. Every parameter change recomputes the
// series and table; nothing is cached.
type App struct {
	params      curve.Params
	cursor      int
	editing     bool
	editBuf     string
	errMsg      string
	theme       int
	chartHeight int
	width       int
}

// NewApp starts the calculator at p. Out-of-range values are clamped.
func NewApp(p curve.Params, theme string, chartHeight int) App {
	return App{
		params: curve.Params{
			TargetTemp: curve.ClampTarget(p.TargetTemp),
			HeatCurve:  curve.ClampHeatCurve(p.HeatCurve),
		},
		theme:       themeIndex(theme),
		chartHeight: chartHeight,
		width:       80,
	}
}

// Params returns the current inputs.
func (a App) Params() curve.Params { return a.params }

// Theme returns the active theme.
func (a App) Theme() Theme { return Themes[a.theme] }

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.editing {
			return a.editKey(msg), nil
		}
		return a.handleKey(msg)
	case tea.WindowSizeMsg:
		a.width = msg.Width
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c", "esc":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < numFields-1 {
			a.cursor++
		}
	case "left", "h":
		a.step(-1, false)
	case "right", "l":
		a.step(1, false)
	case "shift+left", "H":
		a.step(-1, true)
	case "shift+right", "L":
		a.step(1, true)
	case "enter", " ":
		a.editing, a.errMsg = true, ""
		a.editBuf = strconv.FormatFloat(a.field(), 'f', -1, 64)
	case "t", "T":
		a.theme = (a.theme + 1) % len(Themes)
	case "r", "R":
		a.params, a.errMsg = curve.DefaultParams(), ""
	}
	return a, nil
}

func (a App) editKey(msg tea.KeyMsg) App {
	switch msg.String() {
	case "enter":
		a.commitEdit()
	case "esc":
		a.editing, a.editBuf = false, ""
	case "backspace":
		if len(a.editBuf) > 0 {
			a.editBuf = a.editBuf[:len(a.editBuf)-1]
		}
	default:
		for _, c := range msg.Runes {
			if (c >= '0' && c <= '9') || c == '.' || c == '-' {
				a.editBuf += string(c)
			}
		}
	}
	return a
}

func (a *App) commitEdit() {
	a.editing = false
	v, err := strconv.ParseFloat(a.editBuf, 64)
	a.editBuf = ""
	if err != nil {
		a.errMsg = fmt.Sprintf("not a number: %v", err)
		return
	}
	next := a.params
	if a.cursor == fieldTarget {
		next.TargetTemp = v
	} else {
		next.HeatCurve = v
	}
	if err := next.Validate(); err != nil {
		a.errMsg = err.Error()
		return
	}
	a.params, a.errMsg = next, ""
}

// step moves the selected field like its slider does. Fine steps apply to the
// setpoint only and use the full entry range.
func (a *App) step(dir float64, fine bool) {
	a.errMsg = ""
	switch a.cursor {
	case fieldTarget:
		if fine {
			v := a.params.TargetTemp + dir*curve.TargetStep
			a.params.TargetTemp = curve.ClampTarget(math.Round(v*10) / 10)
			return
		}
		v := a.params.TargetTemp + dir*curve.SliderTargetStep
		v = math.Round(v/curve.SliderTargetStep) * curve.SliderTargetStep
		a.params.TargetTemp = math.Max(curve.SliderMinTarget, math.Min(curve.SliderMaxTarget, v))
	case fieldHeatCurve:
		v := a.params.HeatCurve + dir*curve.HeatCurveStep
		a.params.HeatCurve = curve.ClampHeatCurve(curve.RoundLabel(v))
	}
}

// chartWidth doubles the horizontal resolution on wide terminals.
func (a App) chartWidth() int {
	if a.width-chartMargin >= 2*series.Len {
		return 2*series.Len - 1
	}
	return 0
}

func (a App) field() float64 {
	if a.cursor == fieldTarget {
		return a.params.TargetTemp
	}
	return a.params.HeatCurve
}

func (a App) View() string {
	th := a.Theme()
	st := newStyles(th)
	var b strings.Builder

	b.WriteString("\n  " + GradientText("HEAT CURVE CALCULATOR", th.Primary, th.Accent) + "\n")
	b.WriteString("  " + st.muted.Render("flow temperature from setpoint and heat curve label") + "\n\n")

	fields := []struct {
		name, unit string
		value      float64
		prec       int
	}{
		{"Target room temperature (T_set)", " °C", a.params.TargetTemp, 1},
		{"Heat curve label", "", a.params.HeatCurve, 2},
	}
	for i, f := range fields {
		val := strconv.FormatFloat(f.value, 'f', f.prec, 64) + f.unit
		if a.editing && i == a.cursor {
			val = a.editBuf + "_"
		}
		if i == a.cursor {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", st.selected.Render("▸"), st.label.Bold(true).Render(fmt.Sprintf("%-34s", f.name)), st.selected.Render(val)))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s\n", st.label.Render(fmt.Sprintf("%-34s", f.name)), st.value.Render(val)))
		}
	}
	if a.errMsg != "" {
		b.WriteString("  " + st.err.Render(a.errMsg) + "\n")
	}
	b.WriteString("\n")

	s := series.Build(a.params.TargetTemp, a.params.HeatCurve)
	chart := Chart(s, ChartOptions{Height: a.chartHeight, Width: a.chartWidth(), Color: th.Curve, Caption: DefaultCaption})
	b.WriteString(st.panel.Render(st.title.Render("Curve Graph") + "\n" + chart))
	b.WriteString("\n")

	tbl := series.BuildTable(a.params.TargetTemp, a.params.HeatCurve)
	b.WriteString(st.panel.Render(st.title.Render("Setpoints Table") + "\n" +
		st.muted.Render("Columns show curve −0.05, selected, and +0.05") + "\n" + Table(tbl, th)))
	b.WriteString("\n\n  ")

	if a.editing {
		b.WriteString(st.keyHints("enter", "apply", "esc", "cancel"))
	} else {
		b.WriteString(st.keyHints("j/k", "select", "h/l", "adjust", "H/L", "fine", "enter", "type", "t", "theme", "r", "reset", "q", "quit"))
	}
	b.WriteString("\n")
	return b.String()
}

// Run starts the interactive calculator on the alternate screen.
func Run(a App) error {
	_, err := tea.NewProgram(a, tea.WithAltScreen()).Run()
	return err
}
