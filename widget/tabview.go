package widget

import (
	"github.com/lixenwraith/retui/control"
	"github.com/lixenwraith/retui/geom"
	"github.com/lixenwraith/retui/terminal"
	"github.com/lixenwraith/retui/view"
)

// TabView draws a bar of Titles on its first line and the selected page below it.
// [ and ] switch tabs while focus is inside the page
type TabView struct {
	Titles    []string
	Selection view.Binding[int]
	Pages     []view.View
}

func (t TabView) selected() int {
	n := min(len(t.Titles), len(t.Pages))
	if n == 0 {
		return 0
	}
	return max(0, min(t.Selection.Get(), n-1))
}

func (t TabView) MakeElement(ctx *view.Context) control.Element {
	e := &tabElement{}
	e.Init(e)
	t.UpdateElement(ctx, e)
	return e
}

func (t TabView) UpdateElement(ctx *view.Context, el control.Element) {
	e := el.(*tabElement)
	e.selection = t.Selection
	e.count = min(len(t.Titles), len(t.Pages))
	e.selected = t.selected()
	e.style = styleOf(ctx)
	e.setTitles(t.Titles)
	e.Invalidate()
}

// Content yields only the selected page
func (t TabView) Content() []view.View {
	if len(t.Pages) == 0 {
		return nil
	}
	return []view.View{t.Pages[t.selected()]}
}

type tabElement struct {
	control.Base
	selection view.Binding[int]
	selected  int
	count     int
	style     style

	bar   []rune
	spans [][2]int // Title column ranges on the bar
}

func (e *tabElement) setTitles(titles []string) {
	e.bar = e.bar[:0]
	e.spans = e.spans[:0]
	for i, title := range titles {
		if i > 0 {
			e.bar = append(e.bar, ' ')
		}
		start := len(e.bar)
		e.bar = append(e.bar, glyphs(title)...)
		e.spans = append(e.spans, [2]int{start, len(e.bar)})
	}
}

func (e *tabElement) Size(proposed geom.Size) geom.Size {
	s := geom.Size{Width: geom.Extended(len(e.bar)), Height: 1}
	var page geom.Size
	for _, p := range e.Children() {
		ps := p.Size(geom.Size{Width: proposed.Width, Height: max(0, proposed.Height.Sub(1))})
		page.Width = page.Width.Max(ps.Width)
		page.Height = page.Height.Max(ps.Height)
	}
	s.Width = s.Width.Max(page.Width)
	s.Height = s.Height.Add(page.Height)
	return s.Min(proposed)
}

func (e *tabElement) Layout(size geom.Size) {
	e.Base.Layout(size)
	area := geom.Size{Width: size.Width, Height: max(0, size.Height.Sub(1))}
	for _, p := range e.Children() {
		p.Layout(p.Size(area))
		control.SetOrigin(p, geom.Pos(0, 1))
	}
}

func (e *tabElement) selectTab(i int) bool {
	if i < 0 || i >= e.count || i == e.selected {
		return false
	}
	e.selected = i
	e.selection.Set(i)
	e.Invalidate()
	return true
}

func (e *tabElement) SelectPreviousTab() bool { return e.selectTab(e.selected - 1) }
func (e *tabElement) SelectNextTab() bool     { return e.selectTab(e.selected + 1) }

func (e *tabElement) Cell(at geom.Position) (terminal.Cell, bool) {
	col := at.Column.Int()
	if at.Line != 0 || col < 0 || col >= len(e.bar) || e.bar[col] == 0 {
		return terminal.Cell{}, false
	}
	c := e.style.cell(e.bar[col])
	if e.selected < len(e.spans) {
		if sp := e.spans[e.selected]; col >= sp[0] && col < sp[1] {
			c = c.WithAttrs(c.Attrs | terminal.AttrInverted)
		}
	}
	return c, true
}
