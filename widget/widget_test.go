package widget

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/retui/control"
	"github.com/lixenwraith/retui/geom"
	"github.com/lixenwraith/retui/input"
	"github.com/lixenwraith/retui/terminal"
	"github.com/lixenwraith/retui/view"
)

// harness mounts a description under a root VStack and lays it out
type harness struct {
	t     *testing.T
	sched *view.Scheduler
	node  *view.Node
	size  geom.Size
}

func mount(t *testing.T, v view.View, width, height int) *harness {
	t.Helper()
	s := view.NewScheduler(nil, nil)
	h := &harness{t: t, sched: s, node: view.NewRoot(VStack{v}, s), size: geom.Sz(width, height)}
	h.layout()
	return h
}

func (h *harness) root() control.Element { return h.node.Element() }

func (h *harness) layout() {
	h.root().Layout(h.size)
}

// flush applies pending state changes and lays the tree out again
func (h *harness) flush() {
	h.sched.Flush()
	h.layout()
}

func (h *harness) cell(column, line int) terminal.Cell {
	c, ok := h.root().Layer().Cell(geom.Pos(column, line))
	if !ok {
		return terminal.Blank
	}
	return c
}

func (h *harness) line(line int) string {
	var b strings.Builder
	for col := 0; col < h.size.Width.Int(); col++ {
		ch := h.cell(col, line).Char
		if ch == 0 {
			ch = ' '
		}
		b.WriteRune(ch)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestTextStyleFromEnvironment(t *testing.T) {
	h := mount(t, Foreground(Bold(Text("hi")), "red"), 4, 1)
	if got := h.line(0); got != "hi" {
		t.Fatalf("line %q", got)
	}
	c := h.cell(0, 0)
	if c.Fg != tcell.ColorRed {
		t.Errorf("fg %v want red", c.Fg)
	}
	if !c.Attrs.Has(terminal.AttrBold) {
		t.Errorf("attrs %v want bold", c.Attrs)
	}
}

func TestTextTruncatesToProposal(t *testing.T) {
	h := mount(t, Text("abcdef"), 3, 1)
	if got := h.line(0); got != "abc" {
		t.Errorf("line %q", got)
	}
}

func TestStackLayoutConservation(t *testing.T) {
	for height := 0; height <= 6; height++ {
		h := mount(t, VStack{Text("a"), Spacer{}, Text("b"), VStack{Text("c"), Spacer{MinLength: 1}}}, 3, height)
		var sum geom.Extended
		outer := h.root().Children()[0]
		for _, c := range outer.Children() {
			sum = sum.Add(c.Layer().Frame().Size.Height)
		}
		if committed := outer.Layer().Frame().Size.Height; sum > committed {
			t.Errorf("height %d: children take %s of %s", height, sum, committed)
		}
		if committed := outer.Layer().Frame().Size.Height; committed > geom.Extended(height) {
			t.Errorf("height %d: stack committed %s", height, committed)
		}
	}
}

func TestSpacerPushesToEnd(t *testing.T) {
	h := mount(t, VStack{Text("top"), Spacer{}, Text("end")}, 3, 5)
	if h.line(0) != "top" || h.line(4) != "end" {
		t.Errorf("lines %q %q", h.line(0), h.line(4))
	}
	for l := 1; l < 4; l++ {
		if got := h.line(l); got != "" {
			t.Errorf("line %d = %q", l, got)
		}
	}
}

func TestHStack(t *testing.T) {
	h := mount(t, HStack{Text("ab"), Spacer{}, Text("cd")}, 6, 1)
	if got := h.line(0); got != "ab  cd" {
		t.Errorf("line %q", got)
	}
}

func TestScrollViewScrollsOneLine(t *testing.T) {
	h := mount(t, ScrollView{Views: []view.View{Text("A"), Text("B")}}, 1, 2)
	if h.cell(0, 0).Char != 'A' || h.cell(0, 1).Char != 'B' {
		t.Fatalf("initial %q/%q", h.line(0), h.line(1))
	}
	from := control.DeepestAt(h.root(), geom.Pos(0, 0))
	if !control.ScrollBy(from, 1, 0) {
		t.Fatal("scroll down refused")
	}
	if got := h.cell(0, 0).Char; got != 'B' {
		t.Errorf("after scroll (0,0)=%q want B", got)
	}
	if control.ScrollBy(from, 1, 0) {
		t.Error("scrolled past the last line")
	}
	if control.ScrollBy(from, 0, 1) {
		t.Error("vertical scroll view moved horizontally")
	}
	h.layout()
	if got := h.cell(0, 0).Char; got != 'B' {
		t.Errorf("offset lost on relayout: %q", got)
	}
}

func TestScrollViewFollowsFocus(t *testing.T) {
	var views []view.View
	for _, label := range []string{"0", "1", "2", "3", "4"} {
		views = append(views, Button{Label: label, Action: func() {}})
	}
	h := mount(t, ScrollView{Views: views}, 1, 2)
	w := control.NewWindow()
	w.SetSize(h.size)
	w.SetRoot(h.root())

	w.FocusLast()
	if got := h.line(0) + h.line(1); got != "34" {
		t.Errorf("after focusing last: %q", got)
	}
	if !h.cell(0, 1).Attrs.Has(terminal.AttrInverted) {
		t.Error("focused button not inverted")
	}
	w.FocusFirst()
	if got := h.line(0) + h.line(1); got != "01" {
		t.Errorf("after focusing first: %q", got)
	}
}

func TestButton(t *testing.T) {
	pressed := 0
	h := mount(t, Button{Label: "ok", Action: func() { pressed++ }}, 4, 1)
	b := control.FirstSelectable(h.root())
	if b == nil {
		t.Fatal("button not selectable")
	}
	for _, r := range "\n x" {
		b.HandleEvent(r)
	}
	if pressed != 2 {
		t.Errorf("pressed %d want 2", pressed)
	}

	h = mount(t, Button{Label: "no", Action: func() { pressed++ }, Disabled: true}, 4, 1)
	if control.FirstSelectable(h.root()) != nil {
		t.Error("disabled button selectable")
	}
	if !h.cell(0, 0).Attrs.Has(terminal.AttrFaint) {
		t.Error("disabled button not faint")
	}
}

// form owns the text a TextField edits
type form struct {
	text      *string
	committed *string
}

func (f form) Body(ctx *view.Context) view.View {
	s := view.UseState(ctx, "")
	*f.text = s.Get()
	return TextField{
		Placeholder: "name",
		Text:        s.Binding(),
		OnCommit:    func(v string) { *f.committed = v },
	}
}

func TestTextFieldEditing(t *testing.T) {
	var text, committed string
	h := mount(t, form{text: &text, committed: &committed}, 8, 1)
	if got := h.line(0); got != "name" {
		t.Errorf("placeholder %q", got)
	}
	field := control.FirstSelectable(h.root())
	if !control.IsTextInput(field) {
		t.Fatal("text field is not a text input")
	}

	steps := []struct {
		r    rune
		want string
	}{
		{'a', "a"},
		{'b', "ab"},
		{input.CtrlB, "ab"},
		{'c', "acb"},
		{input.CtrlF, "acb"},
		{input.CtrlF, "acb"},
		{input.DEL, "ac"},
		{input.CtrlB, "ac"},
		{input.CtrlB, "ac"},
		{input.BS, "ac"},
		{'\x01', "ac"},
	}
	for i, s := range steps {
		field.HandleEvent(s.r)
		h.flush()
		if text != s.want {
			t.Fatalf("step %d (%q): text %q want %q", i, s.r, text, s.want)
		}
	}
	if got := h.line(0); got != "ac" {
		t.Errorf("drawn %q", got)
	}

	field.HandleEvent('\n')
	if committed != "ac" {
		t.Errorf("committed %q", committed)
	}
}

func TestTextFieldCaretUnderline(t *testing.T) {
	var text, committed string
	h := mount(t, form{text: &text, committed: &committed}, 8, 1)
	w := control.NewWindow()
	w.SetRoot(h.root())
	w.FocusFirst()

	field := w.FirstResponder()
	field.HandleEvent('x')
	h.flush()
	if h.cell(0, 0).Attrs.Has(terminal.AttrUnderline) {
		t.Error("caret drawn on the character before it")
	}
	if !h.cell(1, 0).Attrs.Has(terminal.AttrUnderline) {
		t.Error("caret missing after the text")
	}
}

// tabs owns a TabView's selection
type tabs struct{}

func (tabs) Body(ctx *view.Context) view.View {
	sel := view.UseState(ctx, 0)
	return TabView{
		Titles:    []string{"a", "b"},
		Selection: sel.Binding(),
		Pages:     []view.View{Text("one"), Text("two")},
	}
}

func TestTabView(t *testing.T) {
	h := mount(t, tabs{}, 5, 3)
	if h.line(0) != "a b" || h.line(1) != "one" {
		t.Fatalf("initial %q / %q", h.line(0), h.line(1))
	}
	if !h.cell(0, 0).Attrs.Has(terminal.AttrInverted) || h.cell(2, 0).Attrs.Has(terminal.AttrInverted) {
		t.Error("selected title not highlighted")
	}

	page := control.DeepestAt(h.root(), geom.Pos(0, 1))
	if control.SelectTab(page, false) {
		t.Error("selected before the first tab")
	}
	if !control.SelectTab(page, true) {
		t.Fatal("next tab refused")
	}
	h.flush()
	if got := h.line(1); got != "two" {
		t.Errorf("after next %q", got)
	}

	page = control.DeepestAt(h.root(), geom.Pos(0, 1))
	if control.SelectTab(page, true) {
		t.Error("selected past the last tab")
	}
	if !control.SelectTab(page, false) {
		t.Fatal("previous tab refused")
	}
	h.flush()
	if got := h.line(1); got != "one" {
		t.Errorf("after previous %q", got)
	}
}

func TestNavigationStack(t *testing.T) {
	h := mount(t, NavigationStack{Root: VStack{NavigationLink{Label: "go", Destination: Text("dest")}}}, 4, 2)
	if got := h.line(0); got != "go" {
		t.Fatalf("root page %q", got)
	}
	link := control.FirstSelectable(h.root())
	if link == nil {
		t.Fatal("link not selectable")
	}
	link.HandleEvent('\n')
	h.flush()
	if got := h.line(0); got != "dest" {
		t.Fatalf("after push %q", got)
	}

	from := control.DeepestAt(h.root(), geom.Pos(0, 0))
	if !control.NavigationPop(from) {
		t.Fatal("pop refused")
	}
	h.flush()
	if got := h.line(0); got != "go" {
		t.Errorf("after pop %q", got)
	}
	from = control.DeepestAt(h.root(), geom.Pos(0, 0))
	if control.NavigationPop(from) {
		t.Error("popped the root page")
	}
}

func TestNavigationLinkOutsideStackIsDisabled(t *testing.T) {
	h := mount(t, NavigationLink{Label: "x", Destination: Text("y")}, 2, 1)
	if control.FirstSelectable(h.root()) != nil {
		t.Error("link without a stack is selectable")
	}
}
