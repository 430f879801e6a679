package main

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/retui/view"
	"github.com/lixenwraith/retui/widget"
)

// demo is the root view: one tab per widget family
type demo struct{}

func (demo) Body(ctx *view.Context) view.View {
	tab := view.NamedState(ctx, "tab", 0)
	return widget.TabView{
		Titles:    []string{"Form", "List", "Pages"},
		Selection: tab.Binding(),
		Pages:     []view.View{form{}, list{}, pages{}},
	}
}

// form edits a name and echoes the last committed value
type form struct{}

func (form) Body(ctx *view.Context) view.View {
	name := view.NamedState(ctx, "name", "")
	greeting := view.NamedState(ctx, "greeting", "")

	g := greeting.Get()
	return widget.VStack{
		widget.Text("Name:"),
		widget.TextField{
			Placeholder: "type and press Enter",
			Text:        name.Binding(),
			OnCommit: func(s string) {
				greeting.Set(fmt.Sprintf("Hello, %s", strings.TrimSpace(s)))
			},
		},
		widget.Spacer{MinLength: 1},
		view.IfElse(g != "",
			widget.Foreground(widget.Bold(widget.Text(g)), "green"),
			widget.Text("(no greeting yet)")),
		widget.Button{Label: "Clear", Action: func() {
			name.Set("")
			greeting.Set("")
		}},
	}
}

const listLength = 40

// list is a scrolling column of buttons that count their own presses
type list struct{}

func (list) Body(ctx *view.Context) view.View {
	presses := view.NamedState(ctx, "presses", make([]int, listLength))
	rows := make([]view.View, listLength)
	for i := range rows {
		label := fmt.Sprintf("Row %02d", i)
		if n := presses.Get()[i]; n > 0 {
			label += fmt.Sprintf(" (%d)", n)
		}
		rows[i] = widget.Button{Label: label, Action: func() {
			presses.Update(func(p []int) []int {
				next := append([]int(nil), p...)
				next[i]++
				return next
			})
		}}
	}
	return widget.ScrollView{Axis: widget.Vertical, Views: rows}
}

// pages pushes numbered detail pages onto a navigation stack
type pages struct{}

func (pages) Body(*view.Context) view.View {
	return widget.NavigationStack{Root: detail{}}
}

// detail links to the page one level deeper
type detail struct {
	depth int
}

func (d detail) Body(*view.Context) view.View {
	return widget.VStack{
		widget.Underline(widget.Text(fmt.Sprintf("Page %d", d.depth))),
		widget.Text("Enter opens the next page, DEL goes back"),
		widget.NavigationLink{Label: "Next", Destination: detail{depth: d.depth + 1}},
	}
}
