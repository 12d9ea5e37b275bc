package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	fired := ""
	m := NewMenu([]MenuItem{
		{Label: "Off", Disabled: true},
		{Label: "One", Action: func() tea.Cmd { fired = "one"; return nil }},
		{Label: "Off again", Disabled: true},
		{Label: "Two", Action: func() tea.Cmd { fired = "two"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("expected first enabled item selected, got %d", m.Selected)
	}

	m, _ = m.Update(special(tea.KeyDown))
	if m.Selected != 3 {
		t.Fatalf("down should skip disabled item, got %d", m.Selected)
	}
	m, _ = m.Update(special(tea.KeyDown))
	if m.Selected != 3 {
		t.Fatalf("down at end should stay, got %d", m.Selected)
	}
	m, _ = m.Update(key('k'))
	if m.Selected != 1 {
		t.Fatalf("k should move up past disabled item, got %d", m.Selected)
	}
	m, _ = m.Update(special(tea.KeyUp))
	if m.Selected != 1 {
		t.Fatalf("up should not land on disabled item, got %d", m.Selected)
	}

	m.Update(special(tea.KeyEnter))
	if fired != "one" {
		t.Fatalf("expected action one, got %q", fired)
	}
}

func TestMenu_ViewShowsDescription(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Start", Description: "about ten minutes"},
		{Label: "Quit", Description: "bye"},
	})
	view := m.View()
	if !strings.Contains(view, "about ten minutes") {
		t.Error("selected item description should be shown")
	}
	if strings.Contains(view, "bye") {
		t.Error("unselected item description should be hidden")
	}
}

func TestChoiceList(t *testing.T) {
	c := NewChoiceList([]string{"red", "green", "blue"}, 7)
	if c.Value() != "red" {
		t.Fatalf("out-of-range preselect should fall back to first, got %q", c.Value())
	}

	c, _ = c.Update(special(tea.KeyDown))
	c, _ = c.Update(key('j'))
	c, _ = c.Update(key('j'))
	if c.Value() != "blue" {
		t.Fatalf("expected clamp at last option, got %q", c.Value())
	}

	c, _ = c.Update(key('b'))
	if c.Value() != "green" {
		t.Fatalf("letter b should select second option, got %q", c.Value())
	}
	c, _ = c.Update(key('z'))
	if c.Value() != "green" {
		t.Fatalf("letter past the options should be ignored, got %q", c.Value())
	}

	if !strings.Contains(c.View(), "B)  green") {
		t.Errorf("view should label options, got:\n%s", c.View())
	}
}

func TestLikert(t *testing.T) {
	l := NewLikert(1, 5, "Never", "Always", 0)
	if _, ok := l.Value(); ok {
		t.Fatal("out-of-range preset should leave the picker unset")
	}

	l, _ = l.Update(special(tea.KeyRight))
	if v, ok := l.Value(); !ok || v != 1 {
		t.Fatalf("first move should select min, got %d %v", v, ok)
	}
	l, _ = l.Update(key('l'))
	l, _ = l.Update(key('l'))
	if v, _ := l.Value(); v != 3 {
		t.Fatalf("expected 3, got %d", v)
	}

	l, _ = l.Update(key('9'))
	if v, _ := l.Value(); v != 3 {
		t.Fatalf("digit above max should be ignored, got %d", v)
	}
	l, _ = l.Update(key('5'))
	l, _ = l.Update(special(tea.KeyRight))
	if v, _ := l.Value(); v != 5 {
		t.Fatalf("expected clamp at 5, got %d", v)
	}

	l, _ = l.Update(key('1'))
	l, _ = l.Update(key('h'))
	if v, _ := l.Value(); v != 1 {
		t.Fatalf("expected clamp at 1, got %d", v)
	}

	if !strings.Contains(l.View(), "5 = Always") {
		t.Errorf("view should show end labels, got:\n%s", l.View())
	}
}

func TestLikert_Preset(t *testing.T) {
	l := NewLikert(0, 5, "", "", 0)
	if v, ok := l.Value(); !ok || v != 0 {
		t.Fatalf("zero is a valid preset on a 0-5 scale, got %d %v", v, ok)
	}
}

func TestProgressBar(t *testing.T) {
	p := NewProgressBar("Q 3/10", 0.3, true, 40)
	view := p.View()
	if !strings.Contains(view, "Q 3/10") || !strings.Contains(view, "30%") {
		t.Errorf("unexpected progress view: %q", view)
	}
}

func TestTextInput_TrimsValue(t *testing.T) {
	in := NewTextInput("name", 10)
	for _, r := range " Ada " {
		in, _ = in.Update(key(r))
	}
	if in.Value() != "Ada" {
		t.Fatalf("expected trimmed value, got %q", in.Value())
	}
}
