package adaptor

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/ponyo877/mockterm/widget/domain"
	"github.com/ponyo877/mockterm/widget/usecase"
)

// Widget renders a terminal session with tview: the transcript, the live
// prompt line and, after ls, the mock tree.
type Widget struct {
	term       usecase.Terminal
	setFocus   func(tview.Primitive)
	layout     *tview.Flex
	transcript *tview.TextView
	input      *tview.InputField
	tree       *tview.List
	rowKeys    []string
}

// NewWidget builds the widget. setFocus moves keyboard focus, normally
// (*tview.Application).SetFocus.
func NewWidget(term usecase.Terminal, setFocus func(tview.Primitive)) *Widget {
	w := &Widget{
		term:     term,
		setFocus: setFocus,
	}

	w.transcript = tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true).
		SetScrollable(true).
		SetTextColor(tcell.ColorGreen)
	w.transcript.SetBackgroundColor(tcell.ColorBlack)
	w.transcript.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action == tview.MouseLeftClick {
			w.FocusInput()
			return action, nil
		}
		return action, event
	})

	w.input = tview.NewInputField().
		SetFieldWidth(0).
		SetFieldBackgroundColor(tcell.ColorBlack).
		SetFieldTextColor(tcell.ColorGreen).
		SetLabelColor(tcell.ColorGray)
	w.input.SetBackgroundColor(tcell.ColorBlack)
	w.input.SetChangedFunc(func(text string) {
		w.term.Edit(text)
	})
	w.input.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			w.term.Submit()
		}
	})

	w.tree = tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true).
		SetMainTextColor(tcell.ColorGreen).
		SetSelectedTextColor(tcell.ColorGreen).
		SetSelectedBackgroundColor(tcell.ColorDarkGreen)
	w.tree.SetBackgroundColor(tcell.ColorBlack)
	w.tree.SetSelectedFunc(func(index int, _, _ string, _ rune) {
		w.clickRow(index)
	})

	w.layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(w.transcript, 0, 1, false).
		AddItem(w.input, 1, 0, true).
		AddItem(w.tree, 0, 0, false)
	w.layout.SetBackgroundColor(tcell.ColorBlack)
	w.layout.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action == tview.MouseLeftClick {
			w.FocusInput()
		}
		return action, event
	})

	term.Observe(w.handleEvent)
	w.Refresh()
	return w
}

// Primitive is the root of the widget's layout.
func (w *Widget) Primitive() tview.Primitive {
	return w.layout
}

// Input is the live prompt field.
func (w *Widget) Input() *tview.InputField {
	return w.input
}

func (w *Widget) FocusInput() {
	if w.setFocus != nil {
		w.setFocus(w.input)
	}
}

func (w *Widget) handleEvent(event domain.Event) {
	if event.Type == domain.EventEdited {
		return
	}
	w.Refresh()
	if event.ChangesHistory() {
		w.FocusInput()
	}
}

// Refresh redraws every part of the widget from the session state.
func (w *Widget) Refresh() {
	snap := w.term.Snapshot()

	w.transcript.SetText(transcriptText(snap))
	w.transcript.ScrollToEnd()

	w.input.SetLabel(promptLabel(snap.Config, snap.CurrentPath))
	if w.input.GetText() != snap.PendingInput {
		w.input.SetText(snap.PendingInput)
	}

	current := w.tree.GetCurrentItem()
	w.tree.Clear()
	w.rowKeys = w.rowKeys[:0]
	if snap.TreeVisible {
		for _, row := range usecase.RenderTree(w.term.Tree(), snap.Expanded) {
			w.tree.AddItem(tview.Escape(row.Text()), "", 0, nil)
			w.rowKeys = append(w.rowKeys, row.Key)
		}
		if current < len(w.rowKeys) {
			w.tree.SetCurrentItem(current)
		}
		w.layout.ResizeItem(w.tree, 0, 1)
	} else {
		w.layout.ResizeItem(w.tree, 0, 0)
	}
}

func (w *Widget) clickRow(index int) {
	if index >= 0 && index < len(w.rowKeys) {
		w.term.Toggle(w.rowKeys[index])
	}
	w.FocusInput()
}

func promptLabel(config domain.PromptConfig, path string) string {
	return fmt.Sprintf("[gray]%s[green]:%s$ ", tview.Escape(config.Label()), tview.Escape(path))
}

func transcriptText(snap usecase.Snapshot) string {
	var b strings.Builder
	for _, rec := range snap.History {
		b.WriteString(promptLabel(snap.Config, rec.Path))
		b.WriteString(tview.Escape(rec.Input))
		b.WriteByte('\n')
		if rec.HasOutput() {
			b.WriteString(tview.Escape(rec.Output))
			b.WriteByte('\n')
		}
	}
	return b.String()
}
