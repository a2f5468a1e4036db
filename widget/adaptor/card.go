package adaptor

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// NewCard wraps content in a bordered container.
func NewCard(content tview.Primitive) *tview.Flex {
	card := tview.NewFlex().AddItem(content, 0, 1, true)
	card.SetBorder(true).
		SetBorderColor(tcell.ColorGreen).
		SetBackgroundColor(tcell.ColorBlack)
	return card
}

// NewCardContent pads content inside a card.
func NewCardContent(content tview.Primitive) *tview.Flex {
	inner := tview.NewFlex().AddItem(content, 0, 1, true)
	inner.SetBorderPadding(1, 1, 2, 2).
		SetBackgroundColor(tcell.ColorBlack)
	return inner
}
