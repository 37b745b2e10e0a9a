package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/pocketcal/pocketcal/internal/calendar"
	"github.com/pocketcal/pocketcal/internal/model"
)

// parseHexColor converts a #RGB or #RRGGBB string to a color. Unparseable
// input falls back to the theme primary color.
func parseHexColor(s string) color.Color {
	if len(s) == 4 && s[0] == '#' {
		// Expand #abc to #aabbcc
		s = fmt.Sprintf("#%c%c%c%c%c%c", s[1], s[1], s[2], s[2], s[3], s[3])
	}
	if len(s) != 7 || s[0] != '#' {
		return theme.Color(theme.ColorNamePrimary)
	}
	r, err1 := strconv.ParseUint(s[1:3], 16, 8)
	g, err2 := strconv.ParseUint(s[3:5], 16, 8)
	b, err3 := strconv.ParseUint(s[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return theme.Color(theme.ColorNamePrimary)
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

// DayCell is one tappable cell of the month grid: the day number, up to
// MaxVisibleBadges event badges, and an overflow label when more are hidden.
type DayCell struct {
	widget.BaseWidget

	cell calendar.Cell

	dayLabel      *widget.Label
	todayMarker   *canvas.Circle
	badgeBox      *fyne.Container
	overflowLabel *widget.Label

	// Callbacks
	onDayTap   func(date string)
	onEventTap func(event model.Event)
}

// NewDayCell creates a day cell widget for the given grid cell
func NewDayCell(cell calendar.Cell) *DayCell {
	dc := &DayCell{cell: cell}
	dc.ExtendBaseWidget(dc)
	dc.createUI()
	dc.updateFromCell()
	return dc
}

// SetCallbacks sets the tap callbacks
func (dc *DayCell) SetCallbacks(onDayTap func(date string), onEventTap func(event model.Event)) {
	dc.onDayTap = onDayTap
	dc.onEventTap = onEventTap
}

// UpdateCell updates the widget with new cell data
func (dc *DayCell) UpdateCell(cell calendar.Cell) {
	dc.cell = cell
	dc.updateFromCell()
	dc.Refresh()
}

// Tapped opens the day view (or the add-event form) for this day
func (dc *DayCell) Tapped(*fyne.PointEvent) {
	if dc.cell.Blank() || dc.onDayTap == nil {
		return
	}
	dc.onDayTap(dc.cell.Date)
}

// createUI creates the UI components
func (dc *DayCell) createUI() {
	dc.dayLabel = widget.NewLabel("")
	dc.dayLabel.Alignment = fyne.TextAlignLeading
	dc.dayLabel.TextStyle = fyne.TextStyle{Bold: true}

	dc.todayMarker = canvas.NewCircle(theme.Color(theme.ColorNamePrimary))
	dc.todayMarker.Hide()

	dc.badgeBox = container.NewVBox()

	dc.overflowLabel = widget.NewLabel("")
	dc.overflowLabel.TextStyle = fyne.TextStyle{Italic: true}
	dc.overflowLabel.Hide()
}

// updateFromCell refreshes components from the current cell
func (dc *DayCell) updateFromCell() {
	if dc.cell.Blank() {
		dc.dayLabel.SetText("")
		dc.todayMarker.Hide()
		dc.badgeBox.Objects = nil
		dc.overflowLabel.Hide()
		return
	}

	dc.dayLabel.SetText(strconv.Itoa(dc.cell.Day))
	if dc.cell.IsToday {
		dc.todayMarker.Show()
	} else {
		dc.todayMarker.Hide()
	}

	dc.badgeBox.Objects = nil
	for _, event := range dc.cell.VisibleEvents() {
		dc.badgeBox.Add(dc.newBadge(event))
	}

	if label := dc.cell.OverflowLabel(); label != "" {
		dc.overflowLabel.SetText(label)
		dc.overflowLabel.Show()
	} else {
		dc.overflowLabel.Hide()
	}
	dc.badgeBox.Refresh()
}

// newBadge builds a single colored event badge
func (dc *DayCell) newBadge(event model.Event) fyne.CanvasObject {
	bg := canvas.NewRectangle(parseHexColor(event.BadgeColor()))
	bg.CornerRadius = 3
	bg.SetMinSize(fyne.NewSize(0, BadgeHeight))

	text := canvas.NewText(event.Title, color.White)
	text.TextSize = theme.Size(theme.SizeNameCaptionText)

	badge := newBadgeTap(container.NewStack(bg, container.NewPadded(text)), func() {
		if dc.onEventTap != nil {
			dc.onEventTap(event)
		}
	})
	return badge
}

// CreateRenderer implements fyne.Widget
func (dc *DayCell) CreateRenderer() fyne.WidgetRenderer {
	marker := container.NewGridWrap(fyne.NewSize(8, 8), dc.todayMarker)

	header := container.NewBorder(nil, nil, dc.dayLabel, container.NewPadded(marker))
	content := container.NewBorder(
		header,
		dc.overflowLabel,
		nil,
		nil,
		dc.badgeBox,
	)

	bg := canvas.NewRectangle(color.Transparent)
	bg.StrokeColor = theme.Color(theme.ColorNameSeparator)
	bg.StrokeWidth = 1
	bg.SetMinSize(fyne.NewSize(DayCellMinWidth, DayCellMinHeight))

	return widget.NewSimpleRenderer(container.NewStack(bg, content))
}

// badgeTap wraps a canvas object to make it independently tappable
type badgeTap struct {
	widget.BaseWidget

	content fyne.CanvasObject
	onTap   func()
}

func newBadgeTap(content fyne.CanvasObject, onTap func()) *badgeTap {
	b := &badgeTap{content: content, onTap: onTap}
	b.ExtendBaseWidget(b)
	return b
}

// Tapped fires the badge callback without triggering the day tap
func (b *badgeTap) Tapped(*fyne.PointEvent) {
	if b.onTap != nil {
		b.onTap()
	}
}

// CreateRenderer implements fyne.Widget
func (b *badgeTap) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.content)
}
