// Package ui builds the menu screens with ebitenui.
package ui

import (
	"image/color"

	"github.com/automoto/tilehop/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MenuItem is one selectable line.
type MenuItem struct {
	Label    string
	Disabled bool
	OnSelect func()
}

// Menu is a titled vertical list of buttons with a status line.
type Menu struct {
	UI *ebitenui.UI

	items       []MenuItem
	buttons     []*widget.Button
	cursor      *Cursor
	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

var (
	highlight    = color.RGBA{255, 220, 90, 255}
	screenColor  = color.RGBA{20, 24, 40, 255}
	overlayColor = color.RGBA{0, 0, 0, 160}
)

// NewMenu builds a full screen menu. Subtitle lines go between the title and
// the buttons.
func NewMenu(title string, subtitle []string, items []MenuItem) *Menu {
	return newMenu(title, subtitle, items, screenColor)
}

// NewOverlayMenu builds a menu that dims whatever was drawn under it.
func NewOverlayMenu(title string, items []MenuItem) *Menu {
	return newMenu(title, nil, items, overlayColor)
}

func newMenu(title string, subtitle []string, items []MenuItem, background color.Color) *Menu {
	m := &Menu{
		items:      items,
		titleFace:  fonts.Title.Face(),
		normalFace: fonts.Regular.Face(),
		smallFace:  fonts.Small.Face(),
	}
	enabled := make([]bool, len(items))
	for i, item := range items {
		enabled[i] = !item.Disabled
	}
	m.cursor = NewCursor(enabled)
	m.buildUI(title, subtitle, background)
	return m
}

func (m *Menu) buildUI(title string, subtitle []string, background color.Color) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &m.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))
	for _, line := range subtitle {
		contentContainer.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &m.smallFace, &widget.LabelColor{
				Idle: color.RGBA{190, 190, 210, 255},
			}),
		))
	}

	for i, item := range m.items {
		index := i
		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 24)),
			widget.ButtonOpts.Image(&widget.ButtonImage{
				Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 90, 255}),
				Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 120, 255}),
				Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
				Disabled: image.NewNineSliceColor(color.RGBA{35, 35, 45, 255}),
			}),
			widget.ButtonOpts.Text(item.Label, &m.normalFace, &widget.ButtonTextColor{
				Idle:     color.RGBA{255, 255, 255, 255},
				Hover:    color.RGBA{255, 240, 200, 255},
				Pressed:  color.RGBA{200, 200, 200, 255},
				Disabled: color.RGBA{100, 100, 110, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				m.cursor.Set(index)
				m.activate(index)
			}),
		)
		if item.Disabled {
			btn.GetWidget().Disabled = true
		}
		m.buttons = append(m.buttons, btn)
		contentContainer.AddChild(btn)
	}

	m.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &m.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(m.statusLabel)

	rootContainer.AddChild(contentContainer)
	m.UI = &ebitenui.UI{Container: rootContainer}
}

func (m *Menu) activate(i int) {
	if i < 0 || i >= len(m.items) || m.items[i].Disabled || m.items[i].OnSelect == nil {
		return
	}
	m.items[i].OnSelect()
}

// SetStatus shows a message under the buttons.
func (m *Menu) SetStatus(msg string) {
	if m.statusLabel != nil {
		m.statusLabel.Label = msg
	}
}

// Navigate moves the highlight by delta entries.
func (m *Menu) Navigate(delta int) {
	m.cursor.Move(delta)
}

// Focus highlights entry i if it is enabled.
func (m *Menu) Focus(i int) {
	m.cursor.Set(i)
}

// Select runs the highlighted entry.
func (m *Menu) Select() {
	m.activate(m.cursor.Index())
}

// Update calls the UI's Update method
func (m *Menu) Update() {
	m.UI.Update()
}

// Draw renders the menu and outlines the highlighted button.
func (m *Menu) Draw(screen *ebiten.Image) {
	m.UI.Draw(screen)
	i := m.cursor.Index()
	if i < 0 || i >= len(m.buttons) {
		return
	}
	r := m.buttons[i].GetWidget().Rect
	vector.StrokeRect(screen, float32(r.Min.X)-2, float32(r.Min.Y)-2, float32(r.Dx())+4, float32(r.Dy())+4, 2, highlight, false)
}
