package main

import (
	"fmt"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/imui"
)

// scene is a fixed demo UI: a sidebar list, a toolbar and a grid of tiles,
// plus an overlay window above it.
type scene struct {
	font  *imui.Font
	items int
	tiles int
}

func newScene(items, tiles int) (*scene, error) {
	f, err := imui.LoadFont("goregular", goregular.TTF, 14, nil)
	if err != nil {
		return nil, err
	}
	// any non-zero handle; nothing is uploaded
	f.SetTexture(1)
	return &scene{font: f, items: items, tiles: tiles}, nil
}

func (s *scene) close() { _ = s.font.Close() }

// frameResult is what one scripted frame produced.
type frameResult struct {
	draw *imui.DrawData
	main *imui.Window
}

// run builds one frame on a surface of the given size.
func (s *scene) run(ctx *imui.Context, size imui.Vec2) (frameResult, error) {
	frame := ctx.BeginFrame()
	surface := frame.BeginSurface("main", size, 1)

	win := surface.BeginWindow("app", imui.Rect{W: size.X, H: size.Y}, 0)
	s.build(win)
	if err := win.End(); err != nil {
		return frameResult{}, err
	}

	overlay := surface.BeginWindow("overlay", imui.Rect{X: size.X - 220, Y: 10, W: 210, H: 30}, 10)
	overlay.DrawRect(overlay.Rect(), imui.RGBA(0, 0, 0, 180))
	overlay.DrawText(frame.TextLayout(s.font, fmt.Sprintf("frame %d", frame.Number())),
		imui.Vec2{X: overlay.Rect().X + 6, Y: overlay.Rect().Y + 6}, imui.ColorYellow)
	if err := overlay.End(); err != nil {
		return frameResult{}, err
	}

	draw, err := surface.End()
	if err != nil {
		return frameResult{}, err
	}
	if err := ctx.EndFrame(); err != nil {
		return frameResult{}, err
	}
	return frameResult{draw: draw, main: win}, nil
}

func (s *scene) build(win *imui.Window) {
	root := win.Root()
	root.SetLayout(imui.HorizontalLayout{Spacing: 8})
	root.SetPadding(imui.All(8))

	win.WidgetNamed("sidebar", func(side *imui.Widget) {
		side.SetFixedWidth(180)
		side.SetVStretch(1)
		side.SetPadding(imui.All(4))
		side.SetLayout(imui.ScrollLayout{})
		win.DrawWidgetRect(side, imui.RGBA(30, 32, 38, 255))
		win.Widget(func(list *imui.Widget) {
			list.SetLayout(imui.VerticalLayout{Spacing: 2})
			list.SetHStretch(1)
			for i := range s.items {
				row := win.BeginWidgetID(uint32(i))
				row.SetHStretch(1)
				row.SetPrefSize(0, s.font.LineHeight())
				win.DrawText(win.TextLayout(s.font, fmt.Sprintf("Item %d", i)), row.Rect().Pos(), imui.ColorWhite)
				win.EndWidget(row)
			}
		})
	})

	win.WidgetNamed("content", func(content *imui.Widget) {
		content.SetStretch(1, 1)
		content.SetLayout(imui.VerticalLayout{Spacing: 8})

		win.WidgetNamed("toolbar", func(bar *imui.Widget) {
			bar.SetHStretch(1)
			bar.SetFixedHeight(32)
			bar.SetLayout(imui.HorizontalLayout{Spacing: 4})
			win.DrawSkin(bar.Rect(), imui.Skin{
				Texture: 2,
				UV:      imui.Rect{W: 1, H: 1},
				Border:  imui.All(4),
			}, imui.ColorWhite)
			for _, label := range []string{"Open", "Save", "Close"} {
				win.WidgetNamed(label, func(b *imui.Widget) {
					l := win.TextLayout(s.font, label)
					b.SetPadding(imui.Symmetric(6, 4))
					b.SetPrefSize(l.Size.X+12, 0)
					b.SetVStretch(1)
					win.DrawWidgetRect(b, imui.ColorDarkGray)
					win.DrawText(l, b.InnerRect().Pos(), imui.ColorWhite)
				})
			}
		})

		win.WidgetNamed("tiles", func(grid *imui.Widget) {
			grid.SetStretch(1, 1)
			grid.SetLayout(imui.GridLayout{Columns: 4, ColumnSpacing: 6, RowSpacing: 6})
			for i := range s.tiles {
				tile := win.BeginWidgetID(uint32(i))
				tile.SetFixedSize(64, 48)
				win.DrawWidgetRect(tile, imui.ColorGray)
				win.DrawLine(tile.Rect().Pos(), tile.Rect().Max(), 1, imui.ColorBlack)
				win.EndWidget(tile)
			}
		})
	})
}
