// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package floorplan

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Names of the built-in room types.
const (
	RectRoomType      = "rect-room"
	VaultedRoomType   = "vaulted-room"
	CathedralRoomType = "cathedral-room"
	LShapedRoomType   = "l-shaped-room"
)

// Room styling.
var (
	RoomStrokeWidth = 2.0
	RoomStrokeColor = gg.RGBA2(0, 0, 0, 0.8)
	RoomFillColor   = gg.RGBA2(192.0/255, 192.0/255, 192.0/255, 0.8)
	VaultFillColor  = gg.RGBA2(1, 1, 1, 0.8)
	LabelFont       = Font{Family: "sans-serif", Size: 12}
	LabelColor      = gg.RGBA2(0, 0, 0, 0.8)
)

// RoomBody draws a room's outline centered on the local origin, in the
// room's rotated frame.
type RoomBody func(ctx Context, s *Shape) error

// DrawRoom draws the parts every room shares around body: it sets the room
// stroke, moves the origin to the shape's center, rotates by the shape's
// rotation while body runs, and then draws the label unrotated and centered
// on the origin.
func DrawRoom(ctx Context, s *Shape, body RoomBody) error {
	ctx.SetLineWidth(RoomStrokeWidth)
	ctx.SetStrokeStyle(gg.Solid(RoomStrokeColor))
	ctx.Translate(s.Center.X, s.Center.Y)

	if err := drawRotated(ctx, s, body); err != nil {
		return err
	}

	ctx.SetFont(LabelFont)
	ctx.SetTextAlign(AlignCenter)
	ctx.SetTextBaseline(BaselineMiddle)
	ctx.SetFillStyle(gg.Solid(LabelColor))
	ctx.FillText(s.Label, 0, 0)
	return nil
}

// drawRotated runs body in the shape's rotated frame. The rotation is
// undone even if body panics.
func drawRotated(ctx Context, s *Shape, body RoomBody) error {
	ctx.Save()
	defer ctx.Restore()
	if s.Rotation != 0 {
		ctx.Rotate(s.Rotation * math.Pi / 180)
	}
	return body(ctx, s)
}

// Room is a ShapeType whose outline is drawn by a RoomBody and whose
// center, label, and rotation are handled by DrawRoom.
type Room struct {
	name string
	body RoomBody
}

// NewRoom returns a room type named name that draws its outline with body.
func NewRoom(name string, body RoomBody) *Room {
	return &Room{name: name, body: body}
}

// Name implements ShapeType.
func (r *Room) Name() string { return r.name }

// Draw implements ShapeType.
func (r *Room) Draw(ctx Context, s *Shape, _ *Canvas) error {
	return DrawRoom(ctx, s, r.body)
}

// Center implements ShapeType.
func (r *Room) Center(s *Shape) gg.Point { return s.Center }

// Size implements ShapeType.
func (r *Room) Size(s *Shape) Size { return s.Size }

// RectangularRoom returns the "rect-room" type: a plain rectangle of
// Size.Length × Size.Width.
func RectangularRoom() *Room {
	return NewRoom(RectRoomType, func(ctx Context, s *Shape) error {
		ctx.SetFillStyle(gg.Solid(RoomFillColor))
		drawRect(ctx, s.Size)
		return nil
	})
}

// VaultedRoom returns the "vaulted-room" type: a rectangle shaded to show a
// ceiling vaulted on one side. Before rotation the vault is on the south
// (positive y) side.
func VaultedRoom() *Room {
	return NewRoom(VaultedRoomType, func(ctx Context, s *Shape) error {
		ctx.SetFillStyle(gg.NewLinearGradientBrush(0, -s.Size.Width/2, 0, s.Size.Width/2).
			AddColorStop(0, RoomFillColor).
			AddColorStop(1, VaultFillColor))
		drawRect(ctx, s.Size)
		return nil
	})
}

// CathedralRoom returns the "cathedral-room" type: a rectangle shaded to
// show a ceiling vaulted in the middle. Before rotation the ridge is
// horizontal.
func CathedralRoom() *Room {
	return NewRoom(CathedralRoomType, func(ctx Context, s *Shape) error {
		ctx.SetFillStyle(gg.NewLinearGradientBrush(0, -s.Size.Width/2, 0, s.Size.Width/2).
			AddColorStop(0, RoomFillColor).
			AddColorStop(0.5, VaultFillColor).
			AddColorStop(1, RoomFillColor))
		drawRect(ctx, s.Size)
		return nil
	})
}

// LShapedRoom returns the "l-shaped-room" type: a Size rectangle with a
// CornerSize notch cut out of its north-east corner.
func LShapedRoom() *Room {
	return NewRoom(LShapedRoomType, func(ctx Context, s *Shape) error {
		pts, err := LShapeOutline(s.Size, s.CornerSize)
		if err != nil {
			return err
		}
		ctx.SetFillStyle(gg.Solid(RoomFillColor))
		ctx.BeginPath()
		ctx.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			ctx.LineTo(p.X, p.Y)
		}
		ctx.ClosePath()
		ctx.Fill()
		ctx.Stroke()
		return nil
	})
}

// DefaultShapeTypes returns fresh instances of the built-in room types.
func DefaultShapeTypes() []ShapeType {
	return []ShapeType{RectangularRoom(), CathedralRoom(), VaultedRoom(), LShapedRoom()}
}

// LShapeOutline returns the seven vertices of an L-shaped room centered on
// the origin, starting and ending at the north-west corner.
func LShapeOutline(size, corner Size) ([]gg.Point, error) {
	if corner.Length < 0 || corner.Width < 0 || corner.Length > size.Length || corner.Width > size.Width {
		return nil, fmt.Errorf("%w: corner %vx%v does not fit in room %vx%v",
			ErrInvalidGeometry, corner.Length, corner.Width, size.Length, size.Width)
	}
	hl, hw := size.Length/2, size.Width/2
	return []gg.Point{
		{X: -hl, Y: -hw},
		{X: hl - corner.Length, Y: -hw},
		{X: hl - corner.Length, Y: -hw + corner.Width},
		{X: hl, Y: -hw + corner.Width},
		{X: hl, Y: hw},
		{X: -hl, Y: hw},
		{X: -hl, Y: -hw},
	}, nil
}

// drawRect fills and strokes a size rectangle centered on the origin.
// Negative extents draw the same rectangle, as FillRect does.
func drawRect(ctx Context, size Size) {
	x, y := -size.Length/2, -size.Width/2
	ctx.FillRect(x, y, size.Length, size.Width)
	ctx.StrokeRect(x, y, size.Length, size.Width)
}
