package game

// Orientation of the active faller.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the orientation name
func (o Orientation) String() string {
	if o == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}

// Segment is one half of a faller.
type Segment struct {
	Pos   Position
	Color Color
}

// Faller is the two-cell capsule under player control. Primary is the left
// segment when horizontal and the top segment when vertical.
type Faller struct {
	Primary   Segment
	Secondary Segment
	Landed    bool
}

// Orientation is derived from whether the segments share a row.
func (f Faller) Orientation() Orientation {
	if f.Primary.Pos.Row == f.Secondary.Pos.Row {
		return Horizontal
	}
	return Vertical
}

// Segments returns both segments, primary first.
func (f Faller) Segments() [2]Segment {
	return [2]Segment{f.Primary, f.Secondary}
}

// At returns the segment covering p and whether it is the primary one.
func (f Faller) At(p Position) (seg Segment, primary bool, ok bool) {
	switch p {
	case f.Primary.Pos:
		return f.Primary, true, true
	case f.Secondary.Pos:
		return f.Secondary, false, true
	}
	return Segment{}, false, false
}

// Covers reports whether either segment sits on p.
func (f Faller) Covers(p Position) bool {
	return f.Primary.Pos == p || f.Secondary.Pos == p
}

func (f Faller) shifted(dRow, dCol int) Faller {
	f.Primary.Pos = f.Primary.Pos.Offset(dRow, dCol)
	f.Secondary.Pos = f.Secondary.Pos.Offset(dRow, dCol)
	return f
}

// adjacent reports whether the two segments are exactly one cell apart.
func (f Faller) adjacent() bool {
	dr := f.Secondary.Pos.Row - f.Primary.Pos.Row
	dc := f.Secondary.Pos.Col - f.Primary.Pos.Col
	return (dr == 0 && dc == 1) || (dr == 1 && dc == 0)
}
