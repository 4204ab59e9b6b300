package editor

// View is the cursor and scroll state shared by input handling and rendering.
type View struct {
	cx, cy     int // cursor position; cy may be one past the last row
	rowOffset  int // first document row shown at the top of the screen
	screenRows int
	screenCols int
}

func NewView(screenRows, screenCols int) *View {
	v := &View{}
	v.Resize(screenRows, screenCols)
	return v
}

// Resize applies new viewport dimensions and keeps the cursor column on screen.
func (v *View) Resize(screenRows, screenCols int) {
	v.screenRows = max(screenRows, 1)
	v.screenCols = max(screenCols, 1)
	v.cx = min(v.cx, v.screenCols-1)
}

// Cursor returns the cursor column and row in document coordinates.
func (v *View) Cursor() (int, int) {
	return v.cx, v.cy
}

func (v *View) RowOffset() int {
	return v.rowOffset
}

func (v *View) Size() (int, int) {
	return v.screenRows, v.screenCols
}

// Scroll moves the window so that the cursor row is visible.
func (v *View) Scroll() {
	if v.cy < v.rowOffset {
		v.rowOffset = v.cy
	}
	if v.cy >= v.rowOffset+v.screenRows {
		v.rowOffset = v.cy - v.screenRows + 1
	}
}

// MoveCursor moves one step. The column is clamped to the screen width rather
// than to the row length, and the row may reach numRows.
func (v *View) MoveCursor(key Key, numRows int) {
	switch key {
	case ARROW_LEFT:
		if v.cx != 0 {
			v.cx--
		}
	case ARROW_RIGHT:
		if v.cx < v.screenCols-1 {
			v.cx++
		}
	case ARROW_UP:
		if v.cy != 0 {
			v.cy--
		}
	case ARROW_DOWN:
		if v.cy < numRows {
			v.cy++
		}
	}
}

// Page repeats single up or down steps for a full screen height.
func (v *View) Page(key Key, numRows int) {
	direction := ARROW_UP
	if key == PAGE_DOWN {
		direction = ARROW_DOWN
	}
	for range v.screenRows {
		v.MoveCursor(direction, numRows)
	}
}

func (v *View) Home() {
	v.cx = 0
}

func (v *View) End() {
	v.cx = v.screenCols - 1
}
