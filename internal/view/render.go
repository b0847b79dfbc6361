package view

// Render paints a contiguous block of surface rows, starting at firstRow.
// The block may be a subset of the window for exposure-driven repaints.
//
// The document line for row r is topLine+r. Rows with a document line get
// their number and content drawn through the hooks; rows past the end of the
// document are erased across the full surface width, so scrolling beyond the
// document never leaves stale content. Exactly rowCount rows are touched.
//
// Detached, Render is a silent no-op.
func (v *View) Render(firstRow, rowCount int) {
	if v.sfc == nil || rowCount <= 0 {
		return
	}

	cols := v.sfc.ColumnCount()
	contentWidth := cols - v.gutterWidth
	if contentWidth < 0 {
		contentWidth = 0
	}

	index := v.topLine + firstRow
	for row := firstRow; row < firstRow+rowCount; row++ {
		v.sfc.MoveCursorTo(row, 0)
		if index >= 0 && index < v.doc.Len() {
			text := fitToWidth(expandTabs(v.doc.Line(index), v.tabWidth), contentWidth)
			v.renderNumber(v, index)
			v.renderContent(v, index, text)
		} else {
			v.sfc.EraseRow(0, cols)
		}
		index++
	}
}
