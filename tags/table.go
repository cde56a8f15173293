package tags

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "github.com/npillmayer/htmltree"

// HeaderOption selects which cells of a shorthand-constructed table are
// emitted as header cells (th).
type HeaderOption int

// Header layouts for TableFrom.
const (
	NoHeader     HeaderOption = iota
	HeaderRow                 // first row is a header
	HeaderColumn              // first column is a header
	HeaderBoth                // first row and first column are headers
)

func (h HeaderOption) headerAt(row, col int) bool {
	switch h {
	case HeaderRow:
		return row == 0
	case HeaderColumn:
		return col == 0
	case HeaderBoth:
		return row == 0 || col == 0
	}
	return false
}

// TableFrom is the shorthand construction of a table from row/column
// data: each inner slice becomes a tr, its entries become td cells (th at
// header positions). Scalar entries are wrapped in a cell; an Element
// entry is taken as a ready-made cell unless it sits at a header
// position, in which case it is wrapped in a th. Further arguments are
// classified like htmltree.New arguments and attached to the table
// element itself (attributes, caption and so on).
func TableFrom(rows [][]interface{}, header HeaderOption, items ...interface{}) (*htmltree.Element, error) {
	table, err := htmltree.New("table", items...)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		tr, err := htmltree.New("tr")
		if err != nil {
			return nil, err
		}
		for c, cell := range row {
			wrapped, err := tableCell(cell, header.headerAt(r, c))
			if err != nil {
				return nil, err
			}
			if err := tr.Add(wrapped); err != nil {
				return nil, err
			}
		}
		if err := table.Add(tr); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// MustTableFrom is like TableFrom but panics on a classification error.
func MustTableFrom(rows [][]interface{}, header HeaderOption, items ...interface{}) *htmltree.Element {
	table, err := TableFrom(rows, header, items...)
	if err != nil {
		panic(err)
	}
	return table
}

func tableCell(cell interface{}, header bool) (*htmltree.Element, error) {
	if el, ok := cell.(*htmltree.Element); ok && !header {
		return el, nil
	}
	tag := "td"
	if header {
		tag = "th"
	}
	return htmltree.New(tag, cell)
}
