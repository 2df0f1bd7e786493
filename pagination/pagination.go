// Package pagination partitions feeds into fixed-size pages. Invalid
// page input never surfaces as an error: non-numeric values degrade to
// the first page and out-of-range numbers to the last valid one.
package pagination

import "strconv"

const PerPage = 10

type Page struct {
	Number   int
	NumPages int
	Total    int64
	PerPage  int
}

// GetPage selects the page identified by raw (the "page" query
// parameter) out of total items. An empty list still has one page.
func GetPage(total int64, raw string) Page {
	p := Page{Total: total, PerPage: PerPage, NumPages: 1}
	if total > PerPage {
		p.NumPages = int((total + PerPage - 1) / PerPage)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		n = 1
	} else if n < 1 || n > p.NumPages {
		n = p.NumPages
	}
	p.Number = n
	return p
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

func (p Page) HasNext() bool {
	return p.Number < p.NumPages
}

func (p Page) HasPrevious() bool {
	return p.Number > 1
}

func (p Page) NextNumber() int {
	return p.Number + 1
}

func (p Page) PreviousNumber() int {
	return p.Number - 1
}
