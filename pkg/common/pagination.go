package common

import "strconv"

const PageSize = 10

// Page describes one slice of a paginated listing. Pages are 1-indexed.
type Page struct {
	Number int
	Count  int
	Total  int
	Offset int
	Limit  int
}

// Paginate clamps the requested page number to the nearest valid page
// instead of erroring: zero, negative or unparsable input means the first
// page, anything past the end means the last page. An empty listing still
// has one (empty) page.
func Paginate(total int, requested string, perPage int) Page {
	count := (total + perPage - 1) / perPage
	if count < 1 {
		count = 1
	}

	number, err := strconv.Atoi(requested)
	if err != nil || number < 1 {
		number = 1
	}
	if number > count {
		number = count
	}

	offset := (number - 1) * perPage
	limit := perPage
	if offset+limit > total {
		limit = total - offset
	}
	if limit < 0 {
		limit = 0
	}

	return Page{
		Number: number,
		Count:  count,
		Total:  total,
		Offset: offset,
		Limit:  limit,
	}
}

func (p Page) HasPrev() bool { return p.Number > 1 }
func (p Page) HasNext() bool { return p.Number < p.Count }
func (p Page) Prev() int     { return p.Number - 1 }
func (p Page) Next() int     { return p.Number + 1 }
