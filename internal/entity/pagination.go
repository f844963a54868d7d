package entity

type PaginationInput struct {
	Limit  int
	Offset int
}

func NewPaginationInput(limit int, offset int) *PaginationInput {
	return &PaginationInput{
		Limit:  limit,
		Offset: offset,
	}
}

// Window clamps the page to a collection of n elements. A nil page selects everything.
func (p *PaginationInput) Window(n int) (start int, end int) {
	if p == nil {
		return 0, n
	}

	start = min(max(p.Offset, 0), n)
	end = n
	if p.Limit >= 0 {
		end = min(start+p.Limit, n)
	}

	return start, end
}
