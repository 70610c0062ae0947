package wizard

// TopicsPerPage is the fixed topic-list page size.
const TopicsPerPage = 8

// Page is one page of a paginated topic list.
type Page struct {
	Items   []string
	Number  int // 0-indexed
	HasPrev bool
	HasNext bool
}

// Paginate slices topics into page number p. Pages past the end come
// back empty with HasNext false.
func Paginate(topics []string, p int) Page {
	if p < 0 {
		p = 0
	}
	start := p * TopicsPerPage
	if start > len(topics) {
		start = len(topics)
	}
	end := start + TopicsPerPage
	if end > len(topics) {
		end = len(topics)
	}
	return Page{
		Items:   topics[start:end],
		Number:  p,
		HasPrev: p > 0,
		HasNext: (p+1)*TopicsPerPage < len(topics),
	}
}
