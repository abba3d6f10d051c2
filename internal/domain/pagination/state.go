package pagination

// State tracks the current page over a result set whose size changes.
// It is not safe for concurrent use.
type State struct {
	pageSize   int
	current    int
	totalPages int
}

func NewState(pageSize int) *State {
	return &State{pageSize: normalizeSize(pageSize), current: 1, totalPages: 1}
}

// SetCount recomputes the page count for a new result set and resets the
// current page to 1.
func (s *State) SetCount(count int) {
	s.totalPages = TotalPages(count, s.pageSize)
	s.current = 1
}

func (s *State) Next() bool {
	if s.current >= s.totalPages {
		return false
	}
	s.current++
	return true
}

func (s *State) Prev() bool {
	if s.current <= 1 {
		return false
	}
	s.current--
	return true
}

// GoTo ignores pages outside [1, TotalPages].
func (s *State) GoTo(page int) bool {
	if page < 1 || page > s.totalPages {
		return false
	}
	s.current = page
	return true
}

func (s *State) Current() int    { return s.current }
func (s *State) TotalPages() int { return s.totalPages }
func (s *State) PageSize() int   { return s.pageSize }
func (s *State) HasPrev() bool   { return s.current > 1 }
func (s *State) HasNext() bool   { return s.current < s.totalPages }

func (s *State) Window() []int {
	return Window(s.current, s.totalPages, DefaultWindow)
}
