// Package prompt implements the single-keystroke disambiguation menu:
// each candidate on the current page gets a letter, space pages forward,
// and any other key dismisses the menu.
package prompt

import "unicode"

// Letters available per page; the page size can never exceed this
const maxPageSize = 26

const defaultPageSize = 15

// Status is the lifecycle state of a selection session
type Status int

const (
	// StatusActive means the session is waiting for a keystroke
	StatusActive Status = iota
	// StatusResolved means a candidate was chosen
	StatusResolved
	// StatusCancelled means the user dismissed the menu
	StatusCancelled
)

// Item is one labeled line of the current page
type Item struct {
	Key   rune   // Selection letter, 'a' through 'z'
	Label string // Candidate summary
}

// Session is the pure state machine behind the menu. It never does IO;
// callers render Page and feed keystrokes into Feed.
type Session struct {
	items    []string
	pageSize int
	offset   int
	status   Status
	choice   int
}

// NewSession starts a session over the given candidate labels. A page
// size outside [1, 26] is clamped to the nearest valid value; zero
// selects the default.
func NewSession(items []string, pageSize int) *Session {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return &Session{items: items, pageSize: pageSize}
}

// Status returns the session's lifecycle state
func (s *Session) Status() Status {
	return s.status
}

// Choice returns the index of the chosen candidate, valid only when the
// session is resolved
func (s *Session) Choice() int {
	return s.choice
}

// Page returns the labeled items of the current page
func (s *Session) Page() []Item {
	end := s.offset + s.pageSize
	if end > len(s.items) {
		end = len(s.items)
	}
	page := make([]Item, 0, end-s.offset)
	for i := s.offset; i < end; i++ {
		page = append(page, Item{
			Key:   rune('a' + (i - s.offset)),
			Label: s.items[i],
		})
	}
	return page
}

// HasMore reports whether pages remain after the current one
func (s *Session) HasMore() bool {
	return s.offset+s.pageSize < len(s.items)
}

// Feed advances the state machine by one keystroke. Letters within the
// current page resolve the session, space pages forward (a no-op on the
// last page), and anything else cancels. Feeding a finished session
// does nothing.
func (s *Session) Feed(key rune) {
	if s.status != StatusActive {
		return
	}

	if key == ' ' {
		if s.HasMore() {
			s.offset += s.pageSize
		}
		return
	}

	key = unicode.ToLower(key)
	if key >= 'a' && key < rune('a'+len(s.Page())) {
		s.choice = s.offset + int(key-'a')
		s.status = StatusResolved
		return
	}

	s.status = StatusCancelled
}
