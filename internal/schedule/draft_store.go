package schedule

import "sync"

// DraftStore is the single-use hand-off slot between the template library and
// the schedule editor. A loaded template is parked here under the user's id
// and consumed exactly once: Take clears the slot, so a second read comes back
// empty. Nothing here survives a restart; a draft is transient by contract.
type DraftStore struct {
	mu     sync.Mutex
	drafts map[uint]Document
}

func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[uint]Document)}
}

// Put parks a draft for the user, replacing any draft already waiting.
func (s *DraftStore) Put(userID uint, doc Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[userID] = doc
}

// Take returns the user's parked draft and clears the slot.
func (s *DraftStore) Take(userID uint) (Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.drafts[userID]
	if ok {
		delete(s.drafts, userID)
	}
	return doc, ok
}
