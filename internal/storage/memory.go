package storage

type MemoryStore struct {
	events map[DateKey][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{events: map[DateKey][]string{}}
}

func (s *MemoryStore) List(key DateKey) ([]string, error) {
	list := s.events[key]
	out := make([]string, len(list))
	copy(out, list)
	return out, nil
}

func (s *MemoryStore) Add(key DateKey, text string) error {
	text, ok := normalize(text)
	if !ok {
		return nil
	}
	s.events[key] = append(s.events[key], text)
	return nil
}

func (s *MemoryStore) Remove(key DateKey, text string) error {
	list := s.events[key]
	for i, e := range list {
		if e != text {
			continue
		}
		list = append(list[:i], list[i+1:]...)
		if len(list) == 0 {
			delete(s.events, key)
		} else {
			s.events[key] = list
		}
		return nil
	}
	return nil
}

func (s *MemoryStore) Count(key DateKey) (int, error) {
	return len(s.events[key]), nil
}

func (s *MemoryStore) Close() error {
	s.events = map[DateKey][]string{}
	return nil
}
