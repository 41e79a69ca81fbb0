package blob

import (
	"context"
	"sync"
)

// Object is a stored blob together with its recorded metadata.
type Object struct {
	ContentType     string
	ContentEncoding string
	Data            []byte
}

// MemoryStore keeps objects in a map. It is used by tests and by local
// runs that do not want to touch a real bucket.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string]Object
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]Object)}
}

func (s *MemoryStore) Put(_ context.Context, key, contentType, contentEncoding string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.objects[key] = Object{ContentType: contentType, ContentEncoding: contentEncoding, Data: cp}
	return nil
}

// Get returns a stored object by key.
func (s *MemoryStore) Get(key string) (Object, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[key]
	return obj, ok
}

// Keys returns every stored key in unspecified order.
func (s *MemoryStore) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.objects))
	for k := range s.objects {
		keys = append(keys, k)
	}
	return keys
}

// Len reports the number of stored objects.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
