package mock

import (
	"sort"
	"strings"
	"sync"
)

// KVStore mocks catalog.KVStore.
type KVStore struct {
	data    map[string][]byte
	reads   int
	updates int
	m       sync.Mutex

	// Err is returned from every call when set.
	Err error
}

// NewKVStore creates new KVStore instance with given data
func NewKVStore(data map[string][]byte) *KVStore {
	return &KVStore{
		data: data,
	}
}

// ReadKey returns data saved for given key.
func (s *KVStore) ReadKey(key []byte) ([]byte, error) {
	s.m.Lock()
	defer s.m.Unlock()

	s.reads++
	if s.Err != nil {
		return nil, s.Err
	}

	return s.data[string(key)], nil
}

// ReadPrefix returns values for keys with given prefix, in key order.
func (s *KVStore) ReadPrefix(prefix []byte) ([][]byte, error) {
	s.m.Lock()
	defer s.m.Unlock()

	s.reads++
	if s.Err != nil {
		return nil, s.Err
	}

	var keys []string
	for k := range s.data {
		if strings.HasPrefix(k, string(prefix)) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	values := make([][]byte, 0, len(keys))
	for _, k := range keys {
		values = append(values, s.data[k])
	}

	return values, nil
}

// UpdateKey stores given data under given key.
func (s *KVStore) UpdateKey(key []byte, data []byte) error {
	s.m.Lock()
	defer s.m.Unlock()

	s.updates++
	if s.Err != nil {
		return s.Err
	}
	if s.data == nil {
		s.data = make(map[string][]byte)
	}
	s.data[string(key)] = data

	return nil
}

// UpdateKeyIfExists replaces data stored under given key with the result of update.
func (s *KVStore) UpdateKeyIfExists(key []byte, update func([]byte) ([]byte, error)) (bool, error) {
	s.m.Lock()
	defer s.m.Unlock()

	s.updates++
	if s.Err != nil {
		return false, s.Err
	}
	current, ok := s.data[string(key)]
	if !ok {
		return false, nil
	}
	data, err := update(current)
	if err != nil {
		return true, err
	}
	s.data[string(key)] = data

	return true, nil
}

// DeleteKey removes given key.
func (s *KVStore) DeleteKey(key []byte) (bool, error) {
	s.m.Lock()
	defer s.m.Unlock()

	s.updates++
	if s.Err != nil {
		return false, s.Err
	}
	if _, ok := s.data[string(key)]; !ok {
		return false, nil
	}
	delete(s.data, string(key))

	return true, nil
}

// Reads returns read call count.
func (s *KVStore) Reads() int {
	s.m.Lock()
	defer s.m.Unlock()

	return s.reads
}

// Updates returns update and delete call count.
func (s *KVStore) Updates() int {
	s.m.Lock()
	defer s.m.Unlock()

	return s.updates
}
