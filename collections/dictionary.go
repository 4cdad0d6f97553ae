package collections

// Dictionary is a key-indexed map kept as an insertion-ordered List of
// [Entry] values.
//
// Keys are unique: AddItem rejects a key that is already present instead of
// overwriting it. Every lookup is a linear scan, so reads, inserts and
// removals are O(n) in the number of entries. Use a Go map when that matters;
// use Dictionary when insertion order and positional access do.
type Dictionary[K comparable, V any] struct {
	entries *List[Entry[K, V]]
}

// NewDictionary creates an empty Dictionary.
func NewDictionary[K comparable, V any]() *Dictionary[K, V] {
	return &Dictionary[K, V]{entries: NewList[Entry[K, V]](nil)}
}

// Count returns the number of entries.
func (d *Dictionary[K, V]) Count() int { return d.entries.Count() }

// GetByKey returns the value stored under key.
// Returns the zero value and false when key is absent.
func (d *Dictionary[K, V]) GetByKey(key K) (V, bool) {
	entry, ok := d.entries.FirstOrDefault(d.hasKey(key))
	return entry.value, ok
}

// ContainsKey reports whether key is present.
func (d *Dictionary[K, V]) ContainsKey(key K) bool {
	return d.entries.Any(d.hasKey(key))
}

// GetKeyByIndex returns the key of the entry at index, or
// [ErrIndexOutOfRange].
func (d *Dictionary[K, V]) GetKeyByIndex(index int) (K, error) {
	entry, err := d.entries.GetAtIndex(index)
	return entry.key, err
}

// GetValueByIndex returns the value of the entry at index, or
// [ErrIndexOutOfRange].
func (d *Dictionary[K, V]) GetValueByIndex(index int) (V, error) {
	entry, err := d.entries.GetAtIndex(index)
	return entry.value, err
}

// AddItem appends a new entry. When key already exists it returns
// [ErrDuplicateKey] and leaves the dictionary unchanged, so a batch of inserts
// can log the error and carry on.
func (d *Dictionary[K, V]) AddItem(key K, value V) error {
	if d.ContainsKey(key) {
		return ErrDuplicateKey.F("key %v", key)
	}
	d.entries.Add(NewEntry(key, value))
	return nil
}

// RemoveItem deletes the entry stored under key and reports whether there
// was one.
func (d *Dictionary[K, V]) RemoveItem(key K) bool {
	index := d.entries.indexOf(d.hasKey(key))
	if index < 0 {
		return false
	}
	return d.entries.RemoveAtIndex(index) == nil
}

// GetKeys returns the keys, in insertion order, as a new List.
func (d *Dictionary[K, V]) GetKeys() *List[K] {
	return Convert[Entry[K, V], K](d.entries, Entry[K, V].Key)
}

// GetValues returns the values, in insertion order, as a new List.
func (d *Dictionary[K, V]) GetValues() *List[V] {
	return Convert[Entry[K, V], V](d.entries, Entry[K, V].Value)
}

// Entries returns the entries, in insertion order, as a new List backed by a
// copy, so the query surface can be used without reaching into the
// dictionary's storage.
func (d *Dictionary[K, V]) Entries() *List[Entry[K, V]] {
	return Convert[Entry[K, V], Entry[K, V]](d.entries, func(e Entry[K, V]) Entry[K, V] { return e })
}

func (d *Dictionary[K, V]) hasKey(key K) func(Entry[K, V]) bool {
	return func(e Entry[K, V]) bool { return e.key == key }
}
