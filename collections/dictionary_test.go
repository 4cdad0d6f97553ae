package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-enumerable/collections"
)

func TestDictionary_AddItem_GetByKey(t *testing.T) {
	d := collections.NewDictionary[string, int]()
	require.NoError(t, d.AddItem("a", 1))
	require.NoError(t, d.AddItem("b", 2))

	v, ok := d.GetByKey("b")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, d.Count())

	v, ok = d.GetByKey("missing")
	assert.False(t, ok)
	assert.Equal(t, 0, v)
}

func TestDictionary_AddItem_duplicate(t *testing.T) {
	d := collections.NewDictionary[string, int]()
	require.NoError(t, d.AddItem("k", 1))

	err := d.AddItem("k", 2)
	require.ErrorIs(t, err, collections.ErrDuplicateKey)
	assert.Contains(t, err.Error(), "k")

	v, ok := d.GetByKey("k")
	require.True(t, ok)
	assert.Equal(t, 1, v, "the first value is kept")
	assert.Equal(t, 1, d.Count())
}

func TestDictionary_AddItem_batchContinues(t *testing.T) {
	d := collections.NewDictionary[int, string]()
	var rejected []int
	for i, key := range []int{1, 2, 1, 3, 2} {
		if err := d.AddItem(key, string(rune('a'+i))); err != nil {
			rejected = append(rejected, key)
		}
	}
	assert.Equal(t, []int{1, 2}, rejected)
	assert.Equal(t, []int{1, 2, 3}, d.GetKeys().ToArray())
	assert.Equal(t, []string{"a", "b", "d"}, d.GetValues().ToArray())
}

func TestDictionary_RemoveItem(t *testing.T) {
	d := collections.NewDictionary[string, int]()
	require.NoError(t, d.AddItem("first", 1))
	require.NoError(t, d.AddItem("second", 2))
	require.NoError(t, d.AddItem("third", 3))

	assert.True(t, d.RemoveItem("first"), "the entry at index 0 can be removed")
	assert.Equal(t, []string{"second", "third"}, d.GetKeys().ToArray())

	assert.False(t, d.RemoveItem("missing"))
	assert.Equal(t, 2, d.Count())

	_, ok := d.GetByKey("first")
	assert.False(t, ok)
}

func TestDictionary_IndexAccess(t *testing.T) {
	d := collections.NewDictionary[string, float64]()
	require.NoError(t, d.AddItem("x", 1.5))
	require.NoError(t, d.AddItem("y", 2.5))

	k, err := d.GetKeyByIndex(1)
	require.NoError(t, err)
	assert.Equal(t, "y", k)

	v, err := d.GetValueByIndex(0)
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	_, err = d.GetKeyByIndex(2)
	assert.ErrorIs(t, err, collections.ErrIndexOutOfRange)
	_, err = d.GetValueByIndex(-1)
	assert.ErrorIs(t, err, collections.ErrIndexOutOfRange)
}

func TestDictionary_KeysAndValuesAreNewLists(t *testing.T) {
	d := collections.NewDictionary[string, int]()
	require.NoError(t, d.AddItem("a", 1))

	keys := d.GetKeys()
	keys.Add("b")
	assert.Equal(t, 1, d.Count())
	assert.False(t, d.ContainsKey("b"))
}

func TestDictionary_ContainsKey(t *testing.T) {
	d := collections.NewDictionary[int, string]()
	assert.False(t, d.ContainsKey(1))
	require.NoError(t, d.AddItem(1, "one"))
	assert.True(t, d.ContainsKey(1))
}

func TestDictionary_Entries(t *testing.T) {
	d := collections.NewDictionary[string, int]()
	require.NoError(t, d.AddItem("a", 3))
	require.NoError(t, d.AddItem("b", 1))
	require.NoError(t, d.AddItem("c", 2))

	entries := d.Entries().OrderBy(func(e collections.Entry[string, int]) any { return e.Value() }, collections.Ascending)
	keys := collections.Convert[collections.Entry[string, int], string](entries, collections.Entry[string, int].Key)
	assert.Equal(t, []string{"b", "c", "a"}, keys.ToArray())
	assert.Equal(t, []string{"a", "b", "c"}, d.GetKeys().ToArray(), "sorting the copy leaves the dictionary alone")
}

func TestEntry(t *testing.T) {
	e := collections.NewEntry("answer", 42)
	assert.Equal(t, "answer", e.Key())
	assert.Equal(t, 42, e.Value())
	assert.Equal(t, "answer: 42", e.String())
}
