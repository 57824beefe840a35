package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeKV struct {
	values map[string]string
	getErr error
	putErr error
	puts   int
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: map[string]string{}}
}

func (kv *fakeKV) Get(key string) (string, error) {
	if kv.getErr != nil {
		return "", kv.getErr
	}
	return kv.values[key], nil
}

func (kv *fakeKV) Put(key, value string) error {
	kv.puts++
	if kv.putErr != nil {
		return kv.putErr
	}
	kv.values[key] = value
	return nil
}

func TestRecentRecordPromotesWithoutDuplicating(t *testing.T) {
	s := NewRecentStore(newFakeKV(), 5)

	s.Record("a")
	s.Record("b")
	s.Record("a")

	assert.Equal(t, []string{"a", "b"}, s.List())
}

func TestRecentEvictsOldestPastLimit(t *testing.T) {
	s := NewRecentStore(newFakeKV(), 5)

	for _, q := range []string{"q1", "q2", "q3", "q4", "q5", "q6"} {
		s.Record(q)
	}

	assert.Equal(t, []string{"q6", "q5", "q4", "q3", "q2"}, s.List())
}

func TestRecentIgnoresEmptyText(t *testing.T) {
	kv := newFakeKV()
	s := NewRecentStore(kv, 5)

	s.Record("")
	s.Record("   ")

	assert.Empty(t, s.List())
	assert.Zero(t, kv.puts)
}

func TestRecentRemove(t *testing.T) {
	s := NewRecentStore(newFakeKV(), 5)
	s.Record("a")
	s.Record("b")

	s.Remove("a")
	assert.Equal(t, []string{"b"}, s.List())

	// Removing an absent entry is a no-op.
	s.Remove("zzz")
	assert.Equal(t, []string{"b"}, s.List())
}

func TestRecentReadFailureMeansEmptyHistory(t *testing.T) {
	kv := newFakeKV()
	kv.getErr = errors.New("backend down")
	s := NewRecentStore(kv, 5)

	assert.Empty(t, s.List())
}

func TestRecentWriteFailureIsDropped(t *testing.T) {
	kv := newFakeKV()
	kv.putErr = errors.New("disk full")
	s := NewRecentStore(kv, 5)

	assert.NotPanics(t, func() { s.Record("a") })
	assert.Empty(t, s.List())
}

func TestRecentCorruptValueStartsFresh(t *testing.T) {
	kv := newFakeKV()
	kv.values[recentKey] = "not||json"
	s := NewRecentStore(kv, 5)

	assert.Empty(t, s.List())
	s.Record("a")
	assert.Equal(t, []string{"a"}, s.List())
}

func TestRecentEntriesMayContainAnyDelimiter(t *testing.T) {
	s := NewRecentStore(newFakeKV(), 5)

	s.Record("pipes || and , commas")
	s.Record("plain")

	assert.Equal(t, []string{"plain", "pipes || and , commas"}, s.List())
}
