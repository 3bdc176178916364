package mystore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type Fitting struct {
	UID   string
	Label string
	Chest int
}

var (
	fitting = Fitting{UID: "123", Label: "Summer suit", Chest: 98}
)

func TestStore(t *testing.T) {
	c := context.TODO()
	fs, cleanup, err := NewInMemoryStore[Fitting](c)
	assert.NoError(t, err)
	defer cleanup()

	t.Run("Get not found", func(t *testing.T) {
		_, found, err := fs.Get(c, fitting.UID)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Put", func(t *testing.T) {
		err = fs.Put(c, fitting.UID, fitting)
		assert.NoError(t, err)
	})

	t.Run("Get found", func(t *testing.T) {
		f, found, err := fs.Get(c, fitting.UID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, Fitting{UID: "123", Label: "Summer suit", Chest: 98}, f)
	})

	t.Run("List", func(t *testing.T) {
		all, err := fs.List(c)
		assert.NoError(t, err)
		assert.Equal(t, all, []Fitting{fitting})
	})

	t.Run("Remove", func(t *testing.T) {
		err := fs.Remove(c, fitting.UID)
		assert.NoError(t, err)

		_, found, err := fs.Get(c, fitting.UID)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Rollback on error", func(t *testing.T) {
		err := fs.RunInTransaction(c, func(c context.Context) error {
			return assert.AnError
		})
		assert.Error(t, err)
	})
}
