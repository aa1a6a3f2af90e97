package fetch

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type spyNotifier struct {
	successes []string
	errs      []string
}

func (n *spyNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *spyNotifier) Error(msg string)   { n.errs = append(n.errs, msg) }

func TestMutation_Trigger(t *testing.T) {
	ctx := context.Background()
	f := NewFetcher()

	var listLoads int
	list := f.NewQuery(NewKey("courses"), nil, func(ctx context.Context) (interface{}, error) {
		listLoads++
		return nil, nil
	})
	defer list.Close()

	t.Run("success toasts and invalidates", func(t *testing.T) {
		notifier := &spyNotifier{}
		m := f.NewMutation(notifier, func(ctx context.Context) error { return nil }, []Key{NewKey("courses")})

		assert.NoError(t, m.Trigger(ctx))
		assert.Equal(t, []string{SavedText}, notifier.successes)
		assert.Empty(t, notifier.errs)
		assert.Equal(t, 1, listLoads)
	})

	t.Run("failure toasts the fixed text and skips invalidation", func(t *testing.T) {
		notifier := &spyNotifier{}
		boom := errors.New("boom")
		m := f.NewMutation(notifier, func(ctx context.Context) error { return boom }, []Key{NewKey("courses")})

		loadsBefore := listLoads
		assert.Equal(t, boom, m.Trigger(ctx))
		assert.Empty(t, notifier.successes)
		assert.Equal(t, []string{MutateErrorText}, notifier.errs)
		assert.Equal(t, loadsBefore, listLoads)
	})

	t.Run("custom messages", func(t *testing.T) {
		notifier := &spyNotifier{}
		m := f.NewMutation(notifier, func(ctx context.Context) error { return nil }, nil,
			WithMessages(DeletedText, MutateErrorText))

		assert.NoError(t, m.Trigger(ctx))
		assert.Equal(t, []string{DeletedText}, notifier.successes)
	})

	t.Run("nil notifier is tolerated", func(t *testing.T) {
		m := f.NewMutation(nil, func(ctx context.Context) error { return nil }, nil)
		assert.NoError(t, m.Trigger(ctx))
	})
}
