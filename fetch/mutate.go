package fetch

import "context"

// default toast texts
const (
	SavedText       = "Guardado exitosamente"
	DeletedText     = "Eliminado exitosamente"
	MutateErrorText = "Ha ocurrido un error, intenta de nuevo"
)

// Mutation wraps one gateway mutation with fixed success/error toasts and the
// cache keys it invalidates on success.
type Mutation struct {
	f           *Fetcher
	run         func(ctx context.Context) error
	invalidates []Key
	notifier    Notifier
	successMsg  string
	errorMsg    string
}

// MutationOption tweaks a mutation at construction.
type MutationOption func(*Mutation)

// WithMessages overrides the default toast texts.
func WithMessages(success, errMsg string) MutationOption {
	return func(m *Mutation) {
		m.successMsg = success
		m.errorMsg = errMsg
	}
}

// NewMutation declares a mutation and the keys it stales.
func (f *Fetcher) NewMutation(notifier Notifier, run func(ctx context.Context) error, invalidates []Key, opts ...MutationOption) *Mutation {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	m := &Mutation{
		f:           f,
		run:         run,
		invalidates: invalidates,
		notifier:    notifier,
		successMsg:  SavedText,
		errorMsg:    MutateErrorText,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Trigger runs the mutation. On success it toasts and invalidates the declared
// keys so dependent views refresh; on failure it toasts the fixed error text
// regardless of the underlying cause and returns the error untouched.
func (m *Mutation) Trigger(ctx context.Context) error {
	if err := m.run(ctx); err != nil {
		m.notifier.Error(m.errorMsg)
		return err
	}
	m.notifier.Success(m.successMsg)
	m.f.Invalidate(m.invalidates...)
	return nil
}
