package fetch

// Notifier renders toast-style notifications for mutation outcomes.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

var _ Notifier = NopNotifier{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
