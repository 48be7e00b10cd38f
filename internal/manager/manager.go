package manager

import "context"

// Manager abstracts the local model manager. Implementations own all
// local state; callers only ask questions and issue downloads.
type Manager interface {
	// ListInstalled returns the model references currently installed,
	// in the order the manager reports them.
	ListInstalled(ctx context.Context) ([]string, error)

	// Pull asks the manager to download the given model reference.
	// The call blocks until the download finishes or fails.
	Pull(ctx context.Context, name string) error
}
