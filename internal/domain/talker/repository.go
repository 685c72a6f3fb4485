package talker

import "context"

// Repository is the contract over the durable medium holding the whole
// collection. Load and Save always move the full snapshot; there is no
// partial write and no cross-request cache. A failed Save must leave the
// previously persisted collection readable.
type Repository interface {
	Load(ctx context.Context) ([]Talker, error)
	Save(ctx context.Context, talkers []Talker) error
}
