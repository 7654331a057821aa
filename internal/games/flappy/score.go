package flappy

// BestStore persists the best score between runs.
type BestStore interface {
	Load() (int, error)
	Save(best int) error
}

// BestRaiser is implemented by stores shared between sessions. Raise keeps
// the larger of best and the stored value and returns it.
type BestRaiser interface {
	Raise(best int) (int, error)
}

// ScoreKeeper tracks the current run score and the best score.
// A new best is written through to the store immediately.
type ScoreKeeper struct {
	score   int
	best    int
	store   BestStore
	onError func(error)
}

// NewScoreKeeper reads the best score from store (nil means memory only).
// A failed read counts as a best score of 0. Store errors are passed to
// onError when it is set and otherwise dropped.
func NewScoreKeeper(store BestStore, onError func(error)) *ScoreKeeper {
	k := &ScoreKeeper{store: store, onError: onError}
	if store != nil {
		best, err := store.Load()
		if err != nil {
			k.report(err)
			best = 0
		}
		k.best = max(best, 0)
	}
	return k
}

// Add awards points and reports whether the best score moved.
func (k *ScoreKeeper) Add(points int) bool {
	k.score += points
	if k.score <= k.best {
		return false
	}
	k.best = k.score
	switch store := k.store.(type) {
	case nil:
	case BestRaiser:
		stored, err := store.Raise(k.best)
		if err != nil {
			k.report(err)
		}
		k.best = max(k.best, stored)
	default:
		if err := store.Save(k.best); err != nil {
			k.report(err)
		}
	}
	return true
}

// Reset clears the current score. The best score is kept, and picks up a
// higher value written by another session sharing a raising store.
func (k *ScoreKeeper) Reset() {
	k.score = 0
	if store, ok := k.store.(BestRaiser); ok {
		if stored, err := store.Raise(k.best); err == nil {
			k.best = max(k.best, stored)
		}
	}
}

// Score returns the current run score.
func (k *ScoreKeeper) Score() int {
	return k.score
}

// Best returns the best score seen so far.
func (k *ScoreKeeper) Best() int {
	return k.best
}

func (k *ScoreKeeper) report(err error) {
	if k.onError != nil {
		k.onError(err)
	}
}
