package memory

import (
	"context"
	"sync"

	"github.com/gabrielsantos8/futclebs/internal/domain/vote"
)

type VoteRepository struct {
	mu      sync.RWMutex
	byMatch map[string][]vote.Vote
	triples map[string]struct{}
}

func NewVoteRepository() *VoteRepository {
	return &VoteRepository{
		byMatch: make(map[string][]vote.Vote),
		triples: make(map[string]struct{}),
	}
}

func (r *VoteRepository) Insert(_ context.Context, item vote.Vote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := voteKey(item.MatchID, item.VoterID, item.TargetID)
	if _, exists := r.triples[key]; exists {
		return vote.ErrDuplicate
	}

	r.triples[key] = struct{}{}
	r.byMatch[item.MatchID] = append(r.byMatch[item.MatchID], item)
	return nil
}

func (r *VoteRepository) ListByMatch(_ context.Context, matchID string) ([]vote.Vote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.byMatch[matchID]
	out := make([]vote.Vote, 0, len(items))
	out = append(out, items...)

	return out, nil
}

func (r *VoteRepository) ListByMatchAndVoter(_ context.Context, matchID, voterID string) ([]vote.Vote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []vote.Vote
	for _, item := range r.byMatch[matchID] {
		if item.VoterID == voterID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *VoteRepository) DeleteByMatch(_ context.Context, matchID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.byMatch[matchID] {
		delete(r.triples, voteKey(item.MatchID, item.VoterID, item.TargetID))
	}
	delete(r.byMatch, matchID)
	return nil
}

func voteKey(matchID, voterID, targetID string) string {
	return matchID + "::" + voterID + "::" + targetID
}
