package client

import (
	"context"
	"slices"
	"sync"

	"github.com/YusovID/skillswap/pkg/api"
)

const swapStatusCompleted = "completed"

// Store caches the signed-in user's view of the marketplace. Mutations merge the
// entity returned by the API into the cached lists; lists are never re-fetched as
// a side effect. A Store is safe for concurrent use.
type Store struct {
	client *Client

	mu         sync.RWMutex
	me         *api.User
	skills     []api.Skill
	results    []api.SkillListing
	categories []string
	sent       []api.SwapRequest
	received   []api.SwapRequest
	completed  []api.SwapRequest
	feedback   map[string][]api.Feedback
	inflight   int
	err        error
}

func NewStore(c *Client) *Store {
	return &Store{
		client:   c,
		feedback: make(map[string][]api.Feedback),
	}
}

// Loading reports whether any action is waiting on the API.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.inflight > 0
}

// Err returns the error of the last failed action. It is cleared when the next action starts.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.err
}

func (s *Store) Me() *api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.me == nil {
		return nil
	}
	me := *s.me

	return &me
}

func (s *Store) Skills() []api.Skill {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.skills)
}

func (s *Store) SearchResults() []api.SkillListing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.results)
}

func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.categories)
}

func (s *Store) SentSwaps() []api.SwapRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.sent)
}

func (s *Store) ReceivedSwaps() []api.SwapRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.received)
}

func (s *Store) CompletedSwaps() []api.SwapRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.completed)
}

func (s *Store) Feedback(swapID string) []api.Feedback {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.feedback[swapID])
}

func (s *Store) begin() {
	s.mu.Lock()
	s.inflight++
	s.err = nil
	s.mu.Unlock()
}

// finish records the outcome of an action. merge runs under the write lock and only on success.
func (s *Store) finish(err error, merge func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inflight--
	if err != nil {
		s.err = err
		return err
	}

	if merge != nil {
		merge()
	}

	return nil
}

func (s *Store) Login(ctx context.Context, email, password string) (*api.User, error) {
	s.begin()
	resp, err := s.client.Login(ctx, email, password)

	if err := s.finish(err, func() {
		user := resp.User
		s.me = &user
	}); err != nil {
		return nil, err
	}

	return &resp.User, nil
}

// Logout forgets the token and every cached list.
func (s *Store) Logout() {
	s.client.SetToken("")

	s.mu.Lock()
	defer s.mu.Unlock()

	s.me = nil
	s.skills = nil
	s.results = nil
	s.sent = nil
	s.received = nil
	s.completed = nil
	s.feedback = make(map[string][]api.Feedback)
	s.err = nil
}

func (s *Store) UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) (*api.User, error) {
	s.begin()
	user, err := s.client.UpdateProfile(ctx, req)

	if err := s.finish(err, func() {
		updated := *user
		s.me = &updated
	}); err != nil {
		return nil, err
	}

	return user, nil
}

// LoadMySkills replaces the cached skills of the signed-in user.
func (s *Store) LoadMySkills(ctx context.Context) error {
	s.begin()

	me, err := s.client.Me(ctx)
	var skills []api.Skill
	if err == nil {
		skills, err = s.client.UserSkills(ctx, me.ID)
	}

	return s.finish(err, func() {
		s.me = me
		s.skills = skills
	})
}

func (s *Store) AddSkill(ctx context.Context, req api.CreateSkillRequest) (*api.Skill, error) {
	s.begin()
	skill, err := s.client.CreateSkill(ctx, req)

	if err := s.finish(err, func() { s.mergeSkill(*skill) }); err != nil {
		return nil, err
	}

	return skill, nil
}

func (s *Store) UpdateSkill(ctx context.Context, id string, req api.UpdateSkillRequest) (*api.Skill, error) {
	s.begin()
	skill, err := s.client.UpdateSkill(ctx, id, req)

	return s.finishSkill(skill, err)
}

func (s *Store) SetSkillVisibility(ctx context.Context, id string, public bool) (*api.Skill, error) {
	s.begin()
	skill, err := s.client.SetSkillVisibility(ctx, id, public)

	return s.finishSkill(skill, err)
}

func (s *Store) SetSkillAvailability(ctx context.Context, id string, available bool) (*api.Skill, error) {
	s.begin()
	skill, err := s.client.SetSkillAvailability(ctx, id, available)

	return s.finishSkill(skill, err)
}

func (s *Store) finishSkill(skill *api.Skill, err error) (*api.Skill, error) {
	if err := s.finish(err, func() { s.mergeSkill(*skill) }); err != nil {
		return nil, err
	}

	return skill, nil
}

func (s *Store) RemoveSkill(ctx context.Context, id string) error {
	s.begin()
	err := s.client.DeleteSkill(ctx, id)

	return s.finish(err, func() {
		s.skills = slices.DeleteFunc(s.skills, func(sk api.Skill) bool { return sk.ID == id })
		s.results = slices.DeleteFunc(s.results, func(l api.SkillListing) bool { return l.ID == id })
	})
}

// mergeSkill upserts into the user's skills and refreshes any matching search
// result. A skill that is no longer public drops out of the results.
func (s *Store) mergeSkill(skill api.Skill) {
	s.skills = upsert(s.skills, skill, func(sk api.Skill) string { return sk.ID })

	idx := slices.IndexFunc(s.results, func(l api.SkillListing) bool { return l.ID == skill.ID })
	if idx < 0 {
		return
	}

	if !skill.IsPublic {
		s.results = slices.Delete(s.results, idx, idx+1)
		return
	}

	s.results[idx].Skill = skill
}

func (s *Store) Search(ctx context.Context, params SearchParams) ([]api.SkillListing, error) {
	s.begin()
	results, err := s.client.SearchSkills(ctx, params)

	if err := s.finish(err, func() { s.results = results }); err != nil {
		return nil, err
	}

	return slices.Clone(results), nil
}

func (s *Store) LoadCategories(ctx context.Context) error {
	s.begin()
	categories, err := s.client.Categories(ctx)

	return s.finish(err, func() { s.categories = categories })
}

// LoadSwaps fetches the sent, received and completed lists.
func (s *Store) LoadSwaps(ctx context.Context) error {
	s.begin()

	sent, err := s.client.Swaps(ctx, "sent")

	var received, completed []api.SwapRequest
	if err == nil {
		received, err = s.client.Swaps(ctx, "received")
	}
	if err == nil {
		completed, err = s.client.CompletedSwaps(ctx)
	}

	return s.finish(err, func() {
		s.sent = sent
		s.received = received
		s.completed = completed
	})
}

func (s *Store) SendSwap(ctx context.Context, req api.CreateSwapRequest) (*api.SwapRequest, error) {
	s.begin()
	swap, err := s.client.CreateSwap(ctx, req)

	return s.finishSwap(swap, err)
}

func (s *Store) RespondSwap(ctx context.Context, id, status string) (*api.SwapRequest, error) {
	s.begin()
	swap, err := s.client.RespondSwap(ctx, id, status)

	return s.finishSwap(swap, err)
}

func (s *Store) CompleteSwap(ctx context.Context, id string) (*api.SwapRequest, error) {
	s.begin()
	swap, err := s.client.CompleteSwap(ctx, id)

	return s.finishSwap(swap, err)
}

func (s *Store) finishSwap(swap *api.SwapRequest, err error) (*api.SwapRequest, error) {
	if err := s.finish(err, func() { s.mergeSwap(*swap) }); err != nil {
		return nil, err
	}

	return swap, nil
}

func (s *Store) DeleteSwap(ctx context.Context, id string) error {
	s.begin()
	err := s.client.DeleteSwap(ctx, id)

	return s.finish(err, func() {
		match := func(sw api.SwapRequest) bool { return sw.ID == id }
		s.sent = slices.DeleteFunc(s.sent, match)
		s.received = slices.DeleteFunc(s.received, match)
		s.completed = slices.DeleteFunc(s.completed, match)
		delete(s.feedback, id)
	})
}

// mergeSwap places a swap into the list matching the caller's side of it. When the
// caller is unknown only swaps already cached are refreshed.
func (s *Store) mergeSwap(swap api.SwapRequest) {
	id := func(sw api.SwapRequest) string { return sw.ID }

	switch {
	case s.me != nil && swap.RequesterID == s.me.ID:
		s.sent = upsert(s.sent, swap, id)
	case s.me != nil && swap.RecipientID == s.me.ID:
		s.received = upsert(s.received, swap, id)
	default:
		s.sent = replace(s.sent, swap, id)
		s.received = replace(s.received, swap, id)
	}

	if swap.Status == swapStatusCompleted {
		s.completed = upsert(s.completed, swap, id)
	}
}

func (s *Store) LoadFeedback(ctx context.Context, swapID string) error {
	s.begin()
	list, err := s.client.SwapFeedback(ctx, swapID)

	return s.finish(err, func() { s.feedback[swapID] = list })
}

func (s *Store) SubmitFeedback(ctx context.Context, swapID string, req api.SubmitFeedbackRequest) (*api.Feedback, error) {
	s.begin()
	fb, err := s.client.SubmitFeedback(ctx, swapID, req)

	if err := s.finish(err, func() {
		s.feedback[swapID] = upsert(s.feedback[swapID], *fb, func(f api.Feedback) string { return f.ID })
	}); err != nil {
		return nil, err
	}

	return fb, nil
}

// upsert replaces the element with the same key in place or prepends item.
func upsert[T any](list []T, item T, key func(T) string) []T {
	if idx := slices.IndexFunc(list, func(v T) bool { return key(v) == key(item) }); idx >= 0 {
		list[idx] = item
		return list
	}

	return append([]T{item}, list...)
}

func replace[T any](list []T, item T, key func(T) string) []T {
	if idx := slices.IndexFunc(list, func(v T) bool { return key(v) == key(item) }); idx >= 0 {
		list[idx] = item
	}

	return list
}
