package polls

import (
	"log"
	"strings"

	"github.com/shi-vam7902/Quick-poll-backend/internal/models"
)

func validateQuestion(question string) error {
	if strings.TrimSpace(question) == "" {
		return ErrInvalidPoll
	}
	return nil
}

func validateOptions(options []string) error {
	if len(options) < 2 {
		return ErrInvalidPoll
	}
	seen := make(map[string]bool, len(options))
	for _, opt := range options {
		if strings.TrimSpace(opt) == "" || seen[opt] {
			return ErrInvalidPoll
		}
		seen[opt] = true
	}
	return nil
}

// Service orchestrates the persistent poll store and the volatile vote tally.
// It owns the tally exclusively; nothing else mutates it.
type Service struct {
	store Store
	tally *Tally
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
		tally: NewTally(),
	}
}

// Results is the aggregate returned for a poll's results query.
type Results struct {
	PollID     string         `json:"pollId"`
	Question   string         `json:"question"`
	Options    []string       `json:"options"`
	Active     bool           `json:"active"`
	Results    map[string]int `json:"results"`
	TotalVotes int            `json:"totalVotes"`
}

func (s *Service) ListAll() ([]models.Poll, error) {
	return s.store.GetAll()
}

func (s *Service) ListActive() ([]models.Poll, error) {
	return s.store.GetActive()
}

func (s *Service) Get(pollID string) (*models.Poll, error) {
	return s.store.GetByID(pollID)
}

func (s *Service) Create(question string, options []string) (*models.Poll, error) {
	if err := validateQuestion(question); err != nil {
		return nil, err
	}
	if err := validateOptions(options); err != nil {
		return nil, err
	}
	return s.store.Create(question, options)
}

// Update applies a partial update. Supplied fields are re-validated, so an
// update can neither blank the question nor shrink the option set below two
// entries.
func (s *Service) Update(pollID string, fields UpdateFields) (*models.Poll, error) {
	if fields.Question != nil {
		if err := validateQuestion(*fields.Question); err != nil {
			return nil, err
		}
	}
	if fields.Options != nil {
		if err := validateOptions(fields.Options); err != nil {
			return nil, err
		}
	}
	return s.store.Update(pollID, fields)
}

// Delete removes the poll record and then its tally. Record first: a vote
// racing the delete finds no poll and fails with ErrPollNotFound instead of
// re-initializing a tally for a half-deleted poll.
func (s *Service) Delete(pollID string) error {
	deleted, err := s.store.Delete(pollID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPollNotFound
	}

	s.tally.Dispose(pollID)
	return nil
}

// Vote records one vote for option on the given poll. voterID is logged for
// traceability only; there is no one-vote-per-voter enforcement, so the same
// caller may vote any number of times.
func (s *Service) Vote(pollID, option, voterID string) error {
	poll, err := s.store.GetByID(pollID)
	if err != nil {
		return err
	}
	if !poll.Active {
		return ErrPollInactive
	}

	valid := false
	for _, opt := range poll.Options {
		if opt == option {
			valid = true
			break
		}
	}
	if !valid {
		return ErrInvalidOption
	}

	s.tally.EnsureInitialized(poll.PollID, poll.Options)
	s.tally.RecordVote(poll.PollID, option)

	log.Printf("Vote recorded: pollId=%s, option=%s, voterId=%s", poll.PollID, option, voterID)
	return nil
}

func (s *Service) Results(pollID string) (*Results, error) {
	poll, err := s.store.GetByID(pollID)
	if err != nil {
		return nil, err
	}

	s.tally.EnsureInitialized(poll.PollID, poll.Options)
	counts := s.tally.Snapshot(poll.PollID)

	total := 0
	for _, n := range counts {
		total += n
	}

	return &Results{
		PollID:     poll.PollID,
		Question:   poll.Question,
		Options:    poll.Options,
		Active:     poll.Active,
		Results:    counts,
		TotalVotes: total,
	}, nil
}
