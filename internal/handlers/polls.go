package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shi-vam7902/Quick-poll-backend/internal/models"
	"github.com/shi-vam7902/Quick-poll-backend/internal/polls"
)

type PollHandler struct {
	service *polls.Service
}

func NewPollHandler(service *polls.Service) *PollHandler {
	return &PollHandler{service: service}
}

// GetPolls returns every poll, newest first (ADMIN)
func (h *PollHandler) GetPolls(c *gin.Context) {
	pollList, err := h.service.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch polls"})
		return
	}

	// If no polls, return empty array not null
	if pollList == nil {
		pollList = []models.Poll{}
	}

	c.JSON(http.StatusOK, pollList)
}

// GetActivePolls returns polls open for voting (public)
func (h *PollHandler) GetActivePolls(c *gin.Context) {
	pollList, err := h.service.ListActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch active polls"})
		return
	}

	if pollList == nil {
		pollList = []models.Poll{}
	}

	c.JSON(http.StatusOK, pollList)
}

// GetPoll returns a single poll by its poll ID
func (h *PollHandler) GetPoll(c *gin.Context) {
	poll, err := h.service.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, polls.ErrPollNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Poll not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch poll"})
		return
	}

	c.JSON(http.StatusOK, poll)
}

// CreatePoll creates a new poll (ADMIN)
func (h *PollHandler) CreatePoll(c *gin.Context) {
	var input models.CreatePollRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid poll data. Question and at least 2 options required."})
		return
	}

	poll, err := h.service.Create(input.Question, input.Options)
	if err != nil {
		if errors.Is(err, polls.ErrInvalidPoll) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid poll data. Question and at least 2 options required."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create poll"})
		return
	}

	c.JSON(http.StatusCreated, poll)
}

// UpdatePoll applies a partial update to a poll (ADMIN)
func (h *PollHandler) UpdatePoll(c *gin.Context) {
	var input models.UpdatePollRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	poll, err := h.service.Update(c.Param("id"), polls.UpdateFields{
		Question: input.Question,
		Options:  input.Options,
		Active:   input.Active,
	})
	if err != nil {
		switch {
		case errors.Is(err, polls.ErrPollNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Poll not found"})
		case errors.Is(err, polls.ErrInvalidPoll):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid poll data. Question and at least 2 options required."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update poll"})
		}
		return
	}

	c.JSON(http.StatusOK, poll)
}

// DeletePoll removes a poll and its vote tally (ADMIN)
func (h *PollHandler) DeletePoll(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		if errors.Is(err, polls.ErrPollNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Poll not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete poll"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Poll deleted successfully"})
}

// VotePoll records a vote on an active poll (public)
func (h *PollHandler) VotePoll(c *gin.Context) {
	var input models.VoteRequest
	if err := c.ShouldBindJSON(&input); err != nil || input.PollID == "" || input.Option == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Poll ID and option are required"})
		return
	}

	// Anonymous voting: tag the vote with a generated voter ID
	voterID := "user_" + uuid.NewString()

	if err := h.service.Vote(input.PollID, input.Option, voterID); err != nil {
		switch {
		case errors.Is(err, polls.ErrPollNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Poll not found"})
		case errors.Is(err, polls.ErrPollInactive):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Poll is not active"})
		case errors.Is(err, polls.ErrInvalidOption):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid option"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record vote"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vote recorded successfully"})
}

// GetResults returns the per-option counts for a poll (public)
func (h *PollHandler) GetResults(c *gin.Context) {
	pollID := c.Query("pollId")
	if pollID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Poll ID is required"})
		return
	}

	results, err := h.service.Results(pollID)
	if err != nil {
		if errors.Is(err, polls.ErrPollNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Poll not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch results"})
		return
	}

	c.JSON(http.StatusOK, results)
}
