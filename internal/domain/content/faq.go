package content

import (
	"fmt"
	"strings"
	"time"

	"sdc/internal/shared/biztime"
	"sdc/internal/shared/id"
)

// FAQ represents a question and answer pair
type FAQ struct {
	id        uint
	sid       string // Stripe-style ID: faq_xxx
	question  string
	answer    string
	createdAt time.Time
	updatedAt time.Time
}

func NewFAQ(question, answer string) (*FAQ, error) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)

	if question == "" {
		return nil, fmt.Errorf("question is required")
	}
	if answer == "" {
		return nil, fmt.Errorf("answer is required")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixFAQ, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := biztime.NowUTC()
	return &FAQ{
		sid:       sid,
		question:  question,
		answer:    answer,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructFAQ reconstructs a FAQ from the persistence layer
func ReconstructFAQ(
	id uint,
	sid string,
	question string,
	answer string,
	createdAt, updatedAt time.Time,
) *FAQ {
	return &FAQ{
		id:        id,
		sid:       sid,
		question:  question,
		answer:    answer,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (f *FAQ) ID() uint             { return f.id }
func (f *FAQ) SID() string          { return f.sid }
func (f *FAQ) Question() string     { return f.question }
func (f *FAQ) Answer() string       { return f.answer }
func (f *FAQ) CreatedAt() time.Time { return f.createdAt }
func (f *FAQ) UpdatedAt() time.Time { return f.updatedAt }

func (f *FAQ) Update(question, answer string) error {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)

	if question == "" {
		return fmt.Errorf("question is required")
	}
	if answer == "" {
		return fmt.Errorf("answer is required")
	}

	f.question = question
	f.answer = answer
	f.updatedAt = biztime.NowUTC()
	return nil
}
