package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrUnknownCardStatus is returned when a status string matches no CardStatus.
var ErrUnknownCardStatus = errors.New("card status not found")

var cardColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// CardStatus is the workflow state of a card. The value is the storage form.
type CardStatus string

const (
	CardStatusToDo       CardStatus = "TO_DO"
	CardStatusInProgress CardStatus = "IN_PROGRESS"
	CardStatusDone       CardStatus = "DONE"
)

// CardStatuses lists every status in workflow order.
var CardStatuses = []CardStatus{CardStatusToDo, CardStatusInProgress, CardStatusDone}

// DisplayName returns the human readable label, e.g. "In Progress".
func (s CardStatus) DisplayName() string {
	switch s {
	case CardStatusToDo:
		return "To Do"
	case CardStatusInProgress:
		return "In Progress"
	case CardStatusDone:
		return "Done"
	default:
		return string(s)
	}
}

// IsValid checks if the status is one of the known values.
func (s CardStatus) IsValid() bool {
	switch s {
	case CardStatusToDo, CardStatusInProgress, CardStatusDone:
		return true
	default:
		return false
	}
}

// ParseCardStatus matches s against the status enumeration ignoring case,
// spaces and underscores, so "in progress", "IN_PROGRESS" and "InProgress" are equal.
func ParseCardStatus(s string) (CardStatus, error) {
	needle := normalizeStatus(s)
	for _, status := range CardStatuses {
		if needle == normalizeStatus(string(status)) || needle == normalizeStatus(status.DisplayName()) {
			return status, nil
		}
	}

	return "", errors.Wrapf(ErrUnknownCardStatus, "status %q", s)
}

func normalizeStatus(s string) string {
	replacer := strings.NewReplacer(" ", "", "_", "", "-", "")

	return strings.ToLower(replacer.Replace(strings.TrimSpace(s)))
}

// IsValidCardColor reports whether color is a '#' followed by exactly six hex digits.
func IsValidCardColor(color string) bool {
	return cardColorPattern.MatchString(color)
}

// Card is the tracked work item. It is owned by exactly one user.
type Card struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description *string
	Color       *string
	Status      CardStatus
	CreatedAt   time.Time // Set once by storage, immutable afterwards.
	UpdatedAt   time.Time
}
