package commands

import (
	"errors"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
	"foodbridge/internal/pkg/guard"
)

var ErrRateDonationCommandIsNotConstructed = errors.New(
	"RateDonationCommand must be created via NewRateDonationCommand constructor",
)

// RateDonationCommand represents an organization operator scoring a
// completed delivery. Re-rating the same donation overwrites the previous
// score and review.
type RateDonationCommand struct { //nolint:recvcheck //using for validation
	donationID kernel.UUID
	operatorID kernel.UUID
	score      int
	review     string

	guard guard.ConstructorGuard
}

// NewRateDonationCommand creates a command rating a delivered donation.
// The score must lie within the donation rating range; the review may be
// empty.
func NewRateDonationCommand(
	donationID kernel.UUID,
	operatorID kernel.UUID,
	score int,
	review string,
) (RateDonationCommand, error) {
	command := RateDonationCommand{
		review: review,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDonationID(donationID),
		command.setOperatorID(operatorID),
		command.setScore(score),
	); err != nil {
		return RateDonationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RateDonationCommand) Validate() error {
	return c.guard.Validate(ErrRateDonationCommandIsNotConstructed)
}

// DonationID returns the donation being rated.
func (c RateDonationCommand) DonationID() kernel.UUID {
	return c.donationID
}

// OperatorID returns the rating operator.
func (c RateDonationCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

// Score returns the rating score.
func (c RateDonationCommand) Score() int {
	return c.score
}

// Review returns the free-text feedback, possibly empty.
func (c RateDonationCommand) Review() string {
	return c.review
}

func (c *RateDonationCommand) setDonationID(donationID kernel.UUID) error {
	if err := donationID.Validate(); err != nil {
		return err
	}

	c.donationID = donationID
	return nil
}

func (c *RateDonationCommand) setOperatorID(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}

	c.operatorID = operatorID
	return nil
}

func (c *RateDonationCommand) setScore(score int) error {
	if score < donation.RatingMin || score > donation.RatingMax {
		return errs.NewValueIsOutOfRangeError("score", score, donation.RatingMin, donation.RatingMax)
	}

	c.score = score
	return nil
}
