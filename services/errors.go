package services

import "errors"

var (
	// ErrNotFound means the referenced event or notification is gone.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyResolved means the request notification was already catered.
	ErrAlreadyResolved = errors.New("volunteering request has already been resolved")
	// ErrNotAuthorized means the acting user is not the addressee of the
	// request (or tried to volunteer for their own event).
	ErrNotAuthorized = errors.New("you are not allowed to perform this action")
	// ErrRosterFull means the event already has the required number of volunteers.
	ErrRosterFull = errors.New("this event already has all the volunteers it needs")
	// ErrAlreadyVolunteer means the requester is already on the roster.
	ErrAlreadyVolunteer = errors.New("this user is already a volunteer for this event")
	// ErrEmailTaken means another account uses the same email.
	ErrEmailTaken = errors.New("a user is already registered with this email")
	// ErrInvalidToken means the verification token matched no account.
	ErrInvalidToken = errors.New("invalid verification token")
)
