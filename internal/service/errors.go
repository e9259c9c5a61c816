package service

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrPasswordLength         = errors.New("password must be between 8 and 100 bytes")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrSessionCreateFailed    = errors.New("failed to create login session")
	ErrSessionNotFound        = errors.New("session not found or expired")
	ErrUserNotFound           = errors.New("user not found")

	ErrSelfLike        = errors.New("cannot like yourself")
	ErrSelfPass        = errors.New("cannot pass on yourself")
	ErrSelfBlock       = errors.New("cannot block yourself")
	ErrSelfReport      = errors.New("cannot report yourself")
	ErrSelfCollaborate = errors.New("cannot collaborate with yourself")
	ErrBlocked         = errors.New("interaction not permitted")
	ErrAlreadyLiked    = errors.New("already liked this user")
	ErrMatchNotFound   = errors.New("match not found")
	ErrMatchInactive   = errors.New("this match is no longer active")
	ErrNotParticipant  = errors.New("not a participant of this resource")
	ErrRateLimited     = errors.New("too many requests, slow down")
	ErrBlockNotFound   = errors.New("block not found")
	ErrCollabNotFound  = errors.New("collaboration not found")

	ErrNoPasswordSet = errors.New("no password set for this account")
	ErrWrongPassword = errors.New("current password is incorrect")
	ErrSamePassword  = errors.New("new password must be different from current password")
	ErrInvalidStatus = errors.New("invalid collaboration status")
)
