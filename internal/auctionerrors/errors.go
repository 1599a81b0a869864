package auctionerrors

import "errors"

// Not-found errors
var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrAuctionNotFound    = errors.New("auction not found")
)

// Business rule violations
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrActiveAuctionExists   = errors.New("there is already an active auction")
	ErrSubmissionNotApproved = errors.New("submission is not approved")
	ErrAuctionNotActive      = errors.New("auction is not active")
	ErrAuctionEnded          = errors.New("auction has ended")
	ErrBidTooLow             = errors.New("bid amount too low")
	ErrConcurrentBid         = errors.New("auction was updated concurrently")
)
