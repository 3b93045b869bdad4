package battle

import "errors"

var ErrAlreadyInBattle = errors.New("participant already in a battle")
var ErrSelfChallenge = errors.New("cannot challenge yourself")
var ErrInsufficientCards = errors.New("not enough cards to battle")
var ErrNoPendingBattle = errors.New("no pending battle")
var ErrDraftTimeout = errors.New("draft selection timed out")
var ErrRoundTimeout = errors.New("round selection timed out")
var ErrInvalidSelection = errors.New("invalid selection")
var ErrUnknownCard = errors.New("unknown card")
var ErrBadTransition = errors.New("invalid status transition")
