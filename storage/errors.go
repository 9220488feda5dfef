package storage

import "errors"

var ErrAreaNotFound = errors.New("area not found in storage")
var ErrSubmissionNotFound = errors.New("submission not found in storage")
var ErrSubmissionNotPending = errors.New("submission was already graded or rejected")
var ErrResetTooLarge = errors.New("too many items for a single reset transaction")
