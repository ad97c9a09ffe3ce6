package upload

import (
	"errors"
	"fmt"
)

var ErrDuplicate = errors.New("upload: file is already in the list")

// TargetError means no write location could be obtained.
type TargetError struct {
	Err error
}

func (e *TargetError) Error() string { return fmt.Sprintf("acquire upload target: %v", e.Err) }
func (e *TargetError) Unwrap() error { return e.Err }

// TransferError means the bytes did not reach the write location.
type TransferError struct {
	Key string
	Err error
}

func (e *TransferError) Error() string { return fmt.Sprintf("transfer %s: %v", e.Key, e.Err) }
func (e *TransferError) Unwrap() error { return e.Err }

// RegisterError means the bytes were stored under Key but the catalog
// entry was not created. Nothing deletes the stored object.
type RegisterError struct {
	Key string
	Err error
}

func (e *RegisterError) Error() string { return fmt.Sprintf("register %s: %v", e.Key, e.Err) }
func (e *RegisterError) Unwrap() error { return e.Err }
