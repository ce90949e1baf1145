package repo_errors

import "errors"

var ErrNotFound = errors.New("record not found")
