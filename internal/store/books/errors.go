package books

import "errors"

var ErrNotFound = errors.New("not found")
