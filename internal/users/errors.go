package users

import "errors"

// ErrUnknownRole is returned by ParseRole for labels outside Roles().
var ErrUnknownRole = errors.New("unknown role")
