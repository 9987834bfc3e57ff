package service

import "errors"

var ErrNoFileManager = errors.New("no journey store configured")
