package service

import "errors"

// ErrClientClosed indicates the client has been closed.
var ErrClientClosed = errors.New("todoer: client is closed")

// ErrEmptyContent indicates a task was created or updated without content.
var ErrEmptyContent = errors.New("todoer: task content is empty")

// ErrEmptyName indicates a project, label, or section without a name.
var ErrEmptyName = errors.New("todoer: name is empty")

// ErrLabelNotFound indicates a referenced label id does not exist.
var ErrLabelNotFound = errors.New("todoer: label not found")
