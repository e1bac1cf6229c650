package main

import "errors"

// Sentinel errors for command operations
var (
	ErrInputFileNotExist = errors.New("input file does not exist")
	ErrStepsFailed       = errors.New("some script steps could not be decompiled")
)
