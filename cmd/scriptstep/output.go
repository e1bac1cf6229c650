package main

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	infoColor    = color.New(color.FgBlue)
	warningColor = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
	failureColor = color.New(color.FgRed)
)

// setupColor disables colors when requested by flag or configuration
func setupColor(ctx *Context, enabled bool) {
	if ctx.NoColor || !enabled {
		color.NoColor = true
	}
}

// info prints progress messages to stderr in verbose mode
func info(ctx *Context, format string, args ...any) {
	if !ctx.Verbose || ctx.Quiet {
		return
	}

	infoColor.Fprintln(ctx.Stderr, fmt.Sprintf(format, args...))
}

// warn prints warnings to stderr unless quiet
func warn(ctx *Context, format string, args ...any) {
	if ctx.Quiet {
		return
	}

	warningColor.Fprintln(ctx.Stderr, fmt.Sprintf(format, args...))
}

// success prints a summary to stderr unless quiet
func success(ctx *Context, format string, args ...any) {
	if ctx.Quiet {
		return
	}

	successColor.Fprintln(ctx.Stderr, fmt.Sprintf(format, args...))
}

// failure prints failures to stderr unless quiet
func failure(ctx *Context, format string, args ...any) {
	if ctx.Quiet {
		return
	}

	failureColor.Fprintln(ctx.Stderr, fmt.Sprintf(format, args...))
}
