package script

import (
	"fmt"

	"github.com/shibukawa/scriptstep"
	"github.com/shibukawa/scriptstep/catalog"
	"github.com/shibukawa/scriptstep/parameter"
	"github.com/shibukawa/scriptstep/steps"
)

// Dispatcher routes step kinds to their decompilers
type Dispatcher struct {
	insertText             steps.Decompiler
	insertCalculatedResult steps.Decompiler
	insertCurrentTime      steps.Decompiler
}

// NewDispatcher creates a Dispatcher whose decompilers share parser
func NewDispatcher(parser *parameter.Parser) *Dispatcher {
	return &Dispatcher{
		insertText:             steps.NewInsertText(parser),
		insertCalculatedResult: steps.NewInsertCalculatedResult(parser),
		insertCurrentTime:      steps.NewInsertCurrentTime(parser),
	}
}

// Decompiler returns the decompiler for kind, or ErrUnsupportedStep
func (d *Dispatcher) Decompiler(kind catalog.StepKind) (steps.Decompiler, error) {
	switch kind {
	case catalog.InsertText:
		return d.insertText, nil
	case catalog.InsertCalculatedResult:
		return d.insertCalculatedResult, nil
	case catalog.InsertCurrentTime:
		return d.insertCurrentTime, nil
	default:
		return nil, fmt.Errorf("%w: %s", scriptstep.ErrUnsupportedStep, kind)
	}
}

// Supported reports whether kind has a decompiler
func (d *Dispatcher) Supported(kind catalog.StepKind) bool {
	_, err := d.Decompiler(kind)
	return err == nil
}
