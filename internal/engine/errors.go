package engine

import (
	"fmt"
	"strings"
)

// ParamKind identifies one violated construction constraint.
type ParamKind int

const (
	KindBound ParamKind = iota
	KindUnitSize
	KindReach
	KindDt
	KindStepsPerFrame
	KindTempOrInjectRate
	KindParticleOutOfBounds
)

func (k ParamKind) String() string {
	switch k {
	case KindBound:
		return "boundary extent below minimum"
	case KindUnitSize:
		return "grid unit size must be positive"
	case KindReach:
		return "grid reach must be at least 1"
	case KindDt:
		return "timestep must be positive"
	case KindStepsPerFrame:
		return "steps per frame must be at least 1"
	case KindTempOrInjectRate:
		return "target temperature and inject rate must be non-negative"
	case KindParticleOutOfBounds:
		return "one or more particles lie outside the boundary"
	default:
		return fmt.Sprintf("unknown parameter error (%d)", int(k))
	}
}

// InvalidParamError aggregates every constraint a Builder.Build call
// violated; validation is exhaustive rather than fail-fast so the caller
// can report all problems in one pass.
type InvalidParamError struct {
	Kinds []ParamKind
}

func (e *InvalidParamError) Error() string {
	msgs := make([]string, len(e.Kinds))
	for i, k := range e.Kinds {
		msgs[i] = k.String()
	}
	return "invalid simulation parameters: " + strings.Join(msgs, "; ")
}

// Has reports whether the given kind is among the violations.
func (e *InvalidParamError) Has(kind ParamKind) bool {
	for _, k := range e.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}
