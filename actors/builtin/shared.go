package builtin

import (
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/SenderWallet/sender-ft-lockup/actors/runtime"
)

///// Code shared by the built-in actors. /////

// Aborts with an ErrIllegalArgument if predicate is not true.
func RequireParam(rt runtime.Runtime, predicate bool, msg string, args ...interface{}) {
	if !predicate {
		rt.Abortf(exitcode.ErrIllegalArgument, msg, args...)
	}
}

// Aborts with an ErrIllegalState if predicate is not true.
func RequireState(rt runtime.Runtime, predicate bool, msg string, args ...interface{}) {
	if !predicate {
		rt.Abortf(exitcode.ErrIllegalState, msg, args...)
	}
}

// RequireNoErr aborts with a code and message if err is non-nil.
// If the error carries its own exit code (via exitcode.Wrapf), that code takes
// precedence over the default supplied here.
func RequireNoErr(rt runtime.Runtime, err error, defaultExitCode exitcode.ExitCode, msg string, args ...interface{}) {
	if err != nil {
		code := exitcode.Unwrap(err, defaultExitCode)
		args = append(args, err)
		rt.Abortf(code, msg+": %s", args...)
	}
}
