package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

var errUsage = errors.New("usage")

// idArg parses args[i] as a positive id, printing usage on failure.
func idArg(w io.Writer, args []string, i int, usage string) (uint64, error) {
	if len(args) <= i {
		fmt.Fprintln(w, "Usage:", usage)
		return 0, errUsage
	}
	id, err := strconv.ParseUint(args[i], 10, 64)
	if err != nil || id == 0 {
		fmt.Fprintf(w, "Invalid id %q\n", args[i])
		return 0, errUsage
	}
	return id, nil
}

// optionalID is like idArg but yields 0 when args[i] is absent.
func optionalID(w io.Writer, args []string, i int, usage string) (uint64, error) {
	if len(args) <= i {
		return 0, nil
	}
	return idArg(w, args, i, usage)
}
