package cmd

import (
	"fmt"
	"io"

	mdwerror "github.com/msto63/janitor/foundation/core/error"
	"github.com/msto63/janitor/foundation/core/errors"
)

// reportError writes err to w, tagged with its error code and followed by a
// hint when one applies
func reportError(w io.Writer, err error) {
	code := mdwerror.GetCode(err)
	if code == mdwerror.CodeUnknown {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}

	fmt.Fprintf(w, "Error [%s]: %v\n", code, err)
	if hint := errorHint(err, code); hint != "" {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}

func errorHint(err error, code mdwerror.Code) string {
	switch {
	case errors.IsConfigError(err):
		return "use one of the accepted values, in the config file or on the command line"
	case code == mdwerror.CodeNotFound && errors.IsModuleError(err, errors.ModuleConfig):
		return "define the profile under [profiles.<name>] or use default, ascii or identifier"
	case code == mdwerror.CodeNotFound && errors.IsModuleError(err, errors.ModuleTablestore):
		if errors.ExtractOperation(err) == "open" {
			return "check the --db path or sqlite.path in the config file"
		}
		return "list the tables with 'janitor sqlite tables --db <path>'"
	case code.IsRetryable():
		return "the storage operation may succeed when retried"
	}
	return ""
}
