package console

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// Exit formats msg and wraps it in a cli exit error so a failed pmic
// command sets the process exit code.
func Exit(code int, msg string, args ...interface{}) cli.ExitCoder {
	return cli.Exit(fmt.Sprintf(msg, args...), code)
}
