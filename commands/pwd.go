package commands

import (
	"fmt"
)

// Pwd implements the pwd builtin, it prints the directory the shell tracks
// rather than asking the OS.
func Pwd(s *Shell, args []string) int {
	cmd := &SimpleCommand{
		Use:   "pwd",
		Short: "Print the name of the current working directory.",
	}

	return cmd.Run(s, args, func() int {
		if len(cmd.Args()) > 0 {
			s.printErr(fmt.Errorf("%s: too many arguments", args[0]))
			return 1
		}

		fmt.Fprintln(s.Stdout(), s.Navigator.Cwd())
		return 0
	})
}
