package commands

import (
	"fmt"
	"sort"
	"strconv"
)

// AllBuiltins holds a list of all registered shell builtins
var AllBuiltins = make(map[string]ShellBuiltin)

type ShellBuiltin interface {
	Main(s *Shell, args []string) int
}

type ShellBuiltinFunc func(s *Shell, args []string) int

func (f ShellBuiltinFunc) Main(s *Shell, args []string) int {
	return f(s, args)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

// BuiltinNames returns the sorted names of all builtins.
func BuiltinNames() []string {
	var names []string
	for k := range AllBuiltins {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Cd is the cd shell builtin
func Cd(s *Shell, args []string) int {
	cmd := &SimpleCommand{
		Use:   "cd [dir | -]",
		Short: "Change the shell working directory, HOME by default.",
	}

	return cmd.Run(s, args, func() int {
		var err error
		switch rest := cmd.Args(); len(rest) {
		case 0:
			err = s.Navigator.Change("")
		case 1:
			if rest[0] != "-" {
				err = s.Navigator.Change(rest[0])
				break
			}

			var dir string
			if dir, err = s.Navigator.Previous(); err == nil {
				fmt.Fprintln(s.Stdout(), dir)
			}
		default:
			err = fmt.Errorf("%s: too many arguments", args[0])
		}

		if err != nil {
			s.printErr(err)
			return 1
		}
		return 0
	})
}

// Exit quits the shell with the given status, or the status of the last
// command.
func Exit(s *Shell, args []string) int {
	cmd := &SimpleCommand{
		Use:   "exit [n]",
		Short: "Exit the shell with status n, or the status of the last command.",
	}

	return cmd.Run(s, args, func() int {
		code := s.lastRet
		switch rest := cmd.Args(); len(rest) {
		case 0:
		case 1:
			n, err := strconv.Atoi(rest[0])
			if err != nil {
				s.printErr(fmt.Errorf("%s: %s: numeric argument required", args[0], rest[0]))
				code = exitSyntaxError
				break
			}
			code = n & 0xff
		default:
			s.printErr(fmt.Errorf("%s: too many arguments", args[0]))
			return 1
		}

		s.Quit = true
		s.exitCode = code
		return code
	})
}

// History lists recorded lines with their numbers.
func History(s *Shell, args []string) int {
	cmd := &SimpleCommand{
		Use:   "history [n]",
		Short: "Display the history list with line numbers, the last n lines if n is given.",
	}

	return cmd.Run(s, args, func() int {
		entries := s.History.Snapshot()

		switch rest := cmd.Args(); len(rest) {
		case 0:
		case 1:
			n, err := strconv.Atoi(rest[0])
			if err != nil || n < 0 {
				s.printErr(fmt.Errorf("%s: %s: numeric argument required", args[0], rest[0]))
				return 1
			}
			entries = s.History.Tail(n)
		default:
			s.printErr(fmt.Errorf("%s: too many arguments", args[0]))
			return 1
		}

		w := s.Stdout()
		for _, entry := range entries {
			fmt.Fprintf(w, "%5d  %s\n", entry.Index, entry.Text)
		}
		return 0
	})
}

// Help lists the builtins, or shows the usage of the named ones.
func Help(s *Shell, args []string) int {
	cmd := &SimpleCommand{
		Use:   "help [name ...]",
		Short: "Display information about builtin commands.",
	}

	return cmd.Run(s, args, func() int {
		if topics := cmd.Args(); len(topics) > 0 {
			ret := 0
			for _, name := range topics {
				builtin, ok := AllBuiltins[name]
				if !ok {
					s.printErr(fmt.Errorf("%s: no help topics match `%s'", args[0], name))
					ret = 1
					continue
				}
				if code := builtin.Main(s, []string{name, "--help"}); code != 0 {
					ret = code
				}
			}
			return ret
		}

		w := s.Stdout()
		fmt.Fprintf(w, "%s, a small shell with command history.\n", ShellName)
		fmt.Fprintln(w, "These shell commands are defined internally.  Type `help' to see this list.")
		fmt.Fprintln(w, "Type `help name' to find out more about the function `name'.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "History expansion: !! (previous line), !n (line n), !-n (n lines back), !prefix (latest line starting with prefix).")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Builtins:")
		fmt.Fprintln(w)
		for _, name := range BuiltinNames() {
			fmt.Fprintln(w, name)
		}

		return 0
	})
}

func init() {
	AllBuiltins["cd"] = ShellBuiltinFunc(Cd)
	AllBuiltins["echo"] = ShellBuiltinFunc(Echo)
	AllBuiltins["exit"] = ShellBuiltinFunc(Exit)
	AllBuiltins["help"] = ShellBuiltinFunc(Help)
	AllBuiltins["history"] = ShellBuiltinFunc(History)
	AllBuiltins["pwd"] = ShellBuiltinFunc(Pwd)
}
