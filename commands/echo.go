package commands

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	unescapeSequence = regexp.MustCompile(`\\(0[0-7]{0,3}|x[0-9a-fA-F]{1,2}|[nrt\\bafv])`)
	unescapeSimple   = map[byte]string{
		'n':  "\n", // newline
		'r':  "\r", // carriage return
		't':  "\t", // horizontal tab
		'\\': `\`,  // backslash literal
		'b':  "\b", // backspace
		'a':  "\a", // alert
		'f':  "\f", // form feed
		'v':  "\v", // vertical tab
	}
)

// unescape expands echo -e sequences in a single left to right pass so an
// escaped backslash never starts another sequence. Numeric escapes produce
// one raw byte.
func unescape(s string) string {
	return unescapeSequence.ReplaceAllStringFunc(s, func(seq string) string {
		switch body := seq[1:]; body[0] {
		case '0':
			return numericEscape(body[1:], 8)
		case 'x':
			return numericEscape(body[1:], 16)
		default:
			return unescapeSimple[body[0]]
		}
	})
}

func numericEscape(digits string, base int) string {
	if digits == "" {
		return "\x00"
	}
	out, err := strconv.ParseUint(digits, base, 16)
	if err != nil {
		return digits
	}
	return string([]byte{byte(out)})
}

// Echo writes its arguments separated by spaces.
func Echo(s *Shell, args []string) int {
	cmd := &SimpleCommand{
		Use:   "echo [-en] [ARG] ...",
		Short: "Display a line of text.",
	}

	opt := cmd.Flags()
	escaped := opt.Bool('e', "interpret backslash escapes")
	noNewline := opt.Bool('n', "do not output the trailing newline")

	return cmd.Run(s, args, func() int {
		w := s.Stdout()
		for i, arg := range cmd.Args() {
			if i > 0 {
				fmt.Fprint(w, " ")
			}

			if *escaped {
				arg = unescape(arg)
			}

			fmt.Fprint(w, arg)
		}

		if !*noNewline {
			fmt.Fprintln(w)
		}

		return 0
	})
}
