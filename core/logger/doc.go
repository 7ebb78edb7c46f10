// Package logger configures the diagnostic log shared by the shell.
//
// Diagnostics are separate from what the user sees: builtins and the
// dispatcher print their own messages to the shell's stderr, the logger only
// records what the core did and is silent below warn by default.
package logger
