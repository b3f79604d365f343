package iostreams

import "fmt"

// PrintSuccess prints a success message to stderr with a checkmark icon.
// With colors: ✓ message
// Without colors: [ok] message
func (s *IOStreams) PrintSuccess(format string, args ...any) error {
	cs := s.ColorScheme()
	msg := fmt.Sprintf(format, args...)
	_, err := fmt.Fprintln(s.ErrOut, cs.SuccessIconWithColor(msg))
	return err
}

// PrintWarning prints a warning message to stderr with an exclamation icon.
// With colors: ! message
// Without colors: [warn] message
func (s *IOStreams) PrintWarning(format string, args ...any) error {
	cs := s.ColorScheme()
	msg := fmt.Sprintf(format, args...)
	_, err := fmt.Fprintln(s.ErrOut, cs.WarningIconWithColor(msg))
	return err
}

// PrintInfo prints an informational message to stderr with an info icon.
// With colors: ℹ message
// Without colors: [info] message
func (s *IOStreams) PrintInfo(format string, args ...any) error {
	cs := s.ColorScheme()
	msg := fmt.Sprintf(format, args...)
	_, err := fmt.Fprintln(s.ErrOut, cs.InfoIconWithColor(msg))
	return err
}

// PrintFailure prints an error message to stderr with an X icon.
// With colors: ✗ message
// Without colors: [error] message
func (s *IOStreams) PrintFailure(format string, args ...any) error {
	cs := s.ColorScheme()
	msg := fmt.Sprintf(format, args...)
	_, err := fmt.Fprintln(s.ErrOut, cs.FailureIconWithColor(msg))
	return err
}
