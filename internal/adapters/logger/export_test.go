// export_test.go exports private functions for white-box testing.
package logger

// ErrorMessages returns the messages collected from an error chain.
func ErrorMessages(err error) []string {
	entries := collectErrorEntries(err)
	msgs := make([]string, 0, len(entries))
	for _, e := range entries {
		msgs = append(msgs, e.message)
	}
	return msgs
}

// FormatMessages formats plain messages the way Error does.
func FormatMessages(msgs ...string) string {
	entries := make([]errorEntry, 0, len(msgs))
	for _, m := range msgs {
		entries = append(entries, errorEntry{message: m})
	}
	return formatErrorEntries(entries)
}
