// Package sms parses single-shot report commands received over SMS.
package sms

import (
	"errors"
	"strings"
)

// Help is the canonical usage string relayed back to senders whose message
// did not match the command format.
const Help = "To report, send: REPORT <category> <urgency> <location> <description>. " +
	"Example: REPORT GBV CRITICAL Maiduguri Woman attacked at market."

const keyword = "REPORT"

// ErrUsage marks a message body that does not match the command format.
// No report is produced; the caller relays Help back to the sender.
var ErrUsage = errors.New("message does not match the report command format")

// Command holds the verbatim fields extracted from a message body. Category
// and Urgency are raw tokens; enumeration mapping is the normalizer's job.
type Command struct {
	Category    string
	Urgency     string
	Location    string
	Description string
}

// Parse extracts a report command from a free-text message body.
// Expected shape: the REPORT keyword (case-insensitive), three
// whitespace-delimited tokens, then the description as the untouched
// remainder of the message.
func Parse(body string) (Command, error) {
	rest := strings.TrimSpace(body)

	kw, rest := popToken(rest)
	if !strings.EqualFold(kw, keyword) {
		return Command{}, ErrUsage
	}

	var cmd Command
	cmd.Category, rest = popToken(rest)
	cmd.Urgency, rest = popToken(rest)
	cmd.Location, rest = popToken(rest)
	cmd.Description = strings.TrimSpace(rest)

	if cmd.Category == "" || cmd.Urgency == "" || cmd.Location == "" || cmd.Description == "" {
		return Command{}, ErrUsage
	}

	return cmd, nil
}

// popToken returns the first whitespace-delimited token and the remainder.
func popToken(s string) (string, string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ""
	}
	if i := strings.IndexFunc(s, isSpace); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
