package chat

// History is the ordered message sequence of one session. It is append-only:
// the manager never reorders or edits entries in place, only full clearing
// resets it.
type History []*Message

// Append returns the history extended with msg
func (h History) Append(msg *Message) History {
	return append(h, msg)
}

// Persistable returns the entries worth writing to storage. Synthetic welcome
// greetings are excluded so they never clobber a previous session's backup.
func (h History) Persistable() History {
	var out History
	for _, m := range h {
		if m.IsWelcome {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Last returns at most n trailing entries
func (h History) Last(n int) History {
	if n <= 0 || len(h) <= n {
		return h
	}
	return h[len(h)-n:]
}
