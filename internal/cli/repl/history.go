package repl

import (
	"os"
	"path/filepath"
	"strings"
)

const defaultHistorySize = 1000

// History keeps the interactive session's command recall buffer and
// persists it across sessions at ~/.gravsweep/history.
type History struct {
	entries []string
	maxSize int
	file    string
}

func NewHistory() *History {
	homeDir, _ := os.UserHomeDir()
	return &History{
		maxSize: defaultHistorySize,
		file:    filepath.Join(homeDir, ".gravsweep", "history"),
	}
}

// Add records a command. Blank input and immediate repeats of the
// previous command are dropped, matching shell history behavior.
func (h *History) Add(cmd string) {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == cmd {
		return
	}
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.maxSize {
		h.entries = h.entries[len(h.entries)-h.maxSize:]
	}
}

// Get returns the entry at index, counting back from the most recent
// (0 = last command). Out-of-range indexes return "".
func (h *History) Get(index int) string {
	if index < 0 || index >= len(h.entries) {
		return ""
	}
	return h.entries[len(h.entries)-1-index]
}

func (h *History) Len() int {
	return len(h.entries)
}

// Load reads the persisted history file. A missing file is not an
// error; the session just starts with an empty buffer.
func (h *History) Load() error {
	data, err := os.ReadFile(h.file)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, line := range strings.Split(string(data), "\n") {
		h.Add(line)
	}
	return nil
}

// Save writes the buffer back to the history file, creating the
// ~/.gravsweep directory on first use.
func (h *History) Save() error {
	if err := os.MkdirAll(filepath.Dir(h.file), 0700); err != nil {
		return err
	}
	if len(h.entries) == 0 {
		return os.WriteFile(h.file, nil, 0600)
	}
	data := strings.Join(h.entries, "\n") + "\n"
	return os.WriteFile(h.file, []byte(data), 0600)
}
