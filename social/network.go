// SPDX-License-Identifier: MIT

package social

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/campusnet/student"
)

// ErrNilStudent indicates a nil participant.
var ErrNilStudent = errors.New("social: student is nil")

// Message is one chat message as stored in both participants' histories.
type Message struct {
	ID   uuid.UUID
	From string
	To   string
	Text string
	At   time.Time
}

// String renders the message as "<from> -> <to>: <text>".
func (m Message) String() string {
	return fmt.Sprintf("%s -> %s: %s", m.From, m.To, m.Text)
}

// Network stores friendships and chat histories keyed by student name.
type Network struct {
	mu       sync.RWMutex
	friends  map[string][]string        // insertion-ordered friend names
	isFriend map[string]map[string]bool // membership index for friends
	history  map[string][]Message
}

// NewNetwork returns an empty network.
func NewNetwork() *Network {
	return &Network{
		friends:  make(map[string][]string),
		isFriend: make(map[string]map[string]bool),
		history:  make(map[string][]Message),
	}
}

// AddFriend records a reciprocal friendship. Nil students and self-friendship
// are ignored. It reports whether anything changed.
func (n *Network) AddFriend(a, b *student.Student) bool {
	if a == nil || b == nil || a.Name == b.Name {
		return false
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	added := n.link(a.Name, b.Name)
	if n.link(b.Name, a.Name) {
		added = true
	}

	return added
}

func (n *Network) link(from, to string) bool {
	set := n.isFriend[from]
	if set == nil {
		set = make(map[string]bool)
		n.isFriend[from] = set
	}
	if set[to] {
		return false
	}
	set[to] = true
	n.friends[from] = append(n.friends[from], to)

	return true
}

// AreFriends reports whether a and b are friends.
func (n *Network) AreFriends(a, b *student.Student) bool {
	if a == nil || b == nil {
		return false
	}
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.isFriend[a.Name][b.Name]
}

// Friends returns s's friends in the order they were added.
func (n *Network) Friends(s *student.Student) []string {
	if s == nil {
		return []string{}
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]string, len(n.friends[s.Name]))
	copy(out, n.friends[s.Name])

	return out
}

// Deliver stores a new message in the sender's and the receiver's history
// (once if they are the same student) and returns it.
func (n *Network) Deliver(from, to *student.Student, text string) (Message, error) {
	if from == nil || to == nil {
		return Message{}, ErrNilStudent
	}
	m := Message{ID: uuid.New(), From: from.Name, To: to.Name, Text: text, At: time.Now()}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.history[from.Name] = append(n.history[from.Name], m)
	if to.Name != from.Name {
		n.history[to.Name] = append(n.history[to.Name], m)
	}

	return m, nil
}

// History returns s's messages in delivery order.
func (n *Network) History(s *student.Student) []Message {
	if s == nil {
		return []Message{}
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]Message, len(n.history[s.Name]))
	copy(out, n.history[s.Name])

	return out
}
