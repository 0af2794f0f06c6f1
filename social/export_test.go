// SPDX-License-Identifier: MIT

package social

// GatesIdle reports whether neither gate is held.
func (s *Simulator) GatesIdle() bool {
	if !s.friendGate.TryAcquire(1) {
		return false
	}
	defer s.friendGate.Release(1)
	if !s.chatGate.TryAcquire(1) {
		return false
	}
	s.chatGate.Release(1)

	return true
}
