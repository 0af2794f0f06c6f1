// SPDX-License-Identifier: MIT

// Package social simulates concurrent student activity: friend requests and
// chat messages.
//
// Network holds friendships and chat histories and is safe for concurrent
// use. Simulator runs activity against a Network with simulated latency. Each
// activity kind has its own single-slot gate, so friend requests never overlap
// each other and neither do chats, while a friend request and a chat may run
// side by side.
//
// Every operation honors its context. A cancelled operation changes nothing
// and always gives its gate back.
package social
