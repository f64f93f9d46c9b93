// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package protocol implements the column server wire contract.
//
// Every request is a short text token followed by a single NUL byte:
//
//	"1".."4" + "\x00"   get one column
//	"w" + "\x00"        get the whole file
//	"q" + "\x00"        quit, no reply is sent
//
// Every request except quit is answered by exactly one reply: a block of at
// most [DefaultReplyCapacity] bytes read in a single receive call. The
// protocol carries no length header, so client and server share the capacity
// as a convention. A reply larger than the client's capacity is truncated by
// the client and the unread remainder stays in the stream, where it will be
// mistaken for the next reply. Servers in this module frame their replies
// with [FrameReply] so that never happens.
package protocol
