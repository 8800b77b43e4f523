// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response bodies shared by the strings remote and
// the client adapter that interprets them.
//
// The remote writes one Msg* constant as the plain-text body of every
// non-2xx response; the adapter matches on these bodies to tell apart
// failures that share a status code.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied username/password
	// combination does not match any account.
	MsgInvalidLoginPassword = "invalid username/password"

	// MsgInternalServerError is returned on unexpected remote failures.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a bearer token is well-formed but
	// past its expiry.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is missing,
	// expired, or fails verification.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgUnknownPartition is returned for a platform or language the remote
	// does not host.
	MsgUnknownPartition = "unknown partition"

	// MsgKeyAlreadyExists is returned when a commit inserts or renames onto a
	// key already present in the partition.
	MsgKeyAlreadyExists = "key already exists"

	// MsgKeyNotFound is returned when a commit edits a key the partition no
	// longer holds.
	MsgKeyNotFound = "key not found"

	// MsgImmutableKey is returned when a commit touches the version key.
	MsgImmutableKey = "key cannot be changed"

	// MsgHashMismatch is returned when the HashSHA256 header does not match
	// the request body.
	MsgHashMismatch = "hash mismatch"

	// MsgLengthMismatch is returned when the declared number of changes does
	// not match the body.
	MsgLengthMismatch = "length mismatch"
)
