// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Platform identifies the client platform a set of strings belongs to.
type Platform string

const (
	// PlatformIOS is the iOS strings partition.
	PlatformIOS Platform = "ios"
	// PlatformAndroid is the Android strings partition.
	PlatformAndroid Platform = "android"
)

// ErrInvalidPartition is returned by [ParsePartition] when the textual form
// names an unknown platform or an unparsable language tag.
var ErrInvalidPartition = errors.New("invalid partition")

// DefaultPartition is used when no partition preference has been stored yet.
var DefaultPartition = Partition{Platform: PlatformIOS}

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	switch p {
	case PlatformIOS, PlatformAndroid:
		return true
	default:
		return false
	}
}

// Partition selects a subset of the remote strings: a platform and,
// optionally, a language. Partition is comparable and encodes as its
// textual form in JSON and YAML.
type Partition struct {
	// Platform is the mandatory platform component.
	Platform Platform

	// Language is an optional BCP 47 tag in canonical form (e.g. "fr", "pt-BR").
	// Empty means the platform's base strings.
	Language string
}

// ParsePartition parses "platform" or "platform/language".
// The language component is canonicalized with golang.org/x/text/language.
func ParsePartition(s string) (Partition, error) {
	platform, lang, _ := strings.Cut(strings.TrimSpace(s), "/")

	p := Partition{Platform: Platform(strings.ToLower(platform))}
	if !p.Platform.Valid() {
		return Partition{}, fmt.Errorf("%w: unknown platform %q", ErrInvalidPartition, platform)
	}

	if lang == "" {
		return p, nil
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return Partition{}, fmt.Errorf("%w: language %q: %v", ErrInvalidPartition, lang, err)
	}
	p.Language = tag.String()

	return p, nil
}

// IsZero reports whether p is the zero Partition.
func (p Partition) IsZero() bool {
	return p == Partition{}
}

// String returns the textual form accepted by [ParsePartition].
func (p Partition) String() string {
	if p.Language == "" {
		return string(p.Platform)
	}
	return string(p.Platform) + "/" + p.Language
}

// MarshalText implements encoding.TextMarshaler.
func (p Partition) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Empty text yields the zero Partition.
func (p *Partition) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*p = Partition{}
		return nil
	}

	parsed, err := ParsePartition(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
