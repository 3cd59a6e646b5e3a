// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"sort"
	"strings"

	"github.com/mitchellh/hashstructure/v2"
)

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry holds every descriptor advertised on the bus, keyed by command
// name in ascending order. A name may carry several descriptors (overloads
// from different subscribers); only structurally identical descriptors are
// deduplicated.
//
// Registry is not safe for concurrent use. The console owns it from a single
// goroutine.
type Registry struct {
	// keys is sorted ascending; buckets[keys[i]] holds that key's descriptors
	// in registration order.
	keys    []string
	buckets map[string][]CommandDescriptor

	// fingerprints of everything registered so far
	seen map[uint64]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		buckets: make(map[string][]CommandDescriptor),
		seen:    make(map[uint64]struct{}),
	}
}

// Register adds descriptors that are not already present. It returns the
// number actually inserted.
func (r *Registry) Register(descs ...CommandDescriptor) int {
	added := 0
	for _, d := range descs {
		if r.contains(d) {
			continue
		}
		r.insert(d)
		added++
	}
	return added
}

func (r *Registry) contains(d CommandDescriptor) bool {
	if h, err := fingerprint(d); err == nil {
		if _, ok := r.seen[h]; !ok {
			return false
		}
	}
	// Hash hit (or no hash): confirm structurally.
	for _, existing := range r.buckets[d.Msg] {
		if existing.Equal(d) {
			return true
		}
	}
	return false
}

func (r *Registry) insert(d CommandDescriptor) {
	if h, err := fingerprint(d); err == nil {
		r.seen[h] = struct{}{}
	}

	// Copy args so callers can't mutate registered descriptors.
	d.Args = append([]ArgDescriptor(nil), d.Args...)

	if _, ok := r.buckets[d.Msg]; !ok {
		i := sort.SearchStrings(r.keys, d.Msg)
		r.keys = append(r.keys, "")
		copy(r.keys[i+1:], r.keys[i:])
		r.keys[i] = d.Msg
	}
	r.buckets[d.Msg] = append(r.buckets[d.Msg], d)
}

// fingerprint hashes a descriptor's full structure.
func fingerprint(d CommandDescriptor) (uint64, error) {
	return hashstructure.Hash(d, hashstructure.FormatV2, nil)
}

// Lookup returns the first descriptor registered under msg.
func (r *Registry) Lookup(msg string) (CommandDescriptor, bool) {
	bucket := r.buckets[msg]
	if len(bucket) == 0 {
		return CommandDescriptor{}, false
	}
	return bucket[0], true
}

// LookupAll returns every descriptor registered under msg.
func (r *Registry) LookupAll(msg string) []CommandDescriptor {
	return append([]CommandDescriptor(nil), r.buckets[msg]...)
}

// All returns every descriptor, ascending by name.
func (r *Registry) All() []CommandDescriptor {
	return r.collect(r.keys)
}

// Matching returns descriptors whose name contains substr, ascending by name.
func (r *Registry) Matching(substr string) []CommandDescriptor {
	var keys []string
	for _, k := range r.keys {
		if strings.Contains(k, substr) {
			keys = append(keys, k)
		}
	}
	return r.collect(keys)
}

// Prefixed returns descriptors whose name starts with prefix, ascending by
// name. This is a range scan over the sorted keys.
func (r *Registry) Prefixed(prefix string) []CommandDescriptor {
	start := sort.SearchStrings(r.keys, prefix)
	end := start
	for end < len(r.keys) && strings.HasPrefix(r.keys[end], prefix) {
		end++
	}
	return r.collect(r.keys[start:end])
}

// Names returns the distinct command names, ascending.
func (r *Registry) Names() []string {
	return append([]string(nil), r.keys...)
}

// Len returns the total number of registered descriptors.
func (r *Registry) Len() int {
	n := 0
	for _, bucket := range r.buckets {
		n += len(bucket)
	}
	return n
}

func (r *Registry) collect(keys []string) []CommandDescriptor {
	var out []CommandDescriptor
	for _, k := range keys {
		out = append(out, r.buckets[k]...)
	}
	return out
}
