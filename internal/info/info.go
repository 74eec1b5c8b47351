// Package info is the named introspection table: "info" hooks return a
// single text value, "infolist" hooks return a structured list.
package info

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownInfo is returned for names nobody registered.
	ErrUnknownInfo = errors.New("unknown info")
	// ErrDuplicateInfo is returned when a name is registered twice.
	ErrDuplicateInfo = errors.New("info already registered")
)

// Func answers an info query with a text value.
type Func func(args string) (string, error)

// ListFunc answers an infolist query. id selects one entry, empty means all.
type ListFunc func(id, args string) (any, error)

// Kind tells info hooks from infolist hooks.
type Kind string

const (
	KindInfo     Kind = "info"
	KindInfolist Kind = "infolist"
)

// Description documents one hook.
type Description struct {
	Name        string `json:"name"`
	Kind        Kind   `json:"kind"`
	Description string `json:"description"`
	Args        string `json:"args,omitempty"`
	ID          string `json:"id,omitempty"`
}

type infoHook struct {
	desc Description
	fn   Func
}

type listHook struct {
	desc Description
	fn   ListFunc
}

// Hub holds the registered hooks. It is filled at startup and read by
// the event loop afterwards, so it carries no lock.
type Hub struct {
	infos map[string]infoHook
	lists map[string]listHook
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{
		infos: make(map[string]infoHook),
		lists: make(map[string]listHook),
	}
}

// RegisterInfo adds an info hook.
func (h *Hub) RegisterInfo(name, description, args string, fn Func) error {
	if _, ok := h.infos[name]; ok {
		return fmt.Errorf("info %q: %w", name, ErrDuplicateInfo)
	}
	h.infos[name] = infoHook{
		desc: Description{Name: name, Kind: KindInfo, Description: description, Args: args},
		fn:   fn,
	}
	return nil
}

// RegisterInfolist adds an infolist hook.
func (h *Hub) RegisterInfolist(name, description, id, args string, fn ListFunc) error {
	if _, ok := h.lists[name]; ok {
		return fmt.Errorf("infolist %q: %w", name, ErrDuplicateInfo)
	}
	h.lists[name] = listHook{
		desc: Description{Name: name, Kind: KindInfolist, Description: description, ID: id, Args: args},
		fn:   fn,
	}
	return nil
}

// Info runs the info hook name.
func (h *Hub) Info(name, args string) (string, error) {
	hook, ok := h.infos[name]
	if !ok {
		return "", fmt.Errorf("info %q: %w", name, ErrUnknownInfo)
	}
	return hook.fn(args)
}

// Infolist runs the infolist hook name.
func (h *Hub) Infolist(name, id, args string) (any, error) {
	hook, ok := h.lists[name]
	if !ok {
		return nil, fmt.Errorf("infolist %q: %w", name, ErrUnknownInfo)
	}
	return hook.fn(id, args)
}

// Describe lists every hook, infos first, each group sorted by name.
func (h *Hub) Describe() []Description {
	out := make([]Description, 0, len(h.infos)+len(h.lists))
	for _, hook := range h.infos {
		out = append(out, hook.desc)
	}
	for _, hook := range h.lists {
		out = append(out, hook.desc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind == KindInfo
		}
		return out[i].Name < out[j].Name
	})
	return out
}
