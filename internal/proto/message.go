package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	ID   string          `json:"id,omitempty"`
	Data json.RawMessage `json:"data"`
}

const (
	ProtocolVersion = 1

	InboundTypeItem     = "item"
	InboundTypeInfo     = "info"
	InboundTypeInfolist = "infolist"

	OutboundTypeLabel    = "label"
	OutboundTypeInfo     = "info"
	OutboundTypeInfolist = "infolist"
	OutboundTypeError    = "error"
)

// ItemData asks for the label of one bar item on one buffer.
type ItemData struct {
	Name   string `json:"name"`
	Buffer string `json:"buffer"`
}

// InfoData asks for an info value.
type InfoData struct {
	Name string `json:"name"`
	Args string `json:"args,omitempty"`
}

// InfolistData asks for an infolist.
type InfolistData struct {
	Name string `json:"name"`
	ID   string `json:"id,omitempty"`
	Args string `json:"args,omitempty"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	ID    string `json:"id,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// Label is a composed bar item. Present is false when the item has
// nothing to show, which is different from an empty Text.
type Label struct {
	Name    string `json:"name"`
	Buffer  string `json:"buffer"`
	Present bool   `json:"present"`
	Text    string `json:"text"`
	Plain   string `json:"plain"`
}

// InfoValue is the answer to an info request.
type InfoValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// InfolistValue is the answer to an infolist request.
type InfolistValue struct {
	Name  string `json:"name"`
	Items any    `json:"items"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
