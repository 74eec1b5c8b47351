package http

import (
	"context"
	"encoding/json"

	"github.com/vovakirdan/ircbar/internal/core"
	"github.com/vovakirdan/ircbar/internal/proto"
)

// request is a decoded websocket request ready to run against the engine.
type request struct {
	id   string
	kind string
	item proto.ItemData
	info proto.InfoData
	list proto.InfolistData
}

func inboundToRequest(inbound proto.Inbound) (*request, *proto.Error, error) {
	req := &request{id: inbound.ID, kind: inbound.Type}
	switch inbound.Type {
	case proto.InboundTypeItem:
		if err := json.Unmarshal(inbound.Data, &req.item); err != nil {
			return nil, nil, err
		}
		if req.item.Name == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "item name is required"}, nil
		}
	case proto.InboundTypeInfo:
		if err := json.Unmarshal(inbound.Data, &req.info); err != nil {
			return nil, nil, err
		}
		if req.info.Name == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "info name is required"}, nil
		}
	case proto.InboundTypeInfolist:
		if err := json.Unmarshal(inbound.Data, &req.list); err != nil {
			return nil, nil, err
		}
		if req.list.Name == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "infolist name is required"}, nil
		}
	default:
		return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "unknown message type"}, nil
	}
	return req, nil, nil
}

// execute runs req and builds the reply. Engine failures become error
// replies; only a stopped engine is returned as an error.
func (req *request) execute(ctx context.Context, eng core.Engine) (proto.Outbound, error) {
	var (
		out proto.Outbound
		err error
	)
	out.ID = req.id
	switch req.kind {
	case proto.InboundTypeItem:
		var label proto.Label
		label, err = eng.Label(ctx, req.item.Name, req.item.Buffer)
		out.Type, out.Data = proto.OutboundTypeLabel, label
	case proto.InboundTypeInfo:
		var value string
		value, err = eng.Info(ctx, req.info.Name, req.info.Args)
		out.Type, out.Data = proto.OutboundTypeInfo, proto.InfoValue{Name: req.info.Name, Value: value}
	case proto.InboundTypeInfolist:
		var items any
		items, err = eng.Infolist(ctx, req.list.Name, req.list.ID, req.list.Args)
		out.Type, out.Data = proto.OutboundTypeInfolist, proto.InfolistValue{Name: req.list.Name, Items: items}
	}
	if err == nil {
		return out, nil
	}
	ce := core.Classify(err)
	if ce.Code == core.ErrCodeUnavailable {
		return proto.Outbound{}, err
	}
	return errorOutbound(req.id, ce.Code, ce.Message), nil
}

func errorOutbound(id, code, msg string) proto.Outbound {
	return proto.Outbound{
		Type:  proto.OutboundTypeError,
		ID:    id,
		Error: &proto.Error{Code: code, Msg: msg},
	}
}
