package server

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"ppdmap/calculator"
	"ppdmap/model"
	"ppdmap/parameter"
)

// 消息类型
const (
	TypeParams    = "params"
	TypeCompute   = "compute"
	TypeCatalog   = "catalog"
	TypeParamsSet = "paramsSet"
	TypeMaps      = "maps"
	TypeError     = "error"
)

// Hub serves one connection. Requests are handled in order and every reply
// is written by handleResponse, the only writer on conn.
type Hub struct {
	c       calculator.Calculator
	catalog *parameter.Catalog
	maxDim  int
	conn    *websocket.Conn
	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
	done  chan struct{}
}

func NewHub(conn *websocket.Conn, c calculator.Calculator, catalog *parameter.Catalog, maxDim int) *Hub {
	return &Hub{
		c:       c,
		catalog: catalog,
		maxDim:  maxDim,
		conn:    conn,
		msg:     make(chan model.Msg, 10),
		reply:   make(chan model.Msg, 10),
		done:    make(chan struct{}),
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.WithError(err).WithField("type", reply.Type).Warn("write failed")
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			select {
			case h.reply <- h.dispatch(msg):
			case <-h.done:
				return
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) dispatch(msg model.Msg) model.Msg {
	switch msg.Type {
	case TypeParams:
		// 在当前参数基础上更新，未给出的字段保持不变
		p := h.c.Params()
		if err := json.Unmarshal([]byte(msg.Content), &p); err != nil {
			return errorMsg(fmt.Errorf("decode params: %w", err))
		}
		if err := calculator.Validate(p); err != nil {
			return errorMsg(err)
		}
		if err := calculator.ValidateDim(p, h.maxDim); err != nil {
			log.WithField("dim", p.Dim).Warn("dim too large")
			return errorMsg(err)
		}
		h.c.SetParams(p)
		return model.Msg{Type: TypeParamsSet, Content: "params are set"}
	case TypeCompute:
		maps, err := h.c.Run()
		if err != nil {
			return errorMsg(err)
		}
		return encode(TypeMaps, maps)
	case TypeCatalog:
		return encode(TypeCatalog, h.catalog)
	default:
		log.WithField("type", msg.Type).Warn("no such type")
		return errorMsg(fmt.Errorf("no such type: %q", msg.Type))
	}
}

func encode(typ string, v interface{}) model.Msg {
	data, err := json.Marshal(v)
	if err != nil {
		return errorMsg(fmt.Errorf("encode %s: %w", typ, err))
	}
	return model.Msg{Type: typ, Content: string(data)}
}

func errorMsg(err error) model.Msg {
	return model.Msg{Type: TypeError, Content: err.Error()}
}
