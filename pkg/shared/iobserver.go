package shared

import (
	"net/rpc"

	"github.com/hashicorp/go-plugin"
)

// Observer is the contract external plugin processes implement to be
// notified about finished propagation sessions.
type Observer interface {
	Notify(event Event) (bool, error)
}

type ObserverRPCClient struct{ client *rpc.Client }

func (g *ObserverRPCClient) Notify(event Event) (bool, error) {
	var resp bool

	err := g.client.Call("Plugin.Notify", event, &resp)
	if err != nil {
		return false, err
	}

	return resp, nil
}

type ObserverRPCServer struct {
	Impl Observer
}

func (s *ObserverRPCServer) Notify(event Event, resp *bool) error {
	var err error
	*resp, err = s.Impl.Notify(event)
	return err
}

type ObserverPlugin struct {
	Impl Observer
}

func (p *ObserverPlugin) Server(*plugin.MuxBroker) (interface{}, error) {
	return &ObserverRPCServer{Impl: p.Impl}, nil
}

func (ObserverPlugin) Client(b *plugin.MuxBroker, c *rpc.Client) (interface{}, error) {
	return &ObserverRPCClient{client: c}, nil
}
