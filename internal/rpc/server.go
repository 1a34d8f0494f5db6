package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"net"

	"github.com/charmbracelet/log"
	"github.com/creachadair/chirp"
	"github.com/creachadair/chirp/channel"

	"nexus/internal/logger"
	"nexus/internal/registry"
	"nexus/pkg/nexustypes"
)

// Server serves the nexus wire contract from a sealed registry. One chirp
// peer is started per accepted connection; the registry tolerates concurrent
// Execute calls, so connections are fully independent.
type Server struct {
	reg *registry.Registry
	log *log.Logger
}

// NewServer creates a server backed by a sealed registry.
func NewServer(reg *registry.Registry) *Server {
	return &Server{
		reg: reg,
		log: logger.NewStyledLogger("Server"),
	}
}

// ListenAndServe binds the endpoint address and serves until the listener
// fails. The address rule follows Listen: ':' means TCP, otherwise a unix
// socket path.
func (s *Server) ListenAndServe(addr string) error {
	lis, err := Listen(addr)
	if err != nil {
		return err
	}
	s.log.Info("Nexus server listening", "addr", addr)
	return s.Serve(lis)
}

// Serve accepts connections on lis and serves each on its own chirp peer.
func (s *Server) Serve(lis net.Listener) error {
	for {
		conn, err := lis.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		s.log.Debug("Client connected", "remote", conn.RemoteAddr())

		peer := chirp.NewPeer()
		s.Bind(peer)
		peer.Start(channel.IO(conn, conn))
		go func() {
			if err := peer.Wait(); err != nil {
				s.log.Debug("Peer closed", "error", err)
			}
		}()
	}
}

// Bind attaches the nexus method handlers to a peer. Exported so tests can
// serve the contract over an in-memory peer pair.
func (s *Server) Bind(peer *chirp.Peer) {
	peer.Handle(methodListServices, s.handleListServices)
	peer.Handle(methodExecute, s.handleExecute)
}

func (s *Server) handleListServices(_ context.Context, _ *chirp.Request) ([]byte, error) {
	return json.Marshal(s.reg.Catalog())
}

func (s *Server) handleExecute(ctx context.Context, req *chirp.Request) ([]byte, error) {
	var call executeRequest
	if err := json.Unmarshal(req.Data, &call); err != nil {
		return nil, err
	}

	logger.Dispatch(call.Service, call.Action, call.Args)

	result := nexustypes.ExecResult{Success: true}
	msg, err := s.reg.Execute(ctx, call.Service, call.Action, call.Args)
	if err != nil {
		result.Success = false
		result.Message = err.Error()
	} else {
		result.Message = msg
	}

	return json.Marshal(result)
}
