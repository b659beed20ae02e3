package netfabric

import (
	"fmt"
	"io"
	"net"

	kcp "github.com/xtaci/kcp-go/v5"
	"github.com/xtaci/smux"
	"github.com/pkg/errors"
)

// dial opens one encrypted, optionally-compressed kcp connection to addr
// and wraps it in a smux client session; the caller owns the returned
// session and must Close it.
func dial(addr string, cfg Config) (*smux.Session, error) {
	block, _ := cfg.blockCrypt()
	conn, err := kcp.DialWithOptions(addr, block, cfg.DataShard, cfg.ParityShard)
	if err != nil {
		return nil, errors.Wrapf(err, "netfabric: dial %s", addr)
	}
	conn.SetStreamMode(true)
	conn.SetWriteDelay(false)
	conn.SetNoDelay(1, 10, 2, 1)

	var rw io.ReadWriteCloser = conn
	if cfg.Compress {
		rw = newCompStream(conn)
	}
	smuxCfg, err := cfg.smuxConfig()
	if err != nil {
		return nil, errors.Wrap(err, "netfabric: smux config")
	}
	sess, err := smux.Client(rw, smuxCfg)
	if err != nil {
		return nil, errors.Wrap(err, "netfabric: smux client")
	}
	return sess, nil
}

// listener wraps a kcp.Listener; every accepted connection becomes one
// smux server session, handed to onSession for the caller to identify and
// register by remote PE id.
type listener struct {
	kcpLn *kcp.Listener
	cfg   Config
}

// listen binds addr, which may be either a single "host:port" or a
// "host:minport-maxport" range; a range is tried in order and the first
// port that binds wins, letting several PE processes share one port
// range instead of needing pre-assigned, per-process addresses.
func listen(addr string, cfg Config) (*listener, error) {
	pr, err := ParsePortRange(addr)
	if err != nil {
		return nil, err
	}
	block, _ := cfg.blockCrypt()
	var lastErr error
	for port := pr.MinPort; port <= pr.MaxPort; port++ {
		candidate := fmt.Sprintf("%s:%d", pr.Host, port)
		ln, err := kcp.ListenWithOptions(candidate, block, cfg.DataShard, cfg.ParityShard)
		if err == nil {
			return &listener{kcpLn: ln, cfg: cfg}, nil
		}
		lastErr = err
	}
	return nil, errors.Wrapf(lastErr, "netfabric: no free port in %s:%d-%d", pr.Host, pr.MinPort, pr.MaxPort)
}

func (l *listener) Addr() net.Addr { return l.kcpLn.Addr() }
func (l *listener) Close() error   { return l.kcpLn.Close() }

// serve accepts connections forever, handing each off to onSession in its
// own goroutine. It returns only once the listener is closed.
func (l *listener) serve(onSession func(*smux.Session)) error {
	smuxCfg, err := l.cfg.smuxConfig()
	if err != nil {
		return errors.Wrap(err, "netfabric: smux config")
	}
	for {
		conn, err := l.kcpLn.AcceptKCP()
		if err != nil {
			return errors.Wrap(err, "netfabric: accept")
		}
		conn.SetStreamMode(true)
		conn.SetWriteDelay(false)
		conn.SetNoDelay(1, 10, 2, 1)

		go func(conn *kcp.UDPSession) {
			var rw io.ReadWriteCloser = conn
			if l.cfg.Compress {
				rw = newCompStream(conn)
			}
			sess, err := smux.Server(rw, smuxCfg)
			if err != nil {
				conn.Close()
				return
			}
			onSession(sess)
		}(conn)
	}
}
