package node

import (
	"log/slog"
	"os"
	"sync"

	"github.com/google/uuid"
)

// Version and CommitHash are stamped at build time with
// -ldflags "-X pilot-server/internal/infra/node.Version=...".
var (
	Version    = "development"
	CommitHash = "unknown"
)

// Node describes the running server instance.
type Node struct {
	ID         string
	Hostname   string
	Version    string
	CommitHash string
}

var (
	instanceID   string
	instanceOnce sync.Once
)

func GetNodeInfo() *Node {
	instanceOnce.Do(func() {
		instanceID = uuid.New().String()
	})

	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "localhost"
	}

	return &Node{
		ID:         instanceID,
		Hostname:   hostname,
		Version:    Version,
		CommitHash: CommitHash,
	}
}

// LogAttrs identifies the instance on every log line.
func (n *Node) LogAttrs() []any {
	return []any{
		slog.String("node_id", n.ID),
		slog.String("version", n.Version),
		slog.String("commit_hash", n.CommitHash),
	}
}
