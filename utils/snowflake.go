package utils

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node     *snowflake.Node
	nodeOnce sync.Once
	nodeErr  error
)

// InitSnowflake sets up the id generator for this node. Node ids must differ per instance.
func InitSnowflake(nodeID int64) error {
	nodeOnce.Do(func() {
		node, nodeErr = snowflake.NewNode(nodeID)
	})
	return nodeErr
}

// NextID returns a new generation-ordered id. It initializes node 1 on first use
// if InitSnowflake was never called.
func NextID() string {
	if node == nil {
		if err := InitSnowflake(1); err != nil {
			panic(err)
		}
	}
	return node.Generate().String()
}
