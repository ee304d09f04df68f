package uid

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Generator hands out time-ordered identities of the form PREFIX-<snowflake>.
type Generator struct {
	node *snowflake.Node
}

func NewGenerator(machineID int64) (*Generator, error) {
	node, err := snowflake.NewNode(machineID)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize snowflake node: %w", err)
	}
	return &Generator{node: node}, nil
}

func (g *Generator) Next(prefix string) string {
	return prefix + "-" + g.node.Generate().String()
}
