package snowflake

import (
	"errors"

	sf "github.com/bwmarrin/snowflake"
)

var node *sf.Node

// Init creates the package-level snowflake node for the given machine ID.
func Init(machineID int64) (err error) {
	node, err = sf.NewNode(machineID)
	return
}

// GetID returns a new snowflake ID.
func GetID() (int64, error) {
	if node == nil {
		return 0, errors.New("snowflake not initialized")
	}
	return node.Generate().Int64(), nil
}
