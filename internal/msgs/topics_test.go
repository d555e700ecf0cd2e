package msgs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitvane/sensorcast/internal/topics"
)

// Importing this package must register exactly the eight fixed topics.
func TestTopicRegistration(t *testing.T) {
	assert.Equal(t, []string{
		"header",
		"image",
		"imu",
		"laserscan",
		"magnetic",
		"quaternion",
		"string",
		"vector3",
	}, topics.Names())

	scan, exists := topics.Get("laserscan")
	assert.True(t, exists)
	assert.Equal(t, "LaserScan", scan.Payload)
}
