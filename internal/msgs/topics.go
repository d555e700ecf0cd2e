package msgs

import (
	"github.com/bitvane/sensorcast/internal/pubsub"
)

// The eight sample topics. Defining the events here registers them with the
// topic registry, so importing this package is enough to make `topics list`
// and the subscriber see the full set.
var (
	// TopicHeader carries the bare shared header.
	TopicHeader = pubsub.NewEvent[Header]("header", "The shared timestamp header on its own")

	// TopicString carries the string sample.
	TopicString = pubsub.NewEvent[StringMsg]("string", "A plain string payload")

	// TopicQuaternion carries the orientation sample.
	TopicQuaternion = pubsub.NewEvent[Quaternion]("quaternion", "An orientation in (x, y, z, w) form")

	// TopicVector3 carries the vector sample.
	TopicVector3 = pubsub.NewEvent[Vector3]("vector3", "A three-dimensional vector")

	// TopicImage carries the raw image sample.
	TopicImage = pubsub.NewEvent[Image]("image", "A raw 320x240 RGB image buffer")

	// TopicIMU carries the inertial reading sample.
	TopicIMU = pubsub.NewEvent[IMU]("imu", "An inertial reading with orientation and rates")

	// TopicLaserScan carries the planar scan sample.
	TopicLaserScan = pubsub.NewEvent[LaserScan]("laserscan", "A 100-reading planar laser scan")

	// TopicMagnetometer carries the magnetic field sample.
	TopicMagnetometer = pubsub.NewEvent[Magnetometer]("magnetic", "A magnetic field reading in teslas")
)
