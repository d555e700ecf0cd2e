// Package msgs defines the sample sensor message records and their fixed
// fixture values. Records are built once at startup and never mutated; the
// shared header is copied by value into the composite records.
package msgs

// PixelFormat identifies the encoding of an image buffer. The numeric values
// match the common robotics pixel format enumeration (RGB_INT8 = 3) so
// payloads stay comparable across toolchains.
type PixelFormat int32

const (
	UnknownPixelFormat PixelFormat = iota
	LInt8
	LInt16
	RGBInt8
	RGBAInt8
	BGRAInt8
	RGBInt16
	RGBInt32
	BGRInt8
	BGRInt16
	BGRInt32
	RInt8
	RFloat16
	RGBFloat16
	RFloat32
	RGBFloat32
	BayerRGGB8
	BayerBGGR8
	BayerGBRG8
	BayerGRBG8
)

// Stamp is a timestamp split into whole seconds and nanoseconds.
type Stamp struct {
	Sec  int64 `json:"sec"`
	Nsec int32 `json:"nsec" validate:"gte=0,lt=1000000000"`
}

// Header carries the shared timestamp embedded into the composite records.
type Header struct {
	Stamp Stamp `json:"stamp"`
}

// StringMsg wraps a plain string payload.
type StringMsg struct {
	Data string `json:"data"`
}

// Quaternion is an orientation in (x, y, z, w) form.
type Quaternion struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// Vector3 is a three-dimensional vector.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Image is a raw image buffer. Step is the stride of one row in bytes and
// Data must hold exactly Height*Step bytes.
type Image struct {
	Header      Header      `json:"header"`
	Width       uint32      `json:"width" validate:"gt=0"`
	Height      uint32      `json:"height" validate:"gt=0"`
	PixelFormat PixelFormat `json:"pixel_format" validate:"gt=0"`
	Step        uint32      `json:"step" validate:"gt=0"`
	Data        []byte      `json:"data"`
}

// IMU is an inertial reading composed of an orientation and two rates.
type IMU struct {
	Header             Header     `json:"header"`
	Orientation        Quaternion `json:"orientation"`
	AngularVelocity    Vector3    `json:"angular_velocity"`
	LinearAcceleration Vector3    `json:"linear_acceleration"`
}

// LaserScan is a planar scan of Count readings spread evenly between
// AngleMin and AngleMax. Ranges and Intensities each hold one entry per
// reading.
type LaserScan struct {
	Header            Header    `json:"header"`
	AngleMin          float64   `json:"angle_min"`
	AngleMax          float64   `json:"angle_max"`
	AngleStep         float64   `json:"angle_step"`
	RangeMin          float64   `json:"range_min"`
	RangeMax          float64   `json:"range_max" validate:"gtefield=RangeMin"`
	Count             uint32    `json:"count"`
	VerticalAngleMin  float64   `json:"vertical_angle_min"`
	VerticalAngleMax  float64   `json:"vertical_angle_max"`
	VerticalAngleStep float64   `json:"vertical_angle_step"`
	VerticalCount     uint32    `json:"vertical_count"`
	Ranges            []float64 `json:"ranges"`
	Intensities       []float64 `json:"intensities"`
}

// Magnetometer is a magnetic field reading in teslas.
type Magnetometer struct {
	Header     Header  `json:"header"`
	FieldTesla Vector3 `json:"field_tesla"`
}

// Fixture constants for the sample records.
const (
	SampleImageWidth  = 320
	SampleImageHeight = 240

	SampleScanCount    = 100
	SampleScanAngleMin = -1.57
	SampleScanAngleMax = 1.57
	SampleScanRangeMin = 1
	SampleScanRangeMax = 2
)

// SampleHeader returns the shared header fixture.
func SampleHeader() Header {
	return Header{Stamp: Stamp{Sec: 2, Nsec: 3}}
}

// SampleString returns the string fixture.
func SampleString() StringMsg {
	return StringMsg{Data: "string"}
}

// SampleQuaternion returns the orientation fixture.
func SampleQuaternion() Quaternion {
	return Quaternion{X: 1, Y: 2, Z: 3, W: 4}
}

// SampleVector3 returns the vector fixture.
func SampleVector3() Vector3 {
	return Vector3{X: 1, Y: 2, Z: 3}
}

// SampleImage returns a 320x240 RGB image with a zero-filled buffer.
func SampleImage() Image {
	step := uint32(SampleImageWidth * 3)
	return Image{
		Header:      SampleHeader(),
		Width:       SampleImageWidth,
		Height:      SampleImageHeight,
		PixelFormat: RGBInt8,
		Step:        step,
		Data:        make([]byte, SampleImageHeight*step),
	}
}

// SampleIMU returns an inertial reading built from the orientation and
// vector fixtures.
func SampleIMU() IMU {
	return IMU{
		Header:             SampleHeader(),
		Orientation:        SampleQuaternion(),
		AngularVelocity:    SampleVector3(),
		LinearAcceleration: SampleVector3(),
	}
}

// SampleLaserScan returns a 100-reading scan spanning ±1.57 rad with zero
// ranges and unit intensities.
func SampleLaserScan() LaserScan {
	scan := LaserScan{
		Header:      SampleHeader(),
		AngleMin:    SampleScanAngleMin,
		AngleMax:    SampleScanAngleMax,
		AngleStep:   3.14 / SampleScanCount,
		RangeMin:    SampleScanRangeMin,
		RangeMax:    SampleScanRangeMax,
		Count:       SampleScanCount,
		Ranges:      make([]float64, 0, SampleScanCount),
		Intensities: make([]float64, 0, SampleScanCount),
	}

	for i := uint32(0); i < scan.Count; i++ {
		scan.Ranges = append(scan.Ranges, 0)
		scan.Intensities = append(scan.Intensities, 1)
	}

	return scan
}

// SampleMagnetometer returns a magnetic field reading built from the vector
// fixture.
func SampleMagnetometer() Magnetometer {
	return Magnetometer{
		Header:     SampleHeader(),
		FieldTesla: SampleVector3(),
	}
}
