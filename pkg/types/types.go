package types

import (
	"time"
)

type Greenhouse struct {
	BoxNo     string `json:"boxNo"`
	Name      string `json:"name"`
	CameraID  string `json:"cameraId,omitempty"`
	CameraURL string `json:"cameraUrl,omitempty"`

	SensorData []SensorReading `json:"sensorData,omitempty"`
}

type SensorReading struct {
	SensorID  string     `json:"sensorId"`
	BoxNo     string     `json:"boxNo"`
	Name      string     `json:"name"`
	Unit      string     `json:"unit"`
	Value     float64    `json:"value"`
	Timestamp time.Time  `json:"timestamp"`
	Type      SensorType `json:"type"`
}

type SensorType string

const (
	SoilMoisture   SensorType = "SOIL_MOISTURE"
	Temperature    SensorType = "TEMPERATURE"
	Conductivity   SensorType = "CONDUCTIVITY"
	SoilPH         SensorType = "SOIL_PH"
	Nitrogen       SensorType = "NITROGEN"
	Phosphorus     SensorType = "PHOSPHORUS"
	Potassium      SensorType = "POTASSIUM"
	AirTemperature SensorType = "AIR_TEMPERATURE"
	AirHumidity    SensorType = "AIR_HUMIDITY"
	Light          SensorType = "LIGHT"
	CO2            SensorType = "CO2"
)

var SensorTypes = []SensorType{
	SoilMoisture, Temperature, Conductivity, SoilPH, Nitrogen, Phosphorus,
	Potassium, AirTemperature, AirHumidity, Light, CO2,
}

func (t SensorType) Valid() bool {
	for _, st := range SensorTypes {
		if st == t {
			return true
		}
	}
	return false
}

// SoilReading is a multi attribute soil probe measurement. Measurements are pointers
// so that a missing value can be told apart from a zero reading.
type SoilReading struct {
	ID          uint      `json:"id"`
	DeviceID    string    `json:"deviceId"`
	Temperature *float64  `json:"temperature"`
	Humidity    *float64  `json:"humidity"`
	EC          *float64  `json:"ec"`
	PH          *float64  `json:"ph"`
	N           *float64  `json:"n"`
	P           *float64  `json:"p"`
	K           *float64  `json:"k"`
	Timestamp   time.Time `json:"timestamp"`
}

type CameraDevice struct {
	DeviceSerial string `json:"deviceSerial" yaml:"deviceSerial"`
	ChannelNo    int    `json:"channelNo" yaml:"channelNo"`
	AccessToken  string `json:"-" yaml:"accessToken"`
	Quality      int    `json:"quality" yaml:"quality"`
}

type CaptureRequest struct {
	DeviceSerial string
	ChannelNo    *int
	Quality      *int
}

type CaptureResult struct {
	PicURL string `json:"picUrl"`
}

type LiveValue struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Value     *float64  `json:"value"`
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// Envelope wraps every camera and soil response, and every failure. Failures carry a null data.
type Envelope[T any] struct {
	Message string `json:"msg"`
	Code    string `json:"code"`
	Data    T      `json:"data"`
}
